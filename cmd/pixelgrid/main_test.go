package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func testApp() (*cli.App, *bytes.Buffer) {
	out := new(bytes.Buffer)
	app := newApp()
	app.Writer = out
	app.ErrWriter = new(bytes.Buffer)
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app, out
}

func TestDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	app, out := testApp()

	require.NoError(t, runApp(app, []string{"pixelgrid", "--dry-run", "--output-dir", dir, "--sizes", "16", "8", "16"}))

	assert.Equal(t, []string{
		"[dry-run] " + filepath.Join(dir, "mind-fragment-core_8.png"),
		"[dry-run] " + filepath.Join(dir, "mind-fragment-core_16.png"),
		"[dry-run] " + filepath.Join(dir, "worker-m0-drone_8.png"),
		"[dry-run] " + filepath.Join(dir, "worker-m0-drone_16.png"),
		"[dry-run] " + filepath.Join(dir, "nestled-sporeling_8.png"),
		"[dry-run] " + filepath.Join(dir, "nestled-sporeling_16.png"),
	}, strings.Split(strings.TrimSpace(out.String()), "\n"))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestDefaultSizes(t *testing.T) {
	dir := t.TempDir()
	app, out := testApp()

	require.NoError(t, runApp(app, []string{"pixelgrid", "--dry-run", "--output-dir", dir}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "[dry-run] "+filepath.Join(dir, "mind-fragment-core_48.png"), lines[0])
	assert.Equal(t, "[dry-run] "+filepath.Join(dir, "mind-fragment-core_96.png"), lines[1])
}

func TestCatalog(t *testing.T) {
	tmp := t.TempDir()
	catalog := filepath.Join(tmp, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`
assets:
  - slug: x
    grid: ["A"]
    legend:
      "A": {color: "#000000", opacity: 1.0}
`), 0644))

	dir := filepath.Join(tmp, "nested", "out")
	app, out := testApp()

	require.NoError(t, runApp(app, []string{"pixelgrid", "--catalog", catalog, "--include-base", "--output-dir", dir, "--sizes", "2"}))

	assert.Equal(t, "Saved "+filepath.Join(dir, "x_base.png")+"\n"+
		"Saved "+filepath.Join(dir, "x_2.png")+"\n", out.String())
	assert.FileExists(t, filepath.Join(dir, "x_base.png"))
	assert.FileExists(t, filepath.Join(dir, "x_2.png"))
}

func TestErrors(t *testing.T) {
	tables := []struct {
		name string
		args []string
		code int
	}{
		{"stray argument", []string{"pixelgrid", "--dry-run", "48"}, 2},
		{"bad size", []string{"pixelgrid", "--dry-run", "--sizes", "48", "big"}, 2},
		{"missing catalog", []string{"pixelgrid", "--dry-run", "--catalog", "/nonexistent/catalog.yaml"}, 1},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			app, out := testApp()

			err := runApp(app, table.args)
			require.Error(t, err)

			e, ok := err.(cli.ExitCoder)
			require.True(t, ok)
			assert.Equal(t, table.code, e.ExitCode())
			assert.Empty(t, out.String())
		})
	}
}

func TestSizesFollowedByFlags(t *testing.T) {
	tables := []struct {
		name  string
		args  []string
		files []string
	}{
		{
			name:  "dry run after sizes",
			args:  []string{"--sizes", "48", "96", "--dry-run"},
			files: []string{"x_48.png", "x_96.png"},
		},
		{
			name:  "include base after sizes",
			args:  []string{"--sizes", "4", "2", "--include-base", "--dry-run"},
			files: []string{"x_base.png", "x_2.png", "x_4.png"},
		},
		{
			name:  "comma list then bare sizes",
			args:  []string{"--sizes", "8,4", "2", "--dry-run"},
			files: []string{"x_2.png", "x_4.png", "x_8.png"},
		},
		{
			name:  "non-positive sizes dropped",
			args:  []string{"--sizes", "0", "3", "--dry-run"},
			files: []string{"x_3.png"},
		},
	}

	tmp := t.TempDir()
	catalog := filepath.Join(tmp, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(`
assets:
  - slug: x
    grid: ["A"]
    legend:
      "A": {color: "#000000", opacity: 1.0}
`), 0644))

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			dir := filepath.Join(tmp, "out")
			app, out := testApp()

			args := append([]string{"pixelgrid", "--catalog", catalog, "--output-dir", dir}, table.args...)
			require.NoError(t, runApp(app, args))

			var want []string
			for _, f := range table.files {
				want = append(want, "[dry-run] "+filepath.Join(dir, f))
			}
			assert.Equal(t, want, strings.Split(strings.TrimSpace(out.String()), "\n"))

			_, err := os.Stat(dir)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestSizesLiveRun(t *testing.T) {
	dir := t.TempDir()
	app, out := testApp()

	require.NoError(t, runApp(app, []string{"pixelgrid", "--output-dir", dir, "--sizes", "8", "16", "--include-base"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "Saved "+filepath.Join(dir, "mind-fragment-core_base.png"), lines[0])
	assert.Equal(t, "Saved "+filepath.Join(dir, "mind-fragment-core_8.png"), lines[1])
	assert.Equal(t, "Saved "+filepath.Join(dir, "mind-fragment-core_16.png"), lines[2])
}

func TestExpandSizes(t *testing.T) {
	tables := []struct {
		in   []string
		want []string
	}{
		{
			[]string{"pixelgrid", "--sizes", "48", "96", "--dry-run"},
			[]string{"pixelgrid", "--sizes", "48", "--sizes", "96", "--dry-run"},
		},
		{
			[]string{"pixelgrid", "--sizes=48", "96"},
			[]string{"pixelgrid", "--sizes=48", "--sizes", "96"},
		},
		{
			[]string{"pixelgrid", "--dry-run", "48"},
			[]string{"pixelgrid", "--dry-run", "48"},
		},
		{
			[]string{"pixelgrid", "--sizes", "48", "big", "96"},
			[]string{"pixelgrid", "--sizes", "48", "big", "96"},
		},
		{
			[]string{"pixelgrid", "--sizes", "48", "--", "96"},
			[]string{"pixelgrid", "--sizes", "48", "--", "96"},
		},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, expandSizes(table.in))
	}
}
