package pixelgrid

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	pgimage "github.com/bodgit/pixelgrid/image"
)

// DefaultOutputDir is where assets are written unless told otherwise
const DefaultOutputDir = "docs/steering/assets/crash-zone"

// DefaultSizes are the square sizes written unless told otherwise
var DefaultSizes = []int{48, 96}

// Options controls how assets are exported
type Options struct {
	OutputDir   string
	Sizes       []int
	IncludeBase bool
	DryRun      bool
	Indexed     bool
}

func (o Options) directory() string {
	if o.OutputDir == "" {
		return "."
	}
	return o.OutputDir
}

// Artifact is a single output file
type Artifact struct {
	Path    string
	Written bool
}

// NormaliseSizes returns the positive sizes in ascending order without
// duplicates
func NormaliseSizes(sizes []int) []int {
	seen := make(map[int]struct{}, len(sizes))
	out := make([]int, 0, len(sizes))
	for _, s := range sizes {
		if s <= 0 {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

func checkDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", dir)
	}
	return nil
}

func (r *Renderer) save(m image.Image, file string, opts Options) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	var encodeOpts []pgimage.Option
	if opts.Indexed {
		encodeOpts = append(encodeOpts, pgimage.Indexed())
	}

	if err := pgimage.Encode(f, m, encodeOpts...); err != nil {
		f.Close()
		os.Remove(file)
		return fmt.Errorf("%s: %w", file, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(file)
		return err
	}

	return nil
}

func (r *Renderer) emit(m image.Image, file string, opts Options) (Artifact, error) {
	if opts.DryRun {
		fmt.Fprintf(r.out, "[dry-run] %s\n", file)
		return Artifact{Path: file}, nil
	}

	if err := r.save(m, file, opts); err != nil {
		return Artifact{}, err
	}
	fmt.Fprintf(r.out, "Saved %s\n", file)

	return Artifact{Path: file, Written: true}, nil
}

// Export renders a single asset and writes the unscaled base, if requested,
// followed by one file per size. With DryRun set nothing is written and the
// paths are only reported.
func (r *Renderer) Export(a *Asset, opts Options) ([]Artifact, error) {
	if !opts.DryRun {
		if err := checkDirectory(opts.directory()); err != nil {
			return nil, err
		}
	}

	base, err := a.Render()
	if err != nil {
		return nil, err
	}
	r.logger.Printf("Rendered %s as %dx%d canvas\n", a.Slug, base.Bounds().Dx(), base.Bounds().Dy())

	var artifacts []Artifact

	if opts.IncludeBase {
		artifact, err := r.emit(base, filepath.Join(opts.directory(), fmt.Sprintf("%s_base.png", a.Slug)), opts)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, artifact)
	}

	for _, size := range NormaliseSizes(opts.Sizes) {
		var m image.Image = base
		if !opts.DryRun {
			m = pgimage.Scale(base, size)
			r.logger.Printf("Scaled %s to %dx%d\n", a.Slug, size, size)
		}

		artifact, err := r.emit(m, filepath.Join(opts.directory(), fmt.Sprintf("%s_%d.png", a.Slug, size)), opts)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

// Run exports every asset in the catalog in order, creating the output
// directory first unless DryRun is set
func (r *Renderer) Run(c *Catalog, opts Options) ([]Artifact, error) {
	if c == nil {
		return nil, ErrNoCatalog
	}

	if !opts.DryRun {
		if err := os.MkdirAll(opts.directory(), 0755); err != nil {
			return nil, err
		}
	}

	var artifacts []Artifact
	for i := range c.Assets {
		a, err := r.Export(&c.Assets[i], opts)
		artifacts = append(artifacts, a...)
		if err != nil {
			return artifacts, err
		}
	}

	return artifacts, nil
}
