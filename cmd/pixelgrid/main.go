package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bodgit/pixelgrid"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// expandSizes rewrites each run of bare integers following --sizes into
// repeated --sizes flags, so "--sizes 48 96 --dry-run" parses as a list
// followed by further flags
func expandSizes(args []string) []string {
	out := make([]string, 0, len(args))
	inSizes := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if inSizes {
			if _, err := strconv.Atoi(arg); err == nil {
				out = append(out, "--sizes", arg)
				continue
			}
			inSizes = false
		}
		out = append(out, arg)
		switch {
		case arg == "--sizes" || arg == "-sizes":
			if i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
			inSizes = true
		case strings.HasPrefix(arg, "--sizes=") || strings.HasPrefix(arg, "-sizes="):
			inSizes = true
		}
	}
	return out
}

func runApp(app *cli.App, args []string) error {
	return app.Run(expandSizes(args))
}

func run(c *cli.Context) error {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}

	if c.NArg() > 0 {
		return cli.Exit(fmt.Errorf("unexpected argument %q", c.Args().First()), 2)
	}

	var (
		catalog *pixelgrid.Catalog
		err     error
	)
	if file := c.String("catalog"); file != "" {
		catalog, err = pixelgrid.LoadCatalog(file)
	} else {
		catalog, err = pixelgrid.DefaultCatalog()
	}
	if err != nil {
		return cli.Exit(err, 1)
	}

	r := pixelgrid.New(c.App.Writer, logger)

	if _, err := r.Run(catalog, pixelgrid.Options{
		OutputDir:   c.Path("output-dir"),
		Sizes:       c.IntSlice("sizes"),
		IncludeBase: c.Bool("include-base"),
		DryRun:      c.Bool("dry-run"),
		Indexed:     c.Bool("indexed"),
	}); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "pixelgrid"
	app.Usage = "Render ASCII-art sprite grids to PNG"
	app.Description = "Rasterizes every asset in the catalog and writes nearest-neighbour scaled PNGs of each."
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.PathFlag{
			Name:  "output-dir",
			Value: pixelgrid.DefaultOutputDir,
			Usage: "directory to store rendered PNGs",
		},
		&cli.IntSliceFlag{
			Name:  "sizes",
			Value: cli.NewIntSlice(pixelgrid.DefaultSizes...),
			Usage: "square resolutions to export",
		},
		&cli.BoolFlag{
			Name:  "include-base",
			Usage: "also save the unscaled base grids",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "list the files that would be generated without writing them",
		},
		&cli.PathFlag{
			Name:  "catalog",
			Usage: "read assets from a YAML catalog instead of the built-in one",
		},
		&cli.BoolFlag{
			Name:  "indexed",
			Usage: "write paletted PNGs",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = run

	return app
}

func main() {
	if err := runApp(newApp(), os.Args); err != nil {
		log.Fatal(err)
	}
}
