package main

import (
	"errors"
	"log"
	"os"

	"github.com/bodgit/pixelart"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "pixelart"
	app.Usage = "Render an image as pixel art on a 256 color terminal"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    "path to input image",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "size",
			Aliases:  []string{"s"},
			Usage:    "starting pixel size",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "sampling",
			Value: pixelart.SamplingFlat.String(),
			Usage: "downsampling method: flat, block or smooth",
		},
		&cli.IntFlag{
			Name:  "colors",
			Usage: "limit each frame to this many colors (at most 256), 0 for no limit",
		},
		&cli.BoolFlag{
			Name:  "reset",
			Usage: "reset the terminal color after each frame",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.Int("size") < 1 {
			return cli.Exit(errors.New("size must be a positive integer"), 1)
		}

		if c.Int("colors") < 0 {
			return cli.Exit(errors.New("colors must not be negative"), 1)
		}

		if c.Int("colors") > 256 {
			return cli.Exit(errors.New("colors must not be more than 256"), 1)
		}

		sampling, err := pixelart.ParseSampling(c.String("sampling"))
		if err != nil {
			return cli.Exit(err, 1)
		}

		logger := newLogger(c.App.ErrWriter, c.Bool("verbose"))

		p := pixelart.New(logger, &pixelart.Options{
			Sampling: sampling,
			Colors:   c.Int("colors"),
			Reset:    c.Bool("reset"),
		})

		if err := p.Run(c.App.Writer, c.String("input"), c.Int("size")); err != nil {
			return cli.Exit(err, 1)
		}

		return nil
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
