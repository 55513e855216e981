package main

import (
	"os"

	"github.com/happy737/spectral-raytracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "spectral-raytracer"
	app.Usage = "render scenes with a progressive spectral path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene",
			Description: `
Render a built-in scene or a yaml scene file with the progressive path
tracer. Every frame jitters the primary rays with a low-discrepancy
sequence and is blended into the running average, so the image sharpens
the longer the render runs. The final average is written out as a png.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 400,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "frames",
					Value: 100,
					Usage: "number of frames to accumulate",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: 30,
					Usage: "ray bounce budget",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = number of CPUs)",
				},
				cli.IntFlag{
					Name:  "samples",
					Value: 40,
					Usage: "spectral samples per distribution (multiple of 8, at most 128)",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "cornell",
					Usage: "built-in scene name or path to a yaml scene file",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.Render,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "spectrum",
			Usage: "print a spectral distribution",
			Description: `
Print the sample values, total radiance and linear rgb projection of one
of the built-in spectral distributions.`,
			ArgsUsage: "solar|white|red|green|blue|temperature:<kelvin>",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "samples",
					Value: 40,
					Usage: "spectral samples per distribution (multiple of 8, at most 128)",
				},
			},
			Action: cmd.ShowSpectrum,
		},
	}

	app.Run(os.Args)
}
