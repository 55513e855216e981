package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"

	"github.com/happy737/spectral-raytracer/pkg/renderer"
	"github.com/happy737/spectral-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a scene progressively and write the accumulated frame as a png.
func Render(ctx *cli.Context) error {
	setupLogging(ctx)

	samples := ctx.Int("samples")
	if err := validateSampleCount(samples); err != nil {
		return err
	}

	sc, err := loadScene(ctx.String("scene"), samples)
	if err != nil {
		return err
	}

	config := renderer.Config{
		Width:      ctx.Int("width"),
		Height:     ctx.Int("height"),
		Frames:     ctx.Int("frames"),
		MaxBounces: ctx.Int("bounces"),
		NumWorkers: ctx.Int("workers"),
	}

	coordinator, err := renderer.NewCoordinator(sc, config, &loggerAdapter{logger})
	if err != nil {
		return err
	}

	// Ctrl-C stops the render on the next frame boundary; the frames
	// blended so far are still written out.
	renderCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	frameChan, errChan := coordinator.Render(renderCtx)

	var final *image.RGBA
	for result := range frameChan {
		logger.Infof("frame %d/%d done (%.0f %%, %v elapsed)",
			result.FrameNumber, config.Frames, result.Progress*100, result.Elapsed)
		final = result.Image
	}
	if err := <-errChan; err != nil {
		return err
	}
	if final == nil {
		return fmt.Errorf("render aborted before the first frame completed")
	}

	if err := writePNG(ctx.String("out"), final); err != nil {
		return err
	}
	logger.Noticef("wrote %s", ctx.String("out"))

	displayRenderStats(coordinator.Stats(), config)
	return nil
}

func validateSampleCount(samples int) error {
	if samples < 2 || samples > 128 || samples%8 != 0 {
		return fmt.Errorf("samples must be a multiple of 8 between 8 and 128, got %d", samples)
	}
	return nil
}

func loadScene(name string, samples int) (*scene.Scene, error) {
	switch name {
	case "cornell":
		return scene.NewCornellScene(samples), nil
	case "default":
		return scene.NewDefaultScene(samples), nil
	default:
		return scene.Load(name, samples)
	}
}

func writePNG(path string, img *image.RGBA) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}

func displayRenderStats(stats renderer.RenderStats, config renderer.Config) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Rows", "Pixels", "Render time", "Aborted"})
	table.Append([]string{
		fmt.Sprintf("%d / %d", stats.FramesRendered, config.Frames),
		fmt.Sprintf("%d", stats.RowsRendered),
		fmt.Sprintf("%d", stats.PixelsRendered(config.Width)),
		fmt.Sprintf("%s", stats.Elapsed),
		fmt.Sprintf("%t", stats.Aborted),
	})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
