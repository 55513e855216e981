package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/happy737/spectral-raytracer/pkg/spectral"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Print the sample values, radiance and rgb projection of a built-in
// spectral distribution.
func ShowSpectrum(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing spectrum name argument")
	}

	samples := ctx.Int("samples")
	if err := validateSampleCount(samples); err != nil {
		return err
	}

	dist, err := buildSpectrum(ctx.Args().First(), samples)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Wavelength (nm)", "Intensity"})
	wavelengths := dist.Wavelengths()
	for i, value := range dist.Values() {
		table.Append([]string{
			fmt.Sprintf("%.1f", wavelengths[i]),
			fmt.Sprintf("%g", value),
		})
	}
	table.Render()

	r, g, b := dist.ToRGB()
	buf.WriteString(fmt.Sprintf("\nRadiance   %g\n", dist.Radiance()))
	buf.WriteString(fmt.Sprintf("Linear RGB (%g, %g, %g)\n", r, g, b))

	logger.Notice(buf.String())
	return nil
}

func buildSpectrum(name string, samples int) (spectral.Distribution, error) {
	lower := float32(spectral.VisibleLowerBound)
	upper := float32(spectral.VisibleUpperBound)

	switch {
	case name == "solar":
		return spectral.NewSolar(lower, upper, samples, 1), nil
	case name == "white":
		return spectral.NewNormalizedWhite(lower, upper, samples), nil
	case name == "red":
		return spectral.NewBandRed(lower, upper, samples, 1), nil
	case name == "green":
		return spectral.NewBandGreen(lower, upper, samples, 1), nil
	case name == "blue":
		return spectral.NewBandBlue(lower, upper, samples, 1), nil
	case strings.HasPrefix(name, "temperature:"):
		kelvin, err := strconv.ParseFloat(strings.TrimPrefix(name, "temperature:"), 32)
		if err != nil || kelvin <= 0 {
			return spectral.Distribution{}, fmt.Errorf("invalid temperature %q", name)
		}
		return spectral.NewBlackbody(lower, upper, float32(kelvin), samples, 1), nil
	default:
		return spectral.Distribution{}, fmt.Errorf("unknown spectrum %q", name)
	}
}
