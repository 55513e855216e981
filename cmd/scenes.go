package cmd

import (
	"bytes"

	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	var buf bytes.Buffer
	buf.WriteString("\nBuilt-in scenes:\n\n")
	buf.WriteString("  cornell  closed box with colored side walls, two rotated blocks and a ceiling light\n")
	buf.WriteString("  default  open scene with a floor, a blue sphere, a mirror block and two lights\n")
	buf.WriteString("\nAny other scene name is treated as the path of a yaml scene file.\n")

	logger.Notice(buf.String())
	return nil
}
