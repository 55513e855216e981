package cmd

import (
	"github.com/happy737/spectral-raytracer/log"
	"github.com/urfave/cli"
)

var logger = log.New("spectral-raytracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// loggerAdapter exposes the leveled logger through the Printf surface the
// renderer expects.
type loggerAdapter struct {
	logger log.Logger
}

func (a *loggerAdapter) Printf(format string, args ...interface{}) {
	a.logger.Noticef(format, args...)
}
