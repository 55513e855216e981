package renderer

import "time"

// RenderStats sums up a finished render
type RenderStats struct {
	FramesRendered int           // frames completed and delivered
	RowsRendered   int           // row tasks completed across all frames
	Elapsed        time.Duration // wall clock time of the whole render
	Aborted        bool          // true when the context was cancelled early
}

// PixelsRendered reports the total pixel samples taken, derived from the
// completed rows so partial frames count what was actually traced.
func (s RenderStats) PixelsRendered(width int) int {
	return s.RowsRendered * width
}
