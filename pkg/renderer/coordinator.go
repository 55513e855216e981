package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/happy737/spectral-raytracer/pkg/scene"
	"github.com/happy737/spectral-raytracer/pkg/tracer"
)

// Logger is the minimal logging surface the coordinator needs
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout
type DefaultLogger struct{}

// Printf formats and prints to stdout
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// Config contains the per-render request parameters
type Config struct {
	Width      int // image width in pixels
	Height     int // image height in pixels
	Frames     int // number of frames blended into the final image
	MaxBounces int // ray bounce budget per pixel sample
	NumWorkers int // parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		Frames:     100,
		MaxBounces: 30,
		NumWorkers: 0,
	}
}

// Validate rejects request parameters the render loop cannot work with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("renderer: image dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("renderer: frame count must be positive, got %d", c.Frames)
	}
	if c.MaxBounces <= 0 {
		return fmt.Errorf("renderer: bounce budget must be positive, got %d", c.MaxBounces)
	}
	return nil
}

// FrameResult is the event emitted after every completed frame
type FrameResult struct {
	FrameNumber int           // 1-based frame index
	Image       *image.RGBA   // accumulated image after this frame
	Progress    float64       // fraction of requested frames completed, in [0, 1]
	Elapsed     time.Duration // time since the render started
	IsLast      bool          // true on the final event of the render
}

// Coordinator drives one render: it partitions every frame into row tasks,
// blends completed rows into the progressive accumulator and emits a
// FrameResult per frame. Scene and configuration are frozen at
// construction; a new render request needs a new coordinator.
type Coordinator struct {
	scene  *scene.Scene
	config Config
	accum  *FloatImage
	pool   *WorkerPool
	logger Logger

	stats RenderStats
}

// NewCoordinator validates the render request and assembles the worker
// pool. All precondition failures surface here, before any work begins.
func NewCoordinator(sc *scene.Scene, config Config, logger Logger) (*Coordinator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	camera, err := tracer.NewCamera(sc.Camera, config.Width, config.Height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = &DefaultLogger{}
	}

	return &Coordinator{
		scene:  sc,
		config: config,
		accum:  NewFloatImage(config.Width, config.Height),
		pool:   NewWorkerPool(sc, camera, config.Width, config.Height, config.MaxBounces, config.Frames, config.NumWorkers),
		logger: logger,
	}, nil
}

// Render runs the frame loop on its own goroutine and returns the event
// channels. The frame channel delivers one result per completed frame and
// is closed at end of stream; the error channel delivers at most one
// error. Cancelling the context stops the render on the next frame
// boundary; the final bookkeeping (stats, elapsed time) still runs so the
// caller never sees a render stuck "in progress".
func (c *Coordinator) Render(ctx context.Context) (<-chan FrameResult, <-chan error) {
	frameChan := make(chan FrameResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(frameChan)
		defer close(errChan)
		defer c.pool.Stop()

		c.logger.Printf("Rendering %dx%d, %d frames, %d bounces on %d workers\n",
			c.config.Width, c.config.Height, c.config.Frames, c.config.MaxBounces, c.pool.NumWorkers())

		startTime := time.Now()
		defer func() {
			c.stats.Elapsed = time.Since(startTime)
			c.logger.Printf("Render finished after %v (%d of %d frames)\n",
				c.stats.Elapsed, c.stats.FramesRendered, c.config.Frames)
		}()

		c.pool.Start()

		for frame := 0; frame < c.config.Frames; frame++ {
			if err := c.renderFrame(frame); err != nil {
				errChan <- err
				return
			}
			c.stats.FramesRendered++

			isLast := frame == c.config.Frames-1
			result := FrameResult{
				FrameNumber: frame + 1,
				Image:       c.accum.ToRGBA(),
				Progress:    float64(frame+1) / float64(c.config.Frames),
				Elapsed:     time.Since(startTime),
				IsLast:      isLast,
			}

			// An abort lands on the frame boundary: the frame that just
			// finished is still delivered, marked as the last one.
			select {
			case <-ctx.Done():
				c.stats.Aborted = true
				result.IsLast = true
				frameChan <- result
				c.logger.Printf("Render aborted after frame %d\n", frame+1)
				return
			default:
			}

			frameChan <- result
		}
	}()

	return frameChan, errChan
}

// renderFrame submits one task per row and blends the completed rows into
// the accumulator with weight 1/(frame+1), so the accumulated image
// converges to the unweighted average over all frames rendered so far.
func (c *Coordinator) renderFrame(frame int) error {
	for y := 0; y < c.config.Height; y++ {
		c.pool.Submit(rowTask{Frame: frame, Row: y})
	}

	weight := 1.0 / float32(frame+1)
	for received := 0; received < c.config.Height; received++ {
		result, ok := c.pool.Result()
		if !ok {
			return fmt.Errorf("renderer: worker pool closed with %d rows outstanding in frame %d",
				c.config.Height-received, frame+1)
		}
		if result.Err != nil {
			return result.Err
		}
		if err := c.accum.BlendRow(result.Pixels, result.Row, weight); err != nil {
			return err
		}
		c.stats.RowsRendered++
	}
	return nil
}

// Stats returns the bookkeeping of a finished render. It must only be
// called after the frame channel has closed.
func (c *Coordinator) Stats() RenderStats {
	return c.stats
}
