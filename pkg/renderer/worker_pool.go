package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/happy737/spectral-raytracer/pkg/scene"
	"github.com/happy737/spectral-raytracer/pkg/tracer"
)

// rowTask asks a worker to render every pixel of one image row for one
// frame.
type rowTask struct {
	Frame int
	Row   int
}

// rowResult carries a completed row back to the coordinator. A worker that
// panicked reports the panic through Err instead of vanishing, so the
// coordinator fails fast rather than waiting forever for a row that will
// never arrive.
type rowResult struct {
	Row    int
	Pixels []Pixel
	Err    error
}

// WorkerPool renders image rows on a bounded set of goroutines. The scene
// snapshot is shared read-only across all workers; each worker owns its
// tracer, and rows never overlap, so no locking is needed anywhere.
type WorkerPool struct {
	tasks      chan rowTask
	results    chan rowResult
	workers    []*worker
	numWorkers int
	wg         sync.WaitGroup
}

// worker renders rows from the shared task queue
type worker struct {
	id      int
	width   int
	tracer  *tracer.Tracer
	tasks   chan rowTask
	results chan rowResult
}

// NewWorkerPool creates a pool with the given number of workers, defaulting
// to the number of CPUs when numWorkers is not positive.
func NewWorkerPool(sc *scene.Scene, camera *tracer.Camera, width, height, maxBounces, frames, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		tasks:      make(chan rowTask, height),
		results:    make(chan rowResult, height),
		numWorkers: numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &worker{
			id:      i,
			width:   width,
			tracer:  tracer.New(sc, camera, maxBounces, frames),
			tasks:   wp.tasks,
			results: wp.results,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, w := range wp.workers {
		wp.wg.Add(1)
		go w.run(&wp.wg)
	}
}

// Stop shuts down all workers and waits for them to finish
func (wp *WorkerPool) Stop() {
	close(wp.tasks)
	wp.wg.Wait()
	close(wp.results)
}

// Submit queues one row task
func (wp *WorkerPool) Submit(task rowTask) {
	wp.tasks <- task
}

// Result retrieves the next completed row. ok is false once the pool has
// been stopped and drained.
func (wp *WorkerPool) Result() (rowResult, bool) {
	result, ok := <-wp.results
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.tasks {
		w.results <- w.renderRow(task)
	}
}

// renderRow traces every pixel of the row, converting the resulting
// radiance spectrum to linear RGB. Panics inside the tracer are converted
// to an error result.
func (w *worker) renderRow(task rowTask) (result rowResult) {
	defer func() {
		if r := recover(); r != nil {
			result = rowResult{Row: task.Row, Err: fmt.Errorf("renderer: worker %d panicked rendering row %d: %v", w.id, task.Row, r)}
		}
	}()

	pixels := make([]Pixel, w.width)
	for x := range pixels {
		radiance := w.tracer.TracePixel(x, task.Row, task.Frame)
		r, g, b := radiance.ToRGB()
		pixels[x] = Pixel{R: r, G: g, B: b, A: 1}
	}

	return rowResult{Row: task.Row, Pixels: pixels}
}
