package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RowTask asks a worker to trace one row, counted up from the bottom
type RowTask struct {
	Row int
}

// RowResult reports a finished row
type RowResult struct {
	Row    int
	Pixels int
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker traces rows into the shared framebuffer
type Worker struct {
	ID          int
	integrator  integrator.Integrator
	camera      *Camera
	framebuffer *Framebuffer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// All workers share the integrator, which must be safe for concurrent use.
func NewWorkerPool(integ integrator.Integrator, camera *Camera, framebuffer *Framebuffer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, framebuffer.Height),   // Buffer for every row
		resultQueue: make(chan RowResult, framebuffer.Height), // Workers never block on results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			integrator:  integ,
			camera:      camera,
			framebuffer: framebuffer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue, waits for the workers and closes the
// result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// Results returns the channel of finished rows. It is closed by Stop.
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Rows never overlap, so writes to the framebuffer need no lock
		pixels := renderRow(w.integrator, w.camera, w.framebuffer, task.Row)
		w.resultQueue <- RowResult{Row: task.Row, Pixels: pixels}
	}
}
