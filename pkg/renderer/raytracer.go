package renderer

import (
	"context"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/google/uuid"
)

// Config contains renderer configuration
type Config struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0,
	}
}

// Raytracer drives the pixel loop: one primary ray per pixel, traced by
// the integrator and stored with the vertical flip applied
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(s *scene.Scene, integ integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:      s,
		integrator: integ,
		camera:     NewCamera(s.Viewport, s.Resolution),
		config:     config,
		logger:     logger,
	}
}

// Render traces every pixel in parallel. Each pixel reads only the
// immutable scene, so the result equals RenderSerial bit for bit.
// Cancelling ctx stops dispatching rows and returns ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	width, height := rt.scene.Resolution.Width, rt.scene.Resolution.Height
	framebuffer := NewFramebuffer(width, height)

	pool := NewWorkerPool(rt.integrator, rt.camera, framebuffer, rt.config.NumWorkers)
	stats := RenderStats{
		RenderID: uuid.New(),
		Workers:  pool.GetNumWorkers(),
	}
	rt.logger.Printf("render %s: %dx%d, %d spheres, %d lights, %d workers\n",
		stats.RenderID, width, height, len(rt.scene.Spheres), len(rt.scene.Lights), stats.Workers)

	startTime := time.Now()
	pool.Start()

	go func() {
		defer pool.Stop()
		for row := 0; row < height; row++ {
			select {
			case <-ctx.Done():
				return
			default:
			}
			pool.SubmitTask(RowTask{Row: row})
		}
	}()

	for result := range pool.Results() {
		stats.Rows++
		stats.TotalPixels += result.Pixels
	}
	stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil && stats.Rows < height {
		rt.logger.Printf("render %s: cancelled after %d of %d rows\n", stats.RenderID, stats.Rows, height)
		return nil, stats, err
	}

	rt.logger.Printf("render %s: completed in %v\n", stats.RenderID, stats.Duration)
	return framebuffer, stats, nil
}

// RenderSerial traces every pixel on the calling goroutine, bottom row
// first
func (rt *Raytracer) RenderSerial() *Framebuffer {
	framebuffer := NewFramebuffer(rt.scene.Resolution.Width, rt.scene.Resolution.Height)
	for row := 0; row < framebuffer.Height; row++ {
		renderRow(rt.integrator, rt.camera, framebuffer, row)
	}
	return framebuffer
}

// renderRow traces traced row iy and returns the number of pixels written
func renderRow(integ integrator.Integrator, camera *Camera, framebuffer *Framebuffer, iy int) int {
	for ix := 0; ix < framebuffer.Width; ix++ {
		color := integ.RayColor(camera.PrimaryRay(ix, iy))
		framebuffer.SetTraced(ix, iy, color)
	}
	return framebuffer.Width
}
