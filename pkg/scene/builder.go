package scene

import (
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Limits caps how many entities a scene accepts
type Limits struct {
	MaxSpheres int
	MaxLights  int
}

// DefaultLimits returns the classic five spheres and five lights
func DefaultLimits() Limits {
	return Limits{
		MaxSpheres: 5,
		MaxLights:  5,
	}
}

// Builder assembles a Scene. Entities past the configured limits are
// dropped with a warning rather than failing the load.
type Builder struct {
	scene     Scene
	limits    Limits
	logger    core.Logger
	truncated int
}

// NewBuilder creates a builder with the given limits.
// A nil logger discards truncation warnings.
func NewBuilder(limits Limits, logger core.Logger) *Builder {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Builder{
		scene: Scene{
			Spheres: make([]*geometry.Sphere, 0, limits.MaxSpheres),
			Lights:  make([]lights.Light, 0, limits.MaxLights),
		},
		limits: limits,
		logger: logger,
	}
}

// SetViewport sets the image plane
func (b *Builder) SetViewport(v Viewport) *Builder {
	b.scene.Viewport = v
	return b
}

// SetResolution sets the output size
func (b *Builder) SetResolution(width, height int) *Builder {
	b.scene.Resolution = Resolution{Width: width, Height: height}
	return b
}

// SetBackground sets the color of primary misses
func (b *Builder) SetBackground(c core.Vec4) *Builder {
	b.scene.Background = c
	return b
}

// SetAmbient sets the ambient intensity
func (b *Builder) SetAmbient(c core.Vec4) *Builder {
	b.scene.Ambient = c
	return b
}

// SetOutput sets the requested output file name
func (b *Builder) SetOutput(name string) *Builder {
	b.scene.Output = name
	return b
}

// SphereFull reports whether the sphere limit has been reached
func (b *Builder) SphereFull() bool {
	return len(b.scene.Spheres) >= b.limits.MaxSpheres
}

// LightFull reports whether the light limit has been reached
func (b *Builder) LightFull() bool {
	return len(b.scene.Lights) >= b.limits.MaxLights
}

// DropSphere records a sphere ignored because the limit was reached.
// Loaders call it before parsing an entry they cannot keep.
func (b *Builder) DropSphere(id string) {
	b.truncated++
	b.logger.Printf("scene: sphere %q dropped, limit of %d spheres reached\n", id, b.limits.MaxSpheres)
}

// DropLight records a light ignored because the limit was reached
func (b *Builder) DropLight(id string) {
	b.truncated++
	b.logger.Printf("scene: light %q dropped, limit of %d lights reached\n", id, b.limits.MaxLights)
}

// AddSphere appends a sphere and reports whether it was kept
func (b *Builder) AddSphere(sphere *geometry.Sphere) bool {
	if b.SphereFull() {
		b.DropSphere(sphere.ID)
		return false
	}
	b.scene.Spheres = append(b.scene.Spheres, sphere)
	return true
}

// AddLight appends a point light and reports whether it was kept
func (b *Builder) AddLight(light *lights.PointLight) bool {
	if b.LightFull() {
		b.DropLight(light.ID)
		return false
	}
	b.scene.Lights = append(b.scene.Lights, light)
	return true
}

// Truncated returns how many entities were dropped so far
func (b *Builder) Truncated() int {
	return b.truncated
}

// Build validates and returns the scene. The returned scene does not
// share entity slices with the builder.
func (b *Builder) Build() (*Scene, error) {
	s := b.scene
	s.Spheres = slices.Clone(b.scene.Spheres)
	s.Lights = slices.Clone(b.scene.Lights)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
