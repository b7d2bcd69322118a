package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedConfig contains tracer configuration
type WhittedConfig struct {
	MaxReflections int // rays at or above this level return black
}

// DefaultWhittedConfig returns the standard recursion bound
func DefaultWhittedConfig() WhittedConfig {
	return WhittedConfig{
		MaxReflections: core.MaxReflections,
	}
}

// WhittedIntegrator shades hits with Phong lighting and hard shadows and
// follows a single mirror ray per hit. It only reads the scene, so one
// instance can be shared by all render workers.
type WhittedIntegrator struct {
	scene  *scene.Scene
	config WhittedConfig
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(s *scene.Scene, config WhittedConfig) *WhittedIntegrator {
	if config.MaxReflections <= 0 {
		config.MaxReflections = core.MaxReflections
	}
	return &WhittedIntegrator{
		scene:  s,
		config: config,
	}
}

// RayColor implements Integrator
func (wi *WhittedIntegrator) RayColor(ray core.Ray) core.Vec4 {
	return wi.Trace(ray)
}

// Trace returns the color along a ray, recursing once per reflection
func (wi *WhittedIntegrator) Trace(ray core.Ray) core.Vec4 {
	if ray.ReflectionLevel >= wi.config.MaxReflections {
		return core.Vec4{}
	}

	hit := wi.scene.Intersect(ray)
	if !hit.Hit() {
		// Reflected rays that escape contribute nothing
		if ray.IsPrimary() {
			return wi.scene.Background
		}
		return core.Vec4{}
	}

	sphere := wi.scene.Sphere(hit.SphereIndex)

	color := sphere.Color.Multiply(sphere.Material.Ambient).MultiplyVec(wi.scene.Ambient)
	color = color.Add(wi.directLighting(ray, hit, sphere))

	reflected := reflectRay(ray, hit)
	color = color.Add(wi.Trace(reflected).Multiply(sphere.Material.Reflective))

	return color
}

// directLighting sums the diffuse and specular Phong terms of every
// unshadowed light. The ray direction is normalized before forming the
// half vector, so highlights on primary hits do not depend on the
// length of the non-unit primary direction.
func (wi *WhittedIntegrator) directLighting(ray core.Ray, hit geometry.Intersection, sphere *geometry.Sphere) core.Vec4 {
	var diffuse, specular core.Vec4
	view := ray.Direction.Normalize()

	for _, light := range wi.scene.Lights {
		shadowRay := light.ShadowRay(hit.Point, ray.ReflectionLevel)

		// Any hit blocks the light, even one beyond it
		if geometry.Occluded(shadowRay, wi.scene.Spheres) {
			continue
		}

		intensity := hit.Normal.Dot(shadowRay.Direction)
		if intensity <= 0 {
			continue
		}

		lightColor := light.Intensity()
		diffuse = diffuse.Add(lightColor.Multiply(intensity).MultiplyVec(sphere.Color))

		halfVector := shadowRay.Direction.Subtract(view).Normalize()
		specular = specular.Add(lightColor.Multiply(phongSpecular(hit.Normal.Dot(halfVector), sphere.Material.SpecularExponent)))
	}

	return diffuse.Multiply(sphere.Material.Diffuse).Add(specular.Multiply(sphere.Material.Specular))
}

// phongSpecular raises the half-vector cosine to the exponent, then cubes
// the result
func phongSpecular(cosine, exponent float64) float64 {
	return math.Pow(math.Pow(cosine, exponent), 3)
}

// reflectRay mirrors the incoming direction about the hit normal
func reflectRay(ray core.Ray, hit geometry.Intersection) core.Ray {
	d := ray.Direction
	n := hit.Normal
	direction := d.Subtract(n.Multiply(2 * n.Dot(d))).Normalize()
	return core.NewRayAtLevel(hit.Point, direction, ray.ReflectionLevel+1)
}
