package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light is a source the tracer can cast shadow rays toward
type Light interface {
	Type() LightType

	// ShadowRay returns the ray FROM a shading point TO the light.
	// The ray carries the reflection level of the surface ray that
	// produced the shading point.
	ShadowRay(point core.Vec4, reflectionLevel int) core.Ray

	// Intensity returns the unclamped light color
	Intensity() core.Vec4
}
