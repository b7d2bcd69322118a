package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight emits from a single position with no distance falloff
type PointLight struct {
	ID       string
	Position core.Vec4 // W=1
	Color    core.Vec4 // may exceed 1
}

// NewPointLight creates a new point light
func NewPointLight(id string, position, color core.Vec4) *PointLight {
	return &PointLight{
		ID:       id,
		Position: position.WithW(1),
		Color:    color,
	}
}

// Type implements Light
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// ShadowRay implements Light
func (pl *PointLight) ShadowRay(point core.Vec4, reflectionLevel int) core.Ray {
	direction := pl.Position.Subtract(point).Normalize()
	return core.NewRayAtLevel(point, direction, reflectionLevel)
}

// Intensity implements Light
func (pl *PointLight) Intensity() core.Vec4 {
	return pl.Color
}
