package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// builtinSphere describes a sphere of a built-in scene
type builtinSphere struct {
	id       string
	position core.Vec4
	scale    core.Vec4
	color    core.Vec4
	material geometry.Material
}

// NewDefaultScene creates three shaded spheres in front of the camera with
// a white key light and a dim fill light
func NewDefaultScene() *Scene {
	return buildBuiltin(
		[]builtinSphere{
			{"red", core.NewPoint(4, 0, -10), core.NewDirection(2, 2, 2), core.NewColor(1, 0, 0),
				geometry.Material{Ambient: 0.2, Diffuse: 1, Specular: 0.5, Reflective: 0, SpecularExponent: 50}},
			{"green", core.NewPoint(0, 0, -10), core.NewDirection(1.5, 2, 1), core.NewColor(0, 1, 0),
				geometry.Material{Ambient: 0.2, Diffuse: 1, Specular: 0.5, Reflective: 0.2, SpecularExponent: 20}},
			{"blue", core.NewPoint(-4, 0, -10), core.NewDirection(2, 1, 2), core.NewColor(0, 0, 1),
				geometry.Material{Ambient: 0.2, Diffuse: 1, Specular: 0.5, Reflective: 0, SpecularExponent: 50}},
		},
		[]*lights.PointLight{
			lights.NewPointLight("key", core.NewPoint(0, 10, 0), core.NewColor(0.9, 0.9, 0.9)),
			lights.NewPointLight("fill", core.NewPoint(10, -10, 0), core.NewColor(0.3, 0.3, 0.3)),
		},
		core.NewColor(0, 0, 0),
		core.NewColor(0.2, 0.2, 0.2),
	)
}

// NewMirrorsScene creates two highly reflective spheres facing each other
// so that every pixel on them exercises the full reflection depth
func NewMirrorsScene() *Scene {
	return buildBuiltin(
		[]builtinSphere{
			{"left", core.NewPoint(-2.5, 0, -10), core.NewDirection(2, 2, 2), core.NewColor(0.9, 0.9, 0.9),
				geometry.Material{Ambient: 0.1, Diffuse: 0.3, Specular: 0.8, Reflective: 0.9, SpecularExponent: 100}},
			{"right", core.NewPoint(2.5, 0, -10), core.NewDirection(2, 2, 2), core.NewColor(0.9, 0.8, 0.6),
				geometry.Material{Ambient: 0.1, Diffuse: 0.3, Specular: 0.8, Reflective: 0.9, SpecularExponent: 100}},
			{"floor", core.NewPoint(0, -1004, -10), core.NewDirection(1000, 1000, 1000), core.NewColor(0.5, 0.5, 0.5),
				geometry.Material{Ambient: 0.2, Diffuse: 0.8, Specular: 0, Reflective: 0.3, SpecularExponent: 1}},
		},
		[]*lights.PointLight{
			lights.NewPointLight("sun", core.NewPoint(0, 20, 5), core.NewColor(1.2, 1.2, 1.2)),
		},
		core.NewColor(0.1, 0.2, 0.3),
		core.NewColor(0.3, 0.3, 0.3),
	)
}

func buildBuiltin(spheres []builtinSphere, pointLights []*lights.PointLight, background, ambient core.Vec4) *Scene {
	b := NewBuilder(DefaultLimits(), nil).
		SetViewport(Viewport{Left: -1, Right: 1, Top: 1, Bottom: -1, Near: 1}).
		SetResolution(600, 600).
		SetBackground(background).
		SetAmbient(ambient)

	for _, s := range spheres {
		sphere, err := geometry.NewSphere(s.id, s.position, s.scale, s.color, s.material)
		if err != nil {
			panic(err) // built-in scenes are fixed data
		}
		b.AddSphere(sphere)
	}
	for _, l := range pointLights {
		b.AddLight(l)
	}

	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
