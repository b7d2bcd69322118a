package loaders

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// tomlScene mirrors the TOML scene layout:
//
//	output = "out.ppm"
//	background = [0.2, 0.2, 0.2]
//	ambient = [0.1, 0.1, 0.1]
//
//	[viewport]
//	near = 1.0
//	left = -1.0
//	...
//
//	[resolution]
//	width = 600
//	height = 600
//
//	[[spheres]]
//	id = "s1"
//	position = [0, 0, -10]
//	...
type tomlScene struct {
	Output     string         `toml:"output"`
	Background [3]float64     `toml:"background"`
	Ambient    [3]float64     `toml:"ambient"`
	Viewport   tomlViewport   `toml:"viewport"`
	Resolution tomlResolution `toml:"resolution"`
	Spheres    []tomlSphere   `toml:"spheres"`
	Lights     []tomlLight    `toml:"lights"`
}

type tomlViewport struct {
	Near   float64 `toml:"near"`
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
}

type tomlResolution struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type tomlSphere struct {
	ID         string     `toml:"id"`
	Position   [3]float64 `toml:"position"`
	Scale      [3]float64 `toml:"scale"`
	Color      [3]float64 `toml:"color"`
	Ambient    float64    `toml:"ambient"`
	Diffuse    float64    `toml:"diffuse"`
	Specular   float64    `toml:"specular"`
	Reflective float64    `toml:"reflective"`
	Exponent   float64    `toml:"exponent"`
}

type tomlLight struct {
	ID       string     `toml:"id"`
	Position [3]float64 `toml:"position"`
	Color    [3]float64 `toml:"color"`
}

// ParseTOMLScene parses a TOML scene from an io.Reader.
// Unknown keys are rejected so typos do not silently produce an empty scene.
func ParseTOMLScene(reader io.Reader, opts Options) (*scene.Scene, error) {
	var doc tomlScene
	decoder := toml.NewDecoder(reader).DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding TOML scene: %w", err)
	}

	builder := scene.NewBuilder(opts.Limits, opts.Logger)
	builder.SetViewport(scene.Viewport{
		Left:   doc.Viewport.Left,
		Right:  doc.Viewport.Right,
		Top:    doc.Viewport.Top,
		Bottom: doc.Viewport.Bottom,
		Near:   doc.Viewport.Near,
	})
	builder.SetResolution(doc.Resolution.Width, doc.Resolution.Height)
	builder.SetBackground(color3(doc.Background))
	builder.SetAmbient(color3(doc.Ambient))
	builder.SetOutput(doc.Output)

	for i, s := range doc.Spheres {
		if builder.SphereFull() {
			builder.DropSphere(s.ID)
			continue
		}
		sphere, err := geometry.NewSphere(s.ID,
			core.NewPoint(s.Position[0], s.Position[1], s.Position[2]),
			core.NewDirection(s.Scale[0], s.Scale[1], s.Scale[2]),
			color3(s.Color),
			geometry.Material{
				Ambient:          s.Ambient,
				Diffuse:          s.Diffuse,
				Specular:         s.Specular,
				Reflective:       s.Reflective,
				SpecularExponent: s.Exponent,
			})
		if err != nil {
			return nil, fmt.Errorf("spheres[%d]: %w", i, err)
		}
		builder.AddSphere(sphere)
	}

	for _, l := range doc.Lights {
		if builder.LightFull() {
			builder.DropLight(l.ID)
			continue
		}
		builder.AddLight(lights.NewPointLight(l.ID,
			core.NewPoint(l.Position[0], l.Position[1], l.Position[2]),
			color3(l.Color)))
	}

	return builder.Build()
}

func color3(c [3]float64) core.Vec4 {
	return core.NewColor(c[0], c[1], c[2])
}
