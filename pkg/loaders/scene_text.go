package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Options controls scene loading
type Options struct {
	Limits scene.Limits
	Logger core.Logger // receives truncation warnings, may be nil
}

// DefaultOptions returns the default limits and no logger
func DefaultOptions() Options {
	return Options{Limits: scene.DefaultLimits()}
}

// SceneParser encapsulates the state and logic for parsing text scene files.
// Each non-empty line is one statement:
//
//	NEAR n | LEFT l | RIGHT r | TOP t | BOTTOM b
//	RES width height
//	SPHERE id x y z sx sy sz r g b ka kd ks kr n
//	LIGHT id x y z r g b
//	BACK r g b | AMBIENT r g b
//	OUTPUT filename
//
// Lines starting with '#' and unknown keywords are ignored.
type SceneParser struct {
	builder  *scene.Builder
	viewport scene.Viewport
	lineNo   int
}

// NewSceneParser creates a new parser instance
func NewSceneParser(opts Options) *SceneParser {
	return &SceneParser{
		builder: scene.NewBuilder(opts.Limits, opts.Logger),
	}
}

// ParseScene parses a text scene from an io.Reader
func ParseScene(reader io.Reader, opts Options) (*scene.Scene, error) {
	parser := NewSceneParser(opts)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		parser.lineNo++
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", parser.lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return parser.finalize()
}

// processLine processes a single line of input
func (p *SceneParser) processLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	keyword, args := fields[0], fields[1:]
	switch keyword {
	case "NEAR":
		return parseFloatInto(keyword, args, &p.viewport.Near)
	case "LEFT":
		return parseFloatInto(keyword, args, &p.viewport.Left)
	case "RIGHT":
		return parseFloatInto(keyword, args, &p.viewport.Right)
	case "TOP":
		return parseFloatInto(keyword, args, &p.viewport.Top)
	case "BOTTOM":
		return parseFloatInto(keyword, args, &p.viewport.Bottom)
	case "RES":
		return p.processResolution(args)
	case "SPHERE":
		return p.processSphere(args)
	case "LIGHT":
		return p.processLight(args)
	case "BACK":
		c, err := parseColor(keyword, args)
		if err != nil {
			return err
		}
		p.builder.SetBackground(c)
	case "AMBIENT":
		c, err := parseColor(keyword, args)
		if err != nil {
			return err
		}
		p.builder.SetAmbient(c)
	case "OUTPUT":
		if len(args) < 1 {
			return fmt.Errorf("OUTPUT expects a file name")
		}
		p.builder.SetOutput(args[0])
	}
	return nil
}

// processResolution handles RES width height. Values are truncated to
// integers so "RES 600.0 400.0" is accepted.
func (p *SceneParser) processResolution(args []string) error {
	values, err := parseFloats("RES", args, 2)
	if err != nil {
		return err
	}
	p.builder.SetResolution(int(values[0]), int(values[1]))
	return nil
}

// processSphere handles SPHERE id x y z sx sy sz r g b ka kd ks kr n.
// Once the sphere limit is reached further lines are dropped unparsed.
func (p *SceneParser) processSphere(args []string) error {
	id := firstArg(args)
	if p.builder.SphereFull() {
		p.builder.DropSphere(id)
		return nil
	}
	if len(args) < 1 {
		return fmt.Errorf("SPHERE expects an id")
	}
	values, err := parseFloats("SPHERE "+id, args[1:], 14)
	if err != nil {
		return err
	}

	sphere, err := geometry.NewSphere(id,
		core.NewPoint(values[0], values[1], values[2]),
		core.NewDirection(values[3], values[4], values[5]),
		core.NewColor(values[6], values[7], values[8]),
		geometry.Material{
			Ambient:          values[9],
			Diffuse:          values[10],
			Specular:         values[11],
			Reflective:       values[12],
			SpecularExponent: values[13],
		})
	if err != nil {
		return err
	}
	p.builder.AddSphere(sphere)
	return nil
}

// processLight handles LIGHT id x y z r g b.
// Once the light limit is reached further lines are dropped unparsed.
func (p *SceneParser) processLight(args []string) error {
	id := firstArg(args)
	if p.builder.LightFull() {
		p.builder.DropLight(id)
		return nil
	}
	if len(args) < 1 {
		return fmt.Errorf("LIGHT expects an id")
	}
	values, err := parseFloats("LIGHT "+id, args[1:], 6)
	if err != nil {
		return err
	}

	p.builder.AddLight(lights.NewPointLight(id,
		core.NewPoint(values[0], values[1], values[2]),
		core.NewColor(values[3], values[4], values[5])))
	return nil
}

// finalize applies the accumulated viewport and builds the scene
func (p *SceneParser) finalize() (*scene.Scene, error) {
	p.builder.SetViewport(p.viewport)
	return p.builder.Build()
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func parseFloatInto(keyword string, args []string, dst *float64) error {
	values, err := parseFloats(keyword, args, 1)
	if err != nil {
		return err
	}
	*dst = values[0]
	return nil
}

func parseColor(keyword string, args []string) (core.Vec4, error) {
	values, err := parseFloats(keyword, args, 3)
	if err != nil {
		return core.Vec4{}, err
	}
	return core.NewColor(values[0], values[1], values[2]), nil
}

// parseFloats parses the first n arguments. Extra arguments are ignored.
func parseFloats(context string, args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("%s expects %d values, got %d", context, n, len(args))
	}
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number %q", context, args[i])
		}
		values[i] = v
	}
	return values, nil
}
