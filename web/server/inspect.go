package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit        bool                   `json:"hit"`
	SphereID   string                 `json:"sphereId,omitempty"`
	Point      [3]float64             `json:"point"`
	Normal     [3]float64             `json:"normal"`
	T          float64                `json:"t"`        // primary ray parameter
	Distance   float64                `json:"distance"` // world space, eye to hit point
	Internal   bool                   `json:"internal"`
	Color      [3]float64             `json:"color"` // traced, unclamped
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult is the primary ray of a pixel, its intersection and
// traced color
type InspectResult struct {
	Ray          core.Ray
	Intersection geometry.Intersection
	Color        core.Vec4
}

// inspectPixel casts the primary ray through image pixel (pixelX, pixelY),
// with pixelY counted from the top of the image as displayed
func inspectPixel(sceneObj *scene.Scene, maxReflections, pixelX, pixelY int) InspectResult {
	camera := renderer.NewCamera(sceneObj.Viewport, sceneObj.Resolution)
	ray := camera.PrimaryRay(pixelX, sceneObj.Resolution.Height-pixelY-1)

	whitted := integrator.NewWhittedIntegrator(sceneObj, integrator.WhittedConfig{MaxReflections: maxReflections})
	return InspectResult{
		Ray:          ray,
		Intersection: sceneObj.Intersect(ray),
		Color:        whitted.Trace(ray),
	}
}

// extractSphereInfo lists the geometry and material of a sphere
func extractSphereInfo(sphere *geometry.Sphere) map[string]interface{} {
	m := sphere.Material
	return map[string]interface{}{
		"position": vec3(sphere.Position),
		"scale":    vec3(sphere.Scale),
		"color":    hexColor(sphere.Color),
		"material": map[string]float64{
			"ambient":          m.Ambient,
			"diffuse":          m.Diffuse,
			"specular":         m.Specular,
			"reflective":       m.Reflective,
			"specularExponent": m.SpecularExponent,
		},
	}
}

func vec3(v core.Vec4) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec4) string {
	clamp := func(x float64) int {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 255
		}
		return int(x * 255)
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.X), clamp(c.Y), clamp(c.Z))
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req, s.warnLogger())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := sceneObj.Resolution
	if pixelX < 0 || pixelX >= res.Width || pixelY < 0 || pixelY >= res.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, s.cfg.Render.MaxReflections, pixelX, pixelY)
	hit := result.Intersection
	if !hit.Hit() {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: vec3(result.Color)})
		return
	}

	sphere := sceneObj.Sphere(hit.SphereIndex)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:        true,
		SphereID:   sphere.ID,
		Point:      vec3(hit.Point),
		Normal:     vec3(hit.Normal),
		T:          hit.D,
		Distance:   hit.Point.Subtract(result.Ray.Origin).Length(),
		Internal:   hit.Internal,
		Color:      vec3(result.Color),
		Properties: extractSphereInfo(sphere),
	})
}
