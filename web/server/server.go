package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server serves renders of built-in and file scenes over HTTP
type Server struct {
	port      int
	cfg       config.Config
	scenesDir string
	logger    *log.Logger
}

// NewServer creates a new web server
func NewServer(port int, cfg config.Config, scenesDir string, logger *log.Logger) *Server {
	return &Server{
		port:      port,
		cfg:       cfg,
		scenesDir: scenesDir,
		logger:    logger,
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string        // Scene id, built in or a file under the scenes directory
	Width  int           // Optional resolution override, 0 keeps the scene's
	Height int           // Optional resolution override, 0 keeps the scene's
	Format output.Format // Encoding of the returned image
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render/stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start serves until ctx is done
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("starting web server", "addr", fmt.Sprintf("http://localhost:%d", s.port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleRender renders a scene and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req, s.warnLogger())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	framebuffer, stats, err := s.render(r.Context(), sceneObj, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Render error: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, framebuffer, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("X-Render-Id", stats.RenderID.String())
	w.Header().Set("X-Render-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, 2000); err != nil {
		return nil, err
	}

	req.Format = output.FormatPNG
	if f := query.Get("format"); f != "" {
		if req.Format, err = output.ParseFormat(f); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene resolves the requested scene and applies resolution
// overrides. Scene files are only looked up by bare name inside the
// scenes directory.
func (s *Server) createScene(req *RenderRequest, logger core.Logger) (*scene.Scene, error) {
	sceneObj, ok := scene.NewBuiltinScene(req.Scene)
	if !ok {
		if strings.ContainsAny(req.Scene, `/\`) || strings.Contains(req.Scene, "..") {
			return nil, fmt.Errorf("invalid scene name: %s", req.Scene)
		}

		path, found := s.findSceneFile(req.Scene)
		if !found {
			return nil, fmt.Errorf("unknown scene: %s", req.Scene)
		}

		var err error
		sceneObj, err = loaders.LoadScene(path, loaders.Options{
			Limits: s.cfg.SceneLimits(),
			Logger: logger,
		})
		if err != nil {
			return nil, err
		}
	}

	if req.Width > 0 {
		sceneObj.Resolution.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.Resolution.Height = req.Height
	}
	return sceneObj, nil
}

func (s *Server) findSceneFile(name string) (string, bool) {
	scenes, err := scene.ListSceneFiles(s.scenesDir)
	if err != nil {
		return "", false
	}
	for _, info := range scenes {
		if info.ID == name {
			return filepath.Clean(info.FilePath), true
		}
	}
	return "", false
}

// render traces a scene with the configured integrator settings
func (s *Server) render(ctx context.Context, sceneObj *scene.Scene, logger core.Logger) (*renderer.Framebuffer, renderer.RenderStats, error) {
	whitted := integrator.NewWhittedIntegrator(sceneObj, integrator.WhittedConfig{
		MaxReflections: s.cfg.Render.MaxReflections,
	})
	raytracer := renderer.NewRaytracer(sceneObj, whitted, renderer.Config{
		NumWorkers: s.cfg.Render.Workers,
	}, logger)
	return raytracer.Render(ctx)
}

func (s *Server) warnLogger() core.Logger {
	return NewWebLogger("warning", nil, s.logger)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
