package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// SSEEvent is one Server-Sent Event
type SSEEvent struct {
	Type string `json:"type"` // "console", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// RenderComplete is the payload of the final "complete" event
type RenderComplete struct {
	RenderID        string  `json:"renderId"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	Workers         int     `json:"workers"`
	ElapsedMs       int64   `json:"elapsedMs"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
	ImageData       string  `json:"imageData"` // Base64 encoded PNG
}

type renderOutcome struct {
	framebuffer *renderer.Framebuffer
	stats       renderer.RenderStats
	err         error
}

// handleRenderStream renders a scene and streams console messages followed
// by the finished image as Server-Sent Events
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	sceneObj, err := s.createScene(req, NewWebLogger("warning", consoleChan, s.logger))
	if err != nil {
		s.flushConsole(w, consoleChan)
		s.sendSSEError(w, err.Error())
		return
	}

	done := make(chan renderOutcome, 1)
	go func() {
		fb, stats, err := s.render(ctx, sceneObj, NewWebLogger("info", consoleChan, s.logger))
		done <- renderOutcome{framebuffer: fb, stats: stats, err: err}
	}()

	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)

		case result := <-done:
			s.flushConsole(w, consoleChan)
			if result.err != nil {
				s.sendSSEError(w, fmt.Sprintf("Render error: %v", result.err))
				return
			}
			s.sendComplete(w, result)
			return

		case <-ctx.Done():
			// Client disconnected, the render stops dispatching rows
			return
		}
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// flushConsole sends any console messages still queued
func (s *Server) flushConsole(w http.ResponseWriter, consoleChan chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)
		default:
			return
		}
	}
}

func (s *Server) sendConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	s.sendSSEEvent(w, "console", string(data))
}

func (s *Server) sendComplete(w http.ResponseWriter, result renderOutcome) {
	imageData, err := framebufferToBase64PNG(result.framebuffer)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(RenderComplete{
		RenderID:        result.stats.RenderID.String(),
		Width:           result.framebuffer.Width,
		Height:          result.framebuffer.Height,
		Workers:         result.stats.Workers,
		ElapsedMs:       result.stats.Duration.Milliseconds(),
		PixelsPerSecond: result.stats.PixelsPerSecond(),
		ImageData:       imageData,
	})
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}
	s.sendSSEEvent(w, "complete", string(data))
}

// framebufferToBase64PNG converts a framebuffer to base64-encoded PNG
func framebufferToBase64PNG(fb *renderer.Framebuffer) (string, error) {
	var buf bytes.Buffer
	if err := output.Encode(&buf, fb, output.FormatPNG); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming not supported")
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
