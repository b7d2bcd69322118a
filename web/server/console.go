package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	level       string
	consoleChan chan<- ConsoleMessage
	logger      *log.Logger
}

// NewWebLogger creates a logger that mirrors each message to the server log
// and, when consoleChan is set, to the client console
func NewWebLogger(level string, consoleChan chan<- ConsoleMessage, logger *log.Logger) core.Logger {
	return &WebLogger{
		level:       level,
		consoleChan: consoleChan,
		logger:      logger,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")

	if wl.logger != nil {
		if wl.level == "warning" {
			wl.logger.Warn(message)
		} else {
			wl.logger.Info(message)
		}
	}

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     wl.level,
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}
