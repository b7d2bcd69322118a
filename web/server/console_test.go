package server

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/logging"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("info", messageChan, nil)

	logger.Printf("%s\n", "Test log message")

	select {
	case msg := <-messageChan:
		if msg.Message != "Test log message" {
			t.Errorf("Expected message 'Test log message', got '%s'", msg.Message)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for console message")
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("info", messageChan, nil)

	logger.Printf("Message 1\n")
	// These must not block even though the channel is full
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	if got := len(messageChan); got != 1 {
		t.Errorf("Expected 1 queued message, got %d", got)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("info", nil, nil)
	logger.Printf("Test message with nil channel\n")
}

func TestWebLogger_MirrorsToServerLog(t *testing.T) {
	var buf bytes.Buffer
	serverLog, err := logging.New(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}

	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("warning", messageChan, serverLog)
	logger.Printf("scene: sphere %q dropped, limit of %d spheres reached\n", "s6", 5)

	msg := <-messageChan
	if msg.Level != "warning" {
		t.Errorf("Expected level 'warning', got '%s'", msg.Level)
	}
	if !strings.Contains(buf.String(), `sphere "s6" dropped`) {
		t.Errorf("Expected message in server log, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN") {
		t.Errorf("Expected warn level in server log, got %q", buf.String())
	}
}
