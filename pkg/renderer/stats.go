package renderer

import (
	"time"

	"github.com/google/uuid"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	RenderID    uuid.UUID     // Unique id of this render, used in logs
	TotalPixels int           // Total number of pixels rendered
	Rows        int           // Rows completed
	Workers     int           // Worker goroutines used
	Duration    time.Duration // Wall time of the render
}

// PixelsPerSecond returns the render throughput
func (rs RenderStats) PixelsPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalPixels) / rs.Duration.Seconds()
}
