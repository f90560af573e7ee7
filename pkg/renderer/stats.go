package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels       int           // Number of pixels rendered
	RaysTraced        int64         // Primary rays traced
	IntersectionTests int64         // Ray-sphere tests performed
	Workers           int           // Workers used for the render
	Duration          time.Duration // Wall-clock render time
}

// RaysPerSecond returns the primary ray throughput
func (rs RenderStats) RaysPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.RaysTraced) / rs.Duration.Seconds()
}
