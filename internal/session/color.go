package session

import (
	"fmt"
	"math"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var gradients = map[Phase][2]RGB{
	Work:  {{R: 255, G: 153, B: 153}, {R: 139, G: 0, B: 0}},
	Break: {{R: 255, G: 204, B: 0}, {R: 204, G: 102, B: 0}},
}

// StartColor is the progress colour at the start of a phase.
func StartColor(p Phase) RGB {
	return gradients[p][0]
}

// EndColor is the progress colour when a phase runs out.
func EndColor(p Phase) RGB {
	return gradients[p][1]
}

// Color interpolates the progress colour for phase p. A ratio of 1 yields the
// start colour and 0 the end colour; values outside [0, 1] are clamped.
func Color(p Phase, ratio float64) RGB {
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}

	if ratio > 1 {
		ratio = 1
	}

	start, end := StartColor(p), EndColor(p)

	return RGB{
		R: channel(start.R, end.R, ratio),
		G: channel(start.G, end.G, ratio),
		B: channel(start.B, end.B, ratio),
	}
}

func channel(start, end uint8, ratio float64) uint8 {
	v := float64(start) - (float64(start)-float64(end))*(1-ratio)

	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
