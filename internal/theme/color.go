package theme

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color helpers for generators. Each takes and returns a hex color; input
// that does not parse is returned unchanged.

// Lighten raises the HSL lightness of hex by amount (0..1).
func Lighten(hex string, amount float64) string {
	return adjustLightness(hex, amount)
}

// Darken lowers the HSL lightness of hex by amount (0..1).
func Darken(hex string, amount float64) string {
	return adjustLightness(hex, -amount)
}

func adjustLightness(hex string, delta float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l = math.Max(0, math.Min(1, l+delta))
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

// Mix blends a toward b in Lab space; t=0 is a, t=1 is b.
func Mix(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	t = math.Max(0, math.Min(1, t))
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// Alpha renders hex as an rgba() color with the given opacity.
func Alpha(hex string, alpha float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	r, g, b := c.RGB255()
	alpha = math.Max(0, math.Min(1, alpha))
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, trimFloat(alpha))
}

// Readable picks the text color from candidates with the best contrast
// against bg, measured as Lab lightness distance.
func Readable(bg string, candidates ...string) string {
	cbg, err := colorful.Hex(bg)
	if err != nil || len(candidates) == 0 {
		return bg
	}
	lbg, _, _ := cbg.Lab()

	best, bestDist := candidates[0], -1.0
	for _, cand := range candidates {
		c, err := colorful.Hex(cand)
		if err != nil {
			continue
		}
		l, _, _ := c.Lab()
		if d := math.Abs(l - lbg); d > bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
