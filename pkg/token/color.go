package token

import (
	"fmt"
	"math"

	"github.com/kataras/figma-tokens/pkg/config"
	"github.com/kataras/figma-tokens/pkg/figma"
)

// SolidColor renders a SOLID paint in the configured color format. The paint opacity, when
// present, takes precedence over the alpha channel of the color.
// It reports false for nil, non-SOLID or colorless paints.
func SolidColor(paint *figma.Paint, format config.ColorFormat) (string, bool) {
	if paint == nil || paint.Type != figma.PaintSolid || paint.Color == nil {
		return "", false
	}

	alpha := paint.Color.A
	if paint.Opacity != nil {
		alpha = *paint.Opacity
	}

	if format == config.ColorHex {
		return colorToHex(paint.Color, alpha), true
	}

	r, g, b := channel(paint.Color.R), channel(paint.Color.G), channel(paint.Color.B)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(roundTo(alpha, 2))), true
}

// colorToHex converts a Figma RGBA color (with 0-1 float values) to #RRGGBB,
// or #RRGGBBAA when the color is not fully opaque.
func colorToHex(color *figma.Color, alpha float64) string {
	hex := fmt.Sprintf("#%02X%02X%02X", channel(color.R), channel(color.G), channel(color.B))
	if alpha < 1 {
		hex += fmt.Sprintf("%02X", channel(alpha))
	}
	return hex
}

func channel(v float64) int {
	c := int(math.Round(v * 255))
	switch {
	case c < 0:
		return 0
	case c > 255:
		return 255
	}
	return c
}
