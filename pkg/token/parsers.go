package token

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/kataras/figma-tokens/pkg/config"
	"github.com/kataras/figma-tokens/pkg/figma"
)

// parseFunc converts one design node into a token literal. ok is false when the node does not
// produce a token and that is not an error (a color swatch without a solid fill).
type parseFunc func(node *figma.Node, cfg *config.Config) (value any, ok bool, err error)

// parsers routes every category to its value parser.
var parsers = [categoryCount]parseFunc{
	CategoryBorderWidths:   parseBorderWidth,
	CategoryColor:          parseColor,
	CategoryColors:         parseColor,
	CategoryDelays:         parseDelay,
	CategoryDurations:      parseDuration,
	CategoryEasings:        parseEasing,
	CategoryFontFamilies:   parseFontFamily,
	CategoryFontSizes:      parseFontSize,
	CategoryFontWeights:    parseFontWeight,
	CategoryLetterSpacings: parseLetterSpacing,
	CategoryLineHeights:    parseLineHeight,
	CategoryMediaQueries:   parseMediaQuery,
	CategoryMobileSpacing:  parseSpacing,
	CategoryOpacities:      parseOpacity,
	CategoryRadii:          parseRadius,
	CategoryShadows:        parseShadow,
	CategorySpacing:        parseSpacing,
	CategoryZIndices:       parseZIndex,
}

// Parse runs the value parser of category c against a single node.
func Parse(c Category, node *figma.Node, cfg *config.Config) (any, bool, error) {
	if c <= CategoryUnknown || c >= categoryCount || parsers[c] == nil {
		return nil, false, ErrNoTokenNameProvided
	}
	if node == nil {
		return nil, false, ErrNoFrameProvided
	}
	if cfg == nil {
		return nil, false, ErrNoConfig
	}
	return parsers[c](node, cfg)
}

func parseColor(node *figma.Node, cfg *config.Config) (any, bool, error) {
	if len(node.Fills) == 0 {
		return nil, false, nil
	}
	color, ok := SolidColor(&node.Fills[0], cfg.OutputFormatColors)
	if !ok {
		return nil, false, nil
	}
	return color, true, nil
}

func parseSpacing(node *figma.Node, cfg *config.Config) (any, bool, error) {
	if node.AbsoluteBoundingBox == nil {
		return nil, false, missingField(node.Name, "absoluteBoundingBox")
	}
	return sizeValue(node.AbsoluteBoundingBox.Width, cfg.RemSize, cfg.SpacingUnit), true, nil
}

func parseFontSize(node *figma.Node, cfg *config.Config) (any, bool, error) {
	if node.Style == nil {
		return nil, false, missingField(node.Name, "style")
	}
	if node.Style.FontSize == 0 {
		return nil, false, missingField(node.Name, "style.fontSize")
	}
	return sizeValue(node.Style.FontSize, cfg.RemSize, cfg.FontUnit), true, nil
}

func parseFontWeight(node *figma.Node, _ *config.Config) (any, bool, error) {
	if node.Style == nil {
		return nil, false, missingField(node.Name, "style")
	}
	if node.Style.FontWeight == 0 {
		return nil, false, missingField(node.Name, "style.fontWeight")
	}
	return node.Style.FontWeight, true, nil
}

func parseFontFamily(node *figma.Node, cfg *config.Config) (any, bool, error) {
	if node.Style == nil {
		return nil, false, missingField(node.Name, "style")
	}
	family := fontFamily(node.Style, cfg.UsePostscriptFontNames)
	if family == "" {
		return nil, false, missingField(node.Name, "style.fontFamily")
	}
	return family, true, nil
}

func fontFamily(style *figma.TypeStyle, postscript bool) string {
	if postscript && style.FontPostScriptName != "" {
		return style.FontPostScriptName
	}
	return style.FontFamily
}

func parseLineHeight(node *figma.Node, cfg *config.Config) (any, bool, error) {
	if node.Style == nil {
		return nil, false, missingField(node.Name, "style")
	}
	if node.Style.LineHeightPercentFontSize == nil {
		return nil, false, missingField(node.Name, "style.lineHeightPercentFontSize")
	}
	return lineHeightValue(*node.Style.LineHeightPercentFontSize, cfg), true, nil
}

func lineHeightValue(percent float64, cfg *config.Config) any {
	switch cfg.LineHeightUnit {
	case "%":
		return formatNumber(roundTo(percent, cfg.UnitlessPrecision)) + "%"
	case "em":
		return formatNumber(roundTo(percent/100, cfg.UnitlessPrecision)) + "em"
	default:
		return roundTo(percent/100, cfg.UnitlessPrecision)
	}
}

// parseLetterSpacing rebases Figma's absolute pixel delta. With em the delta is divided by the
// node's own font size: 1.28px at 32px is 0.04em.
func parseLetterSpacing(node *figma.Node, cfg *config.Config) (any, bool, error) {
	if node.Style == nil {
		return nil, false, missingField(node.Name, "style")
	}

	px := 0.0
	if node.Style.LetterSpacing != nil {
		px = roundTo(*node.Style.LetterSpacing, 3)
	}

	if cfg.LetterSpacingUnit == "px" {
		return formatNumber(px) + "px", true, nil
	}

	if node.Style.FontSize == 0 {
		return nil, false, missingField(node.Name, "style.fontSize")
	}
	return formatNumber(roundTo(px/node.Style.FontSize, 3)) + "em", true, nil
}

func parseRadius(node *figma.Node, cfg *config.Config) (any, bool, error) {
	radius := 0.0
	if node.CornerRadius != nil {
		radius = *node.CornerRadius
	}
	return sizeValue(radius, cfg.RemSize, cfg.RadiusUnit), true, nil
}

func parseBorderWidth(node *figma.Node, cfg *config.Config) (any, bool, error) {
	if node.StrokeWeight == nil {
		return nil, false, missingField(node.Name, "strokeWeight")
	}
	return sizeValue(*node.StrokeWeight, cfg.RemSize, cfg.BorderWidthUnit), true, nil
}

// parseShadow renders every visible drop or inner shadow of the node as one CSS box-shadow list.
func parseShadow(node *figma.Node, cfg *config.Config) (any, bool, error) {
	var shadows []string
	for i := range node.Effects {
		effect := &node.Effects[i]
		if effect.Type != figma.EffectDropShadow && effect.Type != figma.EffectInnerShadow {
			continue
		}
		if effect.Visible != nil && !*effect.Visible {
			continue
		}

		var parts []string
		if effect.Type == figma.EffectInnerShadow {
			parts = append(parts, "inset")
		}
		x, y := 0.0, 0.0
		if effect.Offset != nil {
			x, y = effect.Offset.X, effect.Offset.Y
		}
		parts = append(parts,
			sizeValue(x, cfg.RemSize, cfg.ShadowUnit),
			sizeValue(y, cfg.RemSize, cfg.ShadowUnit),
			sizeValue(effect.Radius, cfg.RemSize, cfg.ShadowUnit),
		)
		if effect.Spread != 0 {
			parts = append(parts, sizeValue(effect.Spread, cfg.RemSize, cfg.ShadowUnit))
		}
		if effect.Color != nil {
			color, _ := SolidColor(&figma.Paint{Type: figma.PaintSolid, Color: effect.Color}, cfg.OutputFormatColors)
			parts = append(parts, color)
		}
		shadows = append(shadows, strings.Join(parts, " "))
	}

	if len(shadows) == 0 {
		return nil, false, missingField(node.Name, "shadow effects")
	}
	return strings.Join(shadows, ", "), true, nil
}

func parseOpacity(node *figma.Node, cfg *config.Config) (any, bool, error) {
	opacity := 1.0
	if node.Opacity != nil {
		opacity = *node.Opacity
	}
	if cfg.OpacitiesUnit == "percent" {
		return formatNumber(roundTo(opacity*100, 2)) + "%", true, nil
	}
	return roundTo(opacity, 2), true, nil
}

func parseDuration(node *figma.Node, cfg *config.Config) (any, bool, error) {
	return timeValue(node, cfg.DurationUnit)
}

func parseDelay(node *figma.Node, cfg *config.Config) (any, bool, error) {
	return timeValue(node, cfg.DelayUnit)
}

func timeValue(node *figma.Node, unit string) (any, bool, error) {
	v, err := numericCharacters(node)
	if err != nil {
		return nil, false, err
	}
	if unit == "" {
		return v, true, nil
	}
	return formatNumber(v) + unit, true, nil
}

func parseEasing(node *figma.Node, _ *config.Config) (any, bool, error) {
	easing := strings.TrimSpace(node.Characters)
	if easing == "" {
		return nil, false, missingField(node.Name, "characters")
	}
	return easing, true, nil
}

func parseZIndex(node *figma.Node, _ *config.Config) (any, bool, error) {
	text := strings.TrimSpace(node.Characters)
	if text == "" {
		return nil, false, missingField(node.Name, "characters")
	}
	z, err := cast.ToIntE(text)
	if err != nil {
		return nil, false, missingField(node.Name, "integer characters")
	}
	return float64(z), true, nil
}

func parseMediaQuery(node *figma.Node, _ *config.Config) (any, bool, error) {
	if node.AbsoluteBoundingBox == nil {
		return nil, false, missingField(node.Name, "absoluteBoundingBox")
	}
	return formatNumber(node.AbsoluteBoundingBox.Width) + "px", true, nil
}

func numericCharacters(node *figma.Node) (float64, error) {
	text := strings.TrimSpace(node.Characters)
	if text == "" {
		return 0, missingField(node.Name, "characters")
	}
	v, err := cast.ToFloat64E(text)
	if err != nil {
		return 0, missingField(node.Name, "numeric characters")
	}
	return v, nil
}
