package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/figma-tokens/pkg/config"
	"github.com/kataras/figma-tokens/pkg/figma"
)

func TestParse(t *testing.T) {
	cfg := config.New()

	tests := []struct {
		name     string
		category Category
		node     figma.Node
		want     any
	}{
		{"color rgba", CategoryColors, swatch("red", 1, 0, 0, 1), "rgba(255, 0, 0, 1)"},
		{"color alpha", CategoryColors, swatch("shade", 0, 0, 0, 0.25), "rgba(0, 0, 0, 0.25)"},
		{"spacing rem", CategorySpacing, box("large", 32), "2rem"},
		{"mobile spacing", CategoryMobileSpacing, box("small", 8), "0.5rem"},
		{"font size", CategoryFontSizes, text("h2", "", &figma.TypeStyle{FontSize: 24}), "1.5rem"},
		{"font weight", CategoryFontWeights, text("bold", "", &figma.TypeStyle{FontWeight: 700}), 700.0},
		{"font family", CategoryFontFamilies, text("body", "", &figma.TypeStyle{FontFamily: "Inter", FontPostScriptName: "Inter-Regular"}), "Inter"},
		{"line height", CategoryLineHeights, text("tight", "", &figma.TypeStyle{LineHeightPercentFontSize: ptr(135.0)}), 1.35},
		{"letter spacing", CategoryLetterSpacings, text("wide", "", &figma.TypeStyle{FontSize: 32, LetterSpacing: ptr(1.28)}), "0.04em"},
		{"letter spacing zero", CategoryLetterSpacings, text("none", "", &figma.TypeStyle{FontSize: 16}), "0em"},
		{"radius", CategoryRadii, figma.Node{Name: "soft", CornerRadius: ptr(8.0)}, "0.5rem"},
		{"radius default", CategoryRadii, figma.Node{Name: "hard"}, "0rem"},
		{"border width", CategoryBorderWidths, figma.Node{Name: "thin", StrokeWeight: ptr(2.0)}, "0.125rem"},
		{"opacity", CategoryOpacities, figma.Node{Name: "half", Opacity: ptr(0.5)}, 0.5},
		{"opacity default", CategoryOpacities, figma.Node{Name: "full"}, 1.0},
		{"duration", CategoryDurations, text("fast", "200", nil), 200.0},
		{"delay", CategoryDelays, text("short", " 50 ", nil), 50.0},
		{"easing", CategoryEasings, text("ease", "cubic-bezier(0.4, 0, 0.2, 1)", nil), "cubic-bezier(0.4, 0, 0.2, 1)"},
		{"z-index", CategoryZIndices, text("modal", "100", nil), 100.0},
		{"media query", CategoryMediaQueries, box("tablet", 768), "768px"},
		{"shadow", CategoryShadows, figma.Node{Name: "raised", Effects: []figma.Effect{{
			Type:   figma.EffectDropShadow,
			Offset: &figma.Vector{X: 0, Y: 4},
			Radius: 8,
			Color:  &figma.Color{A: 0.25},
		}}}, "0rem 0.25rem 0.5rem rgba(0, 0, 0, 0.25)"},
		{"inner and drop shadows", CategoryShadows, figma.Node{Name: "deep", Effects: []figma.Effect{
			{Type: figma.EffectInnerShadow, Offset: &figma.Vector{X: 1, Y: 1}, Radius: 2, Spread: 1, Color: &figma.Color{A: 1}},
			{Type: "LAYER_BLUR", Radius: 10},
			{Type: figma.EffectDropShadow, Visible: ptr(false), Radius: 4},
			{Type: figma.EffectDropShadow, Radius: 4, Color: &figma.Color{R: 1, A: 0.5}},
		}}, "inset 0.0625rem 0.0625rem 0.125rem 0.0625rem rgba(0, 0, 0, 1), 0rem 0rem 0.25rem rgba(255, 0, 0, 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Parse(tt.category, &tt.node, cfg)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUnits(t *testing.T) {
	cfg := config.New()
	cfg.SpacingUnit = "px"
	cfg.FontUnit = "em"
	cfg.LineHeightUnit = "%"
	cfg.LetterSpacingUnit = "px"
	cfg.OpacitiesUnit = "percent"
	cfg.DurationUnit = "ms"
	cfg.OutputFormatColors = config.ColorHex
	cfg.UsePostscriptFontNames = true

	tests := []struct {
		category Category
		node     figma.Node
		want     any
	}{
		{CategorySpacing, box("large", 32), "2px"},
		{CategoryFontSizes, text("h2", "", &figma.TypeStyle{FontSize: 24}), "1.5em"},
		{CategoryLineHeights, text("tight", "", &figma.TypeStyle{LineHeightPercentFontSize: ptr(135.0)}), "135%"},
		{CategoryLetterSpacings, text("wide", "", &figma.TypeStyle{FontSize: 32, LetterSpacing: ptr(1.28)}), "1.28px"},
		{CategoryOpacities, figma.Node{Name: "half", Opacity: ptr(0.5)}, "50%"},
		{CategoryDurations, text("fast", "200", nil), "200ms"},
		{CategoryColors, swatch("red", 1, 0, 0, 1), "#FF0000"},
		{CategoryColors, swatch("shade", 0, 0, 0, 0.5), "#00000080"},
		{CategoryFontFamilies, text("body", "", &figma.TypeStyle{FontFamily: "Inter", FontPostScriptName: "Inter-Regular"}), "Inter-Regular"},
	}

	for _, tt := range tests {
		got, ok, err := Parse(tt.category, &tt.node, cfg)
		require.NoError(t, err, tt.category.String())
		require.True(t, ok, tt.category.String())
		assert.Equal(t, tt.want, got, tt.category.String())
	}
}

func TestParseSizeIsRawOverRemSize(t *testing.T) {
	sizeNode := func(c Category, px float64) *figma.Node {
		switch c {
		case CategoryFontSizes:
			return ptr(text("s", "", &figma.TypeStyle{FontSize: px}))
		case CategoryRadii:
			return &figma.Node{Name: "s", CornerRadius: ptr(px)}
		case CategoryBorderWidths:
			return &figma.Node{Name: "s", StrokeWeight: ptr(px)}
		default:
			return ptr(box("s", px))
		}
	}

	for _, unit := range []string{"rem", "em", "px"} {
		cfg := config.New()
		cfg.FontUnit, cfg.SpacingUnit, cfg.RadiusUnit, cfg.BorderWidthUnit = unit, unit, unit, unit

		for _, c := range []Category{CategoryFontSizes, CategorySpacing, CategoryMobileSpacing, CategoryRadii, CategoryBorderWidths} {
			for _, remSize := range []float64{10, 16, 20} {
				cfg.RemSize = remSize
				for _, px := range []float64{4, 12, 32} {
					got, ok, err := Parse(c, sizeNode(c, px), cfg)
					require.NoError(t, err)
					require.True(t, ok)
					assert.Equal(t, formatNumber(px/remSize)+unit, got, "%s %s %v/%v", c, unit, px, remSize)
				}
			}
		}
	}
}

func TestParsePixelUnitDivides(t *testing.T) {
	cfg := config.New()
	cfg.FontUnit = "px"
	cfg.BorderWidthUnit = "px"
	cfg.ShadowUnit = "px"

	got, _, err := Parse(CategoryFontSizes, ptr(text("h1", "", &figma.TypeStyle{FontSize: 32})), cfg)
	require.NoError(t, err)
	assert.Equal(t, "2px", got)

	got, _, err = Parse(CategoryBorderWidths, &figma.Node{Name: "thin", StrokeWeight: ptr(2.0)}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "0.125px", got)

	got, _, err = Parse(CategoryShadows, &figma.Node{Name: "raised", Effects: []figma.Effect{{
		Type: figma.EffectDropShadow, Offset: &figma.Vector{Y: 16}, Radius: 32,
	}}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "0px 1px 2px", got)
}

func TestParseSkipsNonSolidColors(t *testing.T) {
	cfg := config.New()

	gradient := figma.Node{Name: "fade", Fills: []figma.Paint{{Type: figma.PaintGradientLinear}}}
	_, ok, err := Parse(CategoryColors, &gradient, cfg)
	require.NoError(t, err)
	assert.False(t, ok)

	empty := figma.Node{Name: "none"}
	_, ok, err = Parse(CategoryColors, &empty, cfg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseMissingFields(t *testing.T) {
	cfg := config.New()

	tests := []struct {
		category Category
		node     figma.Node
	}{
		{CategorySpacing, figma.Node{Name: "nobox"}},
		{CategoryFontSizes, figma.Node{Name: "nostyle"}},
		{CategoryFontWeights, text("noweight", "", &figma.TypeStyle{FontFamily: "Inter"})},
		{CategoryLineHeights, text("noline", "", &figma.TypeStyle{})},
		{CategoryBorderWidths, figma.Node{Name: "nostroke"}},
		{CategoryShadows, figma.Node{Name: "flat"}},
		{CategoryEasings, text("blank", "  ", nil)},
		{CategoryZIndices, text("nan", "top", nil)},
		{CategoryDurations, text("slow", "", nil)},
		{CategoryMediaQueries, figma.Node{Name: "desktop"}},
	}

	for _, tt := range tests {
		_, ok, err := Parse(tt.category, &tt.node, cfg)
		assert.False(t, ok, tt.category.String())
		assert.ErrorIs(t, err, ErrMissingRequiredField, tt.category.String())
	}
}

func TestParseInvalidInput(t *testing.T) {
	cfg := config.New()
	node := box("x", 1)

	_, _, err := Parse(CategoryUnknown, &node, cfg)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = Parse(CategorySpacing, nil, cfg)
	assert.ErrorIs(t, err, ErrNoFrameProvided)

	_, _, err = Parse(CategorySpacing, &node, nil)
	assert.ErrorIs(t, err, ErrNoConfig)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
