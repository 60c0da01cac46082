package token

import (
	"github.com/kataras/figma-tokens/pkg/figma"
)

func ptr[T any](v T) *T { return &v }

func frame(name string, children ...figma.Node) figma.Node {
	return figma.Node{ID: name, Name: name, Type: figma.NodeFrame, Children: children}
}

func swatch(name string, r, g, b, a float64) figma.Node {
	return figma.Node{
		ID:    name,
		Name:  name,
		Type:  figma.NodeRectangle,
		Fills: []figma.Paint{{Type: figma.PaintSolid, Color: &figma.Color{R: r, G: g, B: b, A: a}}},
	}
}

func box(name string, width float64) figma.Node {
	return figma.Node{
		ID:                  name,
		Name:                name,
		Type:                figma.NodeRectangle,
		AbsoluteBoundingBox: &figma.Rectangle{Width: width, Height: width},
	}
}

func text(name, characters string, style *figma.TypeStyle) figma.Node {
	return figma.Node{ID: name, Name: name, Type: figma.NodeText, Characters: characters, Style: style}
}

// designTokensPage is a small but complete tokens page: primitives for colors and the four
// typography sets followed by both kinds of semantic frames.
func designTokensPage() []figma.Node {
	return []figma.Node{
		frame("Colors",
			swatch("red", 1, 0, 0, 1),
			swatch("black", 0, 0, 0, 1),
			swatch("white", 1, 1, 1, 1),
			swatch("crimson", 1, 0, 0, 1),
		),
		frame("Font Families",
			text("body", "Inter", &figma.TypeStyle{FontFamily: "Inter", FontPostScriptName: "Inter-Regular"}),
		),
		frame("Font Weights",
			text("bold", "Bold", &figma.TypeStyle{FontFamily: "Inter", FontWeight: 700}),
			text("regular", "Regular", &figma.TypeStyle{FontFamily: "Inter", FontWeight: 400}),
		),
		frame("Font Sizes",
			text("h1", "Heading", &figma.TypeStyle{FontFamily: "Inter", FontSize: 48}),
			text("body", "Body", &figma.TypeStyle{FontFamily: "Inter", FontSize: 16}),
		),
		frame("Line Heights",
			text("tight", "Tight", &figma.TypeStyle{FontFamily: "Inter", LineHeightPercentFontSize: ptr(135.0)}),
			text("loose", "Loose", &figma.TypeStyle{FontFamily: "Inter", LineHeightPercentFontSize: ptr(200.0)}),
		),
		frame("Spacing", box("small", 8), box("medium", 16), box("large", 32)),
		frame("_Drafts", box("scratch", 1)),
		frame("Instructions"),
		frame("Semantic Colors",
			swatch("$alert", 1, 0, 0, 1),
			swatch("$cta", 1, 0, 0, 1),
			swatch("$ctaDark", 0, 0, 0, 1),
			swatch("$ctaLight", 1, 1, 1, 1),
			swatch("$ctaContrastText", 1, 1, 1, 1),
			swatch("$unmatched", 0, 0, 1, 1),
			swatch("note", 1, 0, 0, 1),
		),
		frame("Semantic Typography",
			text("$heading", "Heading", &figma.TypeStyle{
				FontFamily:                "Inter",
				FontWeight:                700,
				FontSize:                  48,
				LineHeightPercentFontSize: ptr(135.0),
			}),
		),
	}
}
