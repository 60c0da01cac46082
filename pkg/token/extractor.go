package token

import (
	"strings"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// TokenExtractor turns one frame of the tokens page into a named token set.
//
// Primitive reads raw values, Semantic resolves values into references to primitive sets.
// A nil set with a nil error means the frame is not one the extractor handles.
type TokenExtractor interface {
	Extract(frame *figma.Node) (*NamedTokenSet, []Diagnostic, error)
}

var (
	_ TokenExtractor = (*Primitive)(nil)
	_ TokenExtractor = (*Semantic)(nil)
)

// semanticPrefix marks the frames handled by the Semantic extractor.
const semanticPrefix = "semantic"

// SetName returns the name a token set built from a frame is written and referenced under.
// Set names are always camel-cased, independently of the token name setting, so that
// references such as "fontSizes.h1" stay stable.
func SetName(frameName string) string {
	return Sanitize(frameName, true)
}

// IsSemanticFrame reports whether a tokens page child is a semantic category frame.
func IsSemanticFrame(frame *figma.Node) bool {
	if frame == nil || frame.Type != figma.NodeFrame || strings.HasPrefix(frame.Name, "_") {
		return false
	}
	return strings.HasPrefix(strings.ToLower(SetName(frame.Name)), semanticPrefix)
}
