package token

import (
	"strings"

	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/kataras/figma-tokens/pkg/config"
	"github.com/kataras/figma-tokens/pkg/figma"
)

// Primitive extracts raw values from a category frame such as "Colors" or "Font Sizes".
type Primitive struct {
	Config *config.Config
}

// Extract builds the token set of one category frame. Frames that name no known category
// yield a nil set and an informational diagnostic.
func (p *Primitive) Extract(frame *figma.Node) (*NamedTokenSet, []Diagnostic, error) {
	if p.Config == nil {
		return nil, nil, ErrNoConfig
	}
	if frame == nil {
		return nil, nil, ErrNoFrameProvided
	}

	setName := SetName(frame.Name)
	if setName == "" {
		return nil, nil, errors.WithDetails(ErrNoTokenNameProvided, "frame", frame.ID)
	}

	var diags diagnostics
	category, ok := ParseCategory(setName)
	if !ok {
		diags.infof(setName, "", "not a token category, skipped")
		return nil, diags, nil
	}

	file := NewTokenMap()
	for _, node := range Walk(frame, p.Config.IgnoreElements) {
		name := Sanitize(node.Name, p.Config.CamelizeTokenNames)
		if name == "" {
			diags.warnf(setName, node.Name, "name has no usable characters, skipped")
			continue
		}

		value, ok, err := parsers[category](node, p.Config)
		if err != nil {
			return nil, diags, categoryError(setName, err, "node", node.Name)
		}
		if !ok {
			diags.infof(setName, node.Name, "produces no %s token, skipped", category)
			continue
		}

		file.Set(name, value)
	}

	return &NamedTokenSet{Name: setName, Category: category, File: file}, diags, nil
}

// BuildPrimitives extracts every primitive category frame found among the direct children
// of the tokens page, in page order.
//
// A category that fails does not stop the others: its error is collected and every set
// that could be built is still returned.
func BuildPrimitives(page []figma.Node, cfg *config.Config) ([]*NamedTokenSet, []Diagnostic, error) {
	if cfg == nil {
		return nil, nil, ErrNoConfig
	}
	if page == nil {
		return nil, nil, errors.WithDetails(ErrNoFrameProvided, "page", figma.PageDesignTokens)
	}

	extractor := &Primitive{Config: cfg}

	var (
		sets  []*NamedTokenSet
		diags []Diagnostic
		errs  error
	)
	for i := range page {
		frame := &page[i]
		if strings.HasPrefix(frame.Name, "_") || IsSemanticFrame(frame) {
			continue
		}

		set, frameDiags, err := extractor.Extract(frame)
		diags = append(diags, frameDiags...)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if set != nil {
			sets = append(sets, set)
		}
	}

	return sets, diags, errs
}
