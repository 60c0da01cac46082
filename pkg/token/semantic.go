package token

import (
	"strings"

	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/kataras/figma-tokens/pkg/config"
	"github.com/kataras/figma-tokens/pkg/figma"
)

const (
	semanticTokenPrefix = "$"
	themeFramePrefix    = "theme/"
	colorsSetName       = "colors"
)

// Semantic resolves the "$"-prefixed nodes of a semantic frame into references to the
// Primitives built from the same page.
type Semantic struct {
	Config     *config.Config
	Primitives []*NamedTokenSet
}

// Extract resolves one semantic frame. Frames that are neither semantic colors nor semantic
// typography yield a nil set and an informational diagnostic.
func (s *Semantic) Extract(frame *figma.Node) (*NamedTokenSet, []Diagnostic, error) {
	if s.Config == nil {
		return nil, nil, ErrNoConfig
	}
	if frame == nil {
		return nil, nil, ErrNoFrameProvided
	}

	setName := SetName(frame.Name)
	if setName == "" {
		return nil, nil, errors.WithDetails(ErrNoTokenNameProvided, "frame", frame.ID)
	}

	var (
		diags diagnostics
		file  *TokenMap
		err   error
	)
	switch lower := strings.ToLower(setName); {
	case lower == "semanticcolors" || lower == "semanticcolor":
		file, err = s.colors(setName, frame, &diags)
	case strings.Contains(lower, "typography"):
		file, err = s.typography(setName, frame, &diags)
	default:
		diags.infof(setName, "", "not a semantic token category, skipped")
		return nil, diags, nil
	}
	if err != nil {
		return nil, diags, err
	}

	return &NamedTokenSet{Name: setName, Semantic: true, File: file}, diags, nil
}

// ResolveSemantics resolves every semantic frame among the direct children of the tokens page
// against primitives. Like BuildPrimitives, a failing frame is collected and the rest go on.
func ResolveSemantics(page []figma.Node, primitives []*NamedTokenSet, cfg *config.Config) ([]*NamedTokenSet, []Diagnostic, error) {
	if cfg == nil {
		return nil, nil, ErrNoConfig
	}
	if page == nil {
		return nil, nil, errors.WithDetails(ErrNoFrameProvided, "page", figma.PageDesignTokens)
	}

	extractor := &Semantic{Config: cfg, Primitives: primitives}

	var (
		sets  []*NamedTokenSet
		diags []Diagnostic
		errs  error
	)
	for i := range page {
		frame := &page[i]
		if !IsSemanticFrame(frame) {
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

func (s *Semantic) colors(setName string, frame *figma.Node, diags *diagnostics) (*TokenMap, error) {
	colors, ok := FindSet(s.Primitives, colorsSetName)
	if !ok {
		return nil, categoryError(setName, ErrNoPrimitiveTokens, "set", colorsSetName)
	}
	index := newInverseIndex(colors.File, literalKey)

	children := Walk(frame, s.Config.IgnoreElements)

	var themes []*figma.Node
	for _, child := range children {
		if child.Type == figma.NodeFrame && strings.HasPrefix(strings.ToLower(child.Name), themeFramePrefix) {
			themes = append(themes, child)
		}
	}

	if len(themes) == 0 {
		return s.colorTokens(setName, colors.Name, index, children, diags), nil
	}

	out := NewTokenMap()
	for _, child := range children {
		if child.Type == figma.NodeFrame && strings.HasPrefix(strings.ToLower(child.Name), themeFramePrefix) {
			continue
		}
		if strings.HasPrefix(child.Name, semanticTokenPrefix) {
			diags.warnf(setName, child.Name, "outside of any theme frame, skipped")
		}
	}
	for _, theme := range themes {
		name := Sanitize(theme.Name[len(themeFramePrefix):], s.Config.CamelizeTokenNames)
		if name == "" {
			diags.warnf(setName, theme.Name, "theme has no usable name, skipped")
			continue
		}
		out.Set(name, s.colorTokens(setName, colors.Name, index, Walk(theme, s.Config.IgnoreElements), diags))
	}
	return out, nil
}

func (s *Semantic) colorTokens(setName, primitiveSet string, index inverseIndex, nodes []*figma.Node, diags *diagnostics) *TokenMap {
	flat := NewTokenMap()
	for _, node := range nodes {
		if !strings.HasPrefix(node.Name, semanticTokenPrefix) {
			continue
		}
		name := Sanitize(node.Name, s.Config.CamelizeTokenNames)
		if name == "" {
			diags.warnf(setName, node.Name, "name has no usable characters, skipped")
			continue
		}
		if len(node.Fills) == 0 {
			diags.infof(setName, node.Name, "has no fill, skipped")
			continue
		}
		literal, ok := SolidColor(&node.Fills[0], s.Config.OutputFormatColors)
		if !ok {
			diags.infof(setName, node.Name, "first fill is not a solid color, skipped")
			continue
		}
		key, ok := index[literal]
		if !ok {
			diags.warnf(setName, node.Name, "no %s token has the value %s", primitiveSet, literal)
			continue
		}
		flat.Set(name, primitiveSet+"."+key)
	}
	return groupBySuffix(flat)
}

// colorVariants maps a token name suffix to the key it is grouped under.
// ContrastText comes first so that "xContrastText" is never read as a "Text" variant of something.
var colorVariants = [...]struct{ suffix, key string }{
	{"ContrastText", "contrastText"},
	{"Dark", "dark"},
	{"Light", "light"},
}

const mainVariant = "main"

func splitVariant(name string) (base, key string, ok bool) {
	for _, v := range colorVariants {
		if len(name) > len(v.suffix) && strings.HasSuffix(name, v.suffix) {
			return name[:len(name)-len(v.suffix)], v.key, true
		}
	}
	return "", "", false
}

// groupBySuffix nests "ctaDark", "ctaLight" and "ctaContrastText" under "cta" as dark, light
// and contrastText. An unsuffixed "cta" next to them becomes "cta.main". Each group takes the
// position of its first member; names without variants are left untouched.
func groupBySuffix(flat *TokenMap) *TokenMap {
	bases := make(map[string]struct{})
	flat.Range(func(name string, _ any) bool {
		if base, _, ok := splitVariant(name); ok {
			bases[base] = struct{}{}
		}
		return true
	})
	if len(bases) == 0 {
		return flat
	}

	out := NewTokenMap()
	flat.Range(func(name string, value any) bool {
		if base, key, ok := splitVariant(name); ok {
			out.Sub(base).Set(key, value)
			return true
		}
		if _, grouped := bases[name]; grouped {
			out.Sub(name).Set(mainVariant, value)
			return true
		}
		out.Set(name, value)
		return true
	})
	return out
}

// typographyRef is one of the four references a semantic text style resolves to.
type typographyRef struct {
	suffix  string
	set     string
	literal func(style *figma.TypeStyle, cfg *config.Config) (any, bool)
	key     func(v any) (string, bool)
}

var typographyRefs = [...]typographyRef{
	{
		suffix: "Font", set: "fontFamilies", key: literalKey,
		literal: func(style *figma.TypeStyle, cfg *config.Config) (any, bool) {
			family := fontFamily(style, cfg.UsePostscriptFontNames)
			return family, family != ""
		},
	},
	{
		suffix: "Weight", set: "fontWeights", key: literalKey,
		literal: func(style *figma.TypeStyle, _ *config.Config) (any, bool) {
			return style.FontWeight, style.FontWeight > 0
		},
	},
	{
		suffix: "Size", set: "fontSizes", key: literalKey,
		literal: func(style *figma.TypeStyle, cfg *config.Config) (any, bool) {
			return sizeValue(style.FontSize, cfg.RemSize, cfg.FontUnit), style.FontSize > 0
		},
	},
	{
		suffix: "LineHeight", set: "lineHeights", key: lineHeightKey,
		literal: func(style *figma.TypeStyle, cfg *config.Config) (any, bool) {
			if style.LineHeightPercentFontSize == nil {
				return nil, false
			}
			return lineHeightValue(*style.LineHeightPercentFontSize, cfg), true
		},
	},
}

func (s *Semantic) typography(setName string, frame *figma.Node, diags *diagnostics) (*TokenMap, error) {
	var (
		sets    [len(typographyRefs)]*NamedTokenSet
		indexes [len(typographyRefs)]inverseIndex
		found   int
	)
	for i, ref := range typographyRefs {
		set, ok := FindSet(s.Primitives, ref.set)
		if !ok {
			diags.warnf(setName, "", "no %s tokens, %s references are omitted", ref.set, ref.suffix)
			continue
		}
		sets[i], indexes[i] = set, newInverseIndex(set.File, ref.key)
		found++
	}
	if found == 0 {
		return nil, categoryError(setName, ErrNoPrimitiveTokens, "set", "fontFamilies, fontWeights, fontSizes, lineHeights")
	}

	out := NewTokenMap()
	for _, node := range Walk(frame, s.Config.IgnoreElements) {
		if !strings.HasPrefix(node.Name, semanticTokenPrefix) {
			continue
		}
		if node.Type != figma.NodeText {
			diags.infof(setName, node.Name, "not a text node, skipped")
			continue
		}
		if node.Style == nil {
			return nil, categoryError(setName, missingField(node.Name, "style"), "node", node.Name)
		}
		name := Sanitize(node.Name, s.Config.CamelizeTokenNames)
		if name == "" {
			diags.warnf(setName, node.Name, "name has no usable characters, skipped")
			continue
		}

		for i, ref := range typographyRefs {
			if sets[i] == nil {
				continue
			}
			literal, ok := ref.literal(node.Style, s.Config)
			if !ok {
				continue
			}
			lookup, ok := ref.key(literal)
			if !ok {
				continue
			}
			key, ok := indexes[i][lookup]
			if !ok {
				diags.warnf(setName, node.Name, "no %s token has the value %v", ref.set, literal)
				continue
			}
			out.Set(name+ref.suffix, sets[i].Name+"."+key)
		}
	}
	return out, nil
}

// inverseIndex maps the lookup key of a primitive literal to the first token name holding it.
type inverseIndex map[string]string

func newInverseIndex(file *TokenMap, key func(v any) (string, bool)) inverseIndex {
	index := make(inverseIndex, file.Len())
	file.Range(func(name string, value any) bool {
		k, ok := key(value)
		if !ok {
			return true
		}
		if _, exists := index[k]; !exists {
			index[k] = name
		}
		return true
	})
	return index
}

// literalKey compares literals by their printed form, so the number 400 and the string "400"
// are the same value.
func literalKey(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case float64:
		return formatNumber(v), true
	default:
		return "", false
	}
}

// lineHeightKey rounds the numeric part to 3 significant digits: 1.35, "1.35em" and "135%" only
// match values that agree to that precision.
func lineHeightKey(v any) (string, bool) {
	switch v := v.(type) {
	case float64:
		return formatNumber(roundSignificant(v, 3)), true
	case string:
		n, unit, ok := splitNumber(v)
		if !ok {
			return v, true
		}
		return formatNumber(roundSignificant(n, 3)) + unit, true
	default:
		return "", false
	}
}
