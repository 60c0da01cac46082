package writer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kataras/figma-tokens/pkg/token"
)

// toCSS renders op as CSS custom properties on :root. Nested entries are flattened into the
// property name, and semantic references point at the primitive property through var().
func toCSS(op token.WriteOperation) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("/* %s */\n\n", GeneratedFileWarning))
	sb.WriteString(":root {\n")
	writeProperties(&sb, toKebabCase(op.Name), op.File, op.Semantic)
	sb.WriteString("}\n")

	return sb.String()
}

func writeProperties(sb *strings.Builder, prefix string, m *token.TokenMap, semantic bool) {
	m.Range(func(name string, value any) bool {
		property := prefix + "-" + toKebabCase(name)
		if nested, ok := value.(*token.TokenMap); ok {
			writeProperties(sb, property, nested, semantic)
			return true
		}

		var cssValue string
		if ref, ok := value.(string); ok && semantic {
			cssValue = fmt.Sprintf("var(--%s)", toKebabCase(strings.ReplaceAll(ref, ".", "-")))
		} else {
			cssValue = literal(value, true)
		}
		sb.WriteString(fmt.Sprintf("  --%s: %s;\n", property, cssValue))
		return true
	})
}

// toKebabCase converts a token name to kebab-case (lowercase with hyphens) for CSS
// custom property names. Camel-case humps, spaces and underscores become hyphens;
// other special characters are removed.
func toKebabCase(s string) string {
	var result strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '_' || r == '-':
			if result.Len() > 0 && !strings.HasSuffix(result.String(), "-") {
				result.WriteRune('-')
			}
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				result.WriteRune('-')
			}
			result.WriteRune(unicode.ToLower(r))
			prevLower = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			prevLower = true
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}
