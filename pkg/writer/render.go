// Package writer turns token write operations into source files: TypeScript, JavaScript
// (CommonJS or ES modules), JSON or CSS custom properties.
package writer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/kataras/figma-tokens/pkg/token"
)

// GeneratedFileWarning heads every generated source file.
const GeneratedFileWarning = "This file is generated by figma-tokens. Do not edit it by hand: every run overwrites it."

// ErrUnsupportedFormat is returned for an output format the writer cannot produce.
var ErrUnsupportedFormat = errors.Base("unsupported token format")

// Render returns the file content of op.
func Render(op token.WriteOperation) (string, error) {
	if op.Name == "" {
		return "", errors.WithDetails(token.ErrNoTokenNameProvided, "format", op.Format)
	}
	if op.File == nil {
		return "", errors.WithDetails(errors.Errorf("%s: %w", op.Name, token.ErrNoFrameProvided), "name", op.Name)
	}

	switch op.Format {
	case "json":
		b, err := json.MarshalIndent(op.File, "", "  ")
		if err != nil {
			return "", errors.Errorf("encoding %s: %w", op.Name, err)
		}
		return string(b) + "\n", nil
	case "css":
		return toCSS(op), nil
	case "ts", "js", "mjs":
		return toModule(op), nil
	default:
		return "", errors.WithDetails(ErrUnsupportedFormat, "format", op.Format, "name", op.Name)
	}
}

func toModule(op token.WriteOperation) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("// %s\n\n", GeneratedFileWarning))

	if op.Semantic {
		imports := references(op.File)
		for _, set := range imports {
			if op.Format == "js" {
				sb.WriteString(fmt.Sprintf("const { %s } = require('./%s');\n", set, set))
			} else {
				sb.WriteString(fmt.Sprintf("import { %s } from './%s';\n", set, set))
			}
		}
		if len(imports) > 0 {
			sb.WriteString("\n")
		}
	}

	if op.DataType == "enum" && op.Format == "ts" && !op.Semantic {
		sb.WriteString(fmt.Sprintf("export enum %s {\n", op.Name))
		op.File.Range(func(name string, value any) bool {
			sb.WriteString(fmt.Sprintf("  %s = %s,\n", propertyName(name), literal(value, false)))
			return true
		})
		sb.WriteString("}\n")
		return sb.String()
	}

	object := objectLiteral(op.File, op.Semantic, 0)
	switch op.Format {
	case "ts":
		sb.WriteString(fmt.Sprintf("export const %s = %s as const;\n", op.Name, object))
	case "mjs":
		sb.WriteString(fmt.Sprintf("export const %s = %s;\n", op.Name, object))
	default:
		sb.WriteString(fmt.Sprintf("const %s = %s;\n\nmodule.exports = { %s };\n", op.Name, object, op.Name))
	}
	return sb.String()
}

// objectLiteral prints m as a JavaScript object literal. With references, string values are
// printed bare so that "colors.red" becomes an expression.
func objectLiteral(m *token.TokenMap, references bool, depth int) string {
	if m.Len() == 0 {
		return "{}"
	}

	indent := strings.Repeat("  ", depth+1)
	var sb strings.Builder
	sb.WriteString("{\n")
	m.Range(func(name string, value any) bool {
		sb.WriteString(indent)
		sb.WriteString(propertyName(name))
		sb.WriteString(": ")
		if nested, ok := value.(*token.TokenMap); ok {
			sb.WriteString(objectLiteral(nested, references, depth+1))
		} else {
			sb.WriteString(literal(value, references))
		}
		sb.WriteString(",\n")
		return true
	})
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("}")
	return sb.String()
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func propertyName(name string) string {
	if identifierRe.MatchString(name) {
		return name
	}
	return quote(name)
}

func literal(value any, reference bool) string {
	switch v := value.(type) {
	case string:
		if reference {
			return v
		}
		return quote(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return quote(fmt.Sprint(v))
	}
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// references lists, in order of first use, the primitive sets that the values of a semantic map
// point into.
func references(m *token.TokenMap) []string {
	var (
		sets []string
		seen = make(map[string]struct{})
		walk func(m *token.TokenMap)
	)
	walk = func(m *token.TokenMap) {
		m.Range(func(_ string, value any) bool {
			switch v := value.(type) {
			case *token.TokenMap:
				walk(v)
			case string:
				set, _, ok := strings.Cut(v, ".")
				if !ok {
					return true
				}
				if _, dup := seen[set]; !dup {
					seen[set] = struct{}{}
					sets = append(sets, set)
				}
			}
			return true
		})
	}
	walk(m)
	return sets
}
