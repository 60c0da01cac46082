package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize turns a raw frame or node name into an identifier-safe token name.
//
// A leading "$" is stripped and every character that is not a letter or digit is removed.
// With camelize, the separators between segments start a new camel-case hump instead:
// "Brand Primary" becomes "brandPrimary" and "ctaSurfaceDark" stays as is. Never fails;
// a name with no usable characters sanitizes to "".
func Sanitize(raw string, camelize bool) string {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))

	segments := strings.FieldsFunc(raw, func(r rune) bool {
		return !isIdentRune(r)
	})

	var b strings.Builder
	for i, seg := range segments {
		if !camelize {
			b.WriteString(seg)
			continue
		}
		first, size := utf8.DecodeRuneInString(seg)
		if i == 0 {
			b.WriteRune(unicode.ToLower(first))
		} else {
			b.WriteRune(unicode.ToUpper(first))
		}
		b.WriteString(seg[size:])
	}

	return b.String()
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
