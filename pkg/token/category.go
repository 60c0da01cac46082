package token

import "strings"

// Category identifies a primitive token frame on the tokens page. The frame name, sanitized
// and lowercased, selects the category; each category maps to exactly one value parser.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryBorderWidths
	CategoryColor
	CategoryColors
	CategoryDelays
	CategoryDurations
	CategoryEasings
	CategoryFontFamilies
	CategoryFontSizes
	CategoryFontWeights
	CategoryLetterSpacings
	CategoryLineHeights
	CategoryMediaQueries
	CategoryMobileSpacing
	CategoryOpacities
	CategoryRadii
	CategoryShadows
	CategorySpacing
	CategoryZIndices

	categoryCount
)

var categoryIdents = [categoryCount]string{
	CategoryUnknown:        "",
	CategoryBorderWidths:   "borderwidths",
	CategoryColor:          "color",
	CategoryColors:         "colors",
	CategoryDelays:         "delays",
	CategoryDurations:      "durations",
	CategoryEasings:        "easings",
	CategoryFontFamilies:   "fontfamilies",
	CategoryFontSizes:      "fontsizes",
	CategoryFontWeights:    "fontweights",
	CategoryLetterSpacings: "letterspacings",
	CategoryLineHeights:    "lineheights",
	CategoryMediaQueries:   "mediaqueries",
	CategoryMobileSpacing:  "mobilespacing",
	CategoryOpacities:      "opacities",
	CategoryRadii:          "radii",
	CategoryShadows:        "shadows",
	CategorySpacing:        "spacing",
	CategoryZIndices:       "zindices",
}

// Categories returns every recognized category in declaration order.
func Categories() []Category {
	all := make([]Category, 0, categoryCount-1)
	for c := CategoryUnknown + 1; c < categoryCount; c++ {
		all = append(all, c)
	}
	return all
}

// String returns the lowercase identifier a frame name must sanitize to.
func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return ""
	}
	return categoryIdents[c]
}

// ParseCategory maps a sanitized frame name to its category, ignoring case.
func ParseCategory(name string) (Category, bool) {
	ident := strings.ToLower(name)
	for c := CategoryUnknown + 1; c < categoryCount; c++ {
		if categoryIdents[c] == ident {
			return c, true
		}
	}
	return CategoryUnknown, false
}
