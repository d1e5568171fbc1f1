package css

import "strings"

// Category is the declaration-ordering group a property belongs to.
// The rank order is the one declarations must follow inside a ruleset.
type Category int

const (
	CategoryPositioning Category = iota
	CategoryBoxModel
	CategoryTypography
	CategoryVisual
	CategoryMisc
)

func (c Category) String() string {
	switch c {
	case CategoryPositioning:
		return "Positioning"
	case CategoryBoxModel:
		return "Box-model"
	case CategoryTypography:
		return "Typography"
	case CategoryVisual:
		return "Visual"
	default:
		return "Misc"
	}
}

// propertyCategories is the fixed property lookup table. Vendor
// prefixes are stripped before lookup; unknown properties are Misc.
var propertyCategories = map[string]Category{
	// Positioning
	"position": CategoryPositioning,
	"top":      CategoryPositioning,
	"right":    CategoryPositioning,
	"bottom":   CategoryPositioning,
	"left":     CategoryPositioning,
	"z-index":  CategoryPositioning,

	// Box model
	"display":        CategoryBoxModel,
	"float":          CategoryBoxModel,
	"clear":          CategoryBoxModel,
	"box-sizing":     CategoryBoxModel,
	"width":          CategoryBoxModel,
	"min-width":      CategoryBoxModel,
	"max-width":      CategoryBoxModel,
	"height":         CategoryBoxModel,
	"min-height":     CategoryBoxModel,
	"max-height":     CategoryBoxModel,
	"margin":         CategoryBoxModel,
	"margin-top":     CategoryBoxModel,
	"margin-right":   CategoryBoxModel,
	"margin-bottom":  CategoryBoxModel,
	"margin-left":    CategoryBoxModel,
	"padding":        CategoryBoxModel,
	"padding-top":    CategoryBoxModel,
	"padding-right":  CategoryBoxModel,
	"padding-bottom": CategoryBoxModel,
	"padding-left":   CategoryBoxModel,
	"overflow":       CategoryBoxModel,
	"overflow-x":     CategoryBoxModel,
	"overflow-y":     CategoryBoxModel,
	"flex":           CategoryBoxModel,
	"flex-grow":      CategoryBoxModel,
	"flex-shrink":    CategoryBoxModel,
	"flex-basis":     CategoryBoxModel,
	"flex-direction": CategoryBoxModel,
	"flex-wrap":      CategoryBoxModel,
	"grid":           CategoryBoxModel,
	"gap":            CategoryBoxModel,

	// Typography
	"font":            CategoryTypography,
	"font-family":     CategoryTypography,
	"font-size":       CategoryTypography,
	"font-style":      CategoryTypography,
	"font-weight":     CategoryTypography,
	"line-height":     CategoryTypography,
	"letter-spacing":  CategoryTypography,
	"text-align":      CategoryTypography,
	"text-decoration": CategoryTypography,
	"text-indent":     CategoryTypography,
	"text-transform":  CategoryTypography,
	"white-space":     CategoryTypography,
	"word-break":      CategoryTypography,
	"word-wrap":       CategoryTypography,

	// Visual
	"color":               CategoryVisual,
	"background":          CategoryVisual,
	"background-color":    CategoryVisual,
	"background-image":    CategoryVisual,
	"background-position": CategoryVisual,
	"background-repeat":   CategoryVisual,
	"background-size":     CategoryVisual,
	"border":              CategoryVisual,
	"border-top":          CategoryVisual,
	"border-right":        CategoryVisual,
	"border-bottom":       CategoryVisual,
	"border-left":         CategoryVisual,
	"border-color":        CategoryVisual,
	"border-style":        CategoryVisual,
	"border-width":        CategoryVisual,
	"border-radius":       CategoryVisual,
	"box-shadow":          CategoryVisual,
	"outline":             CategoryVisual,
	"opacity":             CategoryVisual,
	"visibility":          CategoryVisual,
}

// CategoryOf returns the ordering category of a property name.
func CategoryOf(property string) Category {
	name := strings.ToLower(strings.TrimSpace(property))
	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name, prefix)
			break
		}
	}
	if cat, ok := propertyCategories[name]; ok {
		return cat
	}
	return CategoryMisc
}

// lengthProperties are properties whose zero value is legal without a
// unit, used by the zero-unit rule.
var lengthProperties = map[string]bool{
	"top": true, "right": true, "bottom": true, "left": true,
	"width": true, "min-width": true, "max-width": true,
	"height": true, "min-height": true, "max-height": true,
	"margin": true, "margin-top": true, "margin-right": true,
	"margin-bottom": true, "margin-left": true,
	"padding": true, "padding-top": true, "padding-right": true,
	"padding-bottom": true, "padding-left": true,
	"text-indent": true, "letter-spacing": true, "gap": true,
	"border-width": true, "outline-width": true, "border-radius": true,
	"flex-basis": true,
}

// IsLengthProperty reports whether a bare 0 is spec-legal for the
// property, after vendor-prefix stripping.
func IsLengthProperty(property string) bool {
	name := strings.ToLower(strings.TrimSpace(property))
	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		name = strings.TrimPrefix(name, prefix)
	}
	return lengthProperties[name]
}
