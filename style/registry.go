package style

import (
	"fmt"
	"strings"
)

// The inspector edits CSS properties from a fixed registry. CSS knows a
// whole lot of properties; we split the editable ones into organisatorial
// groups, which the defaulting code and the snapshot allow-list build on.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey.

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGFont      = "Font"
	PGX         = "X"
)

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//
//	GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

var groupNameFromPropertyKey = map[string]string{
	"margin-top":          PGMargins, // Margins
	"margin-left":         PGMargins,
	"margin-right":        PGMargins,
	"margin-bottom":       PGMargins,
	"padding-top":         PGPadding, // Padding
	"padding-left":        PGPadding,
	"padding-right":       PGPadding,
	"padding-bottom":      PGPadding,
	"border-top-color":    PGBorder, // Border
	"border-left-color":   PGBorder,
	"border-right-color":  PGBorder,
	"border-bottom-color": PGBorder,
	"border-top-width":    PGBorder,
	"border-left-width":   PGBorder,
	"border-right-width":  PGBorder,
	"border-bottom-width": PGBorder,
	"border-top-style":    PGBorder,
	"border-left-style":   PGBorder,
	"border-right-style":  PGBorder,
	"border-bottom-style": PGBorder,
	"border-radius":       PGBorder,
	"width":               PGDimension, // Dimension
	"height":              PGDimension,
	"min-width":           PGDimension,
	"min-height":          PGDimension,
	"max-width":           PGDimension,
	"max-height":          PGDimension,
	"top":                 PGDimension,
	"right":               PGDimension,
	"bottom":              PGDimension,
	"left":                PGDimension,
	"display":             PGDisplay, // Display
	"float":               PGDisplay,
	"visibility":          PGDisplay,
	"position":            PGDisplay,
	"opacity":             PGDisplay,
	"flex-direction":      PGDisplay,
	"justify-content":     PGDisplay,
	"align-items":         PGDisplay,
	"gap":                 PGDisplay,
	"color":               PGColor, // Color
	"background-color":    PGColor,
	"direction":           PGText, // Text
	"text-align":          PGText,
	"text-decoration":     PGText,
	"text-transform":      PGText,
	"white-space":         PGText,
	"word-spacing":        PGText,
	"letter-spacing":      PGText,
	"word-break":          PGText,
	"word-wrap":           PGText,
	"font-family":         PGFont, // Font
	"font-size":           PGFont,
	"font-style":          PGFont,
	"font-weight":         PGFont,
	"line-height":         PGFont,
}

// KnownProperties returns every registered property key, unordered.
func KnownProperties() []string {
	keys := make([]string, 0, len(groupNameFromPropertyKey))
	for k := range groupNameFromPropertyKey {
		keys = append(keys, k)
	}
	return keys
}

// IsCascading returns wether the standard behaviour for a property is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "font") || strings.HasPrefix(key, "text") {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "line-height", "visibility":
		return true
	case "letter-spacing", "white-space", "word-spacing", "word-break", "word-wrap":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("padding", "3px")
//
// will return
//
//	"padding-top"    => "3px"
//	"padding-right"  => "3px"
//	"padding-bottom" => "3px"
//	"padding-left"   => "3px"
//
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	}
	return nil, fmt.Errorf("style: not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("style: expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	switch {
	case l >= 3:
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
		if l == 4 {
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
		} else {
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	case l == 2:
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
	default:
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
