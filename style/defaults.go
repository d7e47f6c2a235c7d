package style

import (
	"golang.org/x/net/html"
)

// In real-world browsers the values below are the user-agent CSS values.
// The snapshot engine falls back to them for every allow-listed property
// an element receives neither from a rule nor from its style attribute.
var userAgentDefaults = map[string]Property{
	"margin-top":          "0",
	"margin-left":         "0",
	"margin-right":        "0",
	"margin-bottom":       "0",
	"padding-top":         "0",
	"padding-left":        "0",
	"padding-right":       "0",
	"padding-bottom":      "0",
	"border-top-color":    "black",
	"border-left-color":   "black",
	"border-right-color":  "black",
	"border-bottom-color": "black",
	"border-top-width":    "medium",
	"border-left-width":   "medium",
	"border-right-width":  "medium",
	"border-bottom-width": "medium",
	"border-top-style":    "none",
	"border-left-style":   "none",
	"border-right-style":  "none",
	"border-bottom-style": "none",
	"border-radius":       "0",
	"width":               "auto",
	"height":              "auto",
	"min-width":           "none",
	"min-height":          "none",
	"max-width":           "none",
	"max-height":          "none",
	"top":                 "auto",
	"right":               "auto",
	"bottom":              "auto",
	"left":                "auto",
	"float":               "none",
	"visibility":          "visible",
	"position":            "static",
	"opacity":             "1",
	"flex-direction":      "row",
	"justify-content":     "normal",
	"align-items":         "normal",
	"gap":                 "normal",
	"color":               "default",
	"background-color":    "default",
	"direction":           "ltr",
	"text-align":          "start",
	"text-decoration":     "none",
	"text-transform":      "none",
	"white-space":         "normal",
	"word-spacing":        "normal",
	"letter-spacing":      "normal",
	"word-break":          "normal",
	"word-wrap":           "normal",
	"font-family":         "default",
	"font-size":           "medium",
	"font-style":          "normal",
	"font-weight":         "normal",
	"line-height":         "normal",
}

// UserAgentDefaultProperty returns the user-agent default property for a
// given key. The `display` default depends on the element.
func UserAgentDefaultProperty(node *html.Node, key string) Property {
	if key == "display" {
		return DisplayPropertyForHTMLNode(node)
	}
	if p, ok := userAgentDefaults[key]; ok {
		return p
	}
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for
// an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "style", "script":
		return "none"
	case "html", "article", "aside", "body", "div", "footer", "header",
		"h1", "h2", "h3", "h4", "h5", "h6", "main", "nav", "ol", "p",
		"section", "ul", "li", "form":
		return "block"
	case "a", "b", "em", "i", "img", "label", "span", "strong", "button",
		"input", "code", "small":
		return "inline"
	case "table":
		return "table"
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: block",
		node.Data, node.Type)
	return "block"
}
