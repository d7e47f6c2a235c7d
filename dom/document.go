package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
)

// Document is the live editing surface: a parsed HTML tree plus the
// session-scoped element registry.
type Document struct {
	root    *html.Node
	handles *Registry
	sheet   *DocumentSheet
}

// ParseHTML parses an HTML document from text.
func ParseHTML(input string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return FromNode(root), nil
}

// FromNode wraps an already-parsed HTML tree.
func FromNode(root *html.Node) *Document {
	return &Document{
		root:    root,
		handles: NewRegistry(),
	}
}

// Root returns the document root node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Handles returns the document's weak-handle registry.
func (d *Document) Handles() *Registry {
	return d.handles
}

// HTML serializes the whole document.
func (d *Document) HTML() (string, error) {
	return OuterHTML(d.root)
}

// Body returns the document's <body> element, or nil.
func (d *Document) Body() *html.Node {
	return findByAtom(d.root, atom.Body)
}

// Head returns the document's <head> element, or nil.
func (d *Document) Head() *html.Node {
	return findByAtom(d.root, atom.Head)
}

func findByAtom(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findByAtom(ch, a); r != nil {
			return r
		}
	}
	return nil
}

// --- Attributes --------------------------------------------------------

// Attr returns the value of an attribute, and wether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, replacing an existing value.
func SetAttr(n *html.Node, key, value string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr drops an attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// --- Class list --------------------------------------------------------

// Classes returns the element's class list in attribute order.
func Classes(n *html.Node) []string {
	c, _ := Attr(n, "class")
	return strings.Fields(c)
}

// HasClass checks membership in the element's class list.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends a class to the element's class list. Adding a class
// that is already present is a no-op; reports wether the list changed.
func AddClass(n *html.Node, class string) bool {
	class = strings.TrimSpace(class)
	if class == "" || HasClass(n, class) {
		return false
	}
	classes := append(Classes(n), class)
	SetAttr(n, "class", strings.Join(classes, " "))
	return true
}

// RemoveClass removes a class from the element's class list; reports
// wether the list changed. An emptied class attribute is dropped.
func RemoveClass(n *html.Node, class string) bool {
	classes := Classes(n)
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(classes) {
		return false
	}
	if len(kept) == 0 {
		RemoveAttr(n, "class")
	} else {
		SetAttr(n, "class", strings.Join(kept, " "))
	}
	return true
}

// --- Inline styles -----------------------------------------------------

// InlineStyles parses the element's style attribute into declarations.
func InlineStyles(n *html.Node) *style.Declarations {
	s, ok := Attr(n, "style")
	if !ok {
		return style.NewDeclarations()
	}
	return style.ParseDeclarations(s)
}

// SetInlineStyle merges one declaration into the element's style
// attribute, preserving unrelated declarations.
func SetInlineStyle(n *html.Node, key string, value style.Property) error {
	if err := style.ValidateDeclaration(key, value); err != nil {
		return err
	}
	decls := InlineStyles(n)
	decls.Set(key, value)
	SetAttr(n, "style", decls.Serialize())
	return nil
}

// RemoveInlineStyle drops one declaration from the element's style
// attribute. An emptied attribute is removed entirely.
func RemoveInlineStyle(n *html.Node, key string) {
	decls := InlineStyles(n)
	if _, ok := decls.Remove(key); !ok {
		return
	}
	if decls.Len() == 0 {
		RemoveAttr(n, "style")
		return
	}
	SetAttr(n, "style", decls.Serialize())
}

// --- Subtree serialization ---------------------------------------------

// OuterHTML serializes a node including its children.
func OuterHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("dom: render: %w", err)
	}
	return buf.String(), nil
}

// ParseFragment parses an HTML fragment in the context of the given parent
// element and returns the resulting nodes, detached.
func ParseFragment(parent *html.Node, fragment string) ([]*html.Node, error) {
	context := parent
	if context == nil || context.Type != html.ElementNode {
		context = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}
	return nodes, nil
}
