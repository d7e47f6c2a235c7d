package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/style/cssom"
)

// SheetElementID identifies the one <style> element the inspector manages
// inside a live document. Everything the rule repository materializes ends
// up in this element; the document's own stylesheets are never touched.
const SheetElementID = "lumos-inspector"

// DocumentSheet is the document-backed rule list: an ordered list of
// materialized rules kept serialized, after every change, into the text
// content of the managed <style> element. It supports append and
// delete-at-index only, like the rule lists of live rendering surfaces.
type DocumentSheet struct {
	doc   *Document
	elem  *html.Node
	rules []cssom.Rule
}

// Sheet returns the document's managed rule list, creating the <style>
// element in <head> (or at the root, for fragments without a head) on
// first use.
func (d *Document) Sheet() (*DocumentSheet, error) {
	if d.sheet != nil {
		return d.sheet, nil
	}
	elem := d.findSheetElement()
	if elem == nil {
		parent := d.Head()
		if parent == nil {
			parent = d.root
		}
		elem = &html.Node{
			Type:     html.ElementNode,
			Data:     "style",
			DataAtom: atom.Style,
			Attr:     []html.Attribute{{Key: "id", Val: SheetElementID}},
		}
		parent.AppendChild(elem)
		tracer().Debugf("created managed style element")
	}
	d.sheet = &DocumentSheet{doc: d, elem: elem}
	return d.sheet, nil
}

func (d *Document) findSheetElement() *html.Node {
	var found *html.Node
	walkElements(d.root, func(n *html.Node) {
		if found != nil || n.DataAtom != atom.Style {
			return
		}
		if id, ok := Attr(n, "id"); ok && id == SheetElementID {
			found = n
		}
	})
	return found
}

// AppendRule is part of interface cssom.RuleList.
func (s *DocumentSheet) AppendRule(selector string, cssText string) (int, error) {
	if strings.ContainsAny(selector, "{}") {
		return 0, fmt.Errorf("dom: sheet rejects selector %q", selector)
	}
	s.rules = append(s.rules, cssom.Rule{Selector: selector, CSSText: cssText})
	s.refresh()
	return len(s.rules) - 1, nil
}

// DeleteRule is part of interface cssom.RuleList.
func (s *DocumentSheet) DeleteRule(index int) error {
	if index < 0 || index >= len(s.rules) {
		return fmt.Errorf("dom: sheet rule index %d out of range [0,%d)", index, len(s.rules))
	}
	s.rules = append(s.rules[:index], s.rules[index+1:]...)
	s.refresh()
	return nil
}

// Len is part of interface cssom.RuleList.
func (s *DocumentSheet) Len() int {
	return len(s.rules)
}

// Rules returns a copy of all materialized rules, in list order.
func (s *DocumentSheet) Rules() []cssom.Rule {
	r := make([]cssom.Rule, len(s.rules))
	copy(r, s.rules)
	return r
}

// CSSText returns the current text content of the managed style element.
func (s *DocumentSheet) CSSText() string {
	if s.elem.FirstChild == nil {
		return ""
	}
	return s.elem.FirstChild.Data
}

// refresh re-serializes all rules into the style element's text node.
func (s *DocumentSheet) refresh() {
	var b strings.Builder
	for _, r := range s.rules {
		b.WriteString(r.Selector)
		b.WriteString(" { ")
		b.WriteString(r.CSSText)
		b.WriteString(" }\n")
	}
	for s.elem.FirstChild != nil {
		s.elem.RemoveChild(s.elem.FirstChild)
	}
	if b.Len() > 0 {
		s.elem.AppendChild(&html.Node{Type: html.TextNode, Data: b.String()})
	}
}

var _ cssom.RuleList = &DocumentSheet{}
