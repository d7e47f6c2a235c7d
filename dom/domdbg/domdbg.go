/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 EstateFlow Digital. All rights reserved.
*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"testing"

	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/dom"
)

// Outline writes an indented outline of a document's tree to w. Elements
// show tag, id, class list and inline styles; text content is shortened.
// Comments, doctypes and empty text nodes are skipped.
func Outline(doc *dom.Document, w io.Writer) error {
	p := tp.New()
	for ch := doc.Root().FirstChild; ch != nil; ch = ch.NextSibling {
		outline(p, ch)
	}
	_, err := io.WriteString(w, p.String())
	return err
}

// Dump is a helper for testing: it logs the document outline through
// t.Logf, so failing tests show the tree they operated on.
func Dump(doc *dom.Document, t *testing.T) {
	var b strings.Builder
	if err := Outline(doc, &b); err != nil {
		t.Error(err)
		return
	}
	t.Logf("DOM outline =\n%s", b.String())
}

func outline(p tp.Tree, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if text := shortText(n); text != "" {
			p.AddNode(text)
		}
		return
	case html.ElementNode:
		// handled below
	default:
		return
	}
	if n.FirstChild == nil {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		outline(branch, ch)
	}
}

// label renders an element the way a selector would address it, plus its
// inline styles, e.g.
//
//	div#hero.card [color: red]
//
func label(n *html.Node) string {
	var b strings.Builder
	b.WriteString(n.Data)
	if id, ok := dom.Attr(n, "id"); ok && id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	for _, class := range dom.Classes(n) {
		b.WriteString(".")
		b.WriteString(class)
	}
	if styles := dom.InlineStyles(n); styles.Len() > 0 {
		fmt.Fprintf(&b, " [%s]", styles.Serialize())
	}
	return b.String()
}

func shortText(n *html.Node) string {
	s := strings.TrimSpace(n.Data)
	if s == "" {
		return ""
	}
	if len(s) > 10 {
		s = s[:10] + "..."
	}
	return fmt.Sprintf("%q", s)
}
