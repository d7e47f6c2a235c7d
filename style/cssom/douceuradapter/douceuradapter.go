/*
Package douceuradapter feeds CSS text into the inspector's rule cache,
using the douceur parser.

The inspector itself is not a CSS parser: its repository only ever
serializes its own cache. Importing existing style text (a document's
<style> elements, a persisted export, a snapshot's global CSS) is the one
place parsing is needed, and it is confined to this package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package douceuradapter

import (
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style/cssom"
)

// ParseDecls parses a flat CSS stylesheet into selector → declarations.
// At-rules and nested rules are skipped; a selector appearing twice merges
// with last-write-wins, matching cascade order of a flat sheet.
func ParseDecls(cssText string) (map[string]*style.Declarations, error) {
	sheet, err := parser.Parse(cssText)
	if err != nil {
		return nil, err
	}
	decls := make(map[string]*style.Declarations)
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		for _, sel := range r.Selectors {
			d, ok := decls[sel]
			if !ok {
				d = style.NewDeclarations()
				decls[sel] = d
			}
			for _, decl := range r.Declarations {
				d.Set(decl.Property, style.Property(decl.Value))
			}
		}
	}
	return decls, nil
}

// ImportInto parses CSS text and merges every recognized declaration into
// the repository. Declarations the repository rejects (unknown properties,
// malformed values) are skipped, not fatal: importing a real-world sheet
// into an editor which only manages a fixed property set is inherently
// lossy. Returns the number of declarations imported.
func ImportInto(repo *cssom.Repository, cssText string) (int, error) {
	decls, err := ParseDecls(cssText)
	if err != nil {
		return 0, err
	}
	imported := 0
	for sel, d := range decls {
		d.Each(func(key string, value style.Property) {
			if err := repo.SetProperty(sel, key, value); err == nil {
				imported++
			}
		})
	}
	return imported, nil
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the concatenated
// selector → declarations of all of them. Style elements whose id is in
// excludeIDs are skipped, so callers can leave out sheets they manage
// themselves.
func ExtractStyleElements(htmldoc *html.Node, excludeIDs ...string) map[string]*style.Declarations {
	all := make(map[string]*style.Declarations)
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	for _, root := range []*html.Node{head, body} {
		if root == nil {
			continue
		}
		for ch := root.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.DataAtom != atom.Style || ch.FirstChild == nil || excluded(ch, excludeIDs) {
				continue
			}
			decls, err := ParseDecls(ch.FirstChild.Data)
			if err != nil {
				continue // skip broken style elements
			}
			for sel, d := range decls {
				if have, ok := all[sel]; ok {
					d.Each(func(k string, v style.Property) { have.Set(k, v) })
				} else {
					all[sel] = d
				}
			}
		}
	}
	return all
}

func excluded(styleElement *html.Node, ids []string) bool {
	for _, a := range styleElement.Attr {
		if a.Key != "id" {
			continue
		}
		for _, id := range ids {
			if a.Val == id {
				return true
			}
		}
	}
	return false
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
