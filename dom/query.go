package dom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query returns all elements under the document root matching a CSS
// selector (selector groups allowed), in document order. A malformed
// selector yields an error, never a panic.
func (d *Document) Query(selector string) ([]*html.Node, error) {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: selector %q: %w", selector, err)
	}
	var matches []*html.Node
	walkElements(d.root, func(n *html.Node) {
		if group.Match(n) {
			matches = append(matches, n)
		}
	})
	return matches, nil
}

// First returns the first element matching selector, or nil.
func (d *Document) First(selector string) (*html.Node, error) {
	matches, err := d.Query(selector)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// Matches reports wether a single element matches a CSS selector.
func Matches(n *html.Node, selector string) bool {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return false
	}
	return group.Match(n)
}

func walkElements(n *html.Node, visit func(*html.Node)) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		visit(n)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		walkElements(ch, visit)
	}
}
