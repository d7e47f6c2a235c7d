package dom

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// A NodePath addresses a node by its chain of child indexes from the
// document root (all child nodes counted, including text). It stays valid
// as long as the structure above and before the node is unchanged, which
// makes it the right currency for structural undo: paths are recorded at
// mutation time and re-resolved against the then-current tree on replay.
type NodePath []int

func (p NodePath) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return "/" + strings.Join(parts, "/")
}

// Clone returns a copy of the path.
func (p NodePath) Clone() NodePath {
	c := make(NodePath, len(p))
	copy(c, p)
	return c
}

// ParseNodePath parses the string form produced by NodePath.String.
func ParseNodePath(s string) (NodePath, error) {
	s = strings.TrimPrefix(s, "/")
	if s == "" {
		return NodePath{}, nil
	}
	parts := strings.Split(s, "/")
	path := make(NodePath, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("dom: malformed node path %q", s)
		}
		path[i] = idx
	}
	return path, nil
}

// PathOf computes the path of a node relative to the document root.
// Returns an error if the node is not attached to this document.
func (d *Document) PathOf(n *html.Node) (NodePath, error) {
	var path NodePath
	for n != nil && n != d.root {
		parent := n.Parent
		if parent == nil {
			return nil, fmt.Errorf("dom: node not attached to document")
		}
		path = append(NodePath{childIndex(n)}, path...)
		n = parent
	}
	if n != d.root {
		return nil, fmt.Errorf("dom: node not attached to document")
	}
	return path, nil
}

// ResolvePath walks a path down from the document root. Returns nil if the
// path no longer resolves (structure changed since it was recorded).
func (d *Document) ResolvePath(path NodePath) *html.Node {
	n := d.root
	for _, idx := range path {
		n = childAt(n, idx)
		if n == nil {
			return nil
		}
	}
	return n
}

// ChildIndex returns the node's position among its parent's children
// (all node types counted), or -1 for a detached node.
func ChildIndex(n *html.Node) int {
	if n == nil || n.Parent == nil {
		return -1
	}
	return childIndex(n)
}

func childIndex(n *html.Node) int {
	i := 0
	for sib := n.Parent.FirstChild; sib != nil; sib = sib.NextSibling {
		if sib == n {
			return i
		}
		i++
	}
	return -1
}

func childAt(n *html.Node, index int) *html.Node {
	i := 0
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if i == index {
			return ch
		}
		i++
	}
	return nil
}

// InsertChildAt attaches a detached node as the index-th child of parent.
// An index at or beyond the current child count appends.
func InsertChildAt(parent *html.Node, index int, n *html.Node) {
	before := childAt(parent, index)
	parent.InsertBefore(n, before) // before == nil appends
}

// Detach removes a node from its parent, keeping the subtree intact.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
