package dom

import "golang.org/x/net/html"

// Handle is a weak, non-owning reference to a live element. A handle does
// not keep an element alive: once the element is released from its
// registry (typically because it was removed from the document), resolving
// the handle reports absence.
//
// The zero Handle is never issued and never resolves.
type Handle uint64

// NoHandle is the zero handle; it never resolves.
const NoHandle Handle = 0

// Registry issues weak handles for a single editing session. It is the
// element-resolution capability history replay depends on: resolve a
// handle, get the live element or a definite "gone".
type Registry struct {
	next    Handle
	forward map[Handle]*html.Node
	reverse map[*html.Node]Handle
}

// NewRegistry creates an empty handle registry.
func NewRegistry() *Registry {
	return &Registry{
		next:    1,
		forward: make(map[Handle]*html.Node),
		reverse: make(map[*html.Node]Handle),
	}
}

// Adopt issues a handle for an element, reusing the existing handle if the
// element is already registered.
func (r *Registry) Adopt(n *html.Node) Handle {
	if n == nil {
		return NoHandle
	}
	if h, ok := r.reverse[n]; ok {
		return h
	}
	h := r.next
	r.next++
	r.forward[h] = n
	r.reverse[n] = h
	return h
}

// Resolve returns the element a handle refers to, or absence if the
// element has been released.
func (r *Registry) Resolve(h Handle) (*html.Node, bool) {
	n, ok := r.forward[h]
	return n, ok
}

// Release invalidates a handle. Releasing an unknown handle is a no-op.
func (r *Registry) Release(h Handle) {
	if n, ok := r.forward[h]; ok {
		delete(r.forward, h)
		delete(r.reverse, n)
	}
}

// ReleaseSubtree invalidates the handles of a node and every descendant.
// Called when a subtree leaves the document, so that history entries
// referring into it resolve to absence from then on.
func (r *Registry) ReleaseSubtree(n *html.Node) {
	if n == nil {
		return
	}
	if h, ok := r.reverse[n]; ok {
		delete(r.forward, h)
		delete(r.reverse, n)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		r.ReleaseSubtree(ch)
	}
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	return len(r.forward)
}
