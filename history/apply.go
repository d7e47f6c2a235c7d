package history

import (
	"golang.org/x/net/html"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/dom"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
)

// applyForward re-applies an entry's effect (redo direction).
func (l *Log) applyForward(e Entry) {
	switch e.Type {
	case ClassStyle:
		l.writeRule(e.Target, e.Property, e.NewValue)
	case InlineStyle:
		if el, ok := l.resolve(e); ok {
			l.writeInline(el, e.Property, e.NewValue)
		}
	case AddClass:
		if el, ok := l.resolve(e); ok {
			dom.AddClass(el, e.Property)
		}
	case RemoveClass:
		if el, ok := l.resolve(e); ok {
			dom.RemoveClass(el, e.Property)
		}
	case Attribute:
		if el, ok := l.resolve(e); ok {
			l.writeAttr(el, e.Property, e.NewValue)
		}
	case DOMAdd:
		l.insertSubtree(e.Structural)
	case DOMRemove:
		l.removeSubtree(e.Structural)
	case DOMMove:
		l.moveSubtree(e.Structural, false)
	default:
		tracer().Errorf("cannot redo entry of unknown type %q", e.Type)
	}
}

// applyInverse reverses an entry's effect (undo direction): old value
// replaces new value, the class-add/remove direction flips, structural
// changes are undone at their recorded positions.
func (l *Log) applyInverse(e Entry) {
	switch e.Type {
	case ClassStyle:
		l.writeRule(e.Target, e.Property, e.OldValue)
	case InlineStyle:
		if el, ok := l.resolve(e); ok {
			l.writeInline(el, e.Property, e.OldValue)
		}
	case AddClass:
		if el, ok := l.resolve(e); ok {
			dom.RemoveClass(el, e.Property)
		}
	case RemoveClass:
		if el, ok := l.resolve(e); ok {
			dom.AddClass(el, e.Property)
		}
	case Attribute:
		if el, ok := l.resolve(e); ok {
			l.writeAttr(el, e.Property, e.OldValue)
		}
	case DOMAdd:
		l.removeSubtree(e.Structural)
	case DOMRemove:
		l.insertSubtree(e.Structural)
	case DOMMove:
		l.moveSubtree(e.Structural, true)
	default:
		tracer().Errorf("cannot undo entry of unknown type %q", e.Type)
	}
}

// resolve turns an entry's weak handle into a live element. Absence is the
// documented no-op path: informational, not an error.
func (l *Log) resolve(e Entry) (*html.Node, bool) {
	el, ok := l.doc.Handles().Resolve(e.Handle)
	if !ok {
		tracer().P("entry", string(e.Type)).Infof(
			"element for %q no longer retained, step is a no-op", e.Target)
	}
	return el, ok
}

// An empty value means "property was not set": replaying it removes the
// declaration instead of writing an empty one.
func (l *Log) writeRule(selector, key string, value style.Property) {
	var err error
	if value.IsEmpty() {
		err = l.rules.RemoveProperty(selector, key)
	} else {
		err = l.rules.SetProperty(selector, key, value)
	}
	if err != nil {
		tracer().P("selector", selector).Errorf("replay class-style: %v", err)
	}
}

func (l *Log) writeInline(el *html.Node, key string, value style.Property) {
	if value.IsEmpty() {
		dom.RemoveInlineStyle(el, key)
		return
	}
	if err := dom.SetInlineStyle(el, key, value); err != nil {
		tracer().Errorf("replay inline-style: %v", err)
	}
}

func (l *Log) writeAttr(el *html.Node, key string, value style.Property) {
	if value.IsEmpty() {
		dom.RemoveAttr(el, key)
		return
	}
	dom.SetAttr(el, key, value.String())
}

// --- Structural replay -------------------------------------------------

func (l *Log) insertSubtree(s *Structural) {
	if s == nil {
		return
	}
	parent := l.doc.ResolvePath(s.ParentPath)
	if parent == nil {
		tracer().Infof("parent path %s no longer resolves, step is a no-op", s.ParentPath)
		return
	}
	nodes, err := dom.ParseFragment(parent, s.HTML)
	if err != nil || len(nodes) == 0 {
		tracer().Errorf("re-insert subtree: %v", err)
		return
	}
	// A recorded subtree serializes to a single root node.
	dom.InsertChildAt(parent, s.Index, nodes[0])
}

func (l *Log) removeSubtree(s *Structural) {
	if s == nil {
		return
	}
	parent := l.doc.ResolvePath(s.ParentPath)
	if parent == nil {
		tracer().Infof("parent path %s no longer resolves, step is a no-op", s.ParentPath)
		return
	}
	node := l.doc.ResolvePath(append(s.ParentPath.Clone(), s.Index))
	if node == nil {
		tracer().Infof("child %d under %s no longer resolves, step is a no-op",
			s.Index, s.ParentPath)
		return
	}
	dom.Detach(node)
	l.doc.Handles().ReleaseSubtree(node)
}

// moveSubtree replays a move; inverse swaps source and destination.
func (l *Log) moveSubtree(s *Structural, inverse bool) {
	if s == nil {
		return
	}
	fromParent, fromIndex := s.FromParent, s.FromIndex
	toParent, toIndex := s.ToParent, s.ToIndex
	if inverse {
		fromParent, fromIndex, toParent, toIndex = toParent, toIndex, fromParent, fromIndex
	}
	src := l.doc.ResolvePath(append(fromParent.Clone(), fromIndex))
	if src == nil {
		tracer().Infof("move source no longer resolves, step is a no-op")
		return
	}
	// The destination path was recorded against the tree without the moved
	// element: detaching may shift sibling indexes along that path, so the
	// source has to come out before the destination resolves.
	origParent, origIndex := src.Parent, dom.ChildIndex(src)
	dom.Detach(src)
	dst := l.doc.ResolvePath(toParent)
	if dst == nil {
		dom.InsertChildAt(origParent, origIndex, src) // put it back
		tracer().Infof("move destination no longer resolves, step is a no-op")
		return
	}
	dom.InsertChildAt(dst, toIndex, src)
}
