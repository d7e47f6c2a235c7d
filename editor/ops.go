package editor

import (
	"fmt"
	"sort"

	"golang.org/x/net/html"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/dom"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/history"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/snapshot"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
)

// SetClassProperty merges one declaration into the class rule for
// selector. The change broadcasts to every matching element through the
// materialized rule.
func (s *Session) SetClassProperty(selector string, key string, value style.Property) error {
	old, _ := s.repo.Properties(selector).Get(key)
	if err := s.repo.SetProperty(selector, key, value); err != nil {
		return err
	}
	s.log.Append(history.Entry{
		Type:        history.ClassStyle,
		Target:      selector,
		Property:    key,
		OldValue:    old,
		NewValue:    value,
		Description: fmt.Sprintf("%s { %s: %s }", selector, key, value),
	})
	return nil
}

// SetClassProperties is the batch variant of SetClassProperty: the rule
// rematerializes once, history records one entry per changed declaration.
func (s *Session) SetClassProperties(selector string, decls map[string]style.Property) error {
	before := s.repo.Properties(selector)
	if err := s.repo.SetProperties(selector, decls); err != nil {
		return err
	}
	keys := make([]string, 0, len(decls))
	for key := range decls {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		old, _ := before.Get(key)
		if old == decls[key] {
			continue
		}
		s.log.Append(history.Entry{
			Type:        history.ClassStyle,
			Target:      selector,
			Property:    key,
			OldValue:    old,
			NewValue:    decls[key],
			Description: fmt.Sprintf("%s { %s: %s }", selector, key, decls[key]),
		})
	}
	return nil
}

// RemoveClassProperty drops one declaration from the class rule.
func (s *Session) RemoveClassProperty(selector string, key string) error {
	old, had := s.repo.Properties(selector).Get(key)
	if err := s.repo.RemoveProperty(selector, key); err != nil {
		return err
	}
	if !had {
		return nil
	}
	s.log.Append(history.Entry{
		Type:        history.ClassStyle,
		Target:      selector,
		Property:    key,
		OldValue:    old,
		NewValue:    style.NullStyle,
		Description: fmt.Sprintf("%s remove %s", selector, key),
	})
	return nil
}

// SetInlineStyle merges one declaration into an element's style
// attribute, affecting this element only.
func (s *Session) SetInlineStyle(el *html.Node, key string, value style.Property) error {
	old, _ := dom.InlineStyles(el).Get(key)
	if err := dom.SetInlineStyle(el, key, value); err != nil {
		return err
	}
	s.log.Append(history.Entry{
		Type:        history.InlineStyle,
		Target:      snapshot.DeriveSelector(el),
		Property:    key,
		OldValue:    old,
		NewValue:    value,
		Handle:      s.doc.Handles().Adopt(el),
		Description: fmt.Sprintf("inline %s: %s", key, value),
	})
	return nil
}

// AddClass adds a class to an element. Adding an already-present class
// records no history entry.
func (s *Session) AddClass(el *html.Node, class string) {
	if !dom.AddClass(el, class) {
		return
	}
	s.log.Append(history.Entry{
		Type:        history.AddClass,
		Target:      snapshot.DeriveSelector(el),
		Property:    class,
		Handle:      s.doc.Handles().Adopt(el),
		Description: "add class " + class,
	})
}

// RemoveClass removes a class from an element.
func (s *Session) RemoveClass(el *html.Node, class string) {
	if !dom.RemoveClass(el, class) {
		return
	}
	s.log.Append(history.Entry{
		Type:        history.RemoveClass,
		Target:      snapshot.DeriveSelector(el),
		Property:    class,
		Handle:      s.doc.Handles().Adopt(el),
		Description: "remove class " + class,
	})
}

// SetAttribute sets an element attribute, replacing an existing value.
func (s *Session) SetAttribute(el *html.Node, key string, value string) {
	old, _ := dom.Attr(el, key)
	dom.SetAttr(el, key, value)
	s.log.Append(history.Entry{
		Type:        history.Attribute,
		Target:      snapshot.DeriveSelector(el),
		Property:    key,
		OldValue:    style.Property(old),
		NewValue:    style.Property(value),
		Handle:      s.doc.Handles().Adopt(el),
		Description: fmt.Sprintf("attribute %s=%q", key, value),
	})
}

// --- Structural edits --------------------------------------------------

// InsertElement parses an HTML fragment and inserts its first node as the
// index-th child of parent. The insertion is fully reversible.
func (s *Session) InsertElement(parent *html.Node, index int, fragment string) (*html.Node, error) {
	parentPath, err := s.doc.PathOf(parent)
	if err != nil {
		return nil, err
	}
	nodes, err := dom.ParseFragment(parent, fragment)
	if err != nil || len(nodes) == 0 {
		return nil, fmt.Errorf("editor: insert element: %w", err)
	}
	node := nodes[0]
	dom.InsertChildAt(parent, index, node)
	markup, err := dom.OuterHTML(node)
	if err != nil {
		return nil, err
	}
	s.log.Append(history.Entry{
		Type:   history.DOMAdd,
		Target: parentPath.String(),
		Structural: &history.Structural{
			ParentPath: parentPath,
			Index:      dom.ChildIndex(node),
			HTML:       markup,
		},
		Description: "insert element",
	})
	return node, nil
}

// RemoveElement detaches an element subtree. The removal is fully
// reversible: undo re-inserts the serialized subtree at its recorded
// position.
func (s *Session) RemoveElement(el *html.Node) error {
	parentPath, err := s.doc.PathOf(el.Parent)
	if err != nil {
		return err
	}
	index := dom.ChildIndex(el)
	markup, err := dom.OuterHTML(el)
	if err != nil {
		return err
	}
	dom.Detach(el)
	s.doc.Handles().ReleaseSubtree(el)
	s.log.Append(history.Entry{
		Type:   history.DOMRemove,
		Target: parentPath.String(),
		Structural: &history.Structural{
			ParentPath: parentPath,
			Index:      index,
			HTML:       markup,
		},
		Description: "remove element",
	})
	return nil
}

// MoveElement re-parents an element to become the index-th child of
// newParent. Source and destination positions are recorded, so undo moves
// the element back.
func (s *Session) MoveElement(el *html.Node, newParent *html.Node, index int) error {
	fromParent, err := s.doc.PathOf(el.Parent)
	if err != nil {
		return err
	}
	fromIndex := dom.ChildIndex(el)
	dom.Detach(el)
	// Destination path is recorded post-detach, matching how replay
	// resolves it.
	toParent, err := s.doc.PathOf(newParent)
	if err != nil {
		dom.InsertChildAt(s.doc.ResolvePath(fromParent), fromIndex, el) // put it back
		return err
	}
	dom.InsertChildAt(newParent, index, el)
	s.log.Append(history.Entry{
		Type:   history.DOMMove,
		Target: toParent.String(),
		Structural: &history.Structural{
			FromParent: fromParent,
			FromIndex:  fromIndex,
			ToParent:   toParent,
			ToIndex:    dom.ChildIndex(el),
		},
		Description: "move element",
	})
	return nil
}
