package history

import (
	"time"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/dom"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
)

// EntryType discriminates the reversible command kinds the log replays.
type EntryType string

// The entry types of the log. ClassStyle routes through the rule
// repository; InlineStyle, AddClass, RemoveClass and Attribute mutate a
// weakly referenced element; the DOM* types reverse structural changes.
const (
	ClassStyle  EntryType = "class-style"
	InlineStyle EntryType = "inline-style"
	AddClass    EntryType = "add-class"
	RemoveClass EntryType = "remove-class"
	DOMAdd      EntryType = "dom-add"
	DOMRemove   EntryType = "dom-remove"
	DOMMove     EntryType = "dom-move"
	Attribute   EntryType = "attribute"
)

// Entry is one reversible command. ID and Time are assigned by the log on
// append.
type Entry struct {
	ID          string
	Type        EntryType
	Time        time.Time
	Target      string // selector, class name, or node path — depends on Type
	Property    string // property key, class name, or attribute key
	OldValue    style.Property
	NewValue    style.Property
	Handle      dom.Handle  // weak element reference; NoHandle for class-style
	Structural  *Structural // payload for DOMAdd/DOMRemove/DOMMove
	Description string
}

// Describe returns a short label for the entry, suitable for display in
// an undo/redo menu.
func (e Entry) Describe() string {
	if e.Description != "" {
		return e.Description
	}
	return string(e.Type) + " " + e.Target
}

// Structural carries what structural undo needs to re-apply or reverse a
// tree mutation: where the subtree was (or goes), and its serialized form.
// Paths are resolved against the then-current tree on every replay.
type Structural struct {
	ParentPath dom.NodePath // parent of the added/removed subtree
	Index      int          // child index within ParentPath
	HTML       string       // serialized subtree, for re-insertion
	FromParent dom.NodePath // DOMMove only
	FromIndex  int
	ToParent   dom.NodePath
	ToIndex    int
}
