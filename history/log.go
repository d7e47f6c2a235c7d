package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/dom"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
)

// DefaultCapacity bounds logs created without an explicit capacity.
const DefaultCapacity = 100

// RuleWriter is the slice of the rule repository the log needs to replay
// class-style entries.
type RuleWriter interface {
	SetProperty(selector string, key string, value style.Property) error
	RemoveProperty(selector string, key string) error
}

// Event is what subscribers receive after the log changed.
type Event struct {
	Kind    string // "append", "undo" or "redo"
	Entry   Entry
	CanUndo bool
	CanRedo bool
}

// Listener receives log events. Listeners are called synchronously, after
// the log's state is fully updated; a listener triggering another mutation
// therefore observes consistent state.
type Listener func(Event)

// Log is a bounded undo/redo command log. The cursor indexes the last
// applied entry; -1 means none.
type Log struct {
	entries  []Entry
	cursor   int
	capacity int
	rules    RuleWriter
	doc      *dom.Document
	subs     map[int]Listener
	nextSub  int
}

// NewLog creates a log replaying into the given rule writer and document.
// capacity <= 0 selects DefaultCapacity.
func NewLog(rules RuleWriter, doc *dom.Document, capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		cursor:   -1,
		capacity: capacity,
		rules:    rules,
		doc:      doc,
		subs:     make(map[int]Listener),
	}
}

// Append records an already-applied mutation: everything strictly after
// the cursor (the stale redo branch) is discarded, the entry is given an
// id and timestamp, the log is trimmed to capacity from the front, and the
// cursor points at the new entry.
func (l *Log) Append(e Entry) Entry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	if l.cursor < len(l.entries)-1 {
		tracer().Debugf("discarding %d redo entries", len(l.entries)-1-l.cursor)
		l.entries = l.entries[:l.cursor+1]
	}
	l.entries = append(l.entries, e)
	if len(l.entries) > l.capacity {
		excess := len(l.entries) - l.capacity
		l.entries = l.entries[excess:]
	}
	l.cursor = len(l.entries) - 1
	l.notify("append", e)
	return e
}

// Undo applies the inverse effect of the entry at the cursor and steps the
// cursor back. Returns false if there is nothing to undo. A stale element
// reference degrades the step to a no-op which still consumes the cursor
// position.
func (l *Log) Undo() bool {
	if l.cursor < 0 {
		return false
	}
	e := l.entries[l.cursor]
	l.applyInverse(e)
	l.cursor--
	l.notify("undo", e)
	return true
}

// Redo steps the cursor forward and applies the forward effect of the
// entry it now points at. Returns false if there is nothing to redo.
func (l *Log) Redo() bool {
	if l.cursor >= len(l.entries)-1 {
		return false
	}
	l.cursor++
	e := l.entries[l.cursor]
	l.applyForward(e)
	l.notify("redo", e)
	return true
}

// CanUndo reports wether an entry is available to undo.
func (l *Log) CanUndo() bool {
	return l.cursor >= 0
}

// CanRedo reports wether an entry is available to redo.
func (l *Log) CanRedo() bool {
	return l.cursor < len(l.entries)-1
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Cursor returns the index of the last applied entry, -1 for none.
func (l *Log) Cursor() int {
	return l.cursor
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *Log) Entries() []Entry {
	e := make([]Entry, len(l.entries))
	copy(e, l.entries)
	return e
}

// Subscribe registers a listener and returns its disposer.
func (l *Log) Subscribe(fn Listener) func() {
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	return func() {
		delete(l.subs, id)
	}
}

func (l *Log) notify(kind string, e Entry) {
	ev := Event{Kind: kind, Entry: e, CanUndo: l.CanUndo(), CanRedo: l.CanRedo()}
	for _, fn := range l.subs {
		fn(ev)
	}
}
