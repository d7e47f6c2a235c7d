package editor

import (
	"golang.org/x/net/html"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/dom"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/history"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/snapshot"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/store"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style/cssom"
)

// Session is the authoritative editing context for one document.
type Session struct {
	doc    *dom.Document
	repo   *cssom.Repository
	log    *history.Log
	engine *snapshot.Engine
	kv     store.KV
	snaps  *store.SnapshotStore
}

type config struct {
	capacity int
	kv       store.KV
	list     cssom.RuleList
	measurer snapshot.Measurer
	snapCap  int
	meta     snapshot.Meta
}

// Option configures a Session.
type Option func(*config)

// WithHistoryCapacity bounds the undo/redo log.
func WithHistoryCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithStore selects the persistence backend. Default is an in-memory
// store, i.e. persistence scoped to the session.
func WithStore(kv store.KV) Option {
	return func(c *config) { c.kv = kv }
}

// WithRuleList overrides the materialization target. Default is the
// document's managed style element.
func WithRuleList(list cssom.RuleList) Option {
	return func(c *config) { c.list = list }
}

// WithMeasurer installs a host-provided layout measurer for snapshots.
func WithMeasurer(m snapshot.Measurer) Option {
	return func(c *config) { c.measurer = m }
}

// WithSnapshotCap bounds the element count of snapshot captures.
func WithSnapshotCap(n int) Option {
	return func(c *config) { c.snapCap = n }
}

// WithMeta attaches capture context to every snapshot of the session.
func WithMeta(meta snapshot.Meta) Option {
	return func(c *config) { c.meta = meta }
}

// New creates a session for a document. Without options, rules
// materialize into the document's managed style element, history is
// bounded by history.DefaultCapacity, and persistence is in-memory.
func New(doc *dom.Document, opts ...Option) (*Session, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.list == nil {
		sheet, err := doc.Sheet()
		if err != nil {
			return nil, err
		}
		c.list = sheet
	}
	if c.kv == nil {
		c.kv = store.NewMemKV()
	}
	repo := cssom.NewRepository(c.list)
	var engineOpts []snapshot.Option
	if c.measurer != nil {
		engineOpts = append(engineOpts, snapshot.WithMeasurer(c.measurer))
	}
	if c.snapCap > 0 {
		engineOpts = append(engineOpts, snapshot.WithTargetCap(c.snapCap))
	}
	if c.meta != (snapshot.Meta{}) {
		engineOpts = append(engineOpts, snapshot.WithMeta(c.meta))
	}
	rules, _ := c.list.(snapshot.RuleProvider)
	session := &Session{
		doc:    doc,
		repo:   repo,
		log:    history.NewLog(repo, doc, c.capacity),
		engine: snapshot.NewEngine(doc, rules, engineOpts...),
		kv:     c.kv,
		snaps:  store.NewSnapshotStore(c.kv),
	}
	tracer().Infof("editing session created")
	return session, nil
}

// Document returns the session's live document.
func (s *Session) Document() *dom.Document {
	return s.doc
}

// Rules returns the session's rule repository.
func (s *Session) Rules() *cssom.Repository {
	return s.repo
}

// History returns the session's undo/redo log.
func (s *Session) History() *history.Log {
	return s.log
}

// Snapshots returns the session's snapshot store.
func (s *Session) Snapshots() *store.SnapshotStore {
	return s.snaps
}

// Undo reverses the last applied mutation.
func (s *Session) Undo() bool {
	return s.log.Undo()
}

// Redo re-applies the last undone mutation.
func (s *Session) Redo() bool {
	return s.log.Redo()
}

// Subscribe registers a history listener and returns its disposer.
func (s *Session) Subscribe(fn history.Listener) func() {
	return s.log.Subscribe(fn)
}

// Select returns all elements matching a CSS selector.
func (s *Session) Select(selector string) ([]*html.Node, error) {
	return s.doc.Query(selector)
}
