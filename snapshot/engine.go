package snapshot

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/css"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/dom"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style/cssom"
)

// DefaultTargetCap bounds the element count of a capture when no explicit
// cap is configured.
const DefaultTargetCap = 50

// reservedClassPrefix marks editor-internal classes, which never
// contribute to selector derivation.
const reservedClassPrefix = "lumos-"

// A RuleProvider exposes materialized rules in list order. Both the
// in-memory rule list and the document-backed sheet satisfy it.
type RuleProvider interface {
	Rules() []cssom.Rule
}

// A Measurer reports an element's layout box, typically by asking the
// host rendering surface. Absence of a box (detached or unrendered
// element) is reported, not an error.
type Measurer interface {
	Measure(n *html.Node) (Box, bool)
}

// Engine captures snapshots of a document's style state.
type Engine struct {
	doc     *dom.Document
	rules   RuleProvider
	measure Measurer
	cap     int
	meta    Meta
}

// Option configures an Engine.
type Option func(*Engine)

// WithMeasurer installs a host-provided layout measurer. Without one the
// engine estimates boxes from computed width and height.
func WithMeasurer(m Measurer) Option {
	return func(e *Engine) { e.measure = m }
}

// WithTargetCap bounds the number of elements per capture.
func WithTargetCap(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cap = n
		}
	}
}

// WithMeta attaches capture context (origin URL, viewport, agent) to
// every snapshot the engine produces.
func WithMeta(meta Meta) Option {
	return func(e *Engine) { e.meta = meta }
}

// NewEngine creates a snapshot engine over a document and a rule
// provider. rules may be nil for documents without materialized rules.
func NewEngine(doc *dom.Document, rules RuleProvider, opts ...Option) *Engine {
	e := &Engine{
		doc:   doc,
		rules: rules,
		cap:   DefaultTargetCap,
		meta:  Meta{ViewportWidth: 1280, ViewportHeight: 800},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Capture records the style state of the target elements. Non-element
// nodes are skipped; a target set larger than the engine's cap is
// truncated to the first cap elements.
func (e *Engine) Capture(name string, targets []*html.Node, globalCSS string) *Snapshot {
	if len(targets) > e.cap {
		tracer().Infof("capping snapshot %q to %d of %d targets", name, e.cap, len(targets))
		targets = targets[:e.cap]
	}
	snap := &Snapshot{
		ID:        uuid.NewString(),
		Name:      name,
		Time:      time.Now(),
		GlobalCSS: globalCSS,
		Meta:      e.meta,
	}
	for _, n := range targets {
		if n == nil || n.Type != html.ElementNode {
			continue
		}
		snap.Elements = append(snap.Elements, e.captureElement(n))
	}
	tracer().Debugf("captured snapshot %q with %d elements", name, len(snap.Elements))
	return snap
}

func (e *Engine) captureElement(n *html.Node) ElementSnapshot {
	id, _ := dom.Attr(n, "id")
	classAttr, _ := dom.Attr(n, "class")
	el := ElementSnapshot{
		Selector:  DeriveSelector(n),
		Tag:       n.Data,
		ID:        id,
		ClassAttr: classAttr,
		Computed:  e.computedSubset(n),
		Inline:    inlineSubset(n),
	}
	el.Box = e.boxOf(n, el.Computed)
	return el
}

// DeriveSelector derives the stable selector keying an element in a
// snapshot: #id if the element has one, else tag.firstNonReservedClass,
// else the bare tag. The derivation depends only on the element's
// identity and attributes, never on capture order.
func DeriveSelector(n *html.Node) string {
	if id, ok := dom.Attr(n, "id"); ok && id != "" {
		return "#" + id
	}
	for _, class := range dom.Classes(n) {
		if !strings.HasPrefix(class, reservedClassPrefix) {
			return n.Data + "." + class
		}
	}
	return n.Data
}

// computedSubset resolves the allow-listed properties of an element:
// user-agent defaults, overlaid by matching rules in list order, overlaid
// by the element's inline declarations.
func (e *Engine) computedSubset(n *html.Node) map[string]string {
	computed := make(map[string]string, len(AllowList))
	for _, key := range AllowList {
		computed[key] = style.UserAgentDefaultProperty(n, key).String()
	}
	if e.rules != nil {
		for _, rule := range e.rules.Rules() {
			if !dom.Matches(n, rule.Selector) {
				continue
			}
			style.ParseDeclarations(rule.CSSText).Each(func(key string, value style.Property) {
				overlay(computed, key, value)
			})
		}
	}
	dom.InlineStyles(n).Each(func(key string, value style.Property) {
		overlay(computed, key, value)
	})
	return computed
}

// overlay writes one declaration into the computed subset, expanding
// compound properties (margin, padding) into their per-side keys.
// Properties outside the allow-list are dropped.
func overlay(computed map[string]string, key string, value style.Property) {
	if fields, err := style.SplitCompoundProperty(key, value); err == nil {
		for _, kv := range fields {
			overlay(computed, kv.Key, kv.Value)
		}
		return
	}
	if _, ok := computed[key]; ok {
		computed[key] = value.String()
	}
}

// inlineSubset records the element's own allow-listed inline overrides.
func inlineSubset(n *html.Node) map[string]string {
	allowed := make(map[string]string, len(AllowList))
	for _, key := range AllowList {
		allowed[key] = ""
	}
	inline := make(map[string]string)
	dom.InlineStyles(n).Each(func(key string, value style.Property) {
		if fields, err := style.SplitCompoundProperty(key, value); err == nil {
			for _, kv := range fields {
				if _, ok := allowed[kv.Key]; ok {
					inline[kv.Key] = kv.Value.String()
				}
			}
			return
		}
		if _, ok := allowed[key]; ok {
			inline[key] = value.String()
		}
	})
	if len(inline) == 0 {
		return nil
	}
	return inline
}

// boxOf measures the element's layout box, falling back to an estimate
// from computed width and height when no measurer is installed. Elements
// whose extent cannot be resolved carry no box.
func (e *Engine) boxOf(n *html.Node, computed map[string]string) *Box {
	if e.measure != nil {
		if box, ok := e.measure.Measure(n); ok {
			return &box
		}
		return nil
	}
	w, wok := e.estimate(computed["width"], float64(e.meta.ViewportWidth))
	h, hok := e.estimate(computed["height"], float64(e.meta.ViewportHeight))
	if !wok || !hok {
		return nil
	}
	return &Box{W: w, H: h}
}

func (e *Engine) estimate(value string, base float64) (float64, bool) {
	d, err := css.ParseDimen(value)
	if err != nil {
		return 0, false
	}
	return d.AsPixels(base, 16, float64(e.meta.ViewportWidth))
}
