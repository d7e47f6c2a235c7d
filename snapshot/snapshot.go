package snapshot

import (
	"encoding/json"
	"time"
)

// AllowList is the fixed set of computed properties a snapshot records,
// in capture order. Keeping the list fixed is what makes snapshots from
// different points in time comparable.
var AllowList = []string{
	"display", "position", "width", "height",
	"margin-top", "margin-right", "margin-bottom", "margin-left",
	"padding-top", "padding-right", "padding-bottom", "padding-left",
	"color", "background-color", "opacity",
	"font-family", "font-size", "font-weight", "line-height", "text-align",
}

// Box is an element's layout box in device-independent pixels.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// ElementSnapshot is the captured state of one element. Selector is
// derived deterministically from the element's identity (id, first
// non-reserved class, tag) and keys the element during comparison.
type ElementSnapshot struct {
	Selector  string            `json:"selector"`
	Tag       string            `json:"tag"`
	ID        string            `json:"id,omitempty"`
	ClassAttr string            `json:"class,omitempty"`
	Computed  map[string]string `json:"computed"`
	Inline    map[string]string `json:"inline,omitempty"`
	Box       *Box              `json:"box,omitempty"`
}

// Meta describes the capture context of a snapshot.
type Meta struct {
	OriginURL      string `json:"origin,omitempty"`
	ViewportWidth  int    `json:"viewportWidth,omitempty"`
	ViewportHeight int    `json:"viewportHeight,omitempty"`
	Agent          string `json:"agent,omitempty"`
}

// Snapshot is a captured, comparable record of a bounded set of elements'
// style state at one instant.
type Snapshot struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Time      time.Time         `json:"time"`
	Elements  []ElementSnapshot `json:"elements"`
	GlobalCSS string            `json:"globalCss,omitempty"`
	Meta      Meta              `json:"meta"`
}

// Serialize renders a snapshot as structured text.
func Serialize(snap *Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// Deserialize parses a serialized snapshot. Corrupt input fails closed:
// the result is an empty snapshot, never an error thrown at the caller.
func Deserialize(data []byte) *Snapshot {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		tracer().Errorf("discarding corrupt snapshot: %v", err)
		return &Snapshot{}
	}
	return &snap
}
