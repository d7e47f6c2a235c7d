package snapshot

// Change is one differing property of an element present in both
// snapshots.
type Change struct {
	Property string `json:"property"`
	Before   string `json:"before"`
	After    string `json:"after"`
}

// Modification collects the changes of one element.
type Modification struct {
	Selector string           `json:"selector"`
	Element  *ElementSnapshot `json:"element,omitempty"`
	Changes  []Change         `json:"changes"`
}

// Diff is the structural difference between two snapshots, keyed by
// derived selector.
type Diff struct {
	Added    []ElementSnapshot `json:"added"`
	Removed  []ElementSnapshot `json:"removed"`
	Modified []Modification    `json:"modified"`
}

// IsEmpty reports wether the diff records no difference at all.
func (d *Diff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Modified) == 0
}

// Compare computes the structural diff between two snapshots. Both sides
// are indexed by derived selector: selectors only in before turn up as
// removed, selectors only in after as added, selectors on both sides are
// compared property-by-property over the allow-list. Elements with no
// differing property are left out of Modified.
//
// Duplicate derived selectors within one snapshot collapse to the last
// occurrence.
//
// Compare is directionally symmetric: swapping the arguments swaps Added
// and Removed and swaps Before and After in every change record.
func Compare(before, after *Snapshot) *Diff {
	diff := &Diff{}
	if before == nil {
		before = &Snapshot{}
	}
	if after == nil {
		after = &Snapshot{}
	}
	beforeIx := index(before)
	afterIx := index(after)
	seenBefore := make(map[string]bool)
	for _, el := range before.Elements {
		sel := el.Selector
		if seenBefore[sel] {
			continue
		}
		seenBefore[sel] = true
		if _, ok := afterIx[sel]; !ok {
			diff.Removed = append(diff.Removed, *beforeIx[sel])
		}
	}
	seen := make(map[string]bool)
	for _, el := range after.Elements {
		sel := el.Selector
		if seen[sel] {
			continue
		}
		seen[sel] = true
		b, ok := beforeIx[sel]
		if !ok {
			diff.Added = append(diff.Added, *afterIx[sel])
			continue
		}
		a := afterIx[sel]
		if changes := compareElements(b, a); len(changes) > 0 {
			diff.Modified = append(diff.Modified, Modification{
				Selector: sel,
				Element:  a,
				Changes:  changes,
			})
		}
	}
	return diff
}

// index keys a snapshot's elements by derived selector, last write wins.
func index(snap *Snapshot) map[string]*ElementSnapshot {
	ix := make(map[string]*ElementSnapshot, len(snap.Elements))
	for i := range snap.Elements {
		ix[snap.Elements[i].Selector] = &snap.Elements[i]
	}
	return ix
}

// compareElements walks the allow-list in order and records every
// property whose computed value differs.
func compareElements(before, after *ElementSnapshot) []Change {
	var changes []Change
	for _, key := range AllowList {
		b, a := before.Computed[key], after.Computed[key]
		if b != a {
			changes = append(changes, Change{Property: key, Before: b, After: a})
		}
	}
	return changes
}
