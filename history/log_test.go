package history

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/dom"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style/cssom"
)

func newFixture(t *testing.T, capacity int) (*Log, *cssom.Repository, *dom.Document) {
	t.Helper()
	doc, err := dom.ParseHTML(`<html><head></head><body>
		<div id="hero" class="card">Hello</div>
		<div class="card">World</div>
	</body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	repo := cssom.NewRepository(cssom.NewMemList())
	return NewLog(repo, doc, capacity), repo, doc
}

func classStyleEntry(selector, key string, oldv, newv style.Property) Entry {
	return Entry{
		Type:        ClassStyle,
		Target:      selector,
		Property:    key,
		OldValue:    oldv,
		NewValue:    newv,
		Description: fmt.Sprintf("%s: %s", selector, key),
	}
}

func TestAppendAssignsIDAndCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.history")
	defer teardown()
	//
	log, _, _ := newFixture(t, 0)
	e := log.Append(classStyleEntry(".card", "color", "", "red"))
	if e.ID == "" || e.Time.IsZero() {
		t.Error("expected append to assign id and timestamp")
	}
	if log.Cursor() != 0 || log.Len() != 1 {
		t.Errorf("cursor=%d len=%d after first append", log.Cursor(), log.Len())
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.history")
	defer teardown()
	//
	log, repo, _ := newFixture(t, 0)
	repo.SetProperty(".card", "color", "red")
	log.Append(classStyleEntry(".card", "color", "", "red"))
	//
	if !log.Undo() {
		t.Fatal("expected undo to succeed")
	}
	if _, ok := repo.Properties(".card").Get("color"); ok {
		t.Error("expected undo to remove the declaration (old value was absent)")
	}
	if !log.Redo() {
		t.Fatal("expected redo to succeed")
	}
	if v, _ := repo.Properties(".card").Get("color"); v != "red" {
		t.Errorf("expected redo to restore color=red, is %q", v)
	}
	// Round-trip law: state equals the plain append state.
	if log.Cursor() != 0 || log.Len() != 1 {
		t.Errorf("cursor=%d len=%d after round trip", log.Cursor(), log.Len())
	}
}

func TestUndoRedoAtBoundaries(t *testing.T) {
	log, _, _ := newFixture(t, 0)
	if log.Undo() {
		t.Error("expected undo on empty log to be a no-op")
	}
	if log.Redo() {
		t.Error("expected redo on empty log to be a no-op")
	}
	log.Append(classStyleEntry(".card", "color", "", "red"))
	if log.Redo() {
		t.Error("expected redo at head to be a no-op")
	}
}

func TestRedoBranchTruncation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.history")
	defer teardown()
	//
	log, _, _ := newFixture(t, 0)
	a := log.Append(classStyleEntry(".a", "color", "", "red"))
	log.Append(classStyleEntry(".b", "color", "", "green"))
	log.Append(classStyleEntry(".c", "color", "", "blue"))
	log.Undo()
	log.Undo()
	d := log.Append(classStyleEntry(".d", "color", "", "black"))
	//
	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected [A,D] after truncation, have %d entries", len(entries))
	}
	if entries[0].ID != a.ID || entries[1].ID != d.ID {
		t.Error("expected surviving entries to be A then D")
	}
	if log.Cursor() != 1 {
		t.Errorf("expected cursor at 1, is %d", log.Cursor())
	}
	if log.CanRedo() {
		t.Error("expected no redo after append")
	}
}

func TestCapacityEviction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.history")
	defer teardown()
	//
	log, _, _ := newFixture(t, 3)
	var ids []string
	for i := 1; i <= 5; i++ {
		e := log.Append(classStyleEntry(".card", "color", "", style.Property(fmt.Sprintf("#%06d", i))))
		ids = append(ids, e.ID)
	}
	if log.Len() != 3 {
		t.Fatalf("expected capacity to cap log at 3, len=%d", log.Len())
	}
	entries := log.Entries()
	for i, want := range ids[2:] { // E3, E4, E5
		if entries[i].ID != want {
			t.Errorf("expected entry %d to be %s, is %s", i, want, entries[i].ID)
		}
	}
	if log.Cursor() != 2 {
		t.Errorf("expected cursor == 2, is %d", log.Cursor())
	}
}

func TestStaleElementIsNoOpButConsumesCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.history")
	defer teardown()
	//
	log, _, doc := newFixture(t, 0)
	hero, _ := doc.First("#hero")
	h := doc.Handles().Adopt(hero)
	log.Append(Entry{
		Type:     InlineStyle,
		Target:   "#hero",
		Property: "color",
		NewValue: "red",
		Handle:   h,
	})
	// The element vanishes; the handle must report absence.
	dom.Detach(hero)
	doc.Handles().ReleaseSubtree(hero)
	//
	if !log.Undo() {
		t.Fatal("expected undo to consume the cursor position")
	}
	if log.Cursor() != -1 {
		t.Errorf("expected cursor at -1, is %d", log.Cursor())
	}
	if !log.Redo() {
		t.Fatal("expected redo to consume the cursor position")
	}
}

func TestInlineStyleUndoRedo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.history")
	defer teardown()
	//
	log, _, doc := newFixture(t, 0)
	hero, _ := doc.First("#hero")
	dom.SetInlineStyle(hero, "color", "blue")
	log.Append(Entry{
		Type:     InlineStyle,
		Target:   "#hero",
		Property: "color",
		OldValue: "",
		NewValue: "blue",
		Handle:   doc.Handles().Adopt(hero),
	})
	log.Undo()
	if _, ok := dom.Attr(hero, "style"); ok {
		t.Error("expected undo to drop the style attribute")
	}
	log.Redo()
	if v, _ := dom.Attr(hero, "style"); v != "color: blue" {
		t.Errorf("expected redo to restore inline style, is %q", v)
	}
}

func TestClassFlipUndo(t *testing.T) {
	log, _, doc := newFixture(t, 0)
	hero, _ := doc.First("#hero")
	dom.AddClass(hero, "active")
	log.Append(Entry{
		Type:     AddClass,
		Target:   "#hero",
		Property: "active",
		Handle:   doc.Handles().Adopt(hero),
	})
	log.Undo()
	if dom.HasClass(hero, "active") {
		t.Error("expected undo of add-class to remove the class")
	}
	log.Redo()
	if !dom.HasClass(hero, "active") {
		t.Error("expected redo to re-add the class")
	}
}

func TestStructuralRemoveUndo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.history")
	defer teardown()
	//
	log, _, doc := newFixture(t, 0)
	hero, _ := doc.First("#hero")
	parentPath, err := doc.PathOf(hero.Parent)
	if err != nil {
		t.Fatal(err)
	}
	index := dom.ChildIndex(hero)
	markup, _ := dom.OuterHTML(hero)
	//
	dom.Detach(hero)
	doc.Handles().ReleaseSubtree(hero)
	log.Append(Entry{
		Type:   DOMRemove,
		Target: parentPath.String(),
		Structural: &Structural{
			ParentPath: parentPath,
			Index:      index,
			HTML:       markup,
		},
	})
	if el, _ := doc.First("#hero"); el != nil {
		t.Fatal("expected #hero to be gone")
	}
	log.Undo()
	restored, _ := doc.First("#hero")
	if restored == nil {
		t.Fatal("expected undo to restore #hero")
	}
	if dom.ChildIndex(restored) != index {
		t.Errorf("expected #hero restored at child index %d, is %d",
			index, dom.ChildIndex(restored))
	}
	log.Redo()
	if el, _ := doc.First("#hero"); el != nil {
		t.Error("expected redo to remove #hero again")
	}
}

func TestSubscribeAndDispose(t *testing.T) {
	log, _, _ := newFixture(t, 0)
	var events []Event
	dispose := log.Subscribe(func(ev Event) { events = append(events, ev) })
	log.Append(classStyleEntry(".card", "color", "", "red"))
	log.Undo()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, have %d", len(events))
	}
	if events[0].Kind != "append" || events[1].Kind != "undo" {
		t.Errorf("unexpected event kinds: %v, %v", events[0].Kind, events[1].Kind)
	}
	if events[0].CanUndo != true || events[1].CanUndo != false {
		t.Error("expected CanUndo to reflect post-update state")
	}
	dispose()
	log.Redo()
	if len(events) != 2 {
		t.Error("expected disposed listener not to be called")
	}
}
