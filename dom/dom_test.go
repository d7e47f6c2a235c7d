package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/style/cssom"
)

const testPage = `<html><head><title>t</title></head><body>
<div id="hero" class="card main">Hello</div>
<div class="card">World</div>
<p>text</p>
</body></html>`

func parsePage(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseHTML(testPage)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.dom")
	defer teardown()
	//
	doc := parsePage(t)
	cards, err := doc.Query(".card")
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 2 {
		t.Errorf("expected 2 .card elements, have %d", len(cards))
	}
	hero, err := doc.First("#hero")
	if err != nil || hero == nil {
		t.Fatalf("expected #hero to resolve, err=%v", err)
	}
	if !Matches(hero, "div.main") {
		t.Error("expected #hero to match div.main")
	}
	if _, err := doc.Query("..broken["); err == nil {
		t.Error("expected malformed selector to yield an error")
	}
}

func TestClassesAndAttrs(t *testing.T) {
	doc := parsePage(t)
	hero, _ := doc.First("#hero")
	if !HasClass(hero, "card") {
		t.Error("expected #hero to have class card")
	}
	if AddClass(hero, "card") {
		t.Error("expected adding existing class to be a no-op")
	}
	if !AddClass(hero, "active") {
		t.Error("expected adding new class to report a change")
	}
	if !RemoveClass(hero, "main") {
		t.Error("expected removing class to report a change")
	}
	if c, _ := Attr(hero, "class"); c != "card active" {
		t.Errorf("unexpected class attribute %q", c)
	}
	SetAttr(hero, "data-x", "1")
	if v, ok := Attr(hero, "data-x"); !ok || v != "1" {
		t.Error("expected data-x=1")
	}
	RemoveAttr(hero, "data-x")
	if _, ok := Attr(hero, "data-x"); ok {
		t.Error("expected data-x to be gone")
	}
}

func TestInlineStyles(t *testing.T) {
	doc := parsePage(t)
	hero, _ := doc.First("#hero")
	if err := SetInlineStyle(hero, "color", "red"); err != nil {
		t.Fatal(err)
	}
	if err := SetInlineStyle(hero, "margin-top", "4px"); err != nil {
		t.Fatal(err)
	}
	if err := SetInlineStyle(hero, "color", "blue"); err != nil {
		t.Fatal(err)
	}
	if v, _ := Attr(hero, "style"); v != "color: blue; margin-top: 4px" {
		t.Errorf("unexpected style attribute %q", v)
	}
	RemoveInlineStyle(hero, "margin-top")
	RemoveInlineStyle(hero, "color")
	if _, ok := Attr(hero, "style"); ok {
		t.Error("expected emptied style attribute to be removed")
	}
	if err := SetInlineStyle(hero, "not-a-prop", "1"); err == nil {
		t.Error("expected unknown property to be rejected")
	}
}

func TestNodePathRoundTrip(t *testing.T) {
	doc := parsePage(t)
	hero, _ := doc.First("#hero")
	path, err := doc.PathOf(hero)
	if err != nil {
		t.Fatal(err)
	}
	if doc.ResolvePath(path) != hero {
		t.Error("expected path to resolve back to #hero")
	}
	parsed, err := ParseNodePath(path.String())
	if err != nil {
		t.Fatal(err)
	}
	if doc.ResolvePath(parsed) != hero {
		t.Error("expected parsed path to resolve back to #hero")
	}
	if _, err := ParseNodePath("/1/x"); err == nil {
		t.Error("expected malformed path to be rejected")
	}
}

func TestHandles(t *testing.T) {
	doc := parsePage(t)
	hero, _ := doc.First("#hero")
	h := doc.Handles().Adopt(hero)
	if h == NoHandle {
		t.Fatal("expected a live handle")
	}
	if h2 := doc.Handles().Adopt(hero); h2 != h {
		t.Error("expected adopting twice to reuse the handle")
	}
	if n, ok := doc.Handles().Resolve(h); !ok || n != hero {
		t.Error("expected handle to resolve to #hero")
	}
	Detach(hero)
	doc.Handles().ReleaseSubtree(hero)
	if _, ok := doc.Handles().Resolve(h); ok {
		t.Error("expected released handle to report absence")
	}
}

func TestDocumentSheetMaterialization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.dom")
	defer teardown()
	//
	doc := parsePage(t)
	sheet, err := doc.Sheet()
	if err != nil {
		t.Fatal(err)
	}
	repo := cssom.NewRepository(sheet)
	repo.SetProperty(".card", "color", "red")
	repo.SetProperty(".card", "color", "blue")
	if sheet.Len() != 1 {
		t.Fatalf("expected one materialized rule, have %d", sheet.Len())
	}
	if css := sheet.CSSText(); !strings.Contains(css, ".card { color: blue }") {
		t.Errorf("style element not in sync: %q", css)
	}
	out, err := doc.HTML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, SheetElementID) {
		t.Error("expected managed style element in serialized document")
	}
}

func TestFragmentInsertion(t *testing.T) {
	doc := parsePage(t)
	body := doc.Body()
	nodes, err := ParseFragment(body, `<span class="badge">new</span>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected one fragment node, have %d", len(nodes))
	}
	InsertChildAt(body, 0, nodes[0])
	first, _ := doc.First(".badge")
	if first == nil {
		t.Fatal("expected inserted fragment to be queryable")
	}
	if ChildIndex(first) != 0 {
		t.Errorf("expected badge at child index 0, is %d", ChildIndex(first))
	}
}
