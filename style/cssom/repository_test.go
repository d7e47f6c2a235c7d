package cssom

import (
	"errors"
	"strings"
	"testing"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetPropertyRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.cssom")
	defer teardown()
	//
	repo := NewRepository(NewMemList())
	if err := repo.SetProperty(".card", "color", "red"); err != nil {
		t.Fatal(err)
	}
	if v, ok := repo.Properties(".card").Get("color"); !ok || v != "red" {
		t.Errorf("expected color=red after SetProperty, got %q", v)
	}
}

func TestSetPropertySingleRulePerSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.cssom")
	defer teardown()
	//
	list := NewMemList()
	repo := NewRepository(list)
	repo.SetProperty(".card", "color", "red")
	repo.SetProperty(".card", "color", "blue")
	repo.SetProperty(".card", "margin-top", "4px")
	//
	if v, _ := repo.Properties(".card").Get("color"); v != "blue" {
		t.Errorf("expected last write to win, color is %q", v)
	}
	count := 0
	for _, rule := range list.Rules() {
		if rule.Selector == ".card" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one materialized rule for .card, have %d", count)
	}
	if !strings.Contains(list.Rules()[0].CSSText, "color: blue") {
		t.Errorf("materialized rule misses merged declaration: %q", list.Rules()[0].CSSText)
	}
}

func TestIndexShiftOnDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.cssom")
	defer teardown()
	//
	list := NewMemList()
	repo := NewRepository(list)
	repo.SetProperty(".a", "color", "red")
	repo.SetProperty(".b", "color", "green")
	repo.SetProperty(".c", "color", "blue")
	// Updating .a deletes at index 0; .b and .c must shift down, and the
	// updated .a must land at the end.
	if err := repo.SetProperty(".a", "color", "black"); err != nil {
		t.Fatal(err)
	}
	if i := repo.RuleIndex(".b"); i != 0 {
		t.Errorf("expected .b at index 0 after shift, is %d", i)
	}
	if i := repo.RuleIndex(".c"); i != 1 {
		t.Errorf("expected .c at index 1 after shift, is %d", i)
	}
	if i := repo.RuleIndex(".a"); i != 2 {
		t.Errorf("expected .a re-inserted at end (2), is %d", i)
	}
	if list.Len() != 3 {
		t.Errorf("expected 3 rules, have %d", list.Len())
	}
}

func TestStaleIndexIsPurged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.cssom")
	defer teardown()
	//
	list := NewMemList()
	repo := NewRepository(list)
	repo.SetProperty(".a", "color", "red")
	// External interference: somebody truncates the list behind our back.
	list.DeleteRule(0)
	if err := repo.SetProperty(".a", "color", "blue"); err != nil {
		t.Fatalf("expected update to survive external interference, got %v", err)
	}
	if list.Len() != 1 {
		t.Errorf("expected a single re-materialized rule, have %d", list.Len())
	}
	if v, _ := repo.Properties(".a").Get("color"); v != "blue" {
		t.Errorf("expected color=blue, is %q", v)
	}
}

func TestMalformedInputRollsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.cssom")
	defer teardown()
	//
	list := NewMemList()
	repo := NewRepository(list)
	repo.SetProperty(".card", "color", "red")
	if err := repo.SetProperty(".card", "color", "blue}"); err == nil {
		t.Fatal("expected malformed value to be rejected")
	}
	if v, _ := repo.Properties(".card").Get("color"); v != "red" {
		t.Errorf("expected cache to keep pre-update value red, is %q", v)
	}
	if err := repo.SetProperty(".card{}", "color", "blue"); err == nil {
		t.Error("expected malformed selector to be rejected")
	}
	if err := repo.SetProperty(".card", "bogus-prop", "1"); err == nil {
		t.Error("expected unknown property to be rejected")
	}
	if list.Len() != 1 {
		t.Errorf("expected rule list untouched by rejected updates, len=%d", list.Len())
	}
}

// rejectingList fails appends on demand, for exercising the rollback path
// behind the validation boundary.
type rejectingList struct {
	MemList
	rejectAppend bool
}

func (l *rejectingList) AppendRule(selector, cssText string) (int, error) {
	if l.rejectAppend {
		return 0, errors.New("surface rejected rule")
	}
	return l.MemList.AppendRule(selector, cssText)
}

func TestInsertRejectionRestoresMaterializedRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.cssom")
	defer teardown()
	//
	list := &rejectingList{}
	repo := NewRepository(list)
	if err := repo.SetProperty(".card", "color", "red"); err != nil {
		t.Fatal(err)
	}
	list.rejectAppend = true
	if err := repo.SetProperty(".card", "color", "blue"); err == nil {
		t.Fatal("expected rejected insert to surface as error")
	}
	list.rejectAppend = false
	if v, _ := repo.Properties(".card").Get("color"); v != "red" {
		t.Errorf("expected rollback to pre-update value, color is %q", v)
	}
}

func TestSetProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.cssom")
	defer teardown()
	//
	list := NewMemList()
	repo := NewRepository(list)
	err := repo.SetProperties(".hero", map[string]style.Property{
		"color":            "white",
		"background-color": "navy",
		"padding-top":      "8px",
	})
	if err != nil {
		t.Fatal(err)
	}
	if list.Len() != 1 {
		t.Fatalf("expected batch update to materialize a single rule, have %d", list.Len())
	}
	if v, _ := repo.Properties(".hero").Get("background-color"); v != "navy" {
		t.Errorf("expected background-color=navy, is %q", v)
	}
}

func TestRemoveSelectorAndClear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.cssom")
	defer teardown()
	//
	list := NewMemList()
	repo := NewRepository(list)
	repo.SetProperty(".a", "color", "red")
	repo.SetProperty(".b", "color", "green")
	if err := repo.RemoveSelector(".a"); err != nil {
		t.Fatal(err)
	}
	if list.Len() != 1 {
		t.Errorf("expected 1 rule after removing .a, have %d", list.Len())
	}
	if repo.Properties(".a").Len() != 0 {
		t.Error("expected .a cache entry to be dropped")
	}
	if i := repo.RuleIndex(".b"); i != 0 {
		t.Errorf("expected .b shifted to index 0, is %d", i)
	}
	repo.Clear()
	if list.Len() != 0 || len(repo.Selectors()) != 0 {
		t.Error("expected Clear to wipe list and cache")
	}
}

func TestRemoveProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.cssom")
	defer teardown()
	//
	list := NewMemList()
	repo := NewRepository(list)
	repo.SetProperty(".card", "color", "red")
	repo.SetProperty(".card", "margin-top", "4px")
	if err := repo.RemoveProperty(".card", "color"); err != nil {
		t.Fatal(err)
	}
	if _, ok := repo.Properties(".card").Get("color"); ok {
		t.Error("expected color to be removed")
	}
	// Removing the last declaration drops the selector.
	if err := repo.RemoveProperty(".card", "margin-top"); err != nil {
		t.Fatal(err)
	}
	if list.Len() != 0 || len(repo.Selectors()) != 0 {
		t.Error("expected selector to vanish with its last declaration")
	}
}

func TestExportCSS(t *testing.T) {
	repo := NewRepository(NewMemList())
	repo.SetProperty(".card", "color", "blue")
	repo.SetProperty(".hero", "font-size", "24px")
	css := repo.ExportCSS()
	want := ".card { color: blue }\n.hero { font-size: 24px }\n"
	if css != want {
		t.Errorf("unexpected export:\n%s\nwant:\n%s", css, want)
	}
}

func TestCacheSnapshotRestore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lumos.cssom")
	defer teardown()
	//
	repo := NewRepository(NewMemList())
	repo.SetProperty(".card", "color", "blue")
	snap := repo.CacheSnapshot()
	//
	list2 := NewMemList()
	repo2 := NewRepository(list2)
	repo2.RestoreCache(snap)
	if v, _ := repo2.Properties(".card").Get("color"); v != "blue" {
		t.Errorf("expected restored color=blue, is %q", v)
	}
	if list2.Len() != 1 {
		t.Errorf("expected restore to materialize 1 rule, have %d", list2.Len())
	}
}
