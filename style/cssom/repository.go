package cssom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
)

// Repository owns the canonical selector → declarations cache of an editing
// session and keeps it materialized into one managed rule list: at most one
// active rule per selector at any time.
//
// Because rule lists support only append-at-end and delete-at-index, every
// property update is delete-old + insert-new. Deleting at index i shifts
// every rule after i down by one position, so every cached index greater
// than i is decremented in the same step; insertion always appends, so a new
// index is always "list length at time of insert minus one".
type Repository struct {
	list  RuleList
	cache map[string]*cacheEntry
	order []string // selector insertion order, for deterministic export
}

type cacheEntry struct {
	decls     *style.Declarations
	ruleIndex int // position in the materialized list, -1 = not materialized
}

// NewRepository creates a repository managing the given rule list.
func NewRepository(list RuleList) *Repository {
	return &Repository{
		list:  list,
		cache: make(map[string]*cacheEntry),
	}
}

// SetProperty merges a single declaration into the cached map for selector
// and rematerializes the selector's rule. Malformed input is rejected
// before the rule list is touched; a failing materialization rolls the
// cache entry back to its pre-update value, so cache and materialized
// state never diverge.
func (r *Repository) SetProperty(selector string, key string, value style.Property) error {
	if err := style.ValidateSelector(selector); err != nil {
		return err
	}
	if err := style.ValidateDeclaration(key, value); err != nil {
		return err
	}
	selector = strings.TrimSpace(selector)
	entry := r.entry(selector)
	saved := entry.decls.Clone()
	entry.decls.Set(key, value)
	if err := r.rematerialize(selector, entry); err != nil {
		entry.decls = saved
		r.recover(selector, entry)
		return err
	}
	tracer().P("selector", selector).Debugf("set %s: %s", key, value)
	return nil
}

// SetProperties is the batch variant of SetProperty: all declarations are
// merged with a single delete+insert on the rule list.
func (r *Repository) SetProperties(selector string, decls map[string]style.Property) error {
	if err := style.ValidateSelector(selector); err != nil {
		return err
	}
	for key, value := range decls {
		if err := style.ValidateDeclaration(key, value); err != nil {
			return err
		}
	}
	selector = strings.TrimSpace(selector)
	entry := r.entry(selector)
	saved := entry.decls.Clone()
	keys := make([]string, 0, len(decls))
	for key := range decls {
		keys = append(keys, key)
	}
	sort.Strings(keys) // map iteration order must not leak into rule text
	for _, key := range keys {
		entry.decls.Set(key, decls[key])
	}
	if err := r.rematerialize(selector, entry); err != nil {
		entry.decls = saved
		r.recover(selector, entry)
		return err
	}
	tracer().P("selector", selector).Debugf("set %d properties", len(decls))
	return nil
}

// RemoveProperty drops a single declaration from the selector's cached map.
// Removing the last declaration removes the selector altogether. Removing
// a property which is not set is a no-op.
func (r *Repository) RemoveProperty(selector string, key string) error {
	selector = strings.TrimSpace(selector)
	entry, ok := r.cache[selector]
	if !ok {
		return nil
	}
	old, had := entry.decls.Remove(key)
	if !had {
		return nil
	}
	if entry.decls.Len() == 0 {
		return r.RemoveSelector(selector)
	}
	if err := r.rematerialize(selector, entry); err != nil {
		entry.decls.Set(key, old)
		r.recover(selector, entry)
		return err
	}
	return nil
}

// Properties returns a copy of the cached declarations for selector, or an
// empty list if the selector is unknown.
func (r *Repository) Properties(selector string) *style.Declarations {
	entry, ok := r.cache[strings.TrimSpace(selector)]
	if !ok {
		return style.NewDeclarations()
	}
	return entry.decls.Clone()
}

// RuleIndex returns the materialized position of the selector's rule,
// or -1 if the selector has no active rule.
func (r *Repository) RuleIndex(selector string) int {
	if entry, ok := r.cache[strings.TrimSpace(selector)]; ok {
		return entry.ruleIndex
	}
	return -1
}

// Selectors returns all cached selectors in insertion order.
func (r *Repository) Selectors() []string {
	s := make([]string, len(r.order))
	copy(s, r.order)
	return s
}

// RemoveSelector deletes the selector's materialized rule and drops the
// cache entry.
func (r *Repository) RemoveSelector(selector string) error {
	selector = strings.TrimSpace(selector)
	entry, ok := r.cache[selector]
	if !ok {
		return nil
	}
	r.deleteMaterialized(selector, entry)
	delete(r.cache, selector)
	for i, s := range r.order {
		if s == selector {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	tracer().P("selector", selector).Debugf("selector removed")
	return nil
}

// Clear removes every managed rule from the list and wipes the cache.
// Rules not managed by this repository are left alone.
func (r *Repository) Clear() {
	indexes := make([]int, 0, len(r.cache))
	for _, entry := range r.cache {
		if entry.ruleIndex >= 0 {
			indexes = append(indexes, entry.ruleIndex)
		}
	}
	// Delete from the back so earlier indexes stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(indexes)))
	for _, i := range indexes {
		if i < r.list.Len() {
			if err := r.list.DeleteRule(i); err != nil {
				tracer().Errorf("clear: delete rule %d: %v", i, err)
			}
		}
	}
	r.cache = make(map[string]*cacheEntry)
	r.order = nil
}

// ExportCSS serializes the cache (not the live list) to portable CSS text,
// selectors in insertion order.
func (r *Repository) ExportCSS() string {
	var b strings.Builder
	for _, selector := range r.order {
		entry := r.cache[selector]
		if entry.decls.Len() == 0 {
			continue
		}
		b.WriteString(SerializeRule(selector, entry.decls))
		b.WriteString("\n")
	}
	return b.String()
}

// CacheSnapshot returns the raw selector → properties cache, for
// persistence. The result is detached from the repository.
func (r *Repository) CacheSnapshot() map[string]map[string]style.Property {
	m := make(map[string]map[string]style.Property, len(r.cache))
	for selector, entry := range r.cache {
		m[selector] = entry.decls.Map()
	}
	return m
}

// RestoreCache replaces the repository content with a previously
// snapshotted cache. Selectors are restored in sorted order so that
// restoring is deterministic. Invalid entries are skipped with a warning
// rather than failing the whole restore.
func (r *Repository) RestoreCache(m map[string]map[string]style.Property) {
	r.Clear()
	selectors := make([]string, 0, len(m))
	for s := range m {
		selectors = append(selectors, s)
	}
	sort.Strings(selectors)
	for _, s := range selectors {
		if err := r.SetProperties(s, m[s]); err != nil {
			tracer().P("selector", s).Errorf("restore skipped: %v", err)
		}
	}
}

// --- Index-synchronized rematerialization -----------------------------

func (r *Repository) entry(selector string) *cacheEntry {
	entry, ok := r.cache[selector]
	if !ok {
		entry = &cacheEntry{decls: style.NewDeclarations(), ruleIndex: -1}
		r.cache[selector] = entry
		r.order = append(r.order, selector)
	}
	return entry
}

// rematerialize deletes the selector's current rule (if any) and appends
// the full re-serialized declaration block as one new rule at the end of
// the list, recording the new index.
func (r *Repository) rematerialize(selector string, entry *cacheEntry) error {
	r.deleteMaterialized(selector, entry)
	index, err := r.list.AppendRule(selector, entry.decls.Serialize())
	if err != nil {
		return fmt.Errorf("cssom: materialize %q: %w", selector, err)
	}
	entry.ruleIndex = index
	return nil
}

// deleteMaterialized removes the selector's active rule and shifts every
// cached index after it down by one. An out-of-range cached index is a
// sign of external interference with the rule list: the stale index is
// purged and the operation continues, instead of failing wholesale.
func (r *Repository) deleteMaterialized(selector string, entry *cacheEntry) {
	i := entry.ruleIndex
	if i < 0 {
		return
	}
	entry.ruleIndex = -1
	if i >= r.list.Len() {
		tracer().P("selector", selector).Infof(
			"cached rule index %d out of range, purging stale entry", i)
		return
	}
	if err := r.list.DeleteRule(i); err != nil {
		tracer().P("selector", selector).Errorf("delete rule %d: %v", i, err)
		return
	}
	for _, other := range r.cache {
		if other.ruleIndex > i {
			other.ruleIndex--
		}
	}
}

// recover re-materializes the rolled-back declarations after a rejected
// update, restoring the pre-update rule. If even that fails the cache
// entry is dropped, so cache and list agree on the selector being absent.
func (r *Repository) recover(selector string, entry *cacheEntry) {
	if entry.decls.Len() == 0 {
		r.dropEntry(selector)
		return
	}
	index, err := r.list.AppendRule(selector, entry.decls.Serialize())
	if err != nil {
		tracer().P("selector", selector).Errorf("rollback failed, dropping selector: %v", err)
		r.dropEntry(selector)
		return
	}
	entry.ruleIndex = index
}

func (r *Repository) dropEntry(selector string) {
	delete(r.cache, selector)
	for i, s := range r.order {
		if s == selector {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
