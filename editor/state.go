package editor

import (
	"errors"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/dom"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/snapshot"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/store"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
	"github.com/EstateFlowDigital/lumos-inspector-sub001/style/cssom/douceuradapter"
)

// CaptureSnapshot records the style state of every element matching
// selector, persists it, and returns it. A persistence failure (quota,
// backend error) degrades to a warning: the snapshot is still returned
// and usable for comparison.
func (s *Session) CaptureSnapshot(name string, selector string) (*snapshot.Snapshot, error) {
	targets, err := s.doc.Query(selector)
	if err != nil {
		return nil, err
	}
	snap := s.engine.Capture(name, targets, s.repo.ExportCSS())
	if err := s.snaps.Save(snap); err != nil {
		tracer().Errorf("snapshot %q captured but not persisted: %v", name, err)
	}
	return snap, nil
}

// CompareSnapshots diffs two snapshots by derived selector.
func (s *Session) CompareSnapshots(before, after *snapshot.Snapshot) *snapshot.Diff {
	return snapshot.Compare(before, after)
}

// ExportCSS serializes the session's class rules to portable CSS text.
func (s *Session) ExportCSS() string {
	return s.repo.ExportCSS()
}

// ImportCSS parses CSS text and merges every recognized declaration into
// the session's class rules. Returns the number of imported declarations.
// Imports are bulk loads, not edits: they bypass the history log.
func (s *Session) ImportCSS(cssText string) (int, error) {
	return douceuradapter.ImportInto(s.repo, cssText)
}

// ImportDocumentStyles seeds the session's class rules from the document's
// own embedded <style> elements, leaving out the managed sheet. Like
// ImportCSS this is a bulk load which bypasses the history log; unknown
// properties are skipped. Returns the number of imported declarations.
func (s *Session) ImportDocumentStyles() int {
	imported := 0
	for sel, d := range douceuradapter.ExtractStyleElements(s.doc.Root(), dom.SheetElementID) {
		d.Each(func(key string, value style.Property) {
			if err := s.repo.SetProperty(sel, key, value); err == nil {
				imported++
			}
		})
	}
	tracer().Infof("imported %d declarations from document style elements", imported)
	return imported
}

// SaveStyles persists the class-rule cache. A quota failure is returned
// as a warning-grade error; the in-memory cache stays authoritative.
func (s *Session) SaveStyles() error {
	err := store.SaveRules(s.kv, s.repo)
	if err != nil && errors.Is(err, store.ErrQuotaExceeded) {
		tracer().Errorf("styles not persisted: %v", err)
	}
	return err
}

// LoadStyles restores the class-rule cache from the store. Corrupt stored
// state is discarded and the cache reinitializes to empty, per the store's
// contract; no error surfaces for that case.
func (s *Session) LoadStyles() error {
	return store.LoadRules(s.kv, s.repo)
}
