package store

import (
	"encoding/json"
	"errors"

	"github.com/EstateFlowDigital/lumos-inspector-sub001/style"
)

// rulesKey is the single slot the style cache persists into.
const rulesKey = "lumos:rules"

// A RuleCache can dump and restore its full selector→properties content.
// The cssom repository satisfies it.
type RuleCache interface {
	CacheSnapshot() map[string]map[string]style.Property
	RestoreCache(map[string]map[string]style.Property)
}

// SaveRules persists the cache as a flat selector→properties JSON object.
// A quota failure is returned for the caller to surface as a warning; the
// in-memory cache stays authoritative either way.
func SaveRules(kv KV, cache RuleCache) error {
	data, err := json.Marshal(cache.CacheSnapshot())
	if err != nil {
		return err
	}
	if err := kv.Put(rulesKey, data); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			tracer().Errorf("style cache not persisted: %v", err)
		}
		return err
	}
	tracer().Debugf("persisted style cache, %d bytes", len(data))
	return nil
}

// LoadRules restores the cache from the store. A missing blob leaves the
// cache untouched. A corrupt blob is discarded wholesale: the stored slot
// is deleted, the cache reinitializes to empty, and a warning is traced;
// no error reaches the caller.
func LoadRules(kv KV, cache RuleCache) error {
	data, ok, err := kv.Get(rulesKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	var m map[string]map[string]style.Property
	if err := json.Unmarshal(data, &m); err != nil {
		tracer().Errorf("discarding corrupt style cache: %v", err)
		kv.Delete(rulesKey)
		cache.RestoreCache(nil)
		return nil
	}
	cache.RestoreCache(m)
	return nil
}
