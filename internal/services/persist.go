package services

import (
	"encoding/json"

	"github.com/go-faster/errors"

	applog "digitalstore/internal/log"
	"digitalstore/internal/repos"
)

// KV keys.
const (
	keyProducts    = "products"
	keyCurrency    = "currency"
	keyHitProducts = "hitProducts"
	keyAds         = "ads"
)

// load decodes key into dst. It reports false when the key is absent, the
// store fails, or the value does not parse; dst is then left for the caller
// to default.
func load(kv repos.KV, key string, dst any) bool {
	raw, ok, err := kv.Get(key)
	if err != nil {
		applog.Warn(nil, "store.load.fail", err, map[string]any{"key": key})
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		applog.Warn(nil, "store.load.corrupt", err, map[string]any{"key": key})
		return false
	}
	return true
}

// save writes v under key. Failures are logged and otherwise ignored: the
// in-memory state stays authoritative for the running process.
func save(kv repos.KV, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		applog.Error(nil, "store.save.fail", errors.Wrap(err, "encode"), map[string]any{"key": key})
		return
	}
	if err := kv.Set(key, raw); err != nil {
		applog.Error(nil, "store.save.fail", err, map[string]any{"key": key})
	}
}
