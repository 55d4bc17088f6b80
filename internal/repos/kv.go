package repos

// KV is the persistent key/value store. Values are opaque bytes (JSON in
// practice); a missing key reports ok=false with a nil error.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// KeyLister is implemented by stores that can enumerate their keys.
type KeyLister interface {
	Keys() ([]string, error)
}
