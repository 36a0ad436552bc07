package config

// Cache is the key-value store the caching layer reads and fills. Expiry and
// eviction are up to the implementation.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Len() int
}

// MapCache is an unbounded in-process Cache.
type MapCache map[string]any

func (m MapCache) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapCache) Set(key string, value any) {
	m[key] = value
}

func (m MapCache) Len() int {
	return len(m)
}
