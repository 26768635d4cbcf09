package cache

// ScopedKeyer prefixes every key of an inner Keyer, so that several
// front ends (CLI, API) can share one backend without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) WebKey(contentHash, format string) string {
	return k.prefix + k.inner.WebKey(contentHash, format)
}

func (k *ScopedKeyer) AverageKey(contentHashes []string) string {
	return k.prefix + k.inner.AverageKey(contentHashes)
}

func (k *ScopedKeyer) ChartKey(webKey string, opts ChartKeyOpts) string {
	return k.prefix + k.inner.ChartKey(webKey, opts)
}
