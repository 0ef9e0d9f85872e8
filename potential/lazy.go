package potential

import "sync"

// Lazy memoizes an expensive Potential (e.g. one built over a Landmark
// set with many landmarks) so repeated Value calls for the same node
// during a single search only pay the underlying cost once.
type Lazy struct {
	inner Potential
	mu    sync.Mutex
	cache map[uint32]int32
}

// NewLazy wraps inner with a per-node memoization cache.
func NewLazy(inner Potential) *Lazy {
	return &Lazy{inner: inner, cache: make(map[uint32]int32)}
}

// Value implements Potential.
func (l *Lazy) Value(node uint32) int32 {
	l.mu.Lock()
	if v, ok := l.cache[node]; ok {
		l.mu.Unlock()
		return v
	}
	l.mu.Unlock()

	v := l.inner.Value(node)

	l.mu.Lock()
	l.cache[node] = v
	l.mu.Unlock()
	return v
}
