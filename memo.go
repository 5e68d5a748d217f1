package gridlist

// Memo caches the result of a computation keyed on its inputs.
//
// Get returns the cached value while the key is unchanged and recomputes
// it otherwise. Keys are compared with ==, so a key should hold exactly the
// inputs the computation reads: scalars by value, slices and configs by
// pointer identity or by an explicit revision counter.
//
// Usage:
//
//	var layoutMemo gridlist.Memo[*gridlist.Config[Photo], layoutResult]
//	res := layoutMemo.Get(cfg, func() layoutResult { ... })
//
// A Memo is not safe for concurrent use.
type Memo[K comparable, V any] struct {
	key      K
	value    V
	valid    bool
	computes uint64
}

// Get returns the value for key, running compute only when key differs
// from the previous call's key.
func (m *Memo[K, V]) Get(key K, compute func() V) V {
	if m.valid && m.key == key {
		return m.value
	}
	m.key = key
	m.value = compute()
	m.valid = true
	m.computes++
	return m.value
}

// Peek returns the cached value without recomputing.
func (m *Memo[K, V]) Peek() (V, bool) {
	return m.value, m.valid
}

// Invalidate forces the next Get to recompute.
func (m *Memo[K, V]) Invalidate() {
	m.valid = false
}

// Computes returns how many times the value has been computed.
// Useful for debugging and for asserting that unchanged inputs are reused.
func (m *Memo[K, V]) Computes() uint64 {
	return m.computes
}
