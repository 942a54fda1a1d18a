package jsontree

// OrderedMap is a string-keyed map that remembers insertion order. It backs
// Object values and is the order-preserving mapping container for codecs.
// Assigning to an existing key updates it in place; iteration via Keys always
// yields insertion order.
type OrderedMap[V any] struct {
	keys []string
	idx  map[string]int
	vals []V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{idx: map[string]int{}}
}

// Len reports the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Contains reports whether key is present.
func (m *OrderedMap[V]) Contains(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.idx[key]
	return ok
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	i, ok := m.idx[key]
	if !ok {
		return zero, false
	}
	return m.vals[i], true
}

// Set upserts key. A new key appends at the end; an existing key keeps its
// original position.
func (m *OrderedMap[V]) Set(key string, v V) {
	if m.idx == nil {
		m.idx = map[string]int{}
	}
	if i, ok := m.idx[key]; ok {
		m.vals[i] = v
		return
	}
	m.idx[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not mutate it.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// at returns the value at insertion position i.
func (m *OrderedMap[V]) at(i int) V { return m.vals[i] }
