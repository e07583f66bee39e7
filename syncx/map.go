package syncx

import (
	"sort"
	"sync"
)

type Map[TK comparable, TV any] struct {
	data sync.Map
}

func (m *Map[TK, TV]) Store(key TK, value TV) {
	m.data.Store(key, value)
}

func (m *Map[TK, TV]) Load(key TK) (TV, bool) {
	v, ok := m.data.Load(key)
	var v2 TV
	if ok {
		v2, ok = v.(TV)
	}
	return v2, ok
}

func (m *Map[TK, TV]) Range(f func(key TK, value TV) bool) {
	m.data.Range(func(k, v any) bool {
		return f(k.(TK), v.(TV))
	})
}

func NewMap[TK comparable, TV any]() *Map[TK, TV] {
	return &Map[TK, TV]{}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[TV any](m *Map[string, TV]) []string {
	keys := make([]string, 0)
	m.Range(func(k string, _ TV) bool {
		keys = append(keys, k)
		return true
	})
	sort.Strings(keys)
	return keys
}
