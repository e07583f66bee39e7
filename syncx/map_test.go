package syncx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	m := NewMap[string, int]()
	m.Store("b", 2)
	m.Store("a", 1)

	v, ok := m.Load("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = m.Load("c")
	assert.False(t, ok)

	m.Store("a", 10)
	v, _ = m.Load("a")
	assert.Equal(t, 10, v)

	assert.Equal(t, []string{"a", "b"}, SortedKeys(m))
}
