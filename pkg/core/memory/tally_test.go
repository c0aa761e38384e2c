package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyAccumulatesInKeyOrder(t *testing.T) {
	tl := NewTally[int](8)
	tl.Add(1999, 2)
	tl.Add(1840, 1)
	tl.Add(1999, 3)
	tl.Add(2001, 0)

	var keys, vals []int
	tl.Iterator(func(k, v int) bool {
		keys = append(keys, k)
		vals = append(vals, v)
		return true
	})

	assert.Equal(t, []int{1840, 1999, 2001}, keys)
	assert.Equal(t, []int{1, 5, 0}, vals)
	assert.Equal(t, 3, tl.Count())
	assert.Equal(t, map[int]int{1840: 1, 1999: 5, 2001: 0}, tl.Map())
}

func TestTallyLookupAndStop(t *testing.T) {
	tl := NewTally[string](4)
	tl.Add("Poetry", 1)
	tl.Add("Fiction", 1)
	tl.Add("", 1)

	m := tl.Map()
	assert.Equal(t, 1, m["Poetry"])
	_, ok := m["Drama"]
	assert.False(t, ok)

	var first string
	tl.Iterator(func(k string, _ int) bool {
		first = k
		return false
	})
	assert.Equal(t, "", first, "empty genre sorts first and iteration stops")
}
