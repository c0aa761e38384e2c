package memory

import (
	"cmp"

	"github.com/google/btree"
)

// Item is one bucket of a Tally.
type Item[K cmp.Ordered] struct {
	Key K
	Val int
}

// Tally accumulates integer totals per key and iterates them in key order.
type Tally[K cmp.Ordered] struct {
	tree *btree.BTreeG[Item[K]]
}

func NewTally[K cmp.Ordered](degree int) *Tally[K] {
	return &Tally[K]{
		tree: btree.NewG(degree, func(a, b Item[K]) bool {
			return a.Key < b.Key
		}),
	}
}

// Add adds delta to the bucket for key, creating it at zero if needed.
func (t *Tally[K]) Add(key K, delta int) {
	item, _ := t.tree.Get(Item[K]{Key: key})
	item.Key = key
	item.Val += delta
	t.tree.ReplaceOrInsert(item)
}

// Iterator visits buckets in ascending key order until fn returns false.
func (t *Tally[K]) Iterator(fn func(key K, val int) bool) {
	t.tree.Ascend(func(item Item[K]) bool {
		return fn(item.Key, item.Val)
	})
}

func (t *Tally[K]) Count() int {
	return t.tree.Len()
}

// Map copies the buckets into a map.
func (t *Tally[K]) Map() map[K]int {
	out := make(map[K]int, t.tree.Len())
	t.Iterator(func(key K, val int) bool {
		out[key] = val
		return true
	})
	return out
}
