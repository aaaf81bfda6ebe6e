package bst

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// BuildBalanced replaces the content of the tree with a height balanced tree
// holding keys, in any order. Nodes carry the zero value.
// On error the tree is left as it was.
func (t *tree[K, V]) BuildBalanced(keys []K) error {
	sorted, err := sortedUnique(keys)
	if err != nil {
		return err
	}
	root := buildSorted[K, V](sorted)

	t.root, t.size = root, len(sorted)
	return nil
}

// BuildFromPreorder replaces the content of the tree with the unique search
// tree whose pre-order traversal is keys. Nodes carry the zero value.
// On error the tree is left as it was.
func (t *tree[K, V]) BuildFromPreorder(keys []K) error {
	if _, err := sortedUnique(keys); err != nil {
		return err
	}
	root, err := buildPreorder[K, V](keys, nil, nil)
	if err != nil {
		return err
	}

	t.root, t.size = root, len(keys)
	return nil
}

// sortedUnique returns a sorted copy of keys, failing on the first repeat.
func sortedUnique[K cmp.Ordered](keys []K) ([]K, error) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if cmp.Compare(sorted[i-1], sorted[i]) == 0 {
			return nil, duplicateKey(sorted[i])
		}
	}
	return sorted, nil
}

// buildSorted roots every subtree at the lower median of its range,
// so no path is longer than ceil(log2(n+1)) nodes.
func buildSorted[K cmp.Ordered, V any](sorted []K) *node[K, V] {
	if len(sorted) == 0 {
		return nil
	}
	mid := len(sorted) / 2

	var zero V
	n := newNode(sorted[mid], zero)
	n.left = buildSorted[K, V](sorted[:mid])
	n.right = buildSorted[K, V](sorted[mid+1:])
	return n
}

// buildPreorder rebuilds the subtree whose pre-order is seq. Every key of
// the subtree must lie strictly between lo and hi (nil means unbounded).
//
// In a valid pre-order all keys of the left subtree precede all keys of the
// right one, so "greater than root" is false for a prefix of the remaining
// keys and true for the rest, and the split is found by binary search. If
// seq is not a valid pre-order the split is wrong somewhere and a key lands
// outside its bounds.
func buildPreorder[K cmp.Ordered, V any](seq []K, lo, hi *K) (*node[K, V], error) {
	if len(seq) == 0 {
		return nil, nil
	}
	key := seq[0]
	if (lo != nil && cmp.Compare(key, *lo) <= 0) || (hi != nil && cmp.Compare(key, *hi) >= 0) {
		return nil, fmt.Errorf("%w: key %v out of place", ErrBadShape, key)
	}

	rest := seq[1:]
	split := sort.Search(len(rest), func(i int) bool {
		return cmp.Less(key, rest[i])
	})

	var (
		zero V
		err  error
	)
	n := newNode(key, zero)
	if n.left, err = buildPreorder[K, V](rest[:split], lo, &key); err != nil {
		return nil, err
	}
	if n.right, err = buildPreorder[K, V](rest[split:], &key, hi); err != nil {
		return nil, err
	}
	return n, nil
}
