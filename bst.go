package bst

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

const (
	PreOrder Order = iota
	InOrder
	PostOrder
	LevelOrder
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

var (
	ErrDuplicateKey = errors.New("bst: duplicate key")
	ErrBadShape     = errors.New("bst: sequence is not the pre-order of any search tree")
	ErrNoMoreNodes  = errors.New("bst: there are no more nodes in the tree")
	ErrUnknownOrder = errors.New("bst: unknown traversal order")
)

type (
	tree[K cmp.Ordered, V any] struct {
		size int
		root *node[K, V]
	}

	// Order selects the sequence in which a traversal visits nodes.
	Order int

	node[K cmp.Ordered, V any] struct {
		key   K
		value V
		left  *node[K, V]
		right *node[K, V]
	}

	// Callback is invoked once per visited node, returning false stops the walk.
	Callback[K cmp.Ordered, V any] func(n Node[K, V]) bool

	traverseAction int

	// in-order iterator, stack holds the path of nodes whose left
	// subtree is being or has been emitted but which are not yet emitted themselves
	iterator[K cmp.Ordered, V any] struct {
		tree  *tree[K, V]
		stack []*node[K, V]
	}
)

var orderNames = []string{"pre", "in", "post", "level"}

func newNode[K cmp.Ordered, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

func (o Order) String() string {
	if o < PreOrder || o > LevelOrder {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder maps "pre", "in", "post" or "level" (any case) to an Order.
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range orderNames {
		if n == name {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

func duplicateKey[K cmp.Ordered](key K) error {
	return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
}
