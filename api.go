package bst

import "cmp"

type Tree[K cmp.Ordered, V any] interface {
	Insert(key K, value V) error
	Find(key K) (V, bool)
	Traverse(order Order) []K
	ForEach(order Order, callback Callback[K, V])
	Iterator() Iterator[K, V]
	BuildBalanced(keys []K) error
	BuildFromPreorder(keys []K) error
	Root() Node[K, V]
	Size() int
	Height() int
}

type Iterator[K cmp.Ordered, V any] interface {
	HasNext() bool
	Next() (Node[K, V], error)
}

type Node[K cmp.Ordered, V any] interface {
	Key() K
	Value() V
	Left() Node[K, V]
	Right() Node[K, V]
}

func New[K cmp.Ordered, V any]() Tree[K, V] {
	return &tree[K, V]{}
}
