package bst

import "cmp"

func (t *tree[K, V]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[K, V]) Root() Node[K, V] {
	if t == nil {
		return nil
	}
	return t.root.asNode()
}

// Height is the number of nodes on the longest root to leaf path.
func (t *tree[K, V]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	height := 0
	level := []*node[K, V]{t.root}
	for len(level) > 0 {
		height++
		next := make([]*node[K, V], 0, 2*len(level))
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

func (t *tree[K, V]) Insert(key K, value V) error {
	if err := t.recursiveInsert(&t.root, key, value); err != nil {
		return err
	}
	t.size++
	return nil
}

func (t *tree[K, V]) recursiveInsert(curNode **node[K, V], key K, value V) error {
	curr := *curNode
	if curr == nil {
		*curNode = newNode(key, value)
		return nil
	}

	switch c := cmp.Compare(key, curr.key); {
	case c < 0:
		return t.recursiveInsert(&curr.left, key, value)
	case c > 0:
		return t.recursiveInsert(&curr.right, key, value)
	}
	return duplicateKey(key)
}

func (t *tree[K, V]) Find(key K) (V, bool) {
	var curr *node[K, V]
	if t != nil {
		curr = t.root
	}
	for curr != nil {
		switch c := cmp.Compare(key, curr.key); {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr.value, true
		}
	}
	var zero V
	return zero, false
}

func (t *tree[K, V]) Traverse(order Order) []K {
	keys := make([]K, 0, t.Size())
	t.ForEach(order, func(n Node[K, V]) bool {
		keys = append(keys, n.Key())
		return true
	})
	return keys
}

func (t *tree[K, V]) ForEach(order Order, callback Callback[K, V]) {
	if t == nil || t.root == nil {
		return
	}

	switch order {
	case PreOrder:
		t.root.preorder(callback)
	case InOrder:
		t.root.inorder(callback)
	case PostOrder:
		t.root.postorder(callback)
	case LevelOrder:
		t.root.levelOrder(callback)
	}
}

// Iterator walks the tree in ascending key order.
func (t *tree[K, V]) Iterator() Iterator[K, V] {
	it := &iterator[K, V]{tree: t}
	if t != nil {
		it.pushLeft(t.root)
	}
	return it
}

func (it *iterator[K, V]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator[K, V]) Next() (Node[K, V], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	last := len(it.stack) - 1
	cur := it.stack[last]
	it.stack[last] = nil
	it.stack = it.stack[:last]
	it.pushLeft(cur.right)
	return cur, nil
}

func (it *iterator[K, V]) pushLeft(n *node[K, V]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}
