package bst

func (n *node[K, V]) Key() K {
	return n.key
}

func (n *node[K, V]) Value() V {
	return n.value
}

func (n *node[K, V]) Left() Node[K, V] {
	return n.left.asNode()
}

func (n *node[K, V]) Right() Node[K, V] {
	return n.right.asNode()
}

// asNode keeps an absent child from turning into a non-nil interface
func (n *node[K, V]) asNode() Node[K, V] {
	if n == nil {
		return nil
	}
	return n
}

func (n *node[K, V]) preorder(callback Callback[K, V]) traverseAction {
	if n == nil {
		return traverseContinue
	}
	if !callback(n) {
		return traverseStop
	}
	if n.left.preorder(callback) == traverseStop {
		return traverseStop
	}
	return n.right.preorder(callback)
}

func (n *node[K, V]) inorder(callback Callback[K, V]) traverseAction {
	if n == nil {
		return traverseContinue
	}
	if n.left.inorder(callback) == traverseStop {
		return traverseStop
	}
	if !callback(n) {
		return traverseStop
	}
	return n.right.inorder(callback)
}

func (n *node[K, V]) postorder(callback Callback[K, V]) traverseAction {
	if n == nil {
		return traverseContinue
	}
	if n.left.postorder(callback) == traverseStop {
		return traverseStop
	}
	if n.right.postorder(callback) == traverseStop {
		return traverseStop
	}
	if !callback(n) {
		return traverseStop
	}
	return traverseContinue
}

// levelOrder walks breadth first with an explicit queue, so stack depth
// does not grow with the height of the tree.
func (n *node[K, V]) levelOrder(callback Callback[K, V]) traverseAction {
	if n == nil {
		return traverseContinue
	}
	queue := []*node[K, V]{n}
	for len(queue) > 0 {
		curr := queue[0]
		queue[0] = nil
		queue = queue[1:]

		if !callback(curr) {
			return traverseStop
		}
		if curr.left != nil {
			queue = append(queue, curr.left)
		}
		if curr.right != nil {
			queue = append(queue, curr.right)
		}
	}
	return traverseContinue
}
