package internal

// DebugTraverse visits the tree in pre-order. Every node gets a sequential id
// starting at 1; parent is 0 for the root and direction is "l", "r" or "".
func DebugTraverse[T any](root *Node[T], onNode func(node *Node[T], selfId, parent int, direction string) error) error {
	if root == nil {
		return nil
	}

	nextId := 0
	var traverse func(node *Node[T], parent int, direction string) error
	traverse = func(node *Node[T], parent int, direction string) error {
		nextId++
		nodeId := nextId
		if err := onNode(node, nodeId, parent, direction); err != nil {
			return err
		}

		if node.left != nil {
			if err := traverse(node.left, nodeId, "l"); err != nil {
				return err
			}
		}
		if node.right != nil {
			if err := traverse(node.right, nodeId, "r"); err != nil {
				return err
			}
		}
		return nil
	}

	return traverse(root, 0, "")
}
