package internal

import (
	"errors"
	"fmt"
)

var ErrRootHasParent = errors.New("root node has a parent link")

// Verify walks the whole tree and checks ordering, AA level rules and parent
// links. It returns the number of nodes visited.
func Verify[T any](less Less[T], root *Node[T]) (int, error) {
	if root == nil {
		return 0, nil
	}
	if root.parent != nil {
		return 0, ErrRootHasParent
	}
	v := verifier[T]{less: less}
	if err := v.visit(root, nil, nil); err != nil {
		return v.count, err
	}
	return v.count, nil
}

type verifier[T any] struct {
	less  Less[T]
	count int
}

// visit checks node against the exclusive bounds lo and hi inherited from its
// ancestors.
func (v *verifier[T]) visit(node, lo, hi *Node[T]) error {
	v.count++

	if lo != nil && !v.less(lo.value, node.value) {
		return fmt.Errorf("value %v is not greater than ancestor %v", node.value, lo.value)
	}
	if hi != nil && !v.less(node.value, hi.value) {
		return fmt.Errorf("value %v is not less than ancestor %v", node.value, hi.value)
	}

	if node.level < 1 {
		return fmt.Errorf("node %v has level %d", node.value, node.level)
	}
	if node.isLeaf() && node.level != 1 {
		return fmt.Errorf("leaf %v has level %d, want 1", node.value, node.level)
	}
	if node.level > 1 && (node.left == nil || node.right == nil) {
		return fmt.Errorf("node %v at level %d is missing a child", node.value, node.level)
	}

	if left := node.left; left != nil {
		if left.parent != node {
			return fmt.Errorf("left child %v of %v has a stale parent link", left.value, node.value)
		}
		if left.level != node.level-1 {
			return fmt.Errorf("left child %v of %v has level %d, want %d", left.value, node.value, left.level, node.level-1)
		}
		if err := v.visit(left, lo, node); err != nil {
			return err
		}
	}

	if right := node.right; right != nil {
		if right.parent != node {
			return fmt.Errorf("right child %v of %v has a stale parent link", right.value, node.value)
		}
		if right.level != node.level && right.level != node.level-1 {
			return fmt.Errorf("right child %v of %v has level %d, want %d or %d", right.value, node.value, right.level, node.level, node.level-1)
		}
		if right.right != nil && right.right.level >= node.level {
			return fmt.Errorf("right grandchild %v of %v is on level %d", right.right.value, node.value, right.right.level)
		}
		if err := v.visit(right, node, hi); err != nil {
			return err
		}
	}

	return nil
}
