package sem

// Inspect traverses a tree in pre-order, calling f for every node.  Children
// are visited in order.  If f returns false, the children of that node are
// skipped.
func Inspect(t Tree, f func(Tree) bool) {
	if !f(t) {
		return
	}

	for _, child := range children(t) {
		Inspect(child, f)
	}
}

// ErrorNodes collects every error node of a tree in traversal order
func ErrorNodes(t Tree) []*ErrorNode {
	var errs []*ErrorNode
	Inspect(t, func(node Tree) bool {
		if en, ok := node.(*ErrorNode); ok {
			errs = append(errs, en)
		}

		return true
	})

	return errs
}

// children returns the direct children of a node in order.  The slice of a
// tree list is returned without copying: callers in this package only read it.
func children(t Tree) []Tree {
	switch v := t.(type) {
	case *TreeList:
		return v.items
	case *ReturnNode:
		return []Tree{v.value}
	case *FunctionCall:
		return append([]Tree{v.callee}, v.args...)
	case *IfBranch:
		return []Tree{v.predicate, v.body}
	case *ElseIfBranch:
		if v.predicate == nil {
			return []Tree{v.body}
		}

		return []Tree{v.predicate, v.body}
	case *BinaryOperation:
		return []Tree{v.lhs, v.rhs}
	}

	// leaves: ErrorNode, UnresolvedReference, MathematicalConstant
	return nil
}
