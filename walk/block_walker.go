package walk

import (
	"jsspec/sem"
	"jsspec/syntax"
)

// walkStatementList lowers a sequence of statements.  Statements that
// contribute nothing are dropped rather than left as holes.
func (w *Walker) walkStatementList(stmts []syntax.Statement) *sem.TreeList {
	trees := make([]sem.Tree, 0, len(stmts))
	for _, stmt := range stmts {
		if tree := w.walkNullable(stmt); tree != nil {
			trees = append(trees, tree)
		}
	}

	return sem.NewTreeList(trees...)
}

// walkBlockStatement lowers a block statement
func (w *Walker) walkBlockStatement(block *syntax.BlockStatement) sem.Tree {
	return w.walkStatementList(block.Statements)
}

// walkIfStatement lowers an if chain into a flat tree list of standalone
// branches: an IfBranch followed by one ElseIfBranch per `else if` and a
// final predicate-less ElseIfBranch for a trailing `else`.  The branches are
// kept separate because the branch merging pass expects them as siblings.
func (w *Walker) walkIfStatement(ifStmt *syntax.IfStatement) sem.Tree {
	var branches []sem.Tree
	current := ifStmt

	for {
		predicate := w.walkRequired(current.Predicate, current)
		body := w.walkPossiblyEmpty(current.Then)

		if len(branches) == 0 {
			branches = append(branches, sem.NewIfBranch(predicate, body))
		} else {
			branches = append(branches, sem.NewElseIfBranch(predicate, body))
		}

		next, ok := current.Else.(*syntax.IfStatement)
		if !ok || next == nil {
			break
		}

		current = next
	}

	if !isNilNode(current.Else) {
		branches = append(branches, sem.NewElseBranch(w.walkPossiblyEmpty(current.Else)))
	}

	return sem.NewTreeList(branches...)
}
