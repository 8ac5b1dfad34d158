package walk

import (
	"jsspec/sem"
	"jsspec/syntax"
)

// walkVariableDeclaration lowers a variable declaration.  Names are defined by
// their first assignment (see walkAssignment) so a bare declaration
// contributes nothing.  A declaration with an initializer is not supported:
// where it would sit relative to later plain assignments is undecided.
func (w *Walker) walkVariableDeclaration(vd *syntax.VariableDeclaration) sem.Tree {
	if !isNilNode(vd.InitialValue) {
		return w.substitute(vd, InitializedDeclarationError())
	}

	return nil
}

// walkReturnStatement lowers a return statement.  `return;` returns an empty
// tree list.
func (w *Walker) walkReturnStatement(rs *syntax.ReturnStatement) sem.Tree {
	if isNilNode(rs.Value) {
		return sem.NewReturnNode(sem.NewTreeList())
	}

	return sem.NewReturnNode(w.walkRequired(rs.Value, rs))
}

// walkAssignment lowers an assignment.  Every assignment is a Declaration:
// since variable declarations are elided, the assignment is the only place a
// local can be defined.  Later passes treat Declaration like a plain
// assignment otherwise, so shadowing cannot be expressed.
func (w *Walker) walkAssignment(ae *syntax.AssignmentExpression) sem.Tree {
	return sem.NewBinaryOperation(
		sem.Declaration,
		w.walkRequired(ae.Lhs, ae),
		w.walkRequired(ae.Rhs, ae),
	)
}
