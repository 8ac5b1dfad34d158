package sem

import "fmt"

// BinaryOperator is the operator of a BinaryOperation: it must be one of the
// enumerated operators below
type BinaryOperator int

// Enumeration of binary operators
const (
	ArithmeticAdd BinaryOperator = iota
	ArithmeticSubtract
	ArithmeticMultiply
	ArithmeticDivide
	ArithmeticModulo
	CompareLess
	CompareLessOrEqual
	CompareGreater
	CompareGreaterOrEqual
	CompareEqual
	CompareNotEqual
	LogicalAnd
	LogicalOr
	MemberAccess
	Assignment

	// Declaration is an assignment which also defines the name on its left
	// hand side as a local variable.  Later passes treat it exactly like
	// Assignment otherwise, so a function has one flat namespace and no name
	// can be shadowed.
	Declaration
)

var operatorNames = [...]string{
	ArithmeticAdd:         "ArithmeticAdd",
	ArithmeticSubtract:    "ArithmeticSubtract",
	ArithmeticMultiply:    "ArithmeticMultiply",
	ArithmeticDivide:      "ArithmeticDivide",
	ArithmeticModulo:      "ArithmeticModulo",
	CompareLess:           "CompareLess",
	CompareLessOrEqual:    "CompareLessOrEqual",
	CompareGreater:        "CompareGreater",
	CompareGreaterOrEqual: "CompareGreaterOrEqual",
	CompareEqual:          "CompareEqual",
	CompareNotEqual:       "CompareNotEqual",
	LogicalAnd:            "LogicalAnd",
	LogicalOr:             "LogicalOr",
	MemberAccess:          "MemberAccess",
	Assignment:            "Assignment",
	Declaration:           "Declaration",
}

func (op BinaryOperator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}

	return operatorNames[op]
}
