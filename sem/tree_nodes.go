package sem

// TreeList is an ordered sequence of trees: a block of statements or a
// flattened chain of branches.  It may be empty.
type TreeList struct {
	items []Tree
}

// NewTreeList creates a new tree list holding a copy of the given trees
func NewTreeList(items ...Tree) *TreeList {
	return &TreeList{items: cloneTrees(items, "TreeList")}
}

func (*TreeList) Kind() int {
	return NKTreeList
}

// Len returns the number of trees in the list
func (tl *TreeList) Len() int {
	return len(tl.items)
}

// At returns the tree at the given index
func (tl *TreeList) At(ndx int) Tree {
	return tl.items[ndx]
}

// Items returns a copy of the trees in the list
func (tl *TreeList) Items() []Tree {
	return append([]Tree(nil), tl.items...)
}

// -----------------------------------------------------------------------------

// ErrorNode marks a point where lowering could not proceed.  It is always a
// valid leaf so that later passes can traverse past it.
type ErrorNode struct {
	message string
}

// NewErrorNode creates a new error node with the given diagnostic
func NewErrorNode(message string) *ErrorNode {
	return &ErrorNode{message: message}
}

func (*ErrorNode) Kind() int {
	return NKErrorNode
}

// Message returns the diagnostic text of the error
func (en *ErrorNode) Message() string {
	return en.message
}

// -----------------------------------------------------------------------------

// ReturnNode returns a value from the enclosing function
type ReturnNode struct {
	value Tree
}

// NewReturnNode creates a new return node.  The value is required: a return
// without a value is represented by an empty tree list.
func NewReturnNode(value Tree) *ReturnNode {
	return &ReturnNode{value: mustTree(value, "ReturnNode", "value")}
}

func (*ReturnNode) Kind() int {
	return NKReturnNode
}

func (rn *ReturnNode) Value() Tree {
	return rn.value
}

// -----------------------------------------------------------------------------

// FunctionCall is a call expression.  The callee is itself a tree so that
// indirect callees can be represented.
type FunctionCall struct {
	callee Tree
	args   []Tree
}

// NewFunctionCall creates a new function call; the arguments are copied and
// keep their order
func NewFunctionCall(callee Tree, args []Tree) *FunctionCall {
	return &FunctionCall{
		callee: mustTree(callee, "FunctionCall", "callee"),
		args:   cloneTrees(args, "FunctionCall"),
	}
}

func (*FunctionCall) Kind() int {
	return NKFunctionCall
}

func (fc *FunctionCall) Callee() Tree {
	return fc.callee
}

// Args returns a copy of the call arguments in source order
func (fc *FunctionCall) Args() []Tree {
	return append([]Tree(nil), fc.args...)
}

// -----------------------------------------------------------------------------

// UnresolvedReference is a reference to a name that has not been resolved to
// a declaration yet
type UnresolvedReference struct {
	name string
}

func NewUnresolvedReference(name string) *UnresolvedReference {
	return &UnresolvedReference{name: name}
}

func (*UnresolvedReference) Kind() int {
	return NKUnresolvedReference
}

func (ur *UnresolvedReference) Name() string {
	return ur.name
}

// -----------------------------------------------------------------------------

// IfBranch is the first branch of a flattened conditional chain
type IfBranch struct {
	predicate Tree
	body      Tree
}

func NewIfBranch(predicate, body Tree) *IfBranch {
	return &IfBranch{
		predicate: mustTree(predicate, "IfBranch", "predicate"),
		body:      mustTree(body, "IfBranch", "body"),
	}
}

func (*IfBranch) Kind() int {
	return NKIfBranch
}

func (ib *IfBranch) Predicate() Tree {
	return ib.predicate
}

func (ib *IfBranch) Body() Tree {
	return ib.body
}

// ElseIfBranch is a later branch of a flattened conditional chain.  A branch
// without a predicate is the final, unconditional `else`.
type ElseIfBranch struct {
	// predicate is nil for the final `else`
	predicate Tree
	body      Tree
}

// NewElseIfBranch creates a new conditional branch; predicate must be non-nil
func NewElseIfBranch(predicate, body Tree) *ElseIfBranch {
	return &ElseIfBranch{
		predicate: mustTree(predicate, "ElseIfBranch", "predicate"),
		body:      mustTree(body, "ElseIfBranch", "body"),
	}
}

// NewElseBranch creates a new unconditional branch ending a chain
func NewElseBranch(body Tree) *ElseIfBranch {
	return &ElseIfBranch{body: mustTree(body, "ElseIfBranch", "body")}
}

func (*ElseIfBranch) Kind() int {
	return NKElseIfBranch
}

// Predicate returns the predicate of the branch and whether it has one
func (eb *ElseIfBranch) Predicate() (Tree, bool) {
	return eb.predicate, eb.predicate != nil
}

// IsElse indicates whether this is the final, unconditional branch
func (eb *ElseIfBranch) IsElse() bool {
	return eb.predicate == nil
}

func (eb *ElseIfBranch) Body() Tree {
	return eb.body
}

// -----------------------------------------------------------------------------

// BinaryOperation applies a binary operator to two operands
type BinaryOperation struct {
	op       BinaryOperator
	lhs, rhs Tree
}

func NewBinaryOperation(op BinaryOperator, lhs, rhs Tree) *BinaryOperation {
	return &BinaryOperation{
		op:  op,
		lhs: mustTree(lhs, "BinaryOperation", "lhs"),
		rhs: mustTree(rhs, "BinaryOperation", "rhs"),
	}
}

func (*BinaryOperation) Kind() int {
	return NKBinaryOperation
}

func (bo *BinaryOperation) Operator() BinaryOperator {
	return bo.op
}

func (bo *BinaryOperation) Lhs() Tree {
	return bo.lhs
}

func (bo *BinaryOperation) Rhs() Tree {
	return bo.rhs
}

// -----------------------------------------------------------------------------

// MathematicalConstant is a literal numeric value
type MathematicalConstant struct {
	value int64
}

func NewMathematicalConstant(value int64) *MathematicalConstant {
	return &MathematicalConstant{value: value}
}

func (*MathematicalConstant) Kind() int {
	return NKMathematicalConstant
}

func (mc *MathematicalConstant) Value() int64 {
	return mc.value
}
