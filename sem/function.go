package sem

// FunctionDefinition is a lowered function: its name and the list of its top
// level statements.  It is created once per converted function and never
// changed afterwards.
type FunctionDefinition struct {
	name string
	body *TreeList
}

// NewFunctionDefinition creates a new function definition
func NewFunctionDefinition(name string, body *TreeList) *FunctionDefinition {
	if body == nil {
		body = NewTreeList()
	}

	return &FunctionDefinition{name: name, body: body}
}

func (fd *FunctionDefinition) Name() string {
	return fd.name
}

func (fd *FunctionDefinition) Body() *TreeList {
	return fd.body
}

// Dump renders the function header followed by the dump of its body
func (fd *FunctionDefinition) Dump() string {
	return "FunctionDefinition " + fd.name + "\n" + dumpIndented(fd.body, 1)
}
