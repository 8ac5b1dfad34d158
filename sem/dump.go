package sem

import (
	"strconv"
	"strings"
)

// Dump renders a tree as indented text: one node per line, two spaces of
// indentation per level and the node payload after its name.  Dumps are what
// `jsspec lower` prints and what the tests compare against.
func Dump(t Tree) string {
	return dumpIndented(t, 0)
}

func dumpIndented(t Tree, depth int) string {
	sb := &strings.Builder{}
	dumpNode(sb, t, depth)
	return sb.String()
}

func dumpNode(sb *strings.Builder, t Tree, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(KindName(t.Kind()))

	switch v := t.(type) {
	case *ErrorNode:
		sb.WriteString(" " + strconv.Quote(v.message))
	case *UnresolvedReference:
		sb.WriteString(" " + v.name)
	case *MathematicalConstant:
		sb.WriteString(" " + strconv.FormatInt(v.value, 10))
	case *BinaryOperation:
		sb.WriteString(" " + v.op.String())
	}

	sb.WriteByte('\n')

	for _, child := range children(t) {
		dumpNode(sb, child, depth+1)
	}
}
