package walk

import (
	"jsspec/sem"
	"jsspec/syntax"
	"strconv"
	"strings"
)

// walkFunctionCall lowers a call expression; arguments keep their order
func (w *Walker) walkFunctionCall(fc *syntax.FunctionCall) sem.Tree {
	args := make([]sem.Tree, len(fc.Arguments))
	for i, arg := range fc.Arguments {
		args[i] = w.walkRequired(arg, fc)
	}

	return sem.NewFunctionCall(w.walkRequired(fc.Callee, fc), args)
}

// walkName lowers an identifier.  Resolution happens in a later pass.
func (w *Walker) walkName(name *syntax.Name) sem.Tree {
	return sem.NewUnresolvedReference(name.FullName())
}

// walkNumericLiteral lowers a numeric literal
func (w *Walker) walkNumericLiteral(nl *syntax.NumericLiteral) sem.Tree {
	value, ok := parseIntegerLiteral(nl.Value)
	if !ok {
		return w.substitute(nl, UnrepresentableLiteralError())
	}

	return sem.NewMathematicalConstant(value)
}

// parseIntegerLiteral parses the spelling of a C++ integer literal into an
// int64.  Digit separators and integer suffixes are dropped.  Decimal, hex,
// binary and octal forms are accepted, with an optional sign.
func parseIntegerLiteral(text string) (int64, bool) {
	digits := strings.ReplaceAll(strings.TrimSpace(text), "'", "")

	sign := ""
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}

	// none of the suffix letters are hex digits
	digits = strings.TrimRight(digits, "uUlLzZ")

	// the sign is a part of the parsed text so that the most negative int64
	// can be spelled
	if digits == "" || strings.ContainsAny(digits, "+-") {
		return 0, false
	}

	// ParseInt also takes Go's `_` separators and `0o` prefix, which are not
	// C++ spellings
	if strings.Contains(digits, "_") || strings.HasPrefix(digits, "0o") || strings.HasPrefix(digits, "0O") {
		return 0, false
	}

	value, err := strconv.ParseInt(sign+digits, 0, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
