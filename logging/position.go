package logging

// TextPosition represents a positional range in the source text.  Lines are
// 1-indexed; columns are 0-indexed and the end column is one past the last
// character of the range.
type TextPosition struct {
	StartLn, StartCol int
	EndLn, EndCol     int
}

// TextPositionFromRange takes two positions and computes the text position
// spanning them.
func TextPositionFromRange(start, end *TextPosition) *TextPosition {
	return &TextPosition{
		StartLn:  start.StartLn,
		StartCol: start.StartCol,
		EndLn:    end.EndLn,
		EndCol:   end.EndCol,
	}
}

// LogContext identifies the file a compile message refers to.
type LogContext struct {
	// UnitID is the ID of the translation unit the message came from
	UnitID uint32

	// FilePath is the path to the original C++ source file.  It may be empty
	// if the syntax dump did not record its source.
	FilePath string
}
