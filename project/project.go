package project

// Project represents a jsspec project: the syntax dumps to lower and how the
// lowered trees should be emitted
type Project struct {
	// Name is the name of the project
	Name string

	// Root is the absolute path to the directory containing the project file
	Root string

	// Inputs is the list of glob patterns, relative to Root, matching the
	// syntax dumps of the project
	Inputs []string

	// SourceRoot is the directory against which relative C++ source paths
	// recorded in syntax dumps are resolved.  It defaults to Root.
	SourceRoot string
}

// Profile represents the profile the build will use -- it is returned from
// `LoadProject`.
type Profile struct {
	// Name is the name of the profile
	Name string

	// OutputPath is the directory lowered trees are written to.  If it is
	// empty, trees are written to standard out.
	OutputPath string

	// OutputFormat is the format lowered trees are emitted in.  This should
	// be one of the enumerated formats (prefixed `Format`).
	OutputFormat int

	// Strict indicates whether error nodes in the lowered trees should fail
	// the build instead of only being warned about
	Strict bool
}

// Available Output Formats
const (
	FormatText = iota // Indented tree dump
	FormatGo          // Go syntax representation of the tree values
)

// formatNames maps TOML format name strings to enumerated format values
var formatNames = map[string]int{
	"text": FormatText,
	"go":   FormatGo,
}

// ParseFormat converts a format name into one of the enumerated formats
func ParseFormat(name string) (int, bool) {
	format, ok := formatNames[name]
	return format, ok
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (project name, profile name, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	for i, c := range idstr {
		switch {
		case c == '_' || c == '-' && i > 0:
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
