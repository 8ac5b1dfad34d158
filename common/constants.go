package common

const (
	DumpFileExtension = ".cppast.toml"
	TreeFileExtension = ".tree"
	ProjectFileName   = "jsspec.toml"
	JSSpecVersion     = "0.1.0"
)
