package types

// FileInfo identifies a source file for diagnostics.
type FileInfo struct {
	// Path is the source path as given to the compiler.
	Path string
	// EOF is the position just past the last character, used for errors at
	// end of input.
	EOF Position
}

// CompiledFile is the unit handed to the output writer: one generated
// mcfunction body plus the names the scoreboard objective is built from.
type CompiledFile struct {
	Path          string
	ObjectName    string
	AnimationName string
	Contents      string
}
