package models

// GeneratedHeader represents one generated C11 header artifact. Content is
// complete before anything is written to disk: generation hands back a
// whole in-memory artifact or nothing.
type GeneratedHeader struct {
	UnitName     string // logical unit name, e.g. "ivan.basic"
	FilePath     string // path where the header should be written
	Content      string // generated header text, newline-terminated
	WrapperCount int    // number of wrapper functions emitted
}
