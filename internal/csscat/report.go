package csscat

import "fmt"

// Report is everything a host needs to render the outcome of one run
type Report struct {
	RunID    string
	BaseDir  string
	SelfMode bool
	Target   Target
	Engine   Engine

	Result   *AggregationResult
	Minified []byte // Nil unless minification ran

	Outcome    WriteOutcome
	OutputPath string // Destination of the write attempt
	WriteError string // Storage error text when Outcome is WriteFailed
}

// Available reports whether any candidate was enumerated
func (r *Report) Available() bool {
	return r != nil && r.Result.Available()
}

// Content returns the minified aggregate when it was produced, the raw aggregate otherwise
func (r *Report) Content() []byte {
	if r.Minified != nil {
		return r.Minified
	}
	if r.Result == nil {
		return nil
	}
	return r.Result.Content
}

// IncludedCount returns the number of aggregated files
func (r *Report) IncludedCount() int {
	if r.Result == nil {
		return 0
	}
	return len(r.Result.IncludedFiles)
}

// CountLines returns the "N files" and "N bytes" summary lines.
// The wording is fixed so every renderer prints the same text.
func (r *Report) CountLines() (files, bytes string) {
	if r.Result == nil {
		return "0 files", "0 bytes"
	}
	return fmt.Sprintf("%d files", r.Result.FileCount), fmt.Sprintf("%d bytes", r.Result.ByteLength)
}
