package csscat

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Reporter prints the terminal summary of a run
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter. forceColors enables styling regardless of the terminal.
func NewReporter(w io.Writer, forceColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(w, forceColors),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(w io.Writer, force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}

	return false
}

// PrintSummary outputs the file count, byte count and write outcome.
// An unavailable run prints only the not-available message.
func (r *Reporter) PrintSummary(report *Report) {
	if !report.Available() {
		fmt.Fprintln(r.w, Paint(RoleNotice, MessageNotAvailable, r.useColors))
		return
	}

	files, size := report.CountLines()
	fmt.Fprintln(r.w, Paint(RoleCount, files, r.useColors))
	fmt.Fprintln(r.w, Paint(RoleCount, size, r.useColors))

	if msg := report.Outcome.Message(); msg != "" {
		fmt.Fprintln(r.w, Paint(OutcomeRole(report.Outcome), msg, r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
