package csscat

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter prints the per-file breakdown of a run
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintDetails outputs where the run looked and how it was configured
func (r *VerboseReporter) PrintDetails(report *Report) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, Paint(RoleHeading, "Aggregation", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	mode := "explicit"
	if report.SelfMode {
		mode = "self"
	}
	fmt.Fprintf(r.w, "Directory:  %s (%s)\n", Paint(RolePath, report.BaseDir, r.useColors), mode)
	fmt.Fprintf(r.w, "Target:     %s\n", report.Target.FileName())
	fmt.Fprintf(r.w, "Run:        %s\n", report.RunID)
	if report.OutputPath != "" && report.Outcome != WriteDenied {
		fmt.Fprintf(r.w, "Output:     %s\n", report.OutputPath)
	}
	if report.WriteError != "" {
		fmt.Fprintf(r.w, "Error:      %s\n", Paint(RoleFailed, report.WriteError, r.useColors))
	}
}

// PrintIncluded lists the aggregated files in order
func (r *VerboseReporter) PrintIncluded(report *Report) {
	if report.IncludedCount() == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, Paint(RoleIncluded, "Included", r.useColors))
	fmt.Fprintln(r.w, "--------")
	for i, name := range report.Result.IncludedFiles {
		fmt.Fprintf(r.w, "%d. %s\n", i+1, name)
	}
}

// PrintSkipped lists rejected candidates with their reasons
func (r *VerboseReporter) PrintSkipped(report *Report) {
	if report.Result == nil || len(report.Result.Skipped) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, Paint(RoleSkipped, "Skipped", r.useColors))
	fmt.Fprintln(r.w, "-------")
	for _, s := range report.Result.Skipped {
		if s.Length > 0 {
			fmt.Fprintf(r.w, "• %s: %s (%s)\n", s.Name, s.Reason, pluralizeCount(s.Length, "byte", "bytes"))
			continue
		}
		fmt.Fprintf(r.w, "• %s: %s\n", s.Name, s.Reason)
	}

	// Candidates neither included nor skipped had malformed names
	if silent := report.Result.FileCount - report.IncludedCount() - len(report.Result.Skipped); silent > 0 {
		fmt.Fprintln(r.w, Paint(RolePath, fmt.Sprintf("(%d unnamed)", silent), r.useColors))
	}
}

// PrintMinification shows the size reduction when the aggregate was minified
func (r *VerboseReporter) PrintMinification(report *Report) {
	if report.Minified == nil || report.Result == nil || report.Result.ByteLength == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, Paint(RoleHeading, "Minification", r.useColors))
	fmt.Fprintln(r.w, "------------")
	fmt.Fprintf(r.w, "Engine:     %s\n", report.Engine)
	fmt.Fprintf(r.w, "Size:       %d -> %d bytes\n", report.Result.ByteLength, len(report.Minified))

	saved := 100 - float64(len(report.Minified))*100/float64(report.Result.ByteLength)
	if saved < 0 {
		saved = 0
	}
	printProgressBar(r.w, saved)
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	fmt.Fprintf(w, "[%s%s] %.1f%% saved\n",
		strings.Repeat("█", filled),
		strings.Repeat("░", barWidth-filled),
		percentage)
}
