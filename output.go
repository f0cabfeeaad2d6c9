package csscat

import (
	"fmt"
	"io"

	"github.com/yacobolo/csscat/internal/csscat"
)

// OutputOptions controls how a report is rendered
type OutputOptions struct {
	UseColors bool // Force terminal colors
	Verbose   bool // Add the per-file breakdown to text output
	Fragment  bool // Never wrap HTML output in a full document
}

// DetermineOutputFormat selects the report format from the requested name
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Quiet runs still need a format; text is the cheapest
	if quiet {
		return OutputText
	}

	switch formatFlag {
	case "text", "txt":
		return OutputText
	case "html", "htm":
		return OutputHTML
	case "json":
		return OutputJSON
	default:
		return DetermineDefaultOutputFormat()
	}
}

// DetermineDefaultOutputFormat returns the default output format
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputText
}

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, report *Report, format OutputFormat, opts OutputOptions) error {
	if report == nil {
		return fmt.Errorf("no report to write")
	}

	switch format {
	case OutputHTML:
		if report.SelfMode && !opts.Fragment {
			return WriteHTMLDocument(w, report)
		}
		return WriteHTMLFragment(w, report)

	case OutputJSON:
		return WriteJSON(w, report)

	default:
		reporter := csscat.NewReporter(w, opts.UseColors)
		reporter.PrintSummary(report)

		if opts.Verbose && report.Available() {
			verbose := csscat.NewVerboseReporter(w, reporter.UseColors())
			verbose.PrintDetails(report)
			verbose.PrintIncluded(report)
			verbose.PrintSkipped(report)
			verbose.PrintMinification(report)
		}
		return nil
	}
}
