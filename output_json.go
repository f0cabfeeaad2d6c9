package csscat

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	RunID     string        `json:"run_id"`
	Available bool          `json:"available"`
	Message   string        `json:"message,omitempty"`
	Directory JSONDirectory `json:"directory"`
	Summary   JSONSummary   `json:"summary"`
	Included  []string      `json:"included"`
	Skipped   []JSONSkipped `json:"skipped"`
	Write     JSONWrite     `json:"write"`
}

// JSONDirectory describes where the run looked
type JSONDirectory struct {
	Path     string `json:"path"`
	SelfMode bool   `json:"self_mode"`
}

// JSONSummary contains the counts
type JSONSummary struct {
	Files         int  `json:"files"`
	Included      int  `json:"included"`
	Bytes         int  `json:"bytes"`
	MinifiedBytes *int `json:"minified_bytes,omitempty"`
}

// JSONSkipped is one rejected candidate
type JSONSkipped struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Bytes  int    `json:"bytes,omitempty"`
}

// JSONWrite describes the write attempt
type JSONWrite struct {
	Target  string `json:"target"`
	Outcome string `json:"outcome"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteJSON writes the report as JSON
func WriteJSON(w io.Writer, report *Report) error {
	output := buildJSONOutput(report)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a Report to JSONOutput
func buildJSONOutput(report *Report) JSONOutput {
	output := JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		RunID:     report.RunID,
		Available: report.Available(),
		Directory: JSONDirectory{
			Path:     report.BaseDir,
			SelfMode: report.SelfMode,
		},
		Included: []string{},
		Skipped:  []JSONSkipped{},
		Write: JSONWrite{
			Target:  string(report.Target),
			Outcome: string(report.Outcome),
			Message: report.Outcome.Message(),
			Error:   report.WriteError,
		},
	}

	if !output.Available {
		output.Message = MessageNotAvailable
		output.Write.Outcome = "none"
		return output
	}

	if report.Outcome != "" && report.Outcome != WriteDenied {
		output.Write.Path = report.OutputPath
	}

	result := report.Result
	output.Summary = JSONSummary{
		Files:    result.FileCount,
		Included: len(result.IncludedFiles),
		Bytes:    result.ByteLength,
	}
	if report.Minified != nil {
		n := len(report.Minified)
		output.Summary.MinifiedBytes = &n
	}

	output.Included = append(output.Included, result.IncludedFiles...)
	for _, s := range result.Skipped {
		output.Skipped = append(output.Skipped, JSONSkipped{
			Name:   s.Name,
			Reason: string(s.Reason),
			Bytes:  s.Length,
		})
	}

	return output
}
