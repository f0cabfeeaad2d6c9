package csscat

// FileCandidate is one filesystem entry matched by the extension glob
type FileCandidate struct {
	Name       string // "a.css"
	Path       string // "/srv/site/css/a.css"
	ByteLength int    // Set once the content has been read
}

// AggregationConfig holds the filter and budget rules for one run
type AggregationConfig struct {
	MaxFiles              int `validate:"gte=1"`
	MaxFileLength         int `validate:"gt=5"`
	ExcludedNames         []string
	ExcludedSuffixPattern string
	Extension             string `validate:"required,startswith=."`
}

// Default aggregation limits and names
const (
	DefaultMaxFiles       = 8
	DefaultMaxFileLength  = 75000
	DefaultMediumMaxFiles = 4
	DefaultExtension      = ".css"
	DefaultDNPMarker      = "-dnp."
	DefaultSentinelName   = ".security"
	DefaultIgnoreFile     = ".cssignore"

	// MinFileLength is the largest trivial length; included files are strictly longer.
	MinFileLength = 4
)

// DefaultAggregationConfig returns the limits used when the caller supplies none
func DefaultAggregationConfig() AggregationConfig {
	return AggregationConfig{
		MaxFiles:              DefaultMaxFiles,
		MaxFileLength:         DefaultMaxFileLength,
		ExcludedNames:         []string{OutputAll, OutputMedium, OutputMin},
		ExcludedSuffixPattern: DefaultDNPMarker,
		Extension:             DefaultExtension,
	}
}

// SkipReason explains why a candidate was left out of the aggregate
type SkipReason string

// Skip reasons reported in verbose and JSON output.
// Malformed names are never recorded.
const (
	SkipExcluded   SkipReason = "excluded"
	SkipDNP        SkipReason = "do-not-process"
	SkipIgnored    SkipReason = "ignored"
	SkipBudget     SkipReason = "budget"
	SkipTrivial    SkipReason = "trivial"
	SkipOversized  SkipReason = "oversized"
	SkipUnreadable SkipReason = "unreadable"
)

// Rejection records a skipped candidate
type Rejection struct {
	Name   string
	Reason SkipReason
	Length int // 0 when the content was never read
}

// AggregationResult is built once per run
type AggregationResult struct {
	FileCount     int      // Every candidate seen, including rejects
	IncludedFiles []string // In aggregation order
	Content       []byte   // Raw concatenation, no separators
	ByteLength    int
	Skipped       []Rejection
}

// Available reports whether the run saw any candidate at all
func (r *AggregationResult) Available() bool {
	return r != nil && r.FileCount > 0
}

// Target selects which output file a write produces
type Target string

// Write targets and their fixed file names
const (
	TargetAll    Target = "all"
	TargetMedium Target = "medium"
	TargetMin    Target = "min"

	OutputAll    = "style.all.css"
	OutputMedium = "style.med.css"
	OutputMin    = "style.min.css"
)

// FileName returns the fixed output file name for the target
func (t Target) FileName() string {
	switch t {
	case TargetMedium:
		return OutputMedium
	case TargetMin:
		return OutputMin
	default:
		return OutputAll
	}
}

// WriteOutcome is the result of consulting the gate and storage
type WriteOutcome string

// Write outcomes
const (
	WriteNotRequested WriteOutcome = ""
	WriteDenied       WriteOutcome = "denied"
	WriteSucceeded    WriteOutcome = "succeeded"
	WriteFailed       WriteOutcome = "failed"
)

// User-visible messages
const (
	MessageNotAvailable = "Not available."
	MessageWriteDenied  = "Write permission denied."
	MessageWriteSuccess = "Write operation succeeded."
	MessageWriteFailure = "Write operation failed."
)

// Message returns the user-visible text for the outcome
func (o WriteOutcome) Message() string {
	switch o {
	case WriteDenied:
		return MessageWriteDenied
	case WriteSucceeded:
		return MessageWriteSuccess
	case WriteFailed:
		return MessageWriteFailure
	default:
		return ""
	}
}

// Engine selects the minifier implementation
type Engine string

// Minifier engines. Both run locally.
const (
	EngineBuiltin Engine = "builtin"
	EngineYUI     Engine = "yui"
)

// OutputFormat represents the report format
type OutputFormat string

const (
	// OutputText is the terminal report (default for the CLI)
	OutputText OutputFormat = "text"
	// OutputHTML is an HTML fragment, or a full document in self-mode
	OutputHTML OutputFormat = "html"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
