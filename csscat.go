// Package csscat concatenates the stylesheets of one directory into a single
// file, optionally minified.
//
// # Aggregation
//
// Aggregate a directory and print the report:
//
//	config := csscat.DefaultConfig()
//	config.Dir = "/assets/css"
//	config.SiteRoot = "/srv/site"
//	report, err := csscat.Run(config, csscat.Deny, logger)
//	csscat.WriteOutput(os.Stdout, report, csscat.OutputText, csscat.OutputOptions{})
//
// Candidates are the "*.css" entries directly inside the directory, taken in
// lexical order. Excluded names, names containing "-dnp.", entries matched by
// a ".cssignore" file, trivial files (4 bytes or fewer) and oversized files
// are skipped. At most MaxFiles files are included.
//
// # Writing
//
// The aggregate is written to style.all.css, style.med.css or style.min.css
// in the same directory, but only when the WriteAuthorization passed to Run
// allows it. A denied write is a normal outcome, not an error.
//
// # CLI Tool
//
// csscat also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/csscat/cmd/csscat@latest
package csscat

// Public API:
// - Run(config Config, auth WriteAuthorization, logger *zap.Logger) (*Report, error)
// - Minify(src []byte, engine Engine) []byte
// - DetermineOutputFormat(requested string, quiet bool) OutputFormat
// - WriteOutput(w io.Writer, report *Report, format OutputFormat, opts OutputOptions) error
