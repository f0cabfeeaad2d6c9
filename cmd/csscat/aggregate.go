package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/csscat"
	internal "github.com/yacobolo/csscat/internal/csscat"
)

var aggregateCmd = &cobra.Command{
	Use:     "aggregate",
	Aliases: []string{"agg"},
	Short:   "Concatenate the stylesheets of a directory",
	Long: `Concatenate the *.css files of one directory in lexical order and report
the file and byte counts. With --print and --unlock, and the sentinel file
present next to the binary, the aggregate is written to the --write target.`,
	RunE: runAggregate,
}

func init() {
	addAggregateFlags(aggregateCmd)
}

// addAggregateFlags registers the pipeline flags; the root command shares them
func addAggregateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("dir", "", "Directory to aggregate (default: the binary's directory)")
	f.String("self-dir", "", "Override the binary's directory")
	f.String("site-root", "", "Root that --dir is resolved against")
	f.Int("max-files", internal.DefaultMaxFiles, "Maximum number of files to include")
	f.Int("max-length", internal.DefaultMaxFileLength, "Files of this many bytes or more are skipped")
	f.Int("medium-max-files", internal.DefaultMediumMaxFiles, "File budget for the medium target")
	f.StringSlice("exclude", nil, "File names never included (default: the three output files)")
	f.String("extension", internal.DefaultExtension, "Candidate file extension")
	f.String("ignore-file", internal.DefaultIgnoreFile, "gitignore-style file in the directory (none to disable)")
	f.String("write", string(internal.TargetAll), "Write target: all|medium|min")
	f.Bool("print", false, "Request a write")
	f.Bool("unlock", false, "Confirm the write request")
	f.String("sentinel", internal.DefaultSentinelName, "File that must exist next to the binary before writing")
	f.Bool("minify", false, "Minify the aggregate (always on for --write min)")
	f.String("engine", string(internal.EngineBuiltin), "Minifier engine: builtin|yui")
	f.String("format", "", "Report format: text|html|json")
}

func runAggregate(cmd *cobra.Command, _ []string) error {
	config := buildConfig()

	report, err := csscat.Run(config, localAuthorization(cmd, config), logger)
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := csscat.DetermineOutputFormat(getStringWithFallback("format", "aggregate.format", ""), quiet)
		opts := csscat.OutputOptions{
			UseColors: getBoolWithFallback("color", "color", false),
			Verbose:   getBoolWithFallback("verbose", "verbose", false),
		}
		if err := csscat.WriteOutput(os.Stdout, report, format, opts); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if report.Outcome == csscat.WriteFailed {
		return fmt.Errorf("write failed: %s", report.WriteError)
	}
	return nil
}

// localAuthorization builds the CLI write gate. The print and unlock signals
// come from the command line only, never from env or the config file.
func localAuthorization(cmd *cobra.Command, config internal.Config) internal.Gate {
	return internal.LocalGate(
		flagGiven(cmd, "print"),
		flagGiven(cmd, "unlock"),
		internal.SelfDir(config.SelfDir),
		config.SentinelName,
	)
}

func flagGiven(cmd *cobra.Command, name string) bool {
	flags := cmd.Flags()
	if !flags.Changed(name) {
		return false
	}
	v, err := flags.GetBool(name)
	return err == nil && v
}
