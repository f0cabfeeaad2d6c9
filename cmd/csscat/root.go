package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/csscat/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "csscat",
	Short: "Concatenate and minify the stylesheets of a directory",
	Long: `csscat joins the *.css files of one directory into style.all.css,
style.med.css or style.min.css. Writes only happen from the local machine,
with --print and --unlock, and when the sentinel file sits next to the binary.`,
	// Config and logger are shared by every subcommand
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return setupLogger()
	},
	// Default behavior: aggregate when no subcommand is given
	RunE:          runAggregate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging and per-file report")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")

	addAggregateFlags(rootCmd)

	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogger() error {
	if getBoolWithFallback("quiet", "quiet", false) {
		logger = zap.NewNop()
		return nil
	}

	l, err := logging.New(getBoolWithFallback("verbose", "verbose", false), "csscat", buildVersion())
	logger = l
	return err
}
