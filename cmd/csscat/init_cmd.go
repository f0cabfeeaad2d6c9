package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .csscat.yaml config file",
	Long:  `Create a .csscat.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# csscat configuration
# Docs: https://github.com/yacobolo/csscat
# Environment overrides use the CSSCAT_ prefix, e.g. CSSCAT_AGGREGATE_MAX_FILES=6

verbose: false
color: false

# What gets concatenated
aggregate:
  dir: ""                  # empty = the binary's own directory
  site-root: ""            # dir is resolved against this root
  max-files: 8
  max-length: 75000        # files of this size or larger are skipped
  medium-max-files: 4
  extension: .css
  exclude:
    - style.all.css
    - style.med.css
    - style.min.css
  ignore-file: .cssignore  # none to disable
  minify: false
  engine: builtin          # builtin | yui
  format: text             # text | html | json

# Where it goes
output:
  target: all              # all | medium | min
  sentinel: .security

# csscat serve
serve:
  addr: 127.0.0.1:8080
  doc-root: .
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
