package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/csscat"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [file]",
	Short: "Minify a stylesheet to stdout",
	Long:  `Minify one stylesheet, or stdin when no file is given, and print the result.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			in = f
		}
		return runMinify(in, cmd.OutOrStdout())
	},
}

func init() {
	minifyCmd.Flags().String("engine", string(csscat.EngineBuiltin), "Minifier engine: builtin|yui")
}

func runMinify(in io.Reader, out io.Writer) error {
	engine := csscat.Engine(getStringWithFallback("engine", "aggregate.engine", string(csscat.EngineBuiltin)))
	if engine != csscat.EngineBuiltin && engine != csscat.EngineYUI {
		return fmt.Errorf("unknown engine %q (want builtin or yui)", engine)
	}

	src, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stylesheet: %w", err)
	}

	minified := csscat.Minify(src, engine)
	if _, err := out.Write(minified); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	return nil
}
