package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/csscat/internal/csscat"
)

const defaultConfigFile = ".csscat.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(changedFlags(cmd.Flags()), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// changedFlags exposes only the flags given on the command line, so flag
// defaults never shadow the config file
func changedFlags(fs *pflag.FlagSet) *posflag.Posflag {
	return posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	})
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSCAT_* prefix)
	if err := k.Load(env.Provider("CSSCAT_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable onto a config key:
//
//	CSSCAT_AGGREGATE_MAX_FILES -> aggregate.max-files
//	CSSCAT_OUTPUT_TARGET       -> output.target
//	CSSCAT_VERBOSE             -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "CSSCAT_"))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}

// buildConfig constructs the pipeline Config from koanf state
func buildConfig() csscat.Config {
	config := csscat.DefaultConfig()

	config.Dir = getStringWithFallback("dir", "aggregate.dir", "")
	config.SelfDir = getStringWithFallback("self-dir", "aggregate.self-dir", "")
	config.SiteRoot = getStringWithFallback("site-root", "aggregate.site-root", "")

	config.Aggregation.MaxFiles = getIntWithFallback("max-files", "aggregate.max-files", csscat.DefaultMaxFiles)
	config.Aggregation.MaxFileLength = getIntWithFallback("max-length", "aggregate.max-length", csscat.DefaultMaxFileLength)
	config.Aggregation.Extension = getStringWithFallback("extension", "aggregate.extension", csscat.DefaultExtension)
	config.MediumMaxFiles = getIntWithFallback("medium-max-files", "aggregate.medium-max-files", csscat.DefaultMediumMaxFiles)

	// Handle excludes: check flag key first, then config key
	if excludes := k.Strings("exclude"); len(excludes) > 0 {
		config.Aggregation.ExcludedNames = excludes
	} else if excludes := k.Strings("aggregate.exclude"); len(excludes) > 0 {
		config.Aggregation.ExcludedNames = excludes
	}

	config.IgnoreFile = getStringWithFallback("ignore-file", "aggregate.ignore-file", csscat.DefaultIgnoreFile)
	if config.IgnoreFile == "none" {
		config.IgnoreFile = ""
	}

	config.Minify = getBoolWithFallback("minify", "aggregate.minify", false)
	config.Engine = csscat.Engine(getStringWithFallback("engine", "aggregate.engine", string(csscat.EngineBuiltin)))

	config.Target = csscat.Target(getStringWithFallback("write", "output.target", string(csscat.TargetAll)))
	config.SentinelName = getStringWithFallback("sentinel", "output.sentinel", csscat.DefaultSentinelName)

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
