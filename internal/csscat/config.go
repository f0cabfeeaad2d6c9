package csscat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps every configuration validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the immutable input of one pipeline run
type Config struct {
	Dir          string // Explicit directory; empty means self-mode
	SelfDir      string // Overrides the executable's directory
	SiteRoot     string // Root that Dir is resolved against
	DocumentRoot string // Fallback root when SiteRoot is empty

	Aggregation    AggregationConfig
	MediumMaxFiles int `validate:"gte=1"`

	Target       Target `validate:"oneof=all medium min"`
	Minify       bool   // Minify the emitted content even when the target is not "min"
	Engine       Engine `validate:"oneof=builtin yui"`
	IgnoreFile   string // gitignore-style file in the base directory; empty disables it
	SentinelName string // File that must exist in the self directory before any write
}

// DefaultConfig returns the configuration used for a bare invocation
func DefaultConfig() Config {
	return Config{
		Aggregation:    DefaultAggregationConfig(),
		MediumMaxFiles: DefaultMediumMaxFiles,
		Target:         TargetAll,
		Engine:         EngineBuiltin,
		IgnoreFile:     DefaultIgnoreFile,
		SentinelName:   DefaultSentinelName,
	}
}

// ResolveOptions extracts the directory inputs
func (c Config) ResolveOptions() ResolveOptions {
	return ResolveOptions{
		Dir:          c.Dir,
		SelfDir:      c.SelfDir,
		SiteRoot:     c.SiteRoot,
		DocumentRoot: c.DocumentRoot,
	}
}

// EffectiveAggregation returns the aggregation rules for the configured target.
// The medium target uses its own file budget.
func (c Config) EffectiveAggregation() AggregationConfig {
	agg := c.Aggregation
	if c.Target == TargetMedium {
		agg.MaxFiles = c.MediumMaxFiles
	}
	return agg
}

var validate = validator.New()

// Validate checks the limits and enumerations
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
