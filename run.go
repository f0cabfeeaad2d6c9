package csscat

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yacobolo/csscat/internal/csscat"
)

// Types shared with the pipeline stages
type (
	Config             = csscat.Config
	AggregationConfig  = csscat.AggregationConfig
	AggregationResult  = csscat.AggregationResult
	Report             = csscat.Report
	Target             = csscat.Target
	Engine             = csscat.Engine
	OutputFormat       = csscat.OutputFormat
	WriteAuthorization = csscat.WriteAuthorization
	AuthorizationFunc  = csscat.AuthorizationFunc
	Gate               = csscat.Gate
	WriteOutcome       = csscat.WriteOutcome
)

// Re-exported constants
const (
	TargetAll    = csscat.TargetAll
	TargetMedium = csscat.TargetMedium
	TargetMin    = csscat.TargetMin

	EngineBuiltin = csscat.EngineBuiltin
	EngineYUI     = csscat.EngineYUI

	OutputText = csscat.OutputText
	OutputHTML = csscat.OutputHTML
	OutputJSON = csscat.OutputJSON

	WriteNotRequested = csscat.WriteNotRequested
	WriteDenied       = csscat.WriteDenied
	WriteSucceeded    = csscat.WriteSucceeded
	WriteFailed       = csscat.WriteFailed

	MessageNotAvailable = csscat.MessageNotAvailable
)

// Deny never allows a write
var Deny = csscat.Deny

// ErrInvalidConfig is returned by Run when the configuration does not validate
var ErrInvalidConfig = csscat.ErrInvalidConfig

// DefaultConfig returns the configuration used for a bare invocation
func DefaultConfig() Config {
	return csscat.DefaultConfig()
}

// Minify minifies src locally with the chosen engine
func Minify(src []byte, engine Engine) []byte {
	return csscat.Minify(src, engine)
}

// Run is the main entry point. It always returns a report for a valid
// configuration: an empty directory, a denied write and a failed write are
// all outcomes recorded in the report, not errors.
func Run(config Config, auth WriteAuthorization, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if auth == nil {
		auth = csscat.Deny
	}

	resolve := config.ResolveOptions()
	report := &Report{
		RunID:    uuid.NewString(),
		SelfMode: resolve.SelfMode(),
		Target:   config.Target,
		Engine:   config.Engine,
	}
	logger = logger.With(zap.String("run", report.RunID))

	// 1. Resolve the directory
	report.BaseDir = csscat.ResolveBaseDir(resolve)
	logger.Debug("resolved directory",
		zap.String("base", report.BaseDir),
		zap.Bool("self", report.SelfMode))

	// 2. Enumerate, filter and concatenate
	report.Result = csscat.Aggregate(report.BaseDir, config.EffectiveAggregation(), config.IgnoreFile, logger)
	if !report.Result.Available() {
		logger.Info("nothing to aggregate", zap.String("base", report.BaseDir))
		return report, nil
	}

	// 3. Minify
	if config.Minify || config.Target == csscat.TargetMin {
		report.Minified = csscat.Minify(report.Result.Content, config.Engine)
		logger.Debug("minified",
			zap.String("engine", string(config.Engine)),
			zap.Int("before", report.Result.ByteLength),
			zap.Int("after", len(report.Minified)))
	}

	// 4. Consult the gate once, then write
	if !auth.AllowWrite() {
		report.Outcome = csscat.WriteDenied
		logger.Info("write denied", zap.String("target", string(config.Target)))
		return report, nil
	}

	content := report.Result.Content
	if config.Target == csscat.TargetMin {
		content = report.Minified
	}

	path, err := csscat.WriteAggregate(report.BaseDir, config.Target, content)
	report.OutputPath = path
	if err != nil {
		report.Outcome = csscat.WriteFailed
		report.WriteError = fmt.Sprintf("write %s: %v", path, err)
		logger.Warn("write failed", zap.String("path", path), zap.Error(err))
		return report, nil
	}

	report.Outcome = csscat.WriteSucceeded
	logger.Info("aggregate written",
		zap.String("path", path),
		zap.Int("files", len(report.Result.IncludedFiles)),
		zap.Int("bytes", len(content)))

	return report, nil
}
