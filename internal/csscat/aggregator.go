package csscat

import (
	"bytes"

	"go.uber.org/zap"
)

// Concat joins the selected contents in order with no separator
func Concat(selected []Selected) []byte {
	size := 0
	for _, s := range selected {
		size += len(s.Content)
	}

	var buf bytes.Buffer
	buf.Grow(size)
	for _, s := range selected {
		buf.Write(s.Content)
	}
	return buf.Bytes()
}

// Aggregate enumerates base, filters the candidates and concatenates the survivors
func Aggregate(base string, config AggregationConfig, ignoreFile string, logger *zap.Logger) *AggregationResult {
	if logger == nil {
		logger = zap.NewNop()
	}

	candidates := EnumerateCandidates(base, config.Extension)
	result := &AggregationResult{FileCount: len(candidates)}
	if len(candidates) == 0 {
		logger.Debug("no candidates", zap.String("base", base), zap.String("extension", config.Extension))
		return result
	}

	filter := NewFilter(config, LoadIgnoreFile(base, ignoreFile), logger)
	selected, skipped := filter.Select(candidates)

	result.Content = Concat(selected)
	result.ByteLength = len(result.Content)
	result.Skipped = skipped
	result.IncludedFiles = make([]string, 0, len(selected))
	for _, s := range selected {
		result.IncludedFiles = append(result.IncludedFiles, s.Name)
	}

	logger.Debug("aggregated",
		zap.String("base", base),
		zap.Int("candidates", result.FileCount),
		zap.Int("included", len(result.IncludedFiles)),
		zap.Int("bytes", result.ByteLength))

	return result
}
