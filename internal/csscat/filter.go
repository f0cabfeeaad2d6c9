package csscat

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// Selected is a candidate that passed every rule, with its raw content
type Selected struct {
	FileCandidate
	Content []byte
}

// Filter applies the name, budget and length rules to enumerated candidates
type Filter struct {
	config   AggregationConfig
	excluded map[string]bool
	ignorer  *ignore.GitIgnore
	logger   *zap.Logger
}

// NewFilter builds a filter for one run. ignorer may be nil.
func NewFilter(config AggregationConfig, ignorer *ignore.GitIgnore, logger *zap.Logger) *Filter {
	if logger == nil {
		logger = zap.NewNop()
	}

	excluded := make(map[string]bool, len(config.ExcludedNames))
	for _, name := range config.ExcludedNames {
		excluded[name] = true
	}

	return &Filter{
		config:   config,
		excluded: excluded,
		ignorer:  ignorer,
		logger:   logger,
	}
}

// LoadIgnoreFile compiles a gitignore-style file from the base directory.
// A missing or unreadable file means nothing is ignored.
func LoadIgnoreFile(base, name string) *ignore.GitIgnore {
	if base == "" || name == "" {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(filepath.Join(base, name))
	if err != nil {
		return nil
	}
	return gi
}

// Select walks the candidates in order and returns the ones to aggregate.
// The budget counts included files only.
func (f *Filter) Select(candidates []FileCandidate) ([]Selected, []Rejection) {
	var selected []Selected
	var skipped []Rejection

	for _, candidate := range candidates {
		if candidate.Name == "." || candidate.Name == ".." {
			continue
		}

		name, ok := extractFileName(candidate.Path)
		if !ok {
			// Malformed names are only visible as a gap in the counts
			continue
		}

		if reason, rejected := f.checkName(name); rejected {
			skipped = append(skipped, Rejection{Name: name, Reason: reason})
			continue
		}

		if len(selected) >= f.config.MaxFiles {
			skipped = append(skipped, Rejection{Name: name, Reason: SkipBudget})
			continue
		}

		// #nosec G304 - path comes from enumerating the resolved base directory
		content, err := os.ReadFile(candidate.Path)
		if err != nil {
			f.logger.Debug("unreadable candidate", zap.String("path", candidate.Path), zap.Error(err))
			skipped = append(skipped, Rejection{Name: name, Reason: SkipUnreadable})
			continue
		}

		length := len(content)
		switch {
		case length <= MinFileLength:
			skipped = append(skipped, Rejection{Name: name, Reason: SkipTrivial, Length: length})
			continue
		case length >= f.config.MaxFileLength:
			skipped = append(skipped, Rejection{Name: name, Reason: SkipOversized, Length: length})
			continue
		}

		candidate.Name = name
		candidate.ByteLength = length
		selected = append(selected, Selected{FileCandidate: candidate, Content: content})
	}

	return selected, skipped
}

// checkName applies the exclusion set, the do-not-process marker and the ignore file
func (f *Filter) checkName(name string) (SkipReason, bool) {
	if f.excluded[name] {
		return SkipExcluded, true
	}
	if f.config.ExcludedSuffixPattern != "" && strings.Contains(name, f.config.ExcludedSuffixPattern) {
		return SkipDNP, true
	}
	if f.ignorer != nil && f.ignorer.MatchesPath(name) {
		return SkipIgnored, true
	}
	return "", false
}

// extractFileName returns the last path element.
// Paths without a separator and names of four characters or fewer are rejected.
func extractFileName(path string) (string, bool) {
	slashed := filepath.ToSlash(path)
	idx := strings.LastIndex(slashed, "/")
	if path == "" || idx == -1 {
		return "", false
	}

	name := slashed[idx+1:]
	if len(name) <= MinFileLength {
		return "", false
	}
	return name, true
}
