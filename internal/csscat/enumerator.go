package csscat

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// EnumerateCandidates lists the entries matching <base>/*<ext>.
// The listing is sorted so that aggregation order is reproducible.
// An unreadable base yields an empty slice, never an error.
func EnumerateCandidates(base, ext string) []FileCandidate {
	if base == "" {
		return nil
	}

	// Globbing over DirFS keeps meta characters in base from being interpreted
	matches, err := doublestar.Glob(os.DirFS(base), "*"+ext)
	if err != nil {
		return nil
	}
	sort.Strings(matches)

	candidates := make([]FileCandidate, 0, len(matches))
	for _, match := range matches {
		candidates = append(candidates, FileCandidate{
			Name: match,
			Path: filepath.Join(base, filepath.FromSlash(match)),
		})
	}

	return candidates
}
