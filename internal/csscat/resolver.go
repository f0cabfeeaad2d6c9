package csscat

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveOptions carries the inputs needed to pick the base directory
type ResolveOptions struct {
	Dir          string // Explicit target, absolute or root-relative. Empty means self-mode.
	SelfDir      string // Overrides the executable's directory in self-mode
	SiteRoot     string // Configured site/content root
	DocumentRoot string // Request-derived root, used when SiteRoot is empty
}

// SelfMode reports whether no explicit directory was given
func (o ResolveOptions) SelfMode() bool {
	return strings.TrimSpace(o.Dir) == ""
}

// ResolveBaseDir returns the absolute directory to aggregate.
// No existence check is made; a missing directory shows up as zero candidates.
func ResolveBaseDir(opts ResolveOptions) string {
	if opts.SelfMode() {
		return SelfDir(opts.SelfDir)
	}

	root := opts.SiteRoot
	if root == "" {
		root = opts.DocumentRoot
	}
	if root == "" {
		abs, err := filepath.Abs(opts.Dir)
		if err != nil {
			return filepath.Clean(opts.Dir)
		}
		return abs
	}

	// "/css" is relative to the root, not the filesystem
	rel := strings.TrimLeft(filepath.ToSlash(opts.Dir), "/")
	joined := filepath.Join(root, filepath.FromSlash(rel))
	if abs, err := filepath.Abs(joined); err == nil {
		joined = abs
	}

	// Targets outside the root resolve to nothing
	if absRoot, err := filepath.Abs(root); err == nil {
		if r, err := filepath.Rel(absRoot, joined); err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
			return ""
		}
	}
	return joined
}

// SelfDir returns override when set, otherwise the directory holding the running executable
func SelfDir(override string) string {
	if override != "" {
		if abs, err := filepath.Abs(override); err == nil {
			return abs
		}
		return override
	}

	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
