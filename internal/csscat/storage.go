package csscat

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyAggregate is returned when there is nothing to write
var ErrEmptyAggregate = errors.New("empty aggregate")

// WriteAggregate replaces dir/target's file with content.
// The file is written next to its destination and renamed over it, so readers
// never see a partial stylesheet. Concurrent writers are not coordinated: the
// last rename wins.
func WriteAggregate(dir string, target Target, content []byte) (string, error) {
	dest := filepath.Join(dir, target.FileName())
	if len(content) == 0 {
		return dest, ErrEmptyAggregate
	}

	tmp, err := os.CreateTemp(dir, "."+target.FileName()+".*")
	if err != nil {
		return dest, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return dest, fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return dest, fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return dest, fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return dest, fmt.Errorf("rename to %s: %w", dest, err)
	}

	return dest, nil
}
