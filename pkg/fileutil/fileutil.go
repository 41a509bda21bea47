// =============================================================================
// Entry Form Tool - File Utilities
// =============================================================================
//
// Shared file helpers for the exporter:
//   - Atomic output finalization: content is written to a uniquely named
//     temporary file next to the destination and renamed into place only
//     on full success. A failed export leaves no partial file at the
//     destination path.
//   - Extension normalization for format dispatch.
//
// =============================================================================

package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Extension returns the destination's file extension, lower-cased and
// without the leading dot. Empty when the path has no extension.
func Extension(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// AtomicWrite writes the output produced by write to dest. The content
// goes to a temporary sibling file first and is renamed over dest only
// after write and close succeed; on any failure the temporary file is
// removed and dest is untouched.
func AtomicWrite(dest string, write func(w io.Writer) error) error {
	tmpPath := fmt.Sprintf("%s.%s.tmp", dest, uuid.NewString())

	tmp, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to finalize temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}
