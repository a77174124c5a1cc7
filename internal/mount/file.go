package mount

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mariesavch/css-in-go/internal/log"
)

// FileTarget writes each stylesheet to a file, replacing it atomically.
// Write failures are logged and kept for Err; the stylesheet in memory stays
// authoritative and the next flush retries.
type FileTarget struct {
	path string

	mu      sync.Mutex
	lastErr error
	writes  int
}

// NewFileTarget returns a target writing to path.
func NewFileTarget(path string) *FileTarget {
	return &FileTarget{path: path}
}

// Path returns the output path.
func (f *FileTarget) Path() string {
	return f.path
}

// SetText writes css to the file.
func (f *FileTarget) SetText(css string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastErr = writeAtomic(f.path, []byte(css))
	if f.lastErr != nil {
		log.ErrorErr(log.CatMount, "Failed to write stylesheet", f.lastErr, "path", f.path)
		return
	}
	f.writes++
	log.Debug(log.CatMount, "Wrote stylesheet", "path", f.path, "bytes", len(css))
}

// Err returns the error from the most recent write, if any.
func (f *FileTarget) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Writes returns the number of successful writes.
func (f *FileTarget) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".cssgo.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Target is anything that accepts stylesheet text.
type Target interface {
	SetText(css string)
}

// Multi fans SetText out to every target in order.
type Multi []Target

// SetText forwards css to each target.
func (m Multi) SetText(css string) {
	for _, t := range m {
		t.SetText(css)
	}
}
