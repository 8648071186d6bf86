package report

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/largest/internal/census"
)

// DefaultPath is the report file written when no other is requested.
const DefaultPath = "largest_files.txt"

// File is a report file. It is truncated once with Reset and then appended
// to once per volume; each append opens, writes, flushes and closes the file,
// so sections already written survive a later failure.
type File struct {
	path   string
	format Format
	// Unlabeled is called with volume identifiers that are not drive roots
	// and are therefore rendered in full.
	Unlabeled func(volume string)
}

// New creates a report file handle. Nothing is touched on disk until Reset or Emit.
func New(path string, format Format) *File {
	if path == "" {
		path = DefaultPath
	}

	if format == "" {
		format = FormatText
	}

	return &File{path: path, format: format}
}

// Path returns the location of the report.
func (f *File) Path() string {
	return f.path
}

// Reset creates the report or truncates an existing one.
func (f *File) Reset() error {
	if err := os.WriteFile(f.path, nil, 0o644); err != nil { //nolint:gosec // Report is meant to be readable
		return fmt.Errorf("creating report %q: %w", f.path, err)
	}

	return nil
}

// Emit appends the section for one volume.
func (f *File) Emit(result *census.VolumeScanResult) (err error) {
	label, ok := Label(result.Label)
	if !ok && f.Unlabeled != nil {
		f.Unlabeled(result.Label)
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // Report is meant to be readable
	if err != nil {
		return fmt.Errorf("opening report %q: %w", f.path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing report %q: %w", f.path, closeErr))
		}
	}()

	w := bufio.NewWriter(file)

	var writeErr error

	switch f.format {
	case FormatJSON:
		writeErr = WriteJSON(w, label, result)
	case FormatText:
		writeErr = WriteText(w, label, result.Ranked)
	default:
		writeErr = fmt.Errorf("unknown report format: %s", f.format)
	}

	// Flush whatever was buffered even if a write failed.
	if flushErr := w.Flush(); flushErr != nil && writeErr == nil {
		writeErr = flushErr
	}

	if writeErr != nil {
		return fmt.Errorf("writing report %q: %w", f.path, writeErr)
	}

	return nil
}
