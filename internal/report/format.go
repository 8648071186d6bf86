package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/largest/internal/census"
)

// Format is the layout of the report file.
type Format string

const (
	// FormatText writes a header, one line per file and a blank line per volume.
	FormatText Format = "text"
	// FormatJSON writes one JSON object per volume, newline-terminated.
	FormatJSON Format = "json"
)

// Formats lists the supported report formats.
//
//nolint:gochecknoglobals // Config constant
var Formats = []Format{FormatText, FormatJSON}

// bytesPerMiB converts byte counts to mebibytes.
const bytesPerMiB = 1024 * 1024

// MiB converts a byte count to mebibytes without truncation.
func MiB(size uint64) float64 {
	return float64(size) / bytesPerMiB
}

// Label renders a volume identifier for a section header. Drive roots such as
// `C:\` render as the drive letter and colon. Any other identifier renders
// unchanged and ok is false, so callers can flag it.
func Label(volume string) (label string, ok bool) {
	if isDriveRoot(volume) {
		return volume[:2], true
	}

	return volume, false
}

// isDriveRoot reports whether volume looks like `X:`, `X:\` or `X:/`.
func isDriveRoot(volume string) bool {
	if len(volume) < 2 || len(volume) > 3 {
		return false
	}

	letter := volume[0] | 0x20 // ASCII lower case
	if letter < 'a' || letter > 'z' || volume[1] != ':' {
		return false
	}

	return len(volume) == 2 || volume[2] == '\\' || volume[2] == '/'
}

// heading terminates label with a colon unless it already ends in one,
// as drive labels such as `C:` do.
func heading(label string) string {
	if strings.HasSuffix(label, ":") {
		return label
	}

	return label + ":"
}

// WriteText writes a text section: header, one line per entry, blank line.
//
//nolint:forbidigo // This function prints the report section.
func WriteText(w io.Writer, label string, entries []census.FileEntry) error {
	if _, err := fmt.Fprintf(w, "Largest files on %s\n", heading(label)); err != nil {
		return err
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%s: %.2f MB\n", entry.Path, MiB(entry.Size)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}

// section is the JSON layout of one volume.
type section struct {
	Label      string             `json:"label"`
	Root       string             `json:"root"`
	ElapsedMs  uint64             `json:"elapsed_ms"`
	FileCount  int64              `json:"file_count"`
	TotalBytes uint64             `json:"total_bytes"`
	Errors     int64              `json:"errors"`
	Files      []census.FileEntry `json:"files"`
}

// WriteJSON writes one volume as a single-line JSON object.
func WriteJSON(w io.Writer, label string, result *census.VolumeScanResult) error {
	files := result.Ranked
	if files == nil {
		files = []census.FileEntry{}
	}

	if err := json.NewEncoder(w).Encode(section{
		Label:      label,
		Root:       result.Root,
		ElapsedMs:  result.ElapsedMs(),
		FileCount:  result.Tally.Files,
		TotalBytes: result.Tally.Bytes,
		Errors:     result.Tally.Errors,
		Files:      files,
	}); err != nil {
		return fmt.Errorf("encoding JSON section: %w", err)
	}

	return nil
}
