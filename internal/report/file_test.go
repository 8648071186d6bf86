package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idelchi/largest/internal/census"
)

func TestFile_ResetThenAppendInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	if err := os.WriteFile(path, []byte("stale contents\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := New(path, FormatText)
	if err := f.Reset(); err != nil {
		t.Fatal(err)
	}

	volumes := []*census.VolumeScanResult{
		{Label: `C:\`, Ranked: []census.FileEntry{{Path: `C:\big`, Size: 2 * mib}}},
		{Label: `D:\`},
	}

	for _, v := range volumes {
		if err := f.Emit(v); err != nil {
			t.Fatal(err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "Largest files on C:\n" +
		"C:\\big: 2.00 MB\n" +
		"\n" +
		"Largest files on D:\n" +
		"\n"

	if string(data) != want {
		t.Fatalf("unexpected report:\n%q\nwant:\n%q", data, want)
	}
}

func TestFile_UnlabeledVolumeIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	var flagged []string

	f := New(path, FormatText)
	f.Unlabeled = func(volume string) { flagged = append(flagged, volume) }

	if err := f.Emit(&census.VolumeScanResult{Label: "/home"}); err != nil {
		t.Fatal(err)
	}

	if len(flagged) != 1 || flagged[0] != "/home" {
		t.Fatalf("expected /home to be flagged, got %v", flagged)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "Largest files on /home:\n\n" {
		t.Fatalf("unexpected report: %q", data)
	}
}

func TestFile_EmitFailureIsReturned(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "missing", "report.txt"), FormatText)

	if err := f.Emit(&census.VolumeScanResult{Label: `C:\`}); err == nil {
		t.Fatal("expected an error for a report in a missing directory")
	}

	if err := f.Reset(); err == nil {
		t.Fatal("expected an error resetting a report in a missing directory")
	}
}

func TestNew_Defaults(t *testing.T) {
	f := New("", "")
	if f.Path() != DefaultPath || f.format != FormatText {
		t.Fatalf("unexpected defaults: %s %s", f.Path(), f.format)
	}
}
