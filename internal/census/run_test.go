package census

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// recordingEmitter keeps the labels it receives and fails on request.
type recordingEmitter struct {
	labels []string
	ranked [][]FileEntry
	failOn map[string]bool
}

func (e *recordingEmitter) Emit(result *VolumeScanResult) error {
	e.labels = append(e.labels, result.Label)
	e.ranked = append(e.ranked, result.Ranked)

	if e.failOn[result.Label] {
		return errors.New("disk full")
	}

	return nil
}

// fakeWalker adds fixed entries per root and never touches the filesystem.
type fakeWalker struct {
	entries map[string][]FileEntry
}

func (w fakeWalker) Walk(_ context.Context, root string, inv *Inventory) error {
	for _, e := range w.entries[root] {
		inv.Add(e)
	}

	return nil
}

func TestRun_NoVolumes(t *testing.T) {
	s := New(Options{})

	_, err := s.Run(context.Background(), nil, &recordingEmitter{}, Hooks{})
	if !errors.Is(err, ErrNoVolumes) {
		t.Fatalf("expected ErrNoVolumes, got %v", err)
	}
}

func TestRun_EmitsInOrderAndSurvivesEmitFailure(t *testing.T) {
	first, second, third := t.TempDir(), t.TempDir(), t.TempDir()

	if err := os.WriteFile(filepath.Join(first, "one"), []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(third, "three"), []byte("333"), 0o644); err != nil {
		t.Fatal(err)
	}

	emitter := &recordingEmitter{failOn: map[string]bool{second: true}}

	var started, done, failed []string

	hooks := Hooks{
		VolumeStarted: func(label string) { started = append(started, label) },
		VolumeDone:    func(r *VolumeScanResult) { done = append(done, r.Label) },
		EmitFailed:    func(r *VolumeScanResult, _ error) { failed = append(failed, r.Label) },
	}

	summary, err := New(Options{}).Run(context.Background(), []string{first, second, third}, emitter, hooks)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if summary.Volumes != 3 || summary.Emitted != 2 || summary.Failed != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	want := []string{first, second, third}
	for i, label := range want {
		if emitter.labels[i] != label || started[i] != label || done[i] != label {
			t.Fatalf("volume %d out of order: emitted=%v started=%v done=%v", i, emitter.labels, started, done)
		}
	}

	if len(failed) != 1 || failed[0] != second {
		t.Fatalf("expected failure on %s, got %v", second, failed)
	}

	if len(emitter.ranked[1]) != 0 {
		t.Errorf("expected empty ranking for empty volume, got %+v", emitter.ranked[1])
	}

	if len(emitter.ranked[2]) != 1 || emitter.ranked[2][0].Size != 3 {
		t.Errorf("unexpected ranking for %s: %+v", third, emitter.ranked[2])
	}
}

func TestScanVolume_RanksWithTopN(t *testing.T) {
	root := t.TempDir()

	walker := fakeWalker{entries: map[string][]FileEntry{
		root: {{"a", 1}, {"b", 4}, {"c", 3}, {"d", 2}},
	}}

	result, err := NewWithWalker(Options{TopN: 2}, walker).ScanVolume(context.Background(), root, nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.Inventory.Len() != 4 || result.Tally.Files != 4 || result.Tally.Bytes != 10 {
		t.Fatalf("unexpected inventory: %+v", result.Tally)
	}

	if len(result.Ranked) != 2 || result.Ranked[0].Path != "b" || result.Ranked[1].Path != "c" {
		t.Fatalf("unexpected ranking: %+v", result.Ranked)
	}

	if result.Root != root || result.Label != root {
		t.Errorf("unexpected root/label: %s %s", result.Root, result.Label)
	}
}

func TestRun_CanceledContext_StopsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	emitter := &recordingEmitter{}

	_, err := New(Options{}).Run(ctx, []string{t.TempDir()}, emitter, Hooks{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if len(emitter.labels) != 0 {
		t.Fatalf("expected nothing emitted, got %v", emitter.labels)
	}
}
