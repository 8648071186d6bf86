package census

import (
	"fmt"
	"testing"
)

func TestRank_TruncatesToTopN(t *testing.T) {
	entries := make([]FileEntry, 0, 250)
	for i := range 250 {
		entries = append(entries, FileEntry{Path: fmt.Sprintf("f%03d", i), Size: uint64(i)})
	}

	ranked := Rank(entries, 0)
	if len(ranked) != DefaultTopN {
		t.Fatalf("expected %d entries, got %d", DefaultTopN, len(ranked))
	}

	if ranked[0].Size != 249 || ranked[len(ranked)-1].Size != 150 {
		t.Fatalf("unexpected bounds: first=%d last=%d", ranked[0].Size, ranked[len(ranked)-1].Size)
	}

	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Size < ranked[i].Size {
			t.Fatalf("not descending at %d: %d < %d", i, ranked[i-1].Size, ranked[i].Size)
		}
	}
}

func TestRank_FewerThanTopN(t *testing.T) {
	entries := []FileEntry{{"a", 1}, {"b", 3}, {"c", 2}}

	ranked := Rank(entries, 100)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ranked))
	}

	want := []string{"b", "c", "a"}
	for i, w := range want {
		if ranked[i].Path != w {
			t.Errorf("position %d: got %s, want %s", i, ranked[i].Path, w)
		}
	}

	if entries[0].Path != "a" || entries[1].Path != "b" {
		t.Error("input slice was modified")
	}
}

func TestRank_TiesKeepDiscoveryOrder(t *testing.T) {
	entries := []FileEntry{
		{"first", 5}, {"big", 9}, {"second", 5}, {"third", 5}, {"small", 1},
	}

	ranked := Rank(entries, 4)

	want := []string{"big", "first", "second", "third"}
	if len(ranked) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(ranked))
	}

	for i, w := range want {
		if ranked[i].Path != w {
			t.Errorf("position %d: got %s, want %s", i, ranked[i].Path, w)
		}
	}
}

func TestRank_Empty(t *testing.T) {
	ranked := Rank(nil, 10)
	if ranked == nil || len(ranked) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", ranked)
	}
}

func TestRank_LargeSizes(t *testing.T) {
	const fiveGiB = 5 << 30

	ranked := Rank([]FileEntry{{"small", 1}, {"huge", fiveGiB}}, 1)
	if len(ranked) != 1 || ranked[0].Size != fiveGiB {
		t.Fatalf("expected the 5GiB entry, got %#v", ranked)
	}
}
