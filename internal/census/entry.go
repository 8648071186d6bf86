package census

import (
	"sort"
	"sync"
	"sync/atomic"
)

// FileEntry represents a single regular file and its size.
type FileEntry struct {
	// Path is the absolute path of the file.
	Path string `json:"path"`
	// Size is the length of the file in bytes.
	Size uint64 `json:"size"`
}

// Tally holds the running counters of a walk.
type Tally struct {
	// Files is the number of entries recorded in the inventory.
	Files int64 `json:"file_count"`
	// Bytes is the cumulative size of all recorded entries.
	Bytes uint64 `json:"total_bytes"`
	// Errors is the number of objects or directories that could not be read.
	Errors int64 `json:"errors"`
	// Filtered counts the objects excluded per filter reason.
	Filtered map[FilterReason]int64 `json:"-"`
}

// Inventory is the ordered, append-only list of entries found on one volume.
// It is safe for concurrent use so that parallel walkers can share it.
type Inventory struct {
	mu       sync.Mutex // Protects entries
	entries  []FileEntry
	files    atomic.Int64
	bytes    atomic.Uint64
	errors   atomic.Int64
	filtered [filterReasonCount]atomic.Int64
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{entries: make([]FileEntry, 0, 128)}
}

// Add appends an entry in discovery order.
func (inv *Inventory) Add(entry FileEntry) {
	inv.mu.Lock()
	inv.entries = append(inv.entries, entry)
	inv.mu.Unlock()

	inv.files.Add(1)
	inv.bytes.Add(entry.Size)
}

// skip records an object that was excluded by the attribute filter.
func (inv *Inventory) skip(reason FilterReason) {
	if reason < filterReasonCount {
		inv.filtered[reason].Add(1)
	}
}

// fail records an object or directory that could not be read.
func (inv *Inventory) fail() {
	inv.errors.Add(1)
}

// Len returns the number of entries recorded so far.
func (inv *Inventory) Len() int {
	return int(inv.files.Load())
}

// Entries returns a copy of the recorded entries in discovery order.
func (inv *Inventory) Entries() []FileEntry {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	entries := make([]FileEntry, len(inv.entries))
	copy(entries, inv.entries)

	return entries
}

// Tally returns a snapshot of the running counters.
func (inv *Inventory) Tally() Tally {
	tally := Tally{
		Files:    inv.files.Load(),
		Bytes:    inv.bytes.Load(),
		Errors:   inv.errors.Load(),
		Filtered: make(map[FilterReason]int64),
	}

	for reason := range filterReasonCount {
		if n := inv.filtered[reason].Load(); n > 0 {
			tally.Filtered[reason] = n
		}
	}

	return tally
}

// orderByPath reorders the entries lexically by path.
// Parallel walks discover entries in scheduling order, which varies between runs.
func (inv *Inventory) orderByPath() {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	sort.SliceStable(inv.entries, func(i, j int) bool {
		return inv.entries[i].Path < inv.entries[j].Path
	})
}
