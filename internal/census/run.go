package census

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrNoVolumes is returned when there is nothing to scan.
var ErrNoVolumes = errors.New("no suitable volumes found")

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Options configures a census run.
type Options struct {
	// TopN is the number of entries kept per volume.
	TopN int
	// Parallel selects the fastwalk-based walker.
	Parallel bool
	// Workers is the number of fastwalk workers (0=default).
	Workers int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// VolumeScanResult is the outcome of one full walk of one volume.
type VolumeScanResult struct {
	// Label is the volume identifier as enumerated, e.g. `C:\` or `/home`.
	Label string
	// Root is the absolute directory the walk started from.
	Root string
	// Inventory holds every entry found, in discovery order.
	Inventory *Inventory
	// Ranked holds the largest entries, largest first.
	Ranked []FileEntry
	// Tally holds the counters of the walk.
	Tally Tally
	// Elapsed is the monotonic duration of the walk alone.
	Elapsed time.Duration
}

// ElapsedMs returns the walk duration in whole milliseconds.
func (r *VolumeScanResult) ElapsedMs() uint64 {
	return uint64(r.Elapsed.Milliseconds()) //nolint:gosec // Durations from time.Since are never negative
}

// Emitter receives ranked results, one volume at a time, in enumeration order.
type Emitter interface {
	Emit(result *VolumeScanResult) error
}

// Hooks are optional callbacks invoked while a census runs.
type Hooks struct {
	// VolumeStarted is called before a volume's walk begins.
	VolumeStarted func(label string)
	// Progress is called periodically with the running counters of the current walk.
	Progress func(label string, tally Tally)
	// VolumeDone is called after a volume is walked and ranked.
	VolumeDone func(result *VolumeScanResult)
	// EmitFailed is called when the emitter rejects a volume.
	EmitFailed func(result *VolumeScanResult, err error)
}

// Summary describes a finished census run.
type Summary struct {
	// Volumes is the number of volumes walked.
	Volumes int
	// Emitted is the number of volumes accepted by the emitter.
	Emitted int
	// Failed is the number of volumes the emitter rejected.
	Failed int
}

// Scanner drives the per-volume lifecycle: walk, rank, emit.
type Scanner struct {
	opts   Options
	walker Walker
	log    logger
}

// New creates a Scanner, choosing the walker from opts.
func New(opts Options) *Scanner {
	var walker Walker = NewTreeWalker(opts.Debug)
	if opts.Parallel {
		walker = NewParallelWalker(opts.Workers, opts.Debug)
	}

	return NewWithWalker(opts, walker)
}

// NewWithWalker creates a Scanner with an explicit walker.
func NewWithWalker(opts Options, walker Walker) *Scanner {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}

	return &Scanner{
		opts:   opts,
		walker: walker,
		log:    logger{enabled: opts.Debug},
	}
}

// Run scans volumes strictly one after another in the given order and hands
// each result to emit before the next walk starts. A failed emission is
// reported through hooks and does not stop the run.
//
// Run returns ErrNoVolumes when volumes is empty, and the context error if
// ctx is cancelled mid-walk.
func (s *Scanner) Run(ctx context.Context, volumes []string, emit Emitter, hooks Hooks) (Summary, error) {
	var summary Summary

	if len(volumes) == 0 {
		return summary, ErrNoVolumes
	}

	for _, label := range volumes {
		if hooks.VolumeStarted != nil {
			hooks.VolumeStarted(label)
		}

		result, err := s.ScanVolume(ctx, label, hooks.Progress)
		if err != nil {
			return summary, err
		}

		summary.Volumes++

		if hooks.VolumeDone != nil {
			hooks.VolumeDone(result)
		}

		if err := emit.Emit(result); err != nil {
			s.log.printf("[debug]: emitting %s: %v\n", label, err)

			summary.Failed++

			if hooks.EmitFailed != nil {
				hooks.EmitFailed(result, err)
			}

			continue
		}

		summary.Emitted++
	}

	return summary, nil
}

// ScanVolume walks one volume into a fresh inventory and ranks it.
// The timer covers the walk only.
func (s *Scanner) ScanVolume(
	ctx context.Context,
	label string,
	progressHook func(string, Tally),
) (*VolumeScanResult, error) {
	root, err := filepath.Abs(label)
	if err != nil {
		s.log.printf("[debug]: resolving %s: %v\n", label, err)

		root = label
	}

	inv := NewInventory()

	var hook func(Tally)
	if progressHook != nil {
		hook = func(t Tally) { progressHook(label, t) }
	}

	stop := startProgressReporter(inv, hook, s.opts.ProgressInterval)

	start := time.Now()
	walkErr := s.walker.Walk(ctx, root, inv)
	elapsed := time.Since(start)

	stop()

	if walkErr != nil {
		return nil, fmt.Errorf("walking %s: %w", label, walkErr)
	}

	return &VolumeScanResult{
		Label:     label,
		Root:      root,
		Inventory: inv,
		Ranked:    Rank(inv.Entries(), s.opts.TopN),
		Tally:     inv.Tally(),
		Elapsed:   elapsed,
	}, nil
}

// startProgressReporter invokes hook with the inventory counters on each tick.
// The returned function stops the reporter and waits for it, so no tick
// fires after it returns.
func startProgressReporter(inv *Inventory, hook func(Tally), interval time.Duration) func() {
	if hook == nil {
		return func() {}
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(inv.Tally())
			case <-quit:
				return
			}
		}
	}()

	return func() {
		close(quit)
		<-done
	}
}
