package census

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
)

// ParallelWalker walks a tree with fastwalk, listing directories from
// several goroutines at once. It applies the same filter as TreeWalker.
// Entries are ordered by path once the walk completes.
type ParallelWalker struct {
	workers int
	log     logger
}

// NewParallelWalker creates a parallel walker. A workers count of zero uses
// the fastwalk default.
func NewParallelWalker(workers int, debug bool) *ParallelWalker {
	return &ParallelWalker{workers: workers, log: logger{enabled: debug}}
}

// Walk visits every descendant of root, see TreeWalker.Walk.
//
//nolint:varnamelen // d is standard for DirEntry
func (w *ParallelWalker) Walk(ctx context.Context, root string, inv *Inventory) error {
	bound := probeBoundary(root)

	conf := &fastwalk.Config{
		Follow:     false, // Reparse points are never entered
		NumWorkers: w.workers,
	}

	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.log.printf("[debug]: error accessing path %s: %v\n", path, err)
			inv.fail()

			return nil // Silently skip errors
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == root {
			return nil
		}

		obj, err := inspect(d, bound)
		if err != nil {
			w.log.printf("[debug]: error reading attributes of %s: %v\n", path, err)
			inv.fail()

			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		reason := Classify(obj.attrs)

		if obj.dir {
			if reason == ExcludedReparsePoint {
				w.log.printf("[debug]: not entering reparse point: %s\n", path)
				inv.skip(reason)

				if d.IsDir() {
					return filepath.SkipDir
				}
			}

			return nil
		}

		if reason != Included {
			w.log.printf("[debug]: excluding file (%s): %s\n", reason, path)
			inv.skip(reason)

			return nil
		}

		inv.Add(FileEntry{Path: path, Size: obj.size})

		return nil
	})
	if walkErr != nil {
		return walkErr
	}

	inv.orderByPath()

	return nil
}
