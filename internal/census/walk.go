package census

import (
	"context"
	"io/fs"
	"os"
)

// Walker populates an inventory from the tree below root.
type Walker interface {
	Walk(ctx context.Context, root string, inv *Inventory) error
}

// frame is an open directory listing on the walk stack.
type frame struct {
	dir     string
	entries []fs.DirEntry
	next    int
}

// TreeWalker walks a tree sequentially and depth-first. Pending directories
// live on a heap-allocated stack, so deep trees cannot exhaust the goroutine stack.
type TreeWalker struct {
	log     logger
	probe   func(root string) boundary
	readDir func(dir string) ([]fs.DirEntry, error)
}

// NewTreeWalker creates a sequential walker.
func NewTreeWalker(debug bool) *TreeWalker {
	return &TreeWalker{
		log:     logger{enabled: debug},
		probe:   probeBoundary,
		readDir: os.ReadDir,
	}
}

// Walk visits every descendant of root and records each regular file that
// passes the attribute filter. Directories are entered unless they are
// reparse points. Directories that cannot be listed are skipped.
// The only error returned is the cancellation of ctx.
func (w *TreeWalker) Walk(ctx context.Context, root string, inv *Inventory) error {
	bound := w.probe(root)

	stack := make([]*frame, 0, 64)
	if top := w.open(root, inv); top != nil {
		stack = append(stack, top)
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		top := stack[len(stack)-1]
		if top.next == len(top.entries) {
			stack[len(stack)-1] = nil
			stack = stack[:len(stack)-1]

			continue
		}

		d := top.entries[top.next] //nolint:varnamelen // d is standard for DirEntry
		top.next++

		name := d.Name()
		if name == "." || name == ".." {
			continue
		}

		path := joinPath(top.dir, name)

		obj, err := inspect(d, bound)
		if err != nil {
			w.log.printf("[debug]: error reading attributes of %s: %v\n", path, err)
			inv.fail()

			continue
		}

		reason := Classify(obj.attrs)

		if obj.dir {
			if reason == ExcludedReparsePoint {
				w.log.printf("[debug]: not entering reparse point: %s\n", path)
				inv.skip(reason)

				continue
			}

			if next := w.open(path, inv); next != nil {
				stack = append(stack, next)
			}

			continue
		}

		if reason != Included {
			w.log.printf("[debug]: excluding file (%s): %s\n", reason, path)
			inv.skip(reason)

			continue
		}

		inv.Add(FileEntry{Path: path, Size: obj.size})
	}

	return nil
}

// open lists dir. A directory that cannot be listed yields nil; a partial
// listing is kept.
func (w *TreeWalker) open(dir string, inv *Inventory) *frame {
	entries, err := w.readDir(dir)
	if err != nil {
		w.log.printf("[debug]: error listing %s: %v\n", dir, err)
		inv.fail()

		if len(entries) == 0 {
			return nil
		}
	}

	return &frame{dir: dir, entries: entries}
}
