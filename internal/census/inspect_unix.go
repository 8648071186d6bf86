//go:build unix

package census

import (
	"io/fs"
	"os"
	"strings"
	"syscall"
)

// boundary identifies the device a walk started on.
type boundary struct {
	dev uint64
	ok  bool
}

// probeBoundary records the device of root, following root itself when it is
// a link. Directories on other devices are mount points and are treated as
// reparse points.
func probeBoundary(root string) boundary {
	info, err := os.Stat(root)
	if err != nil {
		return boundary{}
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return boundary{}
	}

	return boundary{dev: uint64(stat.Dev), ok: true} //nolint:unconvert // Dev is int32 on darwin
}

// inspect classifies a directory entry. Dot-prefixed names are hidden and
// symbolic links are reparse points; POSIX has no system or temporary flags.
//
//nolint:varnamelen // d is standard for DirEntry
func inspect(d fs.DirEntry, b boundary) (object, error) {
	var obj object

	if strings.HasPrefix(d.Name(), ".") {
		obj.attrs |= AttrHidden
	}

	typ := d.Type()

	switch {
	case typ&fs.ModeSymlink != 0:
		obj.attrs |= AttrReparsePoint

		return obj, nil
	case typ.IsDir():
		obj.dir = true

		if b.ok {
			info, err := d.Info()
			if err != nil {
				return object{}, err
			}

			if stat, ok := info.Sys().(*syscall.Stat_t); ok && uint64(stat.Dev) != b.dev { //nolint:unconvert // Dev is int32 on darwin
				obj.attrs |= AttrReparsePoint
			}
		}

		return obj, nil
	case !typ.IsRegular():
		obj.attrs |= AttrSpecial

		return obj, nil
	}

	info, err := d.Info()
	if err != nil {
		return object{}, err
	}

	obj.size = uint64(info.Size()) //nolint:gosec // Size is never negative for regular files

	return obj, nil
}
