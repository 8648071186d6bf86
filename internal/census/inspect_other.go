//go:build !unix && !windows

package census

import "io/fs"

type boundary struct{}

func probeBoundary(string) boundary {
	return boundary{}
}

// inspect falls back to the portable file mode.
//
//nolint:varnamelen // d is standard for DirEntry
func inspect(d fs.DirEntry, _ boundary) (object, error) {
	typ := d.Type()

	switch {
	case typ&fs.ModeSymlink != 0:
		return object{attrs: AttrReparsePoint}, nil
	case typ.IsDir():
		return object{dir: true}, nil
	case !typ.IsRegular():
		return object{attrs: AttrSpecial}, nil
	}

	info, err := d.Info()
	if err != nil {
		return object{}, err
	}

	return object{size: uint64(info.Size())}, nil //nolint:gosec // Size is never negative for regular files
}
