//go:build windows

package census

import (
	"io/fs"
	"syscall"

	"golang.org/x/sys/windows"
)

// The portable attribute bits must match the Win32 definitions; any
// mismatch makes an index out of range at compile time.
var (
	_ = [1]struct{}{}[win32Hidden^windows.FILE_ATTRIBUTE_HIDDEN]
	_ = [1]struct{}{}[win32System^windows.FILE_ATTRIBUTE_SYSTEM]
	_ = [1]struct{}{}[win32Directory^windows.FILE_ATTRIBUTE_DIRECTORY]
	_ = [1]struct{}{}[win32Device^windows.FILE_ATTRIBUTE_DEVICE]
	_ = [1]struct{}{}[win32Temporary^windows.FILE_ATTRIBUTE_TEMPORARY]
	_ = [1]struct{}{}[win32ReparsePoint^windows.FILE_ATTRIBUTE_REPARSE_POINT]
)

// boundary is unused on Windows: mounted folders carry the reparse-point flag.
type boundary struct{}

func probeBoundary(string) boundary {
	return boundary{}
}

// inspect reads the Win32 attribute word of a directory entry and assembles
// the 64-bit size from its high and low halves.
//
//nolint:varnamelen // d is standard for DirEntry
func inspect(d fs.DirEntry, _ boundary) (object, error) {
	info, err := d.Info()
	if err != nil {
		return object{}, err
	}

	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		obj := object{dir: info.IsDir()}
		if info.Mode()&fs.ModeSymlink != 0 {
			obj.attrs |= AttrReparsePoint
		}

		if !obj.dir {
			obj.size = uint64(info.Size()) //nolint:gosec // Size is never negative for regular files
		}

		return obj, nil
	}

	return attrsFromWin32(data.FileAttributes, data.FileSizeHigh, data.FileSizeLow), nil
}
