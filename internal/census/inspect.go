package census

import "os"

// object is what the walker needs to know about one directory entry.
type object struct {
	attrs Attributes
	size  uint64
	dir   bool
}

// joinPath appends name to parent, adding a separator only when parent does
// not already end in one. Volume roots such as `C:\` or `/` end in one.
func joinPath(parent, name string) string {
	if n := len(parent); n > 0 && os.IsPathSeparator(parent[n-1]) {
		return parent + name
	}

	return parent + string(os.PathSeparator) + name
}

// Win32 file attribute bits, as stored in WIN32_FIND_DATA and
// WIN32_FILE_ATTRIBUTE_DATA.
const (
	win32Hidden       = 0x00000002
	win32System       = 0x00000004
	win32Directory    = 0x00000010
	win32Device       = 0x00000040
	win32Temporary    = 0x00000100
	win32ReparsePoint = 0x00000400
)

// attrsFromWin32 decodes a Win32 attribute word and the two halves of the
// file size into an object. Directories carry no size.
func attrsFromWin32(flags, sizeHigh, sizeLow uint32) object {
	var obj object

	if flags&win32Hidden != 0 {
		obj.attrs |= AttrHidden
	}

	if flags&win32System != 0 {
		obj.attrs |= AttrSystem
	}

	if flags&win32Temporary != 0 {
		obj.attrs |= AttrTemporary
	}

	if flags&win32ReparsePoint != 0 {
		obj.attrs |= AttrReparsePoint
	}

	if flags&win32Device != 0 {
		obj.attrs |= AttrSpecial
	}

	obj.dir = flags&win32Directory != 0
	if !obj.dir {
		obj.size = uint64(sizeHigh)<<32 | uint64(sizeLow)
	}

	return obj
}
