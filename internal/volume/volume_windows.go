//go:build windows

package volume

import (
	"golang.org/x/sys/windows"
)

// list walks the logical drive bitmask from A to Z and keeps fixed and
// removable drives.
func list() []Volume {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil
	}

	vols := make([]Volume, 0, 4)

	for i := range 26 {
		if mask&(1<<uint(i)) == 0 {
			continue
		}

		root := string(rune('A'+i)) + `:\`

		ptr, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}

		switch windows.GetDriveType(ptr) {
		case windows.DRIVE_FIXED:
			vols = append(vols, Volume{Root: root, Kind: Fixed})
		case windows.DRIVE_REMOVABLE:
			vols = append(vols, Volume{Root: root, Kind: Removable})
		}
	}

	return vols
}
