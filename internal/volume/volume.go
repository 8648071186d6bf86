// Package volume lists the local storage volumes eligible for a census.
//
// Only fixed and removable local volumes are returned. Network shares,
// optical media, pseudo filesystems and volumes that cannot be accessed are
// left out. A failed platform query yields an empty list.
package volume

// Kind classifies a volume.
type Kind int

const (
	// Fixed is a non-removable local disk.
	Fixed Kind = iota
	// Removable is a local disk the platform reports as removable.
	Removable
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Removable:
		return "removable"
	default:
		return "unknown"
	}
}

// Volume is an eligible volume.
type Volume struct {
	// Root is the root directory of the volume, e.g. `C:\` or `/home`.
	Root string
	// Kind tells fixed and removable volumes apart.
	Kind Kind
}

// List returns the eligible volumes in platform order: drive-letter order on
// Windows, natural mount-point order elsewhere.
func List() []Volume {
	return list()
}

// Roots returns the root directories of vols.
func Roots(vols []Volume) []string {
	roots := make([]string, 0, len(vols))
	for _, v := range vols {
		roots = append(roots, v.Root)
	}

	return roots
}
