package census

// Attributes is the set of filesystem flags relevant to the inventory filter.
type Attributes uint8

const (
	// AttrHidden marks an object the platform hides from listings.
	AttrHidden Attributes = 1 << iota
	// AttrSystem marks an object owned by the operating system.
	AttrSystem
	// AttrTemporary marks an object flagged as temporary storage.
	AttrTemporary
	// AttrReparsePoint marks a symbolic link, junction or mount point.
	AttrReparsePoint
	// AttrSpecial marks a device, pipe or socket.
	AttrSpecial
)

// Has reports whether all flags in other are set.
func (a Attributes) Has(other Attributes) bool {
	return a&other == other
}

// FilterReason is the outcome of applying the attribute filter to an object.
type FilterReason uint8

const (
	// Included means the object is recorded.
	Included FilterReason = iota
	// ExcludedReparsePoint means the object redirects elsewhere and is never entered.
	ExcludedReparsePoint
	// ExcludedSystem means the object carries the system flag.
	ExcludedSystem
	// ExcludedHidden means the object carries the hidden flag.
	ExcludedHidden
	// ExcludedTemporary means the object carries the temporary flag.
	ExcludedTemporary
	// ExcludedSpecial means the object is not a regular file.
	ExcludedSpecial

	filterReasonCount
)

// String returns a short human-readable name for the reason.
func (r FilterReason) String() string {
	switch r {
	case Included:
		return "included"
	case ExcludedReparsePoint:
		return "reparse point"
	case ExcludedSystem:
		return "system"
	case ExcludedHidden:
		return "hidden"
	case ExcludedTemporary:
		return "temporary"
	case ExcludedSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Classify maps an attribute set to a filter decision.
// Reparse points win over every other flag, since they also decide whether a
// directory is entered.
func Classify(attrs Attributes) FilterReason {
	switch {
	case attrs.Has(AttrReparsePoint):
		return ExcludedReparsePoint
	case attrs.Has(AttrSystem):
		return ExcludedSystem
	case attrs.Has(AttrHidden):
		return ExcludedHidden
	case attrs.Has(AttrTemporary):
		return ExcludedTemporary
	case attrs.Has(AttrSpecial):
		return ExcludedSpecial
	default:
		return Included
	}
}
