// Package census walks storage volumes and ranks the files found on them by size.
//
// A walk visits every descendant of a volume root depth-first using an
// explicit stack of open directory listings, skipping hidden, system,
// temporary and reparse-point objects. Directories that cannot be listed are
// skipped without aborting the walk. The resulting inventory is ranked with a
// stable descending sort and truncated to the requested number of entries.
package census
