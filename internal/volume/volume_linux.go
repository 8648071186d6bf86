//go:build linux

package volume

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/moby/sys/mountinfo"
	"golang.org/x/sys/unix"
)

// excludedTypes are filesystem types that are never local disks.
//
//nolint:gochecknoglobals // Lookup table
var excludedTypes = map[string]struct{}{
	// Network
	"nfs": {}, "nfs4": {}, "cifs": {}, "smb3": {}, "smbfs": {}, "ncpfs": {},
	"afs": {}, "ceph": {}, "glusterfs": {}, "lustre": {}, "gpfs": {}, "9p": {},
	"davfs": {}, "fuse.sshfs": {}, "fuse.rclone": {}, "fuse.s3fs": {},
	// Optical
	"iso9660": {}, "udf": {},
	// Images and pseudo filesystems backed by a device node
	"squashfs": {}, "erofs": {}, "devtmpfs": {},
}

// probe reports whether a mount point can be queried.
type probe func(mountpoint string) bool

// removableProbe reports whether a block device is removable.
type removableProbe func(source string) bool

// list reads the mount table and keeps the eligible mounts.
func list() []Volume {
	mounts, err := mountinfo.GetMounts(nil)
	if err != nil {
		return nil
	}

	return eligible(mounts, accessible, removable)
}

// eligible keeps mounts backed by a local block device whose type is not
// excluded, one mount per source and filesystem root, ordered naturally by
// mount point.
func eligible(mounts []*mountinfo.Info, canAccess probe, isRemovable removableProbe) []Volume {
	candidates := make([]*mountinfo.Info, 0, len(mounts))

	for _, m := range mounts {
		if !strings.HasPrefix(m.Source, "/dev/") || strings.HasPrefix(m.Source, "/dev/loop") {
			continue
		}

		if _, skip := excludedTypes[m.FSType]; skip {
			continue
		}

		candidates = append(candidates, m)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return natural.Less(candidates[i].Mountpoint, candidates[j].Mountpoint)
	})

	// Bind mounts repeat source and root; btrfs subvolumes share a source
	// but differ in root and carry their own device number.
	type mountKey struct{ source, root string }

	seen := make(map[mountKey]struct{}, len(candidates))
	vols := make([]Volume, 0, len(candidates))

	for _, m := range candidates {
		key := mountKey{source: m.Source, root: m.Root}
		if _, dup := seen[key]; dup {
			continue
		}

		if !canAccess(m.Mountpoint) {
			continue
		}

		seen[key] = struct{}{}

		kind := Fixed
		if isRemovable(m.Source) {
			kind = Removable
		}

		vols = append(vols, Volume{Root: m.Mountpoint, Kind: kind})
	}

	return vols
}

// accessible reports whether the mount point is mounted and listable.
func accessible(mountpoint string) bool {
	var st unix.Statfs_t
	if err := unix.Statfs(mountpoint, &st); err != nil {
		return false
	}

	return unix.Access(mountpoint, unix.R_OK|unix.X_OK) == nil
}

// removable consults sysfs for the removable flag of the device behind
// source, falling back to the parent disk for partitions.
func removable(source string) bool {
	dev, err := filepath.EvalSymlinks(source)
	if err != nil {
		dev = source
	}

	sys, err := filepath.EvalSymlinks(filepath.Join("/sys/class/block", filepath.Base(dev)))
	if err != nil {
		return false
	}

	for _, dir := range []string{sys, filepath.Dir(sys)} {
		data, err := os.ReadFile(filepath.Join(dir, "removable"))
		if err == nil {
			return strings.TrimSpace(string(data)) == "1"
		}
	}

	return false
}
