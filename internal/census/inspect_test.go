package census

import "testing"

func TestAttrsFromWin32(t *testing.T) {
	tests := []struct {
		name     string
		flags    uint32
		high     uint32
		low      uint32
		want     object
		decision FilterReason
	}{
		{"normal file", 0x80, 0, 1234, object{size: 1234}, Included},
		{"archive file", 0x20, 0, 10, object{size: 10}, Included},
		{"hidden", win32Hidden, 0, 1, object{attrs: AttrHidden, size: 1}, ExcludedHidden},
		{"system", win32System, 0, 1, object{attrs: AttrSystem, size: 1}, ExcludedSystem},
		{"hidden system", win32Hidden | win32System, 0, 1, object{attrs: AttrHidden | AttrSystem, size: 1}, ExcludedSystem},
		{"temporary", win32Temporary, 0, 1, object{attrs: AttrTemporary, size: 1}, ExcludedTemporary},
		{"symlinked file", win32ReparsePoint, 0, 0, object{attrs: AttrReparsePoint}, ExcludedReparsePoint},
		{"device", win32Device, 0, 0, object{attrs: AttrSpecial}, ExcludedSpecial},
		{"directory", win32Directory, 0, 4096, object{dir: true}, Included},
		{"hidden directory", win32Directory | win32Hidden, 0, 0, object{attrs: AttrHidden, dir: true}, ExcludedHidden},
		{"junction", win32Directory | win32ReparsePoint, 0, 0, object{attrs: AttrReparsePoint, dir: true}, ExcludedReparsePoint},
		{"exactly 4GiB", 0x20, 1, 0, object{size: 1 << 32}, Included},
		{"above 4GiB", 0x20, 2, 5, object{size: 2<<32 | 5}, Included},
		{"largest size", 0x20, 0xFFFFFFFF, 0xFFFFFFFF, object{size: ^uint64(0)}, Included},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := attrsFromWin32(tt.flags, tt.high, tt.low)
			if got != tt.want {
				t.Fatalf("attrsFromWin32(%#x, %d, %d) = %+v, want %+v", tt.flags, tt.high, tt.low, got, tt.want)
			}

			if reason := Classify(got.attrs); reason != tt.decision {
				t.Fatalf("Classify = %v, want %v", reason, tt.decision)
			}
		})
	}
}
