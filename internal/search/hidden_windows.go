//go:build windows

package search

import (
	"io/fs"
	"syscall"
)

const fileAttributeHidden = 0x02

// IsHidden checks if an entry is hidden on this platform (Windows).
// Directory listings on Windows carry the attributes, so Info is free here.
func IsHidden(fullPath string, d fs.DirEntry) bool {
	name := d.Name()
	if len(name) > 0 && name[0] == '.' {
		return true
	}

	info, err := d.Info()
	if err == nil {
		if data, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
			return data.FileAttributes&fileAttributeHidden != 0
		}
	}

	if fullPath == "" {
		return false
	}
	ptr, err := syscall.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	return attrs&fileAttributeHidden != 0
}
