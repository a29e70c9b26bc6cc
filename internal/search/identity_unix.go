//go:build !windows

package search

import (
	"fmt"
	"os"
	"syscall"
)

// dirIdentity returns the device and inode of the directory at path
func dirIdentity(path string) (fileID, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileID{}, err
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileID{}, fmt.Errorf("no inode information for %s", path)
	}
	return fileID{dev: uint64(st.Dev), ino: uint64(st.Ino)}, nil
}
