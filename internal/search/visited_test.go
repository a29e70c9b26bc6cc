package search

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitedSetAdd(t *testing.T) {
	v := newVisitedSet()

	assert.True(t, v.add(fileID{dev: 1, ino: 2}))
	assert.False(t, v.add(fileID{dev: 1, ino: 2}))
	assert.True(t, v.add(fileID{dev: 2, ino: 1}))
}

func TestVisitedSetConcurrent(t *testing.T) {
	v := newVisitedSet()

	var wg sync.WaitGroup
	var mu sync.Mutex
	firsts := 0
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := uint64(0); i < 500; i++ {
				if v.add(fileID{ino: i}) {
					mu.Lock()
					firsts++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 500, firsts)
}

func TestFirstVisitThroughLink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	makeTree(t, root, "dir/")
	require.NoError(t, os.Symlink(filepath.Join(root, "dir"), filepath.Join(root, "alias")))

	v := newVisitedSet()
	assert.True(t, v.firstVisit(filepath.Join(root, "dir")))
	assert.False(t, v.firstVisit(filepath.Join(root, "alias")))
	assert.True(t, v.firstVisit(filepath.Join(root, "missing")))
	assert.True(t, v.firstVisit(filepath.Join(root, "missing")))
}
