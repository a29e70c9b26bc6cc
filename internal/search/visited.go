package search

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash"
)

const visitedShards = 64

// fileID identifies a directory independently of the path used to reach it
type fileID struct {
	dev uint64
	ino uint64
}

// visitedSet records expanded directories when symbolic links are followed.
// Shards keep workers from contending on one lock.
type visitedSet struct {
	shards [visitedShards]visitedShard
}

type visitedShard struct {
	sync.Mutex
	seen map[fileID]struct{}
}

func newVisitedSet() *visitedSet {
	v := &visitedSet{}
	for i := range v.shards {
		v.shards[i].seen = make(map[fileID]struct{})
	}
	return v
}

// add records id and reports whether it was not seen before
func (v *visitedSet) add(id fileID) bool {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], id.dev)
	binary.LittleEndian.PutUint64(key[8:], id.ino)
	shard := &v.shards[xxhash.Sum64(key[:])%visitedShards]

	shard.Lock()
	defer shard.Unlock()
	if _, ok := shard.seen[id]; ok {
		return false
	}
	shard.seen[id] = struct{}{}
	return true
}

// firstVisit reports whether dir is expanded for the first time.
// Directories whose identity cannot be read are always expanded.
func (v *visitedSet) firstVisit(dir string) bool {
	id, err := dirIdentity(dir)
	if err != nil {
		return true
	}
	return v.add(id)
}
