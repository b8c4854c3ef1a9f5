package service

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// keyedLock serialises work per key over a fixed set of mutexes.
// Two keys may share a stripe, never the other way round.
type keyedLock struct {
	stripes [lockStripes]sync.Mutex
}

func (l *keyedLock) lock(key string) func() {
	h := fnv.New32a()
	h.Write([]byte(key))
	m := &l.stripes[h.Sum32()%lockStripes]
	m.Lock()
	return m.Unlock
}
