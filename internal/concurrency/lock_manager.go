package concurrency

import (
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Release forgets the lock for key. Callers still holding the old mutex keep it; the
// next GetLock hands out a fresh one.
func (lm *LockManager) Release(key string) {
	lm.locks.Delete(key)
}

// Prune releases every lock whose key keep rejects and returns how many were dropped.
// Locks that are currently held are left alone, and keep is evaluated while holding
// the lock.
func (lm *LockManager) Prune(keep func(key string) bool) int {
	dropped := 0
	lm.locks.Range(func(k, v any) bool {
		mu := v.(*sync.Mutex)
		if !mu.TryLock() {
			return true
		}
		if !keep(k.(string)) && lm.locks.CompareAndDelete(k, mu) {
			dropped++
		}
		mu.Unlock()
		return true
	})
	return dropped
}

// Len is the number of tracked keys.
func (lm *LockManager) Len() int {
	n := 0
	lm.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
