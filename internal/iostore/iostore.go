// Package iostore is for durable storage of memos and observations.
package iostore

import (
	"sync"

	"github.com/embeau/tonelab/internal/contract"
)

// StoreManagerImpl manages the cache and observation store instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	cache        contract.CacheStore
	observations contract.ObservationStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetCacheStore returns the memo CacheStore.
func (mgr *StoreManagerImpl) GetCacheStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.cache
}

// GetObservationStore returns the ObservationStore.
func (mgr *StoreManagerImpl) GetObservationStore() contract.ObservationStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.observations
}
