package memory

import (
	"time"

	"assessment-assistant-be/pkg/assessment"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// StoreRepository keeps the live assessment store of each workspace in
// process memory. Stores idle for an hour are evicted; the next request
// rebuilds them from the persisted slots.
type StoreRepository struct {
	cache *cache.Cache
}

func NewStoreRepository() *StoreRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	// Evicted stores release their persist worker.
	c.OnEvicted(func(_ string, v interface{}) {
		if store, ok := v.(*assessment.Store); ok {
			store.Close()
		}
	})
	return &StoreRepository{
		cache: c,
	}
}

func (r *StoreRepository) Save(workspaceId uuid.UUID, store *assessment.Store) {
	r.cache.Set(workspaceId.String(), store, cache.DefaultExpiration)
}

func (r *StoreRepository) Get(workspaceId uuid.UUID) (*assessment.Store, bool) {
	if x, found := r.cache.Get(workspaceId.String()); found {
		return x.(*assessment.Store), true
	}
	return nil, false
}

func (r *StoreRepository) Delete(workspaceId uuid.UUID) {
	r.cache.Delete(workspaceId.String())
}
