// FILE: internal/repository/memory/store.go
// In-memory store backing the repository contracts. Substituted for the
// GORM implementations in service tests; mirrors the store guarantees the
// services rely on (composite-key uniqueness, all-or-nothing transactions).
package memory

import (
	"sync"

	"feature-prefs-be/internal/entity"
)

type prefKey struct {
	userId    uint
	featureId uint
}

// Store holds catalog and preference state behind one lock. Transactions
// snapshot the mutable state on Begin and restore it on Rollback.
type Store struct {
	mu sync.RWMutex

	groups   []*entity.Group
	features []*entity.Feature

	prefs      map[prefKey]*entity.UserFeaturePreference
	nextPrefId uint

	users      map[uint]*entity.User
	tokens     map[uint]*entity.UserRefreshToken
	nextUserId uint
	nextTokId  uint

	// Failure injection for atomicity tests.
	FailCreateBatch error
	FailCommit      error
}

func NewStore() *Store {
	return &Store{
		prefs:      make(map[prefKey]*entity.UserFeaturePreference),
		users:      make(map[uint]*entity.User),
		tokens:     make(map[uint]*entity.UserRefreshToken),
		nextPrefId: 1,
		nextUserId: 1,
		nextTokId:  1,
	}
}

// SeedCatalog installs groups (with their features) in catalog order.
func (s *Store) SeedCatalog(groups []*entity.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = groups
	s.features = nil
	for _, g := range groups {
		s.features = append(s.features, g.Features...)
	}
}

// PreferenceCount reports the number of stored rows for assertions.
func (s *Store) PreferenceCount(userId uint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for k := range s.prefs {
		if k.userId == userId {
			n++
		}
	}
	return n
}

func (s *Store) snapshotPrefs() map[prefKey]*entity.UserFeaturePreference {
	snap := make(map[prefKey]*entity.UserFeaturePreference, len(s.prefs))
	for k, v := range s.prefs {
		cp := *v
		snap[k] = &cp
	}
	return snap
}
