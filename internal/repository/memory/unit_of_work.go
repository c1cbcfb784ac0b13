// FILE: internal/repository/memory/unit_of_work.go
package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"feature-prefs-be/internal/entity"
	"feature-prefs-be/internal/repository/contract"
	"feature-prefs-be/internal/repository/specification"
	"feature-prefs-be/internal/repository/unitofwork"
)

type RepositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &RepositoryFactory{store: store}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

type unitOfWork struct {
	store    *Store
	inTx     bool
	snapshot map[prefKey]*entity.UserFeaturePreference
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.inTx {
		return fmt.Errorf("transaction already started")
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.snapshot = u.store.snapshotPrefs()
	u.inTx = true
	return nil
}

func (u *unitOfWork) Commit() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to commit")
	}
	if err := u.store.FailCommit; err != nil {
		u.restore()
		return err
	}
	u.inTx = false
	u.snapshot = nil
	return nil
}

func (u *unitOfWork) Rollback() error {
	if !u.inTx {
		return fmt.Errorf("no transaction to rollback")
	}
	u.restore()
	return nil
}

func (u *unitOfWork) restore() {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.prefs = u.snapshot
	u.snapshot = nil
	u.inTx = false
}

func (u *unitOfWork) GroupRepository() contract.GroupRepository {
	return &groupRepository{store: u.store}
}

func (u *unitOfWork) FeatureRepository() contract.FeatureRepository {
	return &featureRepository{store: u.store}
}

func (u *unitOfWork) PreferenceRepository() contract.PreferenceRepository {
	return &preferenceRepository{store: u.store}
}

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return &userRepository{store: u.store}
}

// specFilter narrows rows the way the GORM specifications would. Only the
// specifications the services actually pass are interpreted.
func specFilter(specs []specification.Specification) (userId uint, hasUser bool, id uint, hasId bool, email string, hasEmail bool) {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.UserOwnedBy:
			userId, hasUser = v.UserID, true
		case specification.ByID:
			id, hasId = v.ID, true
		case specification.ByEmail:
			email, hasEmail = v.Email, true
		}
	}
	return
}

type groupRepository struct {
	store *Store
}

func (r *groupRepository) FindAllWithFeatures(ctx context.Context) ([]*entity.Group, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.groups, nil
}

type featureRepository struct {
	store *Store
}

func (r *featureRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	_, _, id, hasId, _, _ := specFilter(specs)
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, f := range r.store.features {
		if hasId && f.Id == id {
			return f, nil
		}
	}
	return nil, nil
}

type preferenceRepository struct {
	store *Store
}

func (r *preferenceRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserFeaturePreference, error) {
	userId, hasUser, _, _, _, _ := specFilter(specs)
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.UserFeaturePreference
	for _, p := range r.store.prefs {
		if hasUser && p.UserId != userId {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FeatureId < out[j].FeatureId })
	return out, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *entity.UserFeaturePreference) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	key := prefKey{userId: pref.UserId, featureId: pref.FeatureId}
	if existing, ok := r.store.prefs[key]; ok {
		existing.IsEnabled = pref.IsEnabled
		existing.UpdatedAt = time.Now()
		*pref = *existing
		return nil
	}
	pref.Id = r.store.nextPrefId
	r.store.nextPrefId++
	pref.CreatedAt = time.Now()
	pref.UpdatedAt = pref.CreatedAt
	cp := *pref
	r.store.prefs[key] = &cp
	return nil
}

func (r *preferenceRepository) DeleteAllByUser(ctx context.Context, userId uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for k := range r.store.prefs {
		if k.userId == userId {
			delete(r.store.prefs, k)
		}
	}
	return nil
}

func (r *preferenceRepository) CreateBatch(ctx context.Context, prefs []*entity.UserFeaturePreference) error {
	if err := r.store.FailCreateBatch; err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range prefs {
		key := prefKey{userId: p.UserId, featureId: p.FeatureId}
		if _, ok := r.store.prefs[key]; ok {
			return fmt.Errorf("duplicate key (%d, %d)", p.UserId, p.FeatureId)
		}
		p.Id = r.store.nextPrefId
		r.store.nextPrefId++
		p.CreatedAt = time.Now()
		p.UpdatedAt = p.CreatedAt
		cp := *p
		r.store.prefs[key] = &cp
	}
	return nil
}

func (r *preferenceRepository) CountByUser(ctx context.Context, userId uint) (int64, error) {
	return int64(r.store.PreferenceCount(userId)), nil
}

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate email %s", user.Email)
		}
	}
	user.Id = r.store.nextUserId
	r.store.nextUserId++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.store.users[user.Id] = &cp
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	_, _, id, hasId, email, hasEmail := specFilter(specs)
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if hasId && u.Id != id {
			continue
		}
		if hasEmail && u.Email != email {
			continue
		}
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *userRepository) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	token.Id = r.store.nextTokId
	r.store.nextTokId++
	token.CreatedAt = time.Now()
	cp := *token
	r.store.tokens[token.Id] = &cp
	return nil
}

func (r *userRepository) RevokeRefreshTokenByHash(ctx context.Context, hash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.tokens {
		if t.TokenHash == hash {
			t.Revoked = true
		}
	}
	return nil
}
