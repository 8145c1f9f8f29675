package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
	"github.com/oksasatya/finance-tracker-api/internal/domain/repository"
)

// UserRepository keeps users in process memory. It honors the same
// version check as the Postgres store, so it can stand in for it in tests
// and in STORE_DRIVER=memory deployments.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrEmailTaken
	}
	now := time.Now().UTC()
	u.Version = 1
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.RefreshTokens == nil {
		u.RefreshTokens = []entity.RefreshToken{}
	}
	r.byID[u.ID] = u.Clone()
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u.Clone(), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *UserRepository) Save(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if cur.Version != u.Version {
		return repository.ErrVersionConflict
	}
	if cur.Email != u.Email {
		if _, taken := r.byEmail[u.Email]; taken {
			return repository.ErrEmailTaken
		}
		delete(r.byEmail, cur.Email)
		r.byEmail[u.Email] = u.ID
	}

	u.Version++
	u.UpdatedAt = time.Now().UTC()
	r.byID[u.ID] = u.Clone()
	return nil
}

func (r *UserRepository) Ping(context.Context) error { return nil }

var _ repository.UserRepository = (*UserRepository)(nil)
