// Package memory provides an in-memory UserStore used by tests and
// local development. It mirrors the postgres repository's contract,
// including the unique-email constraint.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/njaumatilda/PRODIGY-BD-03/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]model.User),
	}
}

// GetAll returns every stored user. Order is not guaranteed.
func (r *UserRepository) GetAll(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}

	return users, nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return model.User{}, model.ErrEmailTaken
		}
	}

	r.users[user.ID] = user

	return user, nil
}

// Update merges only the supplied fields into the stored user.
func (r *UserRepository) Update(_ context.Context, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	if params.Email != nil {
		for _, existing := range r.users {
			if existing.ID != id && existing.Email == *params.Email {
				return model.User{}, model.ErrEmailTaken
			}
		}
		user.Email = *params.Email
	}
	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Age != nil {
		user.Age = *params.Age
	}
	user.UpdatedAt = time.Now().UTC()

	r.users[id] = user

	return user, nil
}

func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	delete(r.users, id)

	return user, nil
}

func (r *UserRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := int64(len(r.users))
	r.users = make(map[uuid.UUID]model.User)

	return count, nil
}
