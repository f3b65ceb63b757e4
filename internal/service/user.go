package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/njaumatilda/PRODIGY-BD-03/internal/logger"
	"github.com/njaumatilda/PRODIGY-BD-03/internal/model"
	"github.com/njaumatilda/PRODIGY-BD-03/internal/validation"
)

// User orchestrates validation, uniqueness checks, domain verification
// and store calls for user operations.
type User struct {
	userStore model.UserStore
	verifier  model.DomainVerifier
	validator *validation.Validator
	logger    *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	verifier model.DomainVerifier,
	validator *validation.Validator,
	logger *logger.Logger,
) *User {
	return &User{
		userStore: userStore,
		verifier:  verifier,
		validator: validator,
		logger:    logger,
	}
}

func (s *User) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users",
			"error", err.Error())
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

func (s *User) GetUser(ctx context.Context, rawID string) (model.User, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		s.logger.Info("User service: rejected malformed id",
			"id", rawID)
		return model.User{}, model.ErrInvalidID
	}

	user, err := s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("User service: user not found",
			"id", id)
		return model.User{}, model.ErrNotFound
	}
	if err != nil {
		s.logger.Error("User service: failed to get user",
			"id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// CreateUser runs the creation gate sequence: full field validation,
// duplicate-email fast fail, domain verification, insert. The store's
// unique constraint on email is the true uniqueness enforcement; the
// GetByEmail gate only produces the friendly failure without a write.
func (s *User) CreateUser(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Email = strings.TrimSpace(params.Email)

	if verr := s.validator.ValidateCreate(params); verr != nil {
		s.logger.Info("User service: create validation failed",
			"field", verr.Field,
			"reason", verr.Message)
		return model.User{}, verr
	}

	_, err := s.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		s.logger.Info("User service: email already in use",
			"email", params.Email)
		return model.User{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("User service: failed to check email uniqueness",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Runs after the uniqueness check so a duplicate never costs a lookup.
	if err := s.verifyEmailDomain(ctx, params.Email); err != nil {
		return model.User{}, err
	}

	now := time.Now().UTC()
	user := model.User{
		ID:        uuid.New(),
		Name:      params.Name,
		Email:     params.Email,
		Age:       params.Age,
		CreatedAt: now,
		UpdatedAt: now,
	}

	user, err = s.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrEmailTaken) {
		// Concurrent create won the race between the gate and the insert.
		s.logger.Info("User service: email taken at insert",
			"email", params.Email)
		return model.User{}, model.ErrEmailTaken
	}
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"id", user.ID,
		"email", user.Email)

	return user, nil
}

// UpdateUser merges only the fields supplied in params into the stored
// user. Domain verification runs only when the update carries an email;
// uniqueness against other users is left to the store's constraint.
func (s *User) UpdateUser(ctx context.Context, rawID string, params model.UpdateUserParams) (model.User, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		s.logger.Info("User service: rejected malformed id",
			"id", rawID)
		return model.User{}, model.ErrInvalidID
	}

	if params.Name != nil {
		trimmed := strings.TrimSpace(*params.Name)
		params.Name = &trimmed
	}
	if params.Email != nil {
		trimmed := strings.TrimSpace(*params.Email)
		params.Email = &trimmed
	}

	if verr := s.validator.ValidateUpdate(params); verr != nil {
		s.logger.Info("User service: update validation failed",
			"id", id,
			"field", verr.Field,
			"reason", verr.Message)
		return model.User{}, verr
	}

	_, err = s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("User service: user not found",
			"id", id)
		return model.User{}, model.ErrNotFound
	}
	if err != nil {
		s.logger.Error("User service: failed to get user",
			"id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if params.Email != nil {
		if err := s.verifyEmailDomain(ctx, *params.Email); err != nil {
			return model.User{}, err
		}
	}

	user, err := s.userStore.Update(ctx, id, params)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrNotFound
	}
	if errors.Is(err, model.ErrEmailTaken) {
		s.logger.Info("User service: email taken at update",
			"id", id)
		return model.User{}, model.ErrEmailTaken
	}
	if err != nil {
		s.logger.Error("User service: failed to update user",
			"id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"id", user.ID)

	return user, nil
}

func (s *User) DeleteUser(ctx context.Context, rawID string) (model.User, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		s.logger.Info("User service: rejected malformed id",
			"id", rawID)
		return model.User{}, model.ErrInvalidID
	}

	user, err := s.userStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("User service: user not found",
			"id", id)
		return model.User{}, model.ErrNotFound
	}
	if err != nil {
		s.logger.Error("User service: failed to delete user",
			"id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"id", user.ID)

	return user, nil
}

// DeleteAllUsers removes every user unconditionally and returns the
// number of removed records. There is no confirmation step.
func (s *User) DeleteAllUsers(ctx context.Context) (int64, error) {
	count, err := s.userStore.DeleteAll(ctx)
	if err != nil {
		s.logger.Error("User service: failed to delete users",
			"error", err.Error())
		return 0, fmt.Errorf("failed to delete users: %w", err)
	}

	s.logger.Info("User service: all users deleted",
		"count", count)

	return count, nil
}

// verifyEmailDomain maps every verification failure except caller
// cancellation to ErrEmailDomain: an unreachable resolver and a domain
// without MX records both mean deliverability could not be established.
func (s *User) verifyEmailDomain(ctx context.Context, email string) error {
	deliverable, err := s.verifier.IsDeliverable(ctx, email)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("failed to verify email domain: %w", err)
		}
		s.logger.Error("User service: domain verification failed",
			"email", email,
			"error", err.Error())
		return model.ErrEmailDomain
	}
	if !deliverable {
		s.logger.Info("User service: email domain not deliverable",
			"email", email)
		return model.ErrEmailDomain
	}

	return nil
}
