package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (User, error)
	Delete(ctx context.Context, id uuid.UUID) (User, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// User represents a stored user.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserParams contains parameters to create a user.
// All three fields are required.
type CreateUserParams struct {
	Name  string `json:"name" validate:"required,min=3,max=20"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"required,gt=0"`
}

// UpdateUserParams contains the fields supplied in a partial update.
// A nil field leaves the stored value untouched.
type UpdateUserParams struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=20"`
	Email *string `json:"email" validate:"omitempty,email"`
	Age   *int    `json:"age" validate:"omitempty,gt=0"`
}
