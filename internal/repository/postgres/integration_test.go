//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/njaumatilda/PRODIGY-BD-03/internal/model"
	repo "github.com/njaumatilda/PRODIGY-BD-03/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "users_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/users_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(email string) model.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return model.User{
		ID:        uuid.New(),
		Name:      "Alice",
		Email:     email,
		Age:       30,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	r := repo.NewUserRepository(conn)

	_, err = r.DeleteAll(ctx)
	require.NoError(t, err)

	created, err := r.Create(ctx, newUser("alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)

	// Insert with the same email must hit the unique constraint.
	_, err = r.Create(ctx, newUser("alice@example.com"))
	require.ErrorIs(t, err, model.ErrEmailTaken)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)

	got, err = r.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = r.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = r.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	age := 31
	updated, err := r.Update(ctx, created.ID, model.UpdateUserParams{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	_, err = r.Update(ctx, uuid.New(), model.UpdateUserParams{Age: &age})
	require.ErrorIs(t, err, model.ErrNotFound)

	// Updating onto a taken email must hit the unique constraint too.
	other, err := r.Create(ctx, newUser("bob@example.com"))
	require.NoError(t, err)
	takenEmail := "alice@example.com"
	_, err = r.Update(ctx, other.ID, model.UpdateUserParams{Email: &takenEmail})
	require.ErrorIs(t, err, model.ErrEmailTaken)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	deleted, err := r.Delete(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, other.Email, deleted.Email)

	_, err = r.Delete(ctx, other.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	count, err := r.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = r.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
