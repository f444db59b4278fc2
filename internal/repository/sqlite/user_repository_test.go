package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"users-service/internal/domain"
	"users-service/internal/repository"
)

func newTestRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := domain.NewUser("cnych", "qikqiak@gmail.com")
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))
	require.Equal(t, id, user.ID)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "cnych", byID.Username)
	require.Equal(t, "qikqiak@gmail.com", byID.Email)
	require.False(t, byID.Active)
	require.WithinDuration(t, user.CreatedAt, byID.CreatedAt, time.Second)

	byEmail, err := repo.GetByEmail(ctx, "qikqiak@gmail.com")
	require.NoError(t, err)
	require.Equal(t, id, byEmail.ID)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.NewUser("first", "dup@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.NewUser("second", "dup@example.com"))
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "first", users[0].Username)
}

func TestGetNotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 99999)
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListAllInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for i, email := range emails {
		_, err := repo.Create(ctx, domain.NewUser("user", email))
		require.NoError(t, err, "insert %d", i)
	}

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, email := range emails {
		require.Equal(t, email, users[i].Email)
		if i > 0 {
			require.Greater(t, users[i].ID, users[i-1].ID)
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, email := range []string{"old@example.com", "mid@example.com", "new@example.com"} {
		user := &domain.User{
			Username:  "user",
			Email:     email,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		_, err := repo.Create(ctx, user)
		require.NoError(t, err)
	}

	users, err := repo.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "new@example.com", users[0].Email)
	require.Equal(t, "mid@example.com", users[1].Email)
	require.Equal(t, "old@example.com", users[2].Email)
}
