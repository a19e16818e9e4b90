package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal-backend/internal/domain"
)

func sampleUser(id, email string, createdAt time.Time) *domain.User {
	return &domain.User{
		ID:        id,
		Email:     email,
		Username:  "trader_" + id,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestInMemoryUserRepositoryCRUD(t *testing.T) {
	repo := NewInMemoryUserRepository()
	now := time.Now()

	require.NoError(t, repo.Create(sampleUser("u1", "a@example.com", now)))

	got, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)

	got, err = repo.GetByEmail("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	// Duplicate email rejected
	assert.Error(t, repo.Create(sampleUser("u2", "a@example.com", now)))

	require.NoError(t, repo.Delete("u1"))
	_, err = repo.GetByID("u1")
	assert.Error(t, err)
}

func TestInMemoryUserRepositoryGetAllNewestFirst(t *testing.T) {
	repo := NewInMemoryUserRepository()
	base := time.Now()

	require.NoError(t, repo.Create(sampleUser("u1", "a@example.com", base.Add(-2*time.Hour))))
	require.NoError(t, repo.Create(sampleUser("u2", "b@example.com", base.Add(-1*time.Hour))))
	require.NoError(t, repo.Create(sampleUser("u3", "c@example.com", base)))

	users := repo.GetAll()
	require.Len(t, users, 3)
	assert.Equal(t, "u3", users[0].ID)
	assert.Equal(t, "u1", users[2].ID)
}
