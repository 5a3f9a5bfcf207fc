package repo

import (
	"Enderbrary/internal/apperr"
	"Enderbrary/internal/model"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Ensure_Upsert(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	id := uuid.NewString()
	require.NoError(t, users.Ensure(ctx, &model.User{ID: id, Name: "Alice", Email: "alice@example.com"}))

	// повторный Ensure с новыми claims обновляет профиль
	require.NoError(t, users.Ensure(ctx, &model.User{ID: id, Name: "Alice Cooper", Email: "ac@example.com"}))

	got, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", got.Name)
	assert.Equal(t, "ac@example.com", got.Email)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)

	_, err := users.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
