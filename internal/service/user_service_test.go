package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAggregatesMissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Create(context.Background(), UserInput{})
	require.Error(t, err)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Missing required fields: username, email", validation.Message)
}

func TestCreateUserDuplicateUsernameConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Create(ctx, UserInput{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = env.users.Create(ctx, UserInput{Username: "alice", Email: "other@example.com"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Username already exists", conflict.Message)

	users, err := env.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGetUnknownUserIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Get(context.Background(), 42)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User not found", notFound.Error())
}

func TestCreateCategoryRequiresExistingUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.categories.Create(context.Background(), CategoryInput{Name: "Work", UserID: 99})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User", notFound.Entity)
}

func TestUpdateCategoryKeepsDescriptionWhenOmitted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user, _ := env.seedUserAndCategory(t)

	created, err := env.categories.Create(ctx, CategoryInput{Name: "Errands", Description: "odds and ends", UserID: user.ID})
	require.NoError(t, err)

	updated, err := env.categories.Update(ctx, created.ID, CategoryUpdateInput{Name: "Chores", UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, "Chores", updated.Name)
	assert.Equal(t, "odds and ends", updated.Description)
}

func TestDeleteUnknownCategoryIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.categories.Delete(context.Background(), 7)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
