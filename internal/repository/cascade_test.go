package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nickgalis/restful-task-manager/internal/model"
)

func TestDeleteCategoryRemovesItsTasks(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice")
	work := createCategory(t, db, "Work", user.ID)
	home := createCategory(t, db, "Home", user.ID)

	seedTasks(t, db, []model.Task{
		{Title: "a", Status: model.StatusPending, Priority: model.PriorityLow, CategoryID: work.ID, UserID: user.ID},
		{Title: "b", Status: model.StatusPending, Priority: model.PriorityLow, CategoryID: work.ID, UserID: user.ID},
		{Title: "c", Status: model.StatusPending, Priority: model.PriorityLow, CategoryID: home.ID, UserID: user.ID},
	})

	repo := NewCategoryRepository(db)
	require.NoError(t, repo.Delete(context.Background(), work.ID))

	var orphans int64
	require.NoError(t, db.Model(&model.Task{}).Where("category_id = ?", work.ID).Count(&orphans).Error)
	assert.Zero(t, orphans, "no task may survive its category")

	var remaining int64
	require.NoError(t, db.Model(&model.Task{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	_, err := repo.FindByID(context.Background(), work.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteUserCascadesToCategoriesAndTasks(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	aliceWork := createCategory(t, db, "Work", alice.ID)
	alicePersonal := createCategory(t, db, "Personal", alice.ID)
	bobWork := createCategory(t, db, "Work", bob.ID)

	seedTasks(t, db, []model.Task{
		{Title: "a", Status: model.StatusPending, Priority: model.PriorityLow, CategoryID: aliceWork.ID, UserID: alice.ID},
		{Title: "b", Status: model.StatusPending, Priority: model.PriorityLow, CategoryID: alicePersonal.ID, UserID: alice.ID},
		{Title: "c", Status: model.StatusPending, Priority: model.PriorityLow, CategoryID: bobWork.ID, UserID: bob.ID},
	})

	repo := NewUserRepository(db)
	require.NoError(t, repo.Delete(context.Background(), alice.ID))

	var categories, tasks int64
	require.NoError(t, db.Model(&model.Category{}).Where("user_id = ?", alice.ID).Count(&categories).Error)
	require.NoError(t, db.Model(&model.Task{}).Where("user_id = ?", alice.ID).Count(&tasks).Error)
	assert.Zero(t, categories)
	assert.Zero(t, tasks)

	// Bob's world is untouched.
	require.NoError(t, db.Model(&model.Task{}).Count(&tasks).Error)
	assert.EqualValues(t, 1, tasks)
	_, err := repo.FindByID(context.Background(), bob.ID)
	require.NoError(t, err)
}

func TestDuplicateUsernameIsRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	first := model.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, repo.Create(context.Background(), &first))

	second := model.User{Username: "alice", Email: "other@example.com"}
	err := repo.Create(context.Background(), &second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "failed create must not persist a row")
}
