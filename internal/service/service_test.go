package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nickgalis/restful-task-manager/internal/model"
	"github.com/nickgalis/restful-task-manager/internal/repository"
)

type testEnv struct {
	users      *UserService
	categories *CategoryService
	tasks      *TaskService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return &testEnv{
		users:      NewUserService(userRepo),
		categories: NewCategoryService(categoryRepo, userRepo),
		tasks:      NewTaskService(taskRepo, categoryRepo, userRepo),
	}
}

// seedUserAndCategory creates one user with one category for task tests.
func (e *testEnv) seedUserAndCategory(t *testing.T) (*model.User, *model.Category) {
	t.Helper()
	ctx := context.Background()

	user, err := e.users.Create(ctx, UserInput{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	category, err := e.categories.Create(ctx, CategoryInput{Name: "Work", UserID: user.ID})
	require.NoError(t, err)
	return user, category
}
