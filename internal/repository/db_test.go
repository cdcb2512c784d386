package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nickgalis/restful-task-manager/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) model.User {
	t.Helper()
	user := model.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string, userID uint) model.Category {
	t.Helper()
	category := model.Category{Name: name, UserID: userID}
	require.NoError(t, db.Create(&category).Error)
	return category
}
