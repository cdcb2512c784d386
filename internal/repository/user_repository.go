package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nickgalis/restful-task-manager/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return count > 0, nil
}

// Delete removes a user together with their categories and every task
// under those categories, children first, in a single transaction. Tasks
// tagged with the user but filed under another user's category go too.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownedCategories := tx.Model(&model.Category{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("category_id IN (?)", ownedCategories).Delete(&model.Task{}).Error; err != nil {
			return fmt.Errorf("delete category tasks: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return fmt.Errorf("delete user tasks: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Category{}).Error; err != nil {
			return fmt.Errorf("delete user categories: %w", err)
		}
		if err := tx.Delete(&model.User{}, id).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
