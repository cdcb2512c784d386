package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nickgalis/restful-task-manager/internal/model"
)

// CategoryRepository handles CRUD for categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories, restricted to one user when userID is set.
func (r *CategoryRepository) List(ctx context.Context, userID *uint) ([]model.Category, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	categories := make([]model.Category, 0)
	if err := q.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Save(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return count > 0, nil
}

// Delete removes a category and all tasks under it in a single
// transaction, so no orphan task is ever observable.
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return fmt.Errorf("delete category tasks: %w", err)
		}
		if err := tx.Delete(&model.Category{}, id).Error; err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
}
