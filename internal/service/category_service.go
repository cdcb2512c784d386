package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nickgalis/restful-task-manager/internal/model"
	"github.com/nickgalis/restful-task-manager/internal/repository"
)

// CategoryInput carries the payload for creating a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      uint   `json:"user_id"`
}

// CategoryUpdateInput is the full-update payload. Description is a
// pointer so an omitted field keeps the stored value.
type CategoryUpdateInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	UserID      uint    `json:"user_id"`
}

// CategoryService wraps category-related business rules.
type CategoryService struct {
	categories *repository.CategoryRepository
	users      *repository.UserRepository
}

func NewCategoryService(categories *repository.CategoryRepository, users *repository.UserRepository) *CategoryService {
	return &CategoryService{categories: categories, users: users}
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*model.Category, error) {
	if err := checkRequired([]requiredField{
		{"name", in.Name != ""},
		{"user_id", in.UserID != 0},
	}); err != nil {
		return nil, err
	}

	if err := s.requireUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	category := model.Category{Name: in.Name, Description: in.Description, UserID: in.UserID}
	if err := s.categories.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Category"}
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, userID *uint) ([]model.Category, error) {
	return s.categories.List(ctx, userID)
}

func (s *CategoryService) Update(ctx context.Context, id uint, in CategoryUpdateInput) (*model.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkRequired([]requiredField{
		{"name", in.Name != ""},
		{"user_id", in.UserID != 0},
	}); err != nil {
		return nil, err
	}

	if err := s.requireUser(ctx, in.UserID); err != nil {
		return nil, err
	}

	category.Name = in.Name
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UserID = in.UserID

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category and every task under it.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "Category"}
	}
	return s.categories.Delete(ctx, id)
}

func (s *CategoryService) requireUser(ctx context.Context, id uint) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "User"}
	}
	return nil
}
