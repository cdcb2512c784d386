package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nickgalis/restful-task-manager/internal/model"
	"github.com/nickgalis/restful-task-manager/internal/repository"
)

// UserInput carries the payload for creating a user.
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserService wraps user-related business rules.
type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, in UserInput) (*model.User, error) {
	if err := checkRequired([]requiredField{
		{"username", in.Username != ""},
		{"email", in.Email != ""},
	}); err != nil {
		return nil, err
	}

	user := model.User{Username: in.Username, Email: in.Email}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Username already exists"}
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "User"}
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.ListAll(ctx)
}

// Delete removes the user and cascades to their categories and tasks.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "User"}
	}
	return s.users.Delete(ctx, id)
}
