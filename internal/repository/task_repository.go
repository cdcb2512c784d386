package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nickgalis/restful-task-manager/internal/model"
)

// TaskFilter restricts and orders a read of the task collection. Nil
// filter fields impose no restriction; filters combine with AND.
type TaskFilter struct {
	Status     *model.TaskStatus
	Priority   *model.TaskPriority
	CategoryID *uint
	UserID     *uint
	SortBy     string // validated column name, empty for natural order
	Desc       bool
}

// sortColumns whitelists the columns the collection may be ordered by.
var sortColumns = map[string]string{
	"due_date":   "due_date",
	"created_at": "created_at",
	"priority":   "priority",
	"status":     "status",
	"updated_at": "updated_at",
}

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the full matching set, filtered and ordered per f.
func (r *TaskRepository) List(ctx context.Context, f TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{})

	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Priority != nil {
		q = q.Where("priority = ?", *f.Priority)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}

	if f.SortBy == "" {
		q = q.Order("id ASC")
	} else {
		column, ok := sortColumns[f.SortBy]
		if !ok {
			return nil, fmt.Errorf("unsupported sort column %q", f.SortBy)
		}
		direction := "ASC"
		if f.Desc {
			direction = "DESC"
		}
		clause := column + " " + direction
		if column == "due_date" {
			// Tasks without a due date always sort after dated ones.
			clause += " NULLS LAST"
		}
		q = q.Order(clause).Order("id ASC")
	}

	tasks := make([]model.Task, 0)
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Save writes every field back and refreshes updated_at, even when no
// value actually changed.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
