package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/nickgalis/restful-task-manager/internal/model"
	"github.com/nickgalis/restful-task-manager/internal/repository"
)

// TaskInput carries the payload for creating or fully updating a task.
// DueDate is a pointer so an omitted field can be told apart from an
// explicit value on updates.
type TaskInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	CategoryID  uint    `json:"category_id"`
	UserID      uint    `json:"user_id"`
}

// TaskPatch is a partial update. Each field records whether the request
// supplied it, so "omitted" and "present but null" stay distinct.
type TaskPatch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *string
	Priority       *string
	DueDate        *string
	DueDateSet     bool
	CategoryID     *uint
	UserID         *uint

	hasFields bool
}

// UnmarshalJSON records field presence before decoding values.
func (p *TaskPatch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.hasFields = len(raw) > 0

	if v, ok := raw["title"]; ok {
		if err := json.Unmarshal(v, &p.Title); err != nil {
			return err
		}
	}
	if v, ok := raw["description"]; ok {
		p.DescriptionSet = true
		if err := json.Unmarshal(v, &p.Description); err != nil {
			return err
		}
	}
	if v, ok := raw["status"]; ok {
		if err := json.Unmarshal(v, &p.Status); err != nil {
			return err
		}
	}
	if v, ok := raw["priority"]; ok {
		if err := json.Unmarshal(v, &p.Priority); err != nil {
			return err
		}
	}
	if v, ok := raw["due_date"]; ok {
		p.DueDateSet = true
		if err := json.Unmarshal(v, &p.DueDate); err != nil {
			return err
		}
	}
	if v, ok := raw["category_id"]; ok {
		if err := json.Unmarshal(v, &p.CategoryID); err != nil {
			return err
		}
	}
	if v, ok := raw["user_id"]; ok {
		if err := json.Unmarshal(v, &p.UserID); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty reports whether the patch carried no fields at all.
func (p *TaskPatch) IsEmpty() bool { return !p.hasFields }

// TaskListInput carries the raw query parameters of a collection read.
type TaskListInput struct {
	Status     string
	Priority   string
	CategoryID *uint
	UserID     *uint
	SortBy     string
	Order      string
}

// TaskService wraps task validation and business rules.
type TaskService struct {
	tasks      *repository.TaskRepository
	categories *repository.CategoryRepository
	users      *repository.UserRepository
}

func NewTaskService(tasks *repository.TaskRepository, categories *repository.CategoryRepository, users *repository.UserRepository) *TaskService {
	return &TaskService{tasks: tasks, categories: categories, users: users}
}

func (s *TaskService) Create(ctx context.Context, in TaskInput) (*model.Task, error) {
	if err := checkRequired([]requiredField{
		{"title", in.Title != ""},
		{"category_id", in.CategoryID != 0},
		{"user_id", in.UserID != 0},
	}); err != nil {
		return nil, err
	}

	if err := s.requireUser(ctx, in.UserID); err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	status := model.StatusPending
	if in.Status != "" {
		st, err := parseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = st
	}

	priority := model.PriorityMedium
	if in.Priority != "" {
		pr, err := parsePriority(in.Priority)
		if err != nil {
			return nil, err
		}
		priority = pr
	}

	task := model.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     parseDueDate(in.DueDate),
		CategoryID:  in.CategoryID,
		UserID:      in.UserID,
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Task"}
		}
		return nil, err
	}
	return task, nil
}

// List validates filter and sort parameters, then reads the collection.
// Without sort_by the result comes back in stable id order; with sort_by
// but no order it defaults to ascending.
func (s *TaskService) List(ctx context.Context, in TaskListInput) ([]model.Task, error) {
	f := repository.TaskFilter{CategoryID: in.CategoryID, UserID: in.UserID}

	if in.Status != "" {
		st, err := parseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = &st
	}
	if in.Priority != "" {
		pr, err := parsePriority(in.Priority)
		if err != nil {
			return nil, err
		}
		f.Priority = &pr
	}

	if in.SortBy != "" {
		switch in.SortBy {
		case "due_date", "created_at", "priority", "status", "updated_at":
			f.SortBy = in.SortBy
		default:
			return nil, &ValidationError{Message: "Invalid sort_by parameter. Must be one of: due_date, created_at, priority, status, updated_at"}
		}
	}
	if in.Order != "" {
		switch strings.ToLower(in.Order) {
		case "asc":
		case "desc":
			f.Desc = true
		default:
			return nil, &ValidationError{Message: "Invalid order parameter. Must be asc or desc"}
		}
	}

	return s.tasks.List(ctx, f)
}

// Update is the full-update path: the same required fields as creation,
// with optional fields validated when present.
func (s *TaskService) Update(ctx context.Context, id uint, in TaskInput) (*model.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkRequired([]requiredField{
		{"title", in.Title != ""},
		{"category_id", in.CategoryID != 0},
		{"user_id", in.UserID != 0},
	}); err != nil {
		return nil, err
	}

	if in.Status != "" {
		st, err := parseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		task.Status = st
	}
	if in.Priority != "" {
		pr, err := parsePriority(in.Priority)
		if err != nil {
			return nil, err
		}
		task.Priority = pr
	}

	if err := s.requireUser(ctx, in.UserID); err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	if in.DueDate != nil {
		task.DueDate = parseDueDate(in.DueDate)
	}

	task.Title = in.Title
	task.Description = in.Description
	task.CategoryID = in.CategoryID
	task.UserID = in.UserID

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Patch applies only the supplied fields; everything else keeps its
// stored value. The write still refreshes updated_at.
func (s *TaskService) Patch(ctx context.Context, id uint, p TaskPatch) (*model.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.IsEmpty() {
		return nil, &ValidationError{Message: "No data provided"}
	}

	if p.Status != nil {
		st, err := parseStatus(*p.Status)
		if err != nil {
			return nil, err
		}
		task.Status = st
	}
	if p.Priority != nil {
		pr, err := parsePriority(*p.Priority)
		if err != nil {
			return nil, err
		}
		task.Priority = pr
	}
	if p.CategoryID != nil {
		if err := s.requireCategory(ctx, *p.CategoryID); err != nil {
			return nil, err
		}
		task.CategoryID = *p.CategoryID
	}
	if p.UserID != nil {
		if err := s.requireUser(ctx, *p.UserID); err != nil {
			return nil, err
		}
		task.UserID = *p.UserID
	}
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.DescriptionSet {
		if p.Description != nil {
			task.Description = *p.Description
		} else {
			task.Description = ""
		}
	}
	if p.DueDateSet {
		task.DueDate = parseDueDate(p.DueDate)
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) requireUser(ctx context.Context, id uint) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "User"}
	}
	return nil
}

func (s *TaskService) requireCategory(ctx context.Context, id uint) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Entity: "Category"}
	}
	return nil
}

func parseStatus(raw string) (model.TaskStatus, error) {
	st := model.TaskStatus(raw)
	if !st.Valid() {
		return "", invalidEnum("status", model.TaskStatusValues())
	}
	return st, nil
}

func parsePriority(raw string) (model.TaskPriority, error) {
	pr := model.TaskPriority(raw)
	if !pr.Valid() {
		return "", invalidEnum("priority", model.TaskPriorityValues())
	}
	return pr, nil
}

// dueDateLayouts are tried in order when parsing due dates.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDueDate converts an ISO-8601 string to a timestamp. Null and
// unparseable values both store null, matching the original API.
func parseDueDate(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t
		}
	}
	return nil
}
