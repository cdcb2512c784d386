// Command seed populates the database with sample users, categories and
// tasks for testing and demonstration. It refuses to run against a
// store that already holds users.
package main

import (
	"time"

	"github.com/nickgalis/restful-task-manager/internal/config"
	"github.com/nickgalis/restful-task-manager/internal/logger"
	"github.com/nickgalis/restful-task-manager/internal/model"
	"github.com/nickgalis/restful-task-manager/internal/repository"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", "error", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	var existing int64
	if err := db.Model(&model.User{}).Count(&existing).Error; err != nil {
		logger.Fatal("count users", "error", err)
	}
	if existing > 0 {
		logger.Info("database already contains data, skipping seed", "users", existing)
		return
	}

	users := []model.User{
		{Username: "john_doe", Email: "john@example.com"},
		{Username: "jane_smith", Email: "jane@example.com"},
		{Username: "bob_wilson", Email: "bob@example.com"},
	}
	if err := db.Create(&users).Error; err != nil {
		logger.Fatal("seed users", "error", err)
	}
	logger.Info("created users", "count", len(users))

	categories := []model.Category{
		{Name: "Work", Description: "Work-related tasks", UserID: users[0].ID},
		{Name: "Personal", Description: "Personal tasks and errands", UserID: users[0].ID},
		{Name: "Shopping", Description: "Shopping lists and purchases", UserID: users[0].ID},
		{Name: "Project Alpha", Description: "Tasks for Project Alpha", UserID: users[1].ID},
		{Name: "Home", Description: "Home improvement tasks", UserID: users[1].ID},
		{Name: "Development", Description: "Software development tasks", UserID: users[2].ID},
		{Name: "Learning", Description: "Learning and training tasks", UserID: users[2].ID},
	}
	if err := db.Create(&categories).Error; err != nil {
		logger.Fatal("seed categories", "error", err)
	}
	logger.Info("created categories", "count", len(categories))

	tasks := []model.Task{
		{Title: "Complete quarterly report", Description: "Finish Q4 financial report for management review",
			Status: model.StatusInProgress, Priority: model.PriorityHigh, DueDate: due(2), CategoryID: categories[0].ID, UserID: users[0].ID},
		{Title: "Team meeting preparation", Description: "Prepare slides for Monday team meeting",
			Status: model.StatusPending, Priority: model.PriorityMedium, DueDate: due(3), CategoryID: categories[0].ID, UserID: users[0].ID},
		{Title: "Buy groceries", Description: "Get milk, eggs, bread, and vegetables",
			Status: model.StatusPending, Priority: model.PriorityLow, DueDate: due(1), CategoryID: categories[2].ID, UserID: users[0].ID},
		{Title: "Schedule dentist appointment", Description: "Call dentist office for annual checkup",
			Status: model.StatusCompleted, Priority: model.PriorityMedium, DueDate: due(-1), CategoryID: categories[1].ID, UserID: users[0].ID},
		{Title: "Pay utility bills", Description: "Pay electricity and water bills online",
			Status: model.StatusPending, Priority: model.PriorityHigh, DueDate: due(5), CategoryID: categories[1].ID, UserID: users[0].ID},

		{Title: "Design database schema", Description: "Create ERD for new database structure",
			Status: model.StatusCompleted, Priority: model.PriorityHigh, DueDate: due(-2), CategoryID: categories[3].ID, UserID: users[1].ID},
		{Title: "Implement user authentication", Description: "Add JWT-based authentication to the API",
			Status: model.StatusInProgress, Priority: model.PriorityHigh, DueDate: due(4), CategoryID: categories[3].ID, UserID: users[1].ID},
		{Title: "Write API documentation", Description: "Document all API endpoints with examples",
			Status: model.StatusPending, Priority: model.PriorityMedium, DueDate: due(7), CategoryID: categories[3].ID, UserID: users[1].ID},
		{Title: "Fix kitchen sink", Description: "Replace leaky faucet in kitchen",
			Status: model.StatusInProgress, Priority: model.PriorityHigh, DueDate: due(1), CategoryID: categories[4].ID, UserID: users[1].ID},
		{Title: "Paint living room", Description: "Buy paint and repaint living room walls",
			Status: model.StatusPending, Priority: model.PriorityLow, DueDate: due(14), CategoryID: categories[4].ID, UserID: users[1].ID},

		{Title: "Refactor authentication module", Description: "Clean up authentication code and improve security",
			Status: model.StatusInProgress, Priority: model.PriorityHigh, DueDate: due(3), CategoryID: categories[5].ID, UserID: users[2].ID},
		{Title: "Fix bug #234", Description: "Resolve issue with user profile update",
			Status: model.StatusPending, Priority: model.PriorityMedium, DueDate: due(2), CategoryID: categories[5].ID, UserID: users[2].ID},
		{Title: "Complete Go course", Description: "Finish remaining modules on advanced topics",
			Status: model.StatusInProgress, Priority: model.PriorityMedium, DueDate: due(10), CategoryID: categories[6].ID, UserID: users[2].ID},
		{Title: "Read Docker documentation", Description: "Study Docker best practices and deployment strategies",
			Status: model.StatusPending, Priority: model.PriorityLow, DueDate: due(15), CategoryID: categories[6].ID, UserID: users[2].ID},
		{Title: "Setup CI/CD pipeline", Description: "Configure GitHub Actions for automated testing",
			Status: model.StatusCompleted, Priority: model.PriorityHigh, DueDate: due(-3), CategoryID: categories[5].ID, UserID: users[2].ID},
	}
	if err := db.Create(&tasks).Error; err != nil {
		logger.Fatal("seed tasks", "error", err)
	}
	logger.Info("created tasks", "count", len(tasks))

	logger.Info("database seeded successfully",
		"users", len(users), "categories", len(categories), "tasks", len(tasks))
}

// due returns a timestamp the given number of days from now.
func due(days int) *time.Time {
	t := time.Now().UTC().AddDate(0, 0, days)
	return &t
}
