package main

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"tasktracker/internal/auth"
	"tasktracker/internal/config"
	"tasktracker/internal/db"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

const (
	demoUserName  = "Demo User"
	demoUserEmail = "demo@example.com"
	demoPassword  = "demo-password"
)

// seedTask describes one demo task.
type seedTask struct {
	title       string
	description string
	dueInDays   int
	priority    model.Priority
	status      model.Status
}

var demoTasks = []seedTask{
	{"Comprar leite", "Mercado da esquina", 1, model.PriorityLow, model.StatusPending},
	{"Relatório mensal", "Fechar números de vendas", 3, model.PriorityHigh, model.StatusInProgress},
	{"Revisar contrato", "", 7, model.PriorityMedium, model.StatusPending},
	{"Backup do servidor", "Rotina semanal", 0, model.PriorityMedium, model.StatusCompleted},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	ctx := context.Background()

	user, created, err := seedUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}
	if created {
		log.Printf("Created demo user %s (%s)", user.Name, user.Email)
	} else {
		log.Printf("Demo user %s already exists, reusing", user.Email)
	}

	seeded, err := seedTasks(ctx, taskRepo, user)
	if err != nil {
		log.Fatalf("Failed to seed tasks: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Tasks created: %d", seeded)
	log.Printf("  - Login with %s / %s", demoUserEmail, demoPassword)
}

// seedUser creates the demo user unless it already exists.
func seedUser(ctx context.Context, repo repository.UserRepository) (*model.User, bool, error) {
	existing, err := repo.FindByEmail(ctx, demoUserEmail)
	if err == nil {
		return existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, false, err
	}
	user := &model.User{
		Name:         demoUserName,
		Email:        demoUserEmail,
		PasswordHash: hash,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// seedTasks creates the demo tasks for the user. Runs are not idempotent for
// tasks; repeated invocations append another batch.
func seedTasks(ctx context.Context, repo repository.TaskRepository, user *model.User) (int, error) {
	seeded := 0
	for _, item := range demoTasks {
		task := &model.Task{
			Title:       item.title,
			Description: item.description,
			Priority:    item.priority,
			Status:      item.status,
			OwnerID:     user.ID,
		}
		if item.dueInDays > 0 {
			due := time.Now().AddDate(0, 0, item.dueInDays)
			task.DueAt = &due
		}
		if err := repo.Create(ctx, task); err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
