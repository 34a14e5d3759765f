// Seed demo quiz attempts for local development.
//
// Creates a demo student (if missing) and a week of quiz attempts spread
// across subjects, so the study-plan generator has something to chew on.
//
// Usage: go run scripts/seed_attempts.go
package main

import (
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/pkg/database"
	"exam_prep_backend/pkg/logger"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var student model.User
	err = db.Where("email = ?", "demo@example.com").First(&student).Error
	if err != nil {
		hash, _ := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
		student = model.User{
			Name:       "Demo Student",
			Email:      "demo@example.com",
			Password:   string(hash),
			Role:       model.Student,
			TargetExam: "JEE",
		}
		if err := db.Create(&student).Error; err != nil {
			log.Fatalf("Failed to create demo student: %v", err)
		}
	}

	now := time.Now()
	pct := func(v float64) *float64 { return &v }
	attempts := []model.QuizAttempt{
		{UserID: student.ID, Subject: "Physics", Topic: "Kinematics", Score: 4, Total: 10, Accuracy: pct(40), TimeSpentSec: 900, CompletedAt: now.AddDate(0, 0, -6)},
		{UserID: student.ID, Subject: "Physics", Topic: "Laws of Motion", Score: 5, Total: 10, Accuracy: pct(50), TimeSpentSec: 840, CompletedAt: now.AddDate(0, 0, -4)},
		{UserID: student.ID, Subject: "Chemistry", Topic: "Chemical Bonding", Score: 9, Total: 10, Accuracy: pct(90), TimeSpentSec: 600, CompletedAt: now.AddDate(0, 0, -3)},
		{UserID: student.ID, Subject: "Chemistry", Topic: "Thermodynamics", Score: 8, Total: 10, Accuracy: pct(80), TimeSpentSec: 660, CompletedAt: now.AddDate(0, 0, -2)},
		{UserID: student.ID, Subject: "Mathematics", Topic: "Quadratic Equations", Score: 7, Total: 10, Accuracy: pct(70), TimeSpentSec: 1020, CompletedAt: now.AddDate(0, 0, -1)},
		{UserID: student.ID, Subject: "Mathematics", Topic: "Sequences and Series", IsCorrect: true, TimeSpentSec: 90, CompletedAt: now.Add(-2 * time.Hour)},
	}

	for i := range attempts {
		if err := db.Create(&attempts[i]).Error; err != nil {
			log.Fatalf("Failed to seed attempt: %v", err)
		}
	}

	log.Printf("Seeded %d quiz attempts for %s", len(attempts), student.Email)
}
