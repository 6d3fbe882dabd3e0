package main

import (
	"log"
	"os"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/model"
	"dept-tracker-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account plus a handful of department records so a fresh
// install has something to search against.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme-admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash admin password: %v", err)
	}

	admin := model.User{
		FullName:     "Department Admin",
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.UserRoleAdmin,
	}
	if err := db.Where(model.User{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("Error: Failed to seed admin user: %v", err)
	}
	log.Printf("Seeded admin user id=%d", admin.Id)

	notes := []model.Note{
		{
			Title:     "Hastane kalite denetimi hazirlik notlari",
			Content:   "Denetim oncesi kontrol listesi ve sorumlular.",
			Category:  "kalite",
			CreatedBy: admin.Id,
			UpdatedBy: admin.Id,
			IsActive:  true,
		},
		{
			Title:     "Eczane stok sayimi",
			Content:   "Aylik stok sayim tutanagi.",
			Category:  "eczane",
			CreatedBy: admin.Id,
			UpdatedBy: admin.Id,
			IsActive:  true,
		},
	}
	for i := range notes {
		if err := db.Where(model.Note{Title: notes[i].Title}).FirstOrCreate(&notes[i]).Error; err != nil {
			log.Printf("Warn: Failed to seed note %q: %v", notes[i].Title, err)
		}
	}

	tasks := []model.Task{
		{
			Title:       "Poliklinik yazicisi servise gonderilecek",
			Description: "B blok poliklinik yazicisi kagit sikistiriyor.",
			Status:      entity.TaskStatusTodo,
			Priority:    entity.TaskPriorityHigh,
			AssignedTo:  admin.Id,
			CreatedBy:   admin.Id,
		},
	}
	for i := range tasks {
		if err := db.Where(model.Task{Title: tasks[i].Title}).FirstOrCreate(&tasks[i]).Error; err != nil {
			log.Printf("Warn: Failed to seed task %q: %v", tasks[i].Title, err)
		}
	}

	log.Println("Seeding complete.")
}
