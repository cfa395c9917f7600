package main

import (
	"fmt"
	"log"
	"os"

	"github.com/prattoy01/Ai-medical-Assistant/internal/app/ds"
	"github.com/prattoy01/Ai-medical-Assistant/internal/app/dsn"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database")
	}

	seedUser(db, ds.User{
		FirstName: "John",
		LastName:  "Doe",
		Username:  "johndoe",
		Email:     "test@example.com",
		Age:       30,
		Gender:    "male",
	}, "password123")

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme123"
	}
	seedUser(db, ds.User{
		FirstName: "Site",
		LastName:  "Admin",
		Username:  "admin",
		Email:     "admin@example.com",
		Age:       35,
		Gender:    "other",
		IsAdmin:   true,
	}, adminPassword)

	fmt.Println("Seeding completed")
}

func seedUser(db *gorm.DB, u ds.User, password string) {
	var existing ds.User
	if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
		fmt.Printf("User %s already exists, skipping\n", u.Email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password for %s: %v", u.Email, err)
	}
	u.Password = string(hashed)

	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("failed to create user %s: %v", u.Email, err)
	}
	fmt.Printf("Created user: %s\n", u.Email)
}
