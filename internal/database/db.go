package database

import (
	"log"
	"os"
	"time"

	"github.com/iamsonghee/photo-selection/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	err = DB.AutoMigrate(
		&models.Photographer{},
		&models.Project{},
		&models.Photo{},
		&models.Selection{},
		&models.ProjectLog{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDemoPhotographer()
}

// 데모/로컬 개발용 기본 작가 계정
func seedDemoPhotographer() {
	email := os.Getenv("DEMO_PHOTOGRAPHER_EMAIL")
	if email == "" {
		return
	}
	password := os.Getenv("DEMO_PHOTOGRAPHER_PASSWORD")
	if password == "" {
		password = "Photo123!"
	}

	var count int64
	if err := DB.Model(&models.Photographer{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		log.Printf("failed to check demo photographer: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash demo photographer password: %v", err)
		return
	}

	ph := models.Photographer{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "데모 작가",
	}

	if err := DB.Create(&ph).Error; err != nil {
		log.Printf("failed to create demo photographer: %v", err)
		return
	}

	log.Printf("created demo photographer: %s", email)
}
