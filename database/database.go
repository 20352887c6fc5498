package database

import (
	"fmt"
	"log"

	config "github.com/skillbridge/youth_platform/configs"
	"github.com/skillbridge/youth_platform/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Company{},
		&models.Institution{},
		&models.Municipality{},
		&models.Job{},
		&models.Course{},
		&models.CourseModule{},
		&models.Lesson{},
		&models.LessonResource{},
		&models.CourseEnrollment{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.QuizAttempt{},
		&models.QuizAnswer{},
		&models.Certificate{},
		&models.RefreshToken{},
		&models.ExternalAPIKey{},
		&models.Discussion{},
		&models.DiscussionReply{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedSuperAdmin() {
	adminUsername := config.Config("SUPERADMIN_USERNAME")
	adminPassword := config.Config("SUPERADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("username = ?", adminUsername).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for superadmin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Superadmin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash superadmin password: %v", err)
		return
	}

	adminUser := models.User{
		Username: adminUsername,
		Email:    config.Config("SUPERADMIN_EMAIL"),
		Password: string(hashedPassword),
		Role:     "superadmin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed superadmin user: %v", err)
		return
	}

	log.Println("✅ Superadmin user seeded successfully")
}
