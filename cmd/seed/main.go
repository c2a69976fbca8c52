package main

import (
	"log"
	"os"
	"time"

	"nutrition-assistant-be/internal/constant"
	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/model"
	"nutrition-assistant-be/pkg/analyzer"
	"nutrition-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

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

	color.Cyan("Seeding demo data...")

	// Demo user
	var existing model.User
	if err := db.Where("email = ?", "demo@example.com").First(&existing).Error; err == nil {
		color.Yellow("Demo user already exists, skipping...")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password:", err)
	}
	hashStr := string(hash)

	user := model.User{
		Id:            uuid.New(),
		Email:         "demo@example.com",
		PasswordHash:  &hashStr,
		FullName:      "Demo User",
		Role:          entity.UserRoleUser,
		Status:        entity.UserStatusActive,
		EmailVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Error: Failed to create demo user:", err)
	}
	color.Green("Created demo user: %s", user.Email)

	// Demo chat session
	now := time.Now()
	session := model.ChatSession{
		Id:           uuid.New(),
		UserId:       user.Id,
		Title:        "How much protein should I eat daily?",
		CreatedAt:    now,
		LastActiveAt: now,
	}
	if err := db.Create(&session).Error; err != nil {
		log.Fatal("Error: Failed to create demo session:", err)
	}

	messages := []model.ChatMessage{
		{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			Role:          constant.ChatMessageRoleAssistant,
			Content:       constant.ChatAssistantGreeting,
			CreatedAt:     now.Add(-2 * time.Minute),
		},
		{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			Role:          constant.ChatMessageRoleUser,
			Content:       "How much protein should I eat daily?",
			CreatedAt:     now.Add(-1 * time.Minute),
		},
		{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			Role:          constant.ChatMessageRoleAssistant,
			Content:       "A practical protein target is 1.6-2.2 g per kg of body weight per day.",
			CreatedAt:     now,
		},
	}
	for _, m := range messages {
		if err := db.Create(&m).Error; err != nil {
			log.Fatal("Error: Failed to create demo message:", err)
		}
	}
	color.Green("Created demo chat session with %d messages", len(messages))

	// Demo meal logs with analyses
	nutritionAnalyzer := analyzer.New()
	meals := []string{
		"Grilled chicken with rice and broccoli",
		"Oat porridge with banana",
		"Salmon salad with olive oil",
	}

	for i, description := range meals {
		mealLog := model.MealLog{
			Id:          uuid.New(),
			UserId:      user.Id,
			Description: description,
			MealTime:    now.Add(time.Duration(-i*6) * time.Hour),
		}
		if err := db.Create(&mealLog).Error; err != nil {
			log.Fatal("Error: Failed to create demo meal log:", err)
		}

		result := nutritionAnalyzer.Analyze(description)
		analysis := model.NutritionAnalysis{
			Id:             uuid.New(),
			MealLogId:      mealLog.Id,
			Calories:       result.Calories,
			ProteinG:       result.ProteinG,
			CarbsG:         result.CarbsG,
			FatG:           result.FatG,
			SugarG:         result.SugarG,
			FiberG:         result.FiberG,
			Recommendation: result.Recommendation,
		}
		if err := db.Create(&analysis).Error; err != nil {
			log.Fatal("Error: Failed to create demo analysis:", err)
		}
	}
	color.Green("Created %d demo meal logs with analyses", len(meals))

	color.Cyan("Seeding completed!")
}
