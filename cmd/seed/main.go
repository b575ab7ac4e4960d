package main

import (
	"fmt"
	"math/rand"
	"time"

	"vitacoin/internal/model"
	"vitacoin/pkg/config"
	"vitacoin/pkg/database"
	"vitacoin/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sampleUsers = []struct {
	Username string
	Email    string
}{
	{Username: "alice_student", Email: "alice@university.edu"},
	{Username: "bob_employee", Email: "bob@company.com"},
	{Username: "charlie_gamer", Email: "charlie@gaming.net"},
	{Username: "diana_learner", Email: "diana@courses.com"},
	{Username: "evan_shopper", Email: "evan@retail.com"},
}

var sampleActivities = []model.ActivityConfigModel{
	{ActivityType: "daily_login", RewardValue: 5, PenaltyValue: 2},
	{ActivityType: "quiz_complete", RewardValue: 25, PenaltyValue: 10},
	{ActivityType: "course_finish", RewardValue: 100, PenaltyValue: 0},
	{ActivityType: "referral", RewardValue: 50, PenaltyValue: 0},
	{ActivityType: "purchase", RewardValue: 0, PenaltyValue: 0},
	{ActivityType: "daily_goal", RewardValue: 20, PenaltyValue: 5},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, sample := range sampleUsers {
		user := model.UserModel{
			Username: sample.Username,
			Email:    sample.Email,
			Coins:    rng.Intn(100) + 50, // 50-150 starting coins
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).Create(&user).Error
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", sample.Username, err)
		}
		log.Info("Seeded user: %s", sample.Username)
	}

	for _, activity := range sampleActivities {
		activity.UpdatedAt = time.Now().UTC()
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "activity_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"reward_value", "penalty_value", "updated_at"}),
		}).Create(&activity).Error
		if err != nil {
			return fmt.Errorf("failed to seed config %s: %w", activity.ActivityType, err)
		}
		log.Info("Seeded reward config: %s", activity.ActivityType)
	}

	return nil
}
