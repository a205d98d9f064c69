package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fizikl/config"
	"fizikl/internal/insights"
	"fizikl/internal/model"
	"fizikl/internal/repository"

	"github.com/oklog/ulid/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Demo submissions covering a healthy, a risky and an average profile
var samples = []model.SurveyAnswers{
	{
		Name:              "Иван",
		Age:               30,
		ActivityLevel:     model.ActivityMedium,
		Goal:              model.GoalHealth,
		WorkoutsPerWeek:   3,
		SleepHours:        7.5,
		StressLevel:       5,
		WaterLiters:       2.0,
		FastFoodFrequency: model.FastFoodRarely,
		Smokes:            false,
	},
	{
		Name:              "Сергей",
		Age:               45,
		ActivityLevel:     model.ActivityLow,
		Goal:              model.GoalFatLoss,
		WorkoutsPerWeek:   0,
		SleepHours:        5.5,
		StressLevel:       8,
		WaterLiters:       0.5,
		FastFoodFrequency: model.FastFoodOften,
		Smokes:            true,
	},
	{
		Name:              "Анна",
		Age:               26,
		ActivityLevel:     model.ActivityHigh,
		Goal:              model.GoalMaintain,
		WorkoutsPerWeek:   4,
		SleepHours:        8,
		StressLevel:       3,
		WaterLiters:       2.5,
		FastFoodFrequency: model.FastFoodNever,
		Smokes:            false,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewRecordRepo(client.Database(cfg.MongoDB))

	for _, answers := range samples {
		summary, err := insights.Generate(answers)
		if err != nil {
			log.Fatalf("Failed to generate insights for %s: %v", answers.Name, err)
		}

		record := &model.SurveyRecord{
			ID:        ulid.Make().String(),
			Answers:   answers,
			Results:   *summary,
			CreatedAt: time.Now().UTC(),
		}
		if err := repo.Create(ctx, record); err != nil {
			log.Fatalf("Failed to insert record for %s: %v", answers.Name, err)
		}

		fmt.Printf("Seeded %s: id=%s health_index=%d persona=%q\n",
			answers.Name, record.ID, summary.Gauges.HealthIndex, summary.Insight.PersonaTag)
	}

	recent, err := repo.GetRecent(ctx, int64(len(samples)))
	if err != nil {
		log.Fatalf("Failed to read back records: %v", err)
	}
	fmt.Printf("Verified %d records in %q\n", len(recent), cfg.MongoDB)
}
