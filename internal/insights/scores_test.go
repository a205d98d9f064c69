package insights

import (
	"testing"

	"fizikl/internal/model"
)

func worstCaseAnswers() model.SurveyAnswers {
	return model.SurveyAnswers{
		Name:              "Антон",
		Age:               18,
		ActivityLevel:     model.ActivityLow,
		Goal:              model.GoalFatLoss,
		WorkoutsPerWeek:   0,
		SleepHours:        4,
		StressLevel:       10,
		WaterLiters:       0,
		FastFoodFrequency: model.FastFoodVeryOften,
		Smokes:            true,
	}
}

func healthyAnswers() model.SurveyAnswers {
	return model.SurveyAnswers{
		Name:              "Мария",
		Age:               30,
		ActivityLevel:     model.ActivityHigh,
		Goal:              model.GoalHealth,
		WorkoutsPerWeek:   5,
		SleepHours:        8,
		StressLevel:       2,
		WaterLiters:       2.5,
		FastFoodFrequency: model.FastFoodNever,
		Smokes:            false,
	}
}

func mediumAnswers() model.SurveyAnswers {
	return model.SurveyAnswers{
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
	}
}

func TestBuildScoresWorstCase(t *testing.T) {
	s := BuildScores(worstCaseAnswers())

	want := model.Scores{
		Activity:           25,
		Sleep:              4,
		Stress:             10,
		Hydration:          0,
		Nutrition:          15,
		Smoking:            20,
		AgeModifier:        95,
		MovementNEAT:       30,
		RecoveryDebt:       94,
		NutritionStability: 3,
		HabitScore:         14,
	}
	if s != want {
		t.Fatalf("scores mismatch:\n got %+v\nwant %+v", s, want)
	}
}

func TestBuildScoresHealthy(t *testing.T) {
	s := BuildScores(healthyAnswers())

	want := model.Scores{
		Activity:           90,
		Sleep:              100,
		Stress:             90,
		Hydration:          100,
		Nutrition:          95,
		Smoking:            90,
		AgeModifier:        87,
		MovementNEAT:       85,
		RecoveryDebt:       7,
		NutritionStability: 95,
		HabitScore:         94,
	}
	if s != want {
		t.Fatalf("scores mismatch:\n got %+v\nwant %+v", s, want)
	}
}

func TestBuildScoresMedium(t *testing.T) {
	s := BuildScores(mediumAnswers())

	want := model.Scores{
		Activity:           62,
		Sleep:              99,
		Stress:             60,
		Hydration:          88,
		Nutrition:          80,
		Smoking:            90,
		AgeModifier:        87,
		MovementNEAT:       64,
		RecoveryDebt:       0,
		NutritionStability: 80,
		HabitScore:         85,
	}
	if s != want {
		t.Fatalf("scores mismatch:\n got %+v\nwant %+v", s, want)
	}
}

func TestBuildScoresIdempotent(t *testing.T) {
	a := mediumAnswers()
	first := BuildScores(a)
	second := BuildScores(a)
	if first != second {
		t.Fatalf("repeated scoring diverged: %+v vs %+v", first, second)
	}
}

// Every score must stay in 0..100 over a sweep of the input domain
func TestScoresClampedOverDomain(t *testing.T) {
	levels := []model.ActivityLevel{model.ActivityLow, model.ActivityMedium, model.ActivityHigh, model.ActivityVeryHigh}
	frequencies := []model.FastFoodFrequency{model.FastFoodNever, model.FastFoodRarely, model.FastFoodSometimes, model.FastFoodOften, model.FastFoodVeryOften}

	for _, level := range levels {
		for _, ff := range frequencies {
			for workouts := 0; workouts <= 7; workouts++ {
				for stress := 1; stress <= 10; stress++ {
					for _, smokes := range []bool{false, true} {
						a := model.SurveyAnswers{
							Name:              "x",
							Age:               18 + stress*6,
							ActivityLevel:     level,
							Goal:              model.GoalMaintain,
							WorkoutsPerWeek:   workouts,
							SleepHours:        4 + float64(workouts),
							StressLevel:       stress,
							WaterLiters:       float64(stress) * 0.5,
							FastFoodFrequency: ff,
							Smokes:            smokes,
						}
						s := BuildScores(a)
						for name, v := range map[string]int{
							"activity": s.Activity, "sleep": s.Sleep, "stress": s.Stress,
							"hydration": s.Hydration, "nutrition": s.Nutrition, "smoking": s.Smoking,
							"age_modifier": s.AgeModifier, "movement_neat": s.MovementNEAT,
							"recovery_debt": s.RecoveryDebt, "nutrition_stability": s.NutritionStability,
							"habit_score": s.HabitScore,
						} {
							if v < 0 || v > 100 {
								t.Fatalf("%s out of range for %+v: %d", name, a, v)
							}
						}
					}
				}
			}
		}
	}
}
