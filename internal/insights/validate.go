package insights

import (
	"fizikl/internal/model"
	"math"
	"strings"
)

// Validate checks every survey field against its declared domain and
// returns a normalized copy (sleep and water rounded to the 0.5 step).
// This is the only stage of the pipeline allowed to reject input.
func Validate(a model.SurveyAnswers) (model.SurveyAnswers, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return a, model.NewValidationError("name", "name must not be empty")
	}
	if len([]rune(a.Name)) > 100 {
		return a, model.NewValidationError("name", "name must be at most 100 characters")
	}
	if a.Age < 18 || a.Age > 80 {
		return a, model.NewValidationError("age", "age must be between 18 and 80, got %d", a.Age)
	}
	if !a.ActivityLevel.Valid() {
		return a, model.NewValidationError("activity_level", "unknown activity level %q", a.ActivityLevel)
	}
	if !a.Goal.Valid() {
		return a, model.NewValidationError("goal", "unknown goal %q", a.Goal)
	}
	if a.WorkoutsPerWeek < 0 || a.WorkoutsPerWeek > 7 {
		return a, model.NewValidationError("workouts_per_week", "workouts per week must be between 0 and 7, got %d", a.WorkoutsPerWeek)
	}
	if a.SleepHours < 4 || a.SleepHours > 12 {
		return a, model.NewValidationError("sleep_hours", "sleep hours must be between 4 and 12, got %g", a.SleepHours)
	}
	if a.StressLevel < 1 || a.StressLevel > 10 {
		return a, model.NewValidationError("stress_level", "stress level must be between 1 and 10, got %d", a.StressLevel)
	}
	if a.WaterLiters < 0 || a.WaterLiters > 5 {
		return a, model.NewValidationError("water_liters", "water liters must be between 0 and 5, got %g", a.WaterLiters)
	}
	if !a.FastFoodFrequency.Valid() {
		return a, model.NewValidationError("fastfood_frequency", "unknown fast food frequency %q", a.FastFoodFrequency)
	}

	a.SleepHours = roundToStep(a.SleepHours)
	a.WaterLiters = roundToStep(a.WaterLiters)
	return a, nil
}

func roundToStep(v float64) float64 {
	return math.Round(v*2) / 2
}

// softChecks looks for odd but legal answer combinations. They never fail
// the request; they surface as data_quality warnings and lower confidence.
func softChecks(a model.SurveyAnswers) (dq []string, notes []string) {
	if a.WorkoutsPerWeek == 0 &&
		(a.ActivityLevel == model.ActivityHigh || a.ActivityLevel == model.ActivityVeryHigh) {
		dq = append(dq, "Несостыковка: высокий уровень активности при 0 тренировок/нед.")
		notes = append(notes, "mismatch.activity_vs_workouts")
	}
	if a.WorkoutsPerWeek >= 6 && a.ActivityLevel == model.ActivityLow {
		dq = append(dq, "Несостыковка: низкий уровень активности при 6–7 тренировок/нед.")
		notes = append(notes, "mismatch.activity_low_but_many_workouts")
	}
	if a.WaterLiters == 0 {
		dq = append(dq, "Вода указана как 0 л — возможно, значение пропущено.")
		notes = append(notes, "water.zero")
	}
	if a.SleepHours <= 4.5 {
		dq = append(dq, "Очень низкий сон — проверьте, что указано среднее значение.")
		notes = append(notes, "sleep.very_low")
	}
	return dq, notes
}
