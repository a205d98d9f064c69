package insights

import (
	"fizikl/internal/model"
	"math"
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func iround(v float64) int {
	return int(math.Round(v))
}

func clamp100(v int) int {
	return clamp(v, 0, 100)
}

var activityBase = map[model.ActivityLevel]int{
	model.ActivityLow:      25,
	model.ActivityMedium:   50,
	model.ActivityHigh:     70,
	model.ActivityVeryHigh: 85,
}

func scoreActivity(level model.ActivityLevel, workouts int) int {
	base := activityBase[level]
	bonus := clamp(workouts*4, 0, 28)

	mismatch := 0
	if (level == model.ActivityVeryHigh || level == model.ActivityHigh) && workouts <= 1 {
		mismatch += 10
	}
	if level == model.ActivityLow && workouts >= 5 {
		mismatch += 6
	}

	return clamp100(base + bonus - mismatch)
}

var neatBase = map[model.ActivityLevel]int{
	model.ActivityLow:      30,
	model.ActivityMedium:   55,
	model.ActivityHigh:     70,
	model.ActivityVeryHigh: 80,
}

// scoreNEAT approximates everyday movement beyond workouts
func scoreNEAT(level model.ActivityLevel, workouts int) int {
	base := neatBase[level]
	bonus := clamp(workouts*3, 0, 18)
	return clamp100(base + bonus)
}

// scoreSleep peaks at 8 hours with a quadratic penalty outside it
func scoreSleep(hours float64) int {
	diff := math.Abs(hours - 8.0)
	return clamp100(iround(100.0 - diff*diff*6.0))
}

func scoreStress(stress int) int {
	return clamp100(110 - stress*10)
}

func scoreHydration(liters float64) int {
	if liters <= 0 {
		return 0
	}
	// 2.5L reaches 100
	return clamp100(iround(40 + liters*24))
}

var nutritionByFrequency = map[model.FastFoodFrequency]int{
	model.FastFoodNever:     95,
	model.FastFoodRarely:    80,
	model.FastFoodSometimes: 60,
	model.FastFoodOften:     35,
	model.FastFoodVeryOften: 15,
}

func scoreNutrition(ff model.FastFoodFrequency) int {
	return nutritionByFrequency[ff]
}

// scoreNutritionStability penalizes nutrition under high stress:
// stress tends to destabilize food choices
func scoreNutritionStability(ff model.FastFoodFrequency, stress int) int {
	base := scoreNutrition(ff)
	penalty := 0
	switch {
	case stress >= 8:
		penalty = 12
	case stress >= 6:
		penalty = 6
	}
	return clamp100(base - penalty)
}

func scoreSmoking(smokes bool) int {
	if smokes {
		return 20
	}
	return 90
}

// scoreAgeModifier maps 18 -> 95 and 80 -> 55. Not medical.
func scoreAgeModifier(age int) int {
	t := float64(age-18) / 62.0
	return clamp100(iround(95 - t*40))
}

// scoreRecoveryDebt is inverse: higher means worse. It accumulates from
// sleep shortage, stress load above 5 and heavy training volume.
func scoreRecoveryDebt(sleep float64, stress, workouts int) int {
	debt := 0.0
	if sleep < 7.0 {
		debt += (7.0 - sleep) * 18.0
	}
	if stress > 5 {
		debt += float64(stress-5) * 8.0
	}
	if workouts >= 5 {
		debt += float64(workouts-4) * 7.0
	}
	return clamp100(iround(debt))
}

// BuildScores computes the eleven atomic sub-scores. Pure and stateless:
// identical answers always produce identical scores.
func BuildScores(a model.SurveyAnswers) model.Scores {
	nutrition := scoreNutrition(a.FastFoodFrequency)
	smoking := scoreSmoking(a.Smokes)
	hydration := scoreHydration(a.WaterLiters)

	return model.Scores{
		Activity:           scoreActivity(a.ActivityLevel, a.WorkoutsPerWeek),
		Sleep:              scoreSleep(a.SleepHours),
		Stress:             scoreStress(a.StressLevel),
		Hydration:          hydration,
		Nutrition:          nutrition,
		Smoking:            smoking,
		AgeModifier:        scoreAgeModifier(a.Age),
		MovementNEAT:       scoreNEAT(a.ActivityLevel, a.WorkoutsPerWeek),
		RecoveryDebt:       scoreRecoveryDebt(a.SleepHours, a.StressLevel, a.WorkoutsPerWeek),
		NutritionStability: scoreNutritionStability(a.FastFoodFrequency, a.StressLevel),
		HabitScore:         clamp100(iround(0.45*float64(nutrition) + 0.35*float64(smoking) + 0.20*float64(hydration))),
	}
}
