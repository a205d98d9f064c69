package model

// ActivityLevel is the self-reported physical activity level
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "Низкий"
	ActivityMedium   ActivityLevel = "Средний"
	ActivityHigh     ActivityLevel = "Высокий"
	ActivityVeryHigh ActivityLevel = "Очень высокий"
)

// Valid reports whether the level is one of the four known values
func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivityLow, ActivityMedium, ActivityHigh, ActivityVeryHigh:
		return true
	}
	return false
}

// Goal is the user's fitness goal
type Goal string

const (
	GoalFatLoss  Goal = "Похудение"
	GoalMassGain Goal = "Набор массы"
	GoalMaintain Goal = "Поддержание формы"
	GoalHealth   Goal = "Улучшение здоровья"
)

// Valid reports whether the goal is one of the four known values
func (g Goal) Valid() bool {
	switch g {
	case GoalFatLoss, GoalMassGain, GoalMaintain, GoalHealth:
		return true
	}
	return false
}

// FastFoodFrequency is how often the user eats fast food
type FastFoodFrequency string

const (
	FastFoodNever     FastFoodFrequency = "Никогда"
	FastFoodRarely    FastFoodFrequency = "Редко"
	FastFoodSometimes FastFoodFrequency = "Иногда"
	FastFoodOften     FastFoodFrequency = "Часто"
	FastFoodVeryOften FastFoodFrequency = "Очень часто"
)

// Valid reports whether the frequency is one of the five known values
func (f FastFoodFrequency) Valid() bool {
	switch f {
	case FastFoodNever, FastFoodRarely, FastFoodSometimes, FastFoodOften, FastFoodVeryOften:
		return true
	}
	return false
}

// SurveyAnswers is the survey input. Immutable once it passes validation;
// every later pipeline stage assumes all fields are in range.
type SurveyAnswers struct {
	Name              string            `json:"name" bson:"name"`
	Age               int               `json:"age" bson:"age"`
	ActivityLevel     ActivityLevel     `json:"activity_level" bson:"activityLevel"`
	Goal              Goal              `json:"goal" bson:"goal"`
	WorkoutsPerWeek   int               `json:"workouts_per_week" bson:"workoutsPerWeek"`
	SleepHours        float64           `json:"sleep_hours" bson:"sleepHours"`
	StressLevel       int               `json:"stress_level" bson:"stressLevel"`
	WaterLiters       float64           `json:"water_liters" bson:"waterLiters"`
	FastFoodFrequency FastFoodFrequency `json:"fastfood_frequency" bson:"fastfoodFrequency"`
	Smokes            bool              `json:"smokes" bson:"smokes"`
}
