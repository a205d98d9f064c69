package model

import "time"

// Polarity tags whether higher values of a gauge mean better or worse outcomes
type Polarity string

const (
	PolarityDirect  Polarity = "direct"  // higher = better
	PolarityInverse Polarity = "inverse" // higher = worse
)

// UserInfo is the user block inside a summary
type UserInfo struct {
	Name string `json:"name" bson:"name"`
	Age  int    `json:"age" bson:"age"`
	Goal Goal   `json:"goal" bson:"goal"`
}

// Gauges holds the ten composite indices (0-100).
// MetabolicLoad and CardioRisk are inverse-polarity: higher means worse.
type Gauges struct {
	HealthIndex      int `json:"health_index" bson:"healthIndex"`
	ActivityScore    int `json:"activity_score" bson:"activityScore"`
	RecoveryQuality  int `json:"recovery_quality" bson:"recoveryQuality"`
	LifestyleBalance int `json:"lifestyle_balance" bson:"lifestyleBalance"`
	EnergyIndex      int `json:"energy_index" bson:"energyIndex"`
	MetabolicLoad    int `json:"metabolic_load" bson:"metabolicLoad"`
	CardioRisk       int `json:"cardio_risk" bson:"cardioRisk"`
	Consistency      int `json:"consistency" bson:"consistency"`
	Readiness        int `json:"readiness" bson:"readiness"`
	Confidence       int `json:"confidence" bson:"confidence"`
}

// Scores holds the eleven atomic sub-scores (0-100)
type Scores struct {
	Activity           int `json:"activity" bson:"activity"`
	Sleep              int `json:"sleep" bson:"sleep"`
	Stress             int `json:"stress" bson:"stress"`
	Hydration          int `json:"hydration" bson:"hydration"`
	Nutrition          int `json:"nutrition" bson:"nutrition"`
	Smoking            int `json:"smoking" bson:"smoking"`
	AgeModifier        int `json:"age_modifier" bson:"ageModifier"`
	MovementNEAT       int `json:"movement_neat" bson:"movementNeat"`
	RecoveryDebt       int `json:"recovery_debt" bson:"recoveryDebt"`
	NutritionStability int `json:"nutrition_stability" bson:"nutritionStability"`
	HabitScore         int `json:"habit_score" bson:"habitScore"`
}

// RadarPoint is a single radar chart point. Inverse-polarity gauges are
// stored pre-inverted (100 - raw) so outward always means better.
type RadarPoint struct {
	Key   string `json:"key" bson:"key"`
	Label string `json:"label" bson:"label"`
	Value int    `json:"value" bson:"value"`
}

// ChartPoint is a single bar/pie chart point
type ChartPoint struct {
	Key   string `json:"key" bson:"key"`
	Label string `json:"label" bson:"label"`
	Value int    `json:"value" bson:"value"`
}

// Donut is the good vs needs-work split; the two values sum to 100
type Donut struct {
	Good      int `json:"good" bson:"good"`
	NeedsWork int `json:"needs_work" bson:"needsWork"`
}

// Target is the next achievable milestone for a dimension
type Target struct {
	Key       string `json:"key" bson:"key"`
	Label     string `json:"label" bson:"label"`
	Current   int    `json:"current" bson:"current"`
	NextTier  int    `json:"next_tier" bson:"nextTier"`
	Suggested string `json:"suggested" bson:"suggested"`
}

// Charts groups all chart-ready series
type Charts struct {
	Dimensions      []ChartPoint `json:"dimensions" bson:"dimensions"`
	GoodVsNeedsWork Donut        `json:"good_vs_needs_work" bson:"goodVsNeedsWork"`
	RiskComposition []ChartPoint `json:"risk_composition" bson:"riskComposition"`
	Percentiles     []ChartPoint `json:"percentiles" bson:"percentiles"`
	Targets         []Target     `json:"targets" bson:"targets"`
}

// Insight holds the text blocks of a summary
type Insight struct {
	SummaryText      string   `json:"summary_text" bson:"summaryText"`
	Strengths        []string `json:"strengths" bson:"strengths"`
	ImprovementAreas []string `json:"improvement_areas" bson:"improvementAreas"`
	PersonaTag       string   `json:"persona_tag" bson:"personaTag"`
}

// Alert severities, most severe first in display order
const (
	SeverityHigh = "high"
	SeverityWarn = "warn"
	SeverityInfo = "info"
)

// Alert is a severity-tagged risk alert
type Alert struct {
	Key      string `json:"key" bson:"key"`
	Severity string `json:"severity" bson:"severity"`
	Title    string `json:"title" bson:"title"`
	Body     string `json:"body" bson:"body"`
}

// Flags holds risk flags, data quality warnings and alerts
type Flags struct {
	RiskFlags   []string `json:"risk_flags" bson:"riskFlags"`
	DataQuality []string `json:"data_quality" bson:"dataQuality"`
	Alerts      []Alert  `json:"alerts" bson:"alerts"`
}

// Recommendation is a single ranked recommendation.
// Priority is a 1-based rank: 1 = most important.
type Recommendation struct {
	Key      string `json:"key" bson:"key"`
	Title    string `json:"title" bson:"title"`
	Why      string `json:"why" bson:"why"`
	NextStep string `json:"next_step" bson:"nextStep"`
	Priority int    `json:"priority" bson:"priority"`
	Category string `json:"category" bson:"category"`
}

// Recommendations is the full ranked list plus its top-3 prefix.
// Top3 is always the first entries of All, never computed independently.
type Recommendations struct {
	Top3 []Recommendation `json:"top_3" bson:"top3"`
	All  []Recommendation `json:"all" bson:"all"`
}

// Debug carries the raw sub-scores, the health index weight table and
// machine-readable notes from soft validation
type Debug struct {
	SubScores map[string]int `json:"sub_scores" bson:"subScores"`
	Weights   map[string]int `json:"weights" bson:"weights"`
	Notes     []string       `json:"notes" bson:"notes"`
}

// Summary is the full engine output. It is produced atomically and
// tagged with the rule-set version it was generated under.
type Summary struct {
	User            UserInfo        `json:"user" bson:"user"`
	Gauges          Gauges          `json:"gauges" bson:"gauges"`
	Scores          Scores          `json:"scores" bson:"scores"`
	Radar           []RadarPoint    `json:"radar" bson:"radar"`
	Charts          Charts          `json:"charts" bson:"charts"`
	Insight         Insight         `json:"insight" bson:"insight"`
	Recommendations Recommendations `json:"recommendations" bson:"recommendations"`
	Flags           Flags           `json:"flags" bson:"flags"`
	Debug           Debug           `json:"debug" bson:"debug"`
	GeneratedAt     string          `json:"generated_at" bson:"generatedAt"`
	Version         string          `json:"version" bson:"version"`
}

// SurveyResponse is returned after a successful submission
type SurveyResponse struct {
	ID      string  `json:"id"`
	Results Summary `json:"results"`
}

// SurveyRecord is a stored submission
type SurveyRecord struct {
	ID        string        `json:"id" bson:"_id"`
	Answers   SurveyAnswers `json:"answers" bson:"answers"`
	Results   Summary       `json:"results" bson:"results"`
	CreatedAt time.Time     `json:"created_at" bson:"createdAt"`
}
