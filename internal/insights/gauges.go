package insights

import "fizikl/internal/model"

// weightTerm is one contribution to a gauge: basis value name and weight.
// Negative weights subtract (used by readiness for the risk gauges).
type weightTerm struct {
	basis  string
	weight float64
}

// gaugeDef is one row of the gauge table. Polarity is part of the gauge's
// identity and is honored by every downstream consumer; inversion for
// display happens once, in the chart builder.
type gaugeDef struct {
	key      string
	label    string
	polarity model.Polarity
	terms    []weightTerm
}

// gaugeDefs is the full audit table for the ten composite indices, in
// definition order. health_index and confidence never appear on the radar.
// readiness is evaluated in a second pass over the rounded first-pass
// gauges; confidence is computed separately from data quality.
var gaugeDefs = []gaugeDef{
	{key: "health_index", label: "Индекс здоровья", polarity: model.PolarityDirect, terms: []weightTerm{
		{"activity", 0.20}, {"sleep", 0.20}, {"stress", 0.18}, {"hydration", 0.10},
		{"nutrition", 0.18}, {"smoking", 0.10}, {"age_modifier", 0.04},
	}},
	{key: "activity_score", label: "Активность", polarity: model.PolarityDirect, terms: []weightTerm{
		{"activity", 1.0},
	}},
	{key: "recovery_quality", label: "Восстановление", polarity: model.PolarityDirect, terms: []weightTerm{
		{"sleep", 0.55}, {"stress", 0.30}, {"training_balance", 0.15},
	}},
	{key: "lifestyle_balance", label: "Баланс образа жизни", polarity: model.PolarityDirect, terms: []weightTerm{
		{"sleep", 0.22}, {"stress", 0.22}, {"nutrition", 0.20}, {"hydration", 0.18}, {"neat", 0.18},
	}},
	{key: "energy_index", label: "Энергия", polarity: model.PolarityDirect, terms: []weightTerm{
		{"sleep", 0.40}, {"stress", 0.35}, {"hydration", 0.25},
	}},
	{key: "metabolic_load", label: "Метаболическая нагрузка", polarity: model.PolarityInverse, terms: []weightTerm{
		{"inv_nutrition", 0.45}, {"inv_activity", 0.25}, {"inv_sleep", 0.15}, {"inv_hydration", 0.15},
	}},
	{key: "cardio_risk", label: "Кардио-риск", polarity: model.PolarityInverse, terms: []weightTerm{
		{"smoking_risk", 0.45}, {"inv_activity", 0.20}, {"age_risk", 0.20}, {"inv_sleep", 0.15},
	}},
	{key: "consistency", label: "Регулярность", polarity: model.PolarityDirect, terms: []weightTerm{
		{"consistency", 1.0},
	}},
	{key: "readiness", label: "Готовность", polarity: model.PolarityDirect, terms: []weightTerm{
		{"recovery_quality", 0.55}, {"energy_index", 0.45}, {"cardio_risk", -0.20}, {"metabolic_load", -0.10},
	}},
	{key: "confidence", label: "Уверенность расчёта", polarity: model.PolarityDirect},
}

func gaugeDefByKey(key string) gaugeDef {
	for _, d := range gaugeDefs {
		if d.key == key {
			return d
		}
	}
	return gaugeDef{}
}

func evalGauge(def gaugeDef, basis map[string]float64) int {
	total := 0.0
	for _, t := range def.terms {
		total += basis[t.basis] * t.weight
	}
	return clamp100(iround(total))
}

// trainingBalance rewards a moderate weekly volume; both extremes cost
func trainingBalance(workouts int) int {
	switch {
	case workouts == 0:
		return 60
	case workouts <= 2:
		return 75
	case workouts <= 4:
		return 90
	case workouts <= 6:
		return 80
	default:
		return 70
	}
}

func smokingRisk(smokes bool) int {
	if smokes {
		return 90
	}
	return 10
}

// ageRisk maps 18 -> 10 and 80 -> 70. Not medical.
func ageRisk(age int) int {
	t := float64(age-18) / 62.0
	return clamp100(iround(10 + t*60))
}

// consistencyScore signals how repeatable the lifestyle looks
func consistencyScore(a model.SurveyAnswers) int {
	s := 60

	switch {
	case a.WorkoutsPerWeek == 0:
		s -= 10
	case a.WorkoutsPerWeek == 1:
		s -= 5
	case a.WorkoutsPerWeek <= 4:
		s += 10
	default:
		s += 6
	}

	switch {
	case a.SleepHours >= 7.0 && a.SleepHours <= 9.0:
		s += 12
	case a.SleepHours < 6.0:
		s -= 12
	default:
		s -= 4
	}

	switch a.FastFoodFrequency {
	case model.FastFoodOften, model.FastFoodVeryOften:
		s -= 10
	case model.FastFoodNever, model.FastFoodRarely:
		s += 6
	}

	switch {
	case a.WaterLiters >= 1.8:
		s += 6
	case a.WaterLiters < 1.0:
		s -= 8
	}

	return clamp100(s)
}

// scoreConfidence reflects how trustworthy the input looks, not the
// lifestyle itself. Each data quality warning and extreme value costs.
func scoreConfidence(a model.SurveyAnswers, dq []string) int {
	c := 92
	c -= len(dq) * 6
	if a.SleepHours <= 4.5 || a.SleepHours >= 11.5 {
		c -= 6
	}
	if a.WaterLiters == 0 || a.WaterLiters >= 4.8 {
		c -= 6
	}
	return clamp(c, 40, 100)
}

// BuildGauges evaluates the gauge table over the sub-scores. All rows are
// clamped to 0..100, so any input in range produces output in range.
func BuildGauges(a model.SurveyAnswers, s model.Scores, dq []string) model.Gauges {
	basis := map[string]float64{
		"activity":         float64(s.Activity),
		"sleep":            float64(s.Sleep),
		"stress":           float64(s.Stress),
		"hydration":        float64(s.Hydration),
		"nutrition":        float64(s.Nutrition),
		"smoking":          float64(s.Smoking),
		"age_modifier":     float64(s.AgeModifier),
		"neat":             float64(s.MovementNEAT),
		"inv_activity":     float64(100 - s.Activity),
		"inv_sleep":        float64(100 - s.Sleep),
		"inv_hydration":    float64(100 - s.Hydration),
		"inv_nutrition":    float64(100 - s.Nutrition),
		"training_balance": float64(trainingBalance(a.WorkoutsPerWeek)),
		"smoking_risk":     float64(smokingRisk(a.Smokes)),
		"age_risk":         float64(ageRisk(a.Age)),
		"consistency":      float64(consistencyScore(a)),
	}

	g := model.Gauges{
		HealthIndex:      evalGauge(gaugeDefByKey("health_index"), basis),
		ActivityScore:    evalGauge(gaugeDefByKey("activity_score"), basis),
		RecoveryQuality:  evalGauge(gaugeDefByKey("recovery_quality"), basis),
		LifestyleBalance: evalGauge(gaugeDefByKey("lifestyle_balance"), basis),
		EnergyIndex:      evalGauge(gaugeDefByKey("energy_index"), basis),
		MetabolicLoad:    evalGauge(gaugeDefByKey("metabolic_load"), basis),
		CardioRisk:       evalGauge(gaugeDefByKey("cardio_risk"), basis),
		Consistency:      evalGauge(gaugeDefByKey("consistency"), basis),
	}

	// Second pass: readiness folds the rounded first-pass gauges
	basis["recovery_quality"] = float64(g.RecoveryQuality)
	basis["energy_index"] = float64(g.EnergyIndex)
	basis["cardio_risk"] = float64(g.CardioRisk)
	basis["metabolic_load"] = float64(g.MetabolicLoad)
	g.Readiness = evalGauge(gaugeDefByKey("readiness"), basis)

	g.Confidence = scoreConfidence(a, dq)
	return g
}

// gaugeValue returns a gauge by table key
func gaugeValue(g model.Gauges, key string) int {
	switch key {
	case "health_index":
		return g.HealthIndex
	case "activity_score":
		return g.ActivityScore
	case "recovery_quality":
		return g.RecoveryQuality
	case "lifestyle_balance":
		return g.LifestyleBalance
	case "energy_index":
		return g.EnergyIndex
	case "metabolic_load":
		return g.MetabolicLoad
	case "cardio_risk":
		return g.CardioRisk
	case "consistency":
		return g.Consistency
	case "readiness":
		return g.Readiness
	case "confidence":
		return g.Confidence
	}
	return 0
}
