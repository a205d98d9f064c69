package insights

import "fizikl/internal/model"

// tierLadder is the fixed ascending milestone ladder for targets.
// The last value is the top tier: dimensions at or above it get no target.
var tierLadder = []int{55, 70, 82, 90}

// nextTier returns the smallest ladder value strictly greater than v,
// or 0 when v is already at or above the top tier.
func nextTier(v int) int {
	for _, tier := range tierLadder {
		if tier > v {
			return tier
		}
	}
	return 0
}

// displayValue is the polarity-adjusted value of a gauge: inverse gauges
// are flipped once here so that higher always means better downstream.
func displayValue(def gaugeDef, g model.Gauges) int {
	v := gaugeValue(g, def.key)
	if def.polarity == model.PolarityInverse {
		return 100 - v
	}
	return v
}

// BuildRadar projects the gauges onto the 8-point radar: every gauge
// except health_index and confidence, in table order, polarity-adjusted.
func BuildRadar(g model.Gauges) []model.RadarPoint {
	radar := make([]model.RadarPoint, 0, 8)
	for _, def := range gaugeDefs {
		if def.key == "health_index" || def.key == "confidence" {
			continue
		}
		radar = append(radar, model.RadarPoint{
			Key:   def.key,
			Label: def.label,
			Value: displayValue(def, g),
		})
	}
	return radar
}

// goodThreshold is the uniform cut between "good" and "needs work",
// applied to polarity-adjusted gauge values.
const goodThreshold = 50

func buildDonut(g model.Gauges) model.Donut {
	good, total := 0, 0
	for _, def := range gaugeDefs {
		if def.key == "health_index" || def.key == "confidence" {
			continue
		}
		total++
		if displayValue(def, g) >= goodThreshold {
			good++
		}
	}
	pct := iround(float64(good) * 100.0 / float64(total))
	return model.Donut{Good: pct, NeedsWork: 100 - pct}
}

func buildDimensions(s model.Scores) []model.ChartPoint {
	return []model.ChartPoint{
		{Key: "activity", Label: "Активность", Value: s.Activity},
		{Key: "sleep", Label: "Сон", Value: s.Sleep},
		{Key: "stress", Label: "Стресс", Value: s.Stress},
		{Key: "hydration", Label: "Вода", Value: s.Hydration},
		{Key: "nutrition", Label: "Питание", Value: s.Nutrition},
		{Key: "habits", Label: "Привычки", Value: s.HabitScore},
	}
}

// buildRiskComposition breaks the inverse gauges down into their
// contributing risk components, normalized to sum to 100
func buildRiskComposition(a model.SurveyAnswers, s model.Scores) []model.ChartPoint {
	points := []model.ChartPoint{
		{Key: "smoking_risk", Label: "Курение", Value: smokingRisk(a.Smokes)},
		{Key: "sleep_risk", Label: "Сон", Value: 100 - s.Sleep},
		{Key: "stress_risk", Label: "Стресс", Value: 100 - s.Stress},
		{Key: "activity_risk", Label: "Активность", Value: 100 - s.Activity},
		{Key: "nutrition_risk", Label: "Питание", Value: 100 - s.Nutrition},
	}
	return normalizeTo100(points)
}

// normalizeTo100 rescales values so they sum to exactly 100; the last
// slice absorbs the rounding remainder
func normalizeTo100(points []model.ChartPoint) []model.ChartPoint {
	total := 0
	for _, p := range points {
		if p.Value > 0 {
			total += p.Value
		}
	}
	if total == 0 {
		return points
	}

	out := make([]model.ChartPoint, 0, len(points))
	acc := 0
	for i, p := range points {
		v := p.Value
		if v < 0 {
			v = 0
		}
		pct := iround(float64(v) * 100.0 / float64(total))
		if i == len(points)-1 {
			pct = 100 - acc
		} else {
			acc += pct
		}
		out = append(out, model.ChartPoint{Key: p.Key, Label: p.Label, Value: clamp100(pct)})
	}
	return out
}

// buildPercentiles estimates population rank per dimension from a fixed
// reference mapping. Heuristic, not live population data.
func buildPercentiles(g model.Gauges) []model.ChartPoint {
	return []model.ChartPoint{
		{Key: "health_pct", Label: "Индекс здоровья (перцентиль)", Value: clamp100(iround(float64(g.HealthIndex)*0.9 + 10))},
		{Key: "activity_pct", Label: "Активность (перцентиль)", Value: clamp100(iround(float64(g.ActivityScore)*0.95 + 5))},
		{Key: "recovery_pct", Label: "Восстановление (перцентиль)", Value: clamp100(iround(float64(g.RecoveryQuality)*0.9 + 10))},
		{Key: "balance_pct", Label: "Баланс (перцентиль)", Value: clamp100(iround(float64(g.LifestyleBalance)*0.9 + 10))},
		{Key: "risk_pct", Label: "Кардио-риск (перцентиль ниже = лучше)", Value: clamp100(100 - g.CardioRisk)},
	}
}

func buildTargets(a model.SurveyAnswers, s model.Scores) []model.Target {
	var targets []model.Target

	add := func(key, label string, current int, suggested string) {
		next := nextTier(current)
		if next == 0 {
			return
		}
		targets = append(targets, model.Target{
			Key:       key,
			Label:     label,
			Current:   current,
			NextTier:  next,
			Suggested: suggested,
		})
	}

	add("sleep", "Сон", s.Sleep, "Добавьте +30 минут ко сну и зафиксируйте подъём.")
	add("hydration", "Вода", s.Hydration, "Добавьте +0.5 л/день (постепенно).")
	add("nutrition", "Питание", s.Nutrition, "Снизьте фастфуд на 1 шаг и сделайте 1 «якорный» приём пищи.")

	var activitySuggestion string
	switch {
	case a.WorkoutsPerWeek >= 3:
		activitySuggestion = "Добавьте шаги или повысьте интенсивность тренировок."
	case a.WorkoutsPerWeek >= 1:
		activitySuggestion = "Добавьте ещё 1–2 тренировки в неделю или больше шагов."
	default:
		activitySuggestion = "Начните с 2–3 тренировок в неделю или добавьте шаги."
	}
	add("activity", "Активность", s.Activity, activitySuggestion)

	add("neat", "Движение (NEAT)", s.MovementNEAT, "Поставьте цель по шагам и делайте 2 короткие прогулки в день.")
	add("habits", "Привычки", s.HabitScore, "Вода + меньше фастфуда + (если нужно) снижение курения.")

	// Recovery debt is inverse: track 100-debt against the same ladder
	if s.RecoveryDebt > 35 {
		add("recovery_debt", "Долг восстановления", 100-s.RecoveryDebt,
			"Снизьте нагрузку на неделю и добавьте сон/антистресс.")
	}

	return targets
}

// BuildCharts assembles every chart-ready series from scores and gauges
func BuildCharts(a model.SurveyAnswers, s model.Scores, g model.Gauges) model.Charts {
	return model.Charts{
		Dimensions:      buildDimensions(s),
		GoodVsNeedsWork: buildDonut(g),
		RiskComposition: buildRiskComposition(a, s),
		Percentiles:     buildPercentiles(g),
		Targets:         buildTargets(a, s),
	}
}
