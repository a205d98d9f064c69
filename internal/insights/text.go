package insights

import (
	"fizikl/internal/model"
	"fmt"
	"sort"
	"strings"
)

const (
	strengthThreshold    = 72
	improvementThreshold = 58
)

// phraseItem pairs a dimension value with its strength and improvement
// phrasings from the fixed phrase table
type phraseItem struct {
	value       int
	strength    string
	improvement string
}

func phraseTable(s model.Scores) []phraseItem {
	return []phraseItem{
		{s.Sleep,
			"Сон близок к оптимальному — это ускоряет восстановление.",
			"Наладьте сон: цель — ~7–8 часов в среднем."},
		{s.Stress,
			"Стресс под контролем — проще держать режим и прогрессировать.",
			"Снизьте стресс: он напрямую влияет на восстановление и пищевые привычки."},
		{s.Activity,
			"Хорошая активность — сильная база для формы и здоровья.",
			"Добавьте регулярность движения: 2–3 тренировки или больше шагов дадут быстрый эффект."},
		{s.MovementNEAT,
			"Неплохой уровень ежедневного движения (NEAT).",
			"Увеличьте ежедневное движение: прогулки/шаги — самый простой рычаг."},
		{s.HabitScore,
			"Привычки в целом поддерживают здоровье.",
			"Улучшите привычки: вода/фастфуд/курение сильнее всего двигают индекс."},
		{s.NutritionStability,
			"Питание выглядит достаточно устойчивым.",
			"Стабилизируйте питание: начните с 1 «якорного» приёма пищи в день."},
	}
}

var goalHints = map[model.Goal]string{
	model.GoalFatLoss:  "Для похудения ключ — стабильность: сон + питание + шаги.",
	model.GoalMassGain: "Для набора массы: 3 силовые/нед и приоритет восстановления.",
	model.GoalMaintain: "Для поддержания формы: удерживать привычки важнее, чем «идеально» тренироваться.",
	model.GoalHealth:   "Для здоровья: сон/вода/движение — самые быстрые рычаги.",
}

func appendUnique(list []string, item string) []string {
	for _, s := range list {
		if s == item {
			return list
		}
	}
	return append(list, item)
}

// buildStrengthsAndImprovements picks up to three dimensions above the
// strength threshold and up to three below the improvement threshold,
// most extreme first, then appends the recovery-debt line and the
// goal-keyed hint
func buildStrengthsAndImprovements(a model.SurveyAnswers, s model.Scores) (strengths, improvements []string) {
	items := phraseTable(s)

	high := make([]phraseItem, len(items))
	copy(high, items)
	sort.SliceStable(high, func(i, j int) bool { return high[i].value > high[j].value })
	for _, it := range high[:3] {
		if it.value >= strengthThreshold {
			strengths = append(strengths, it.strength)
		}
	}

	low := make([]phraseItem, len(items))
	copy(low, items)
	sort.SliceStable(low, func(i, j int) bool { return low[i].value < low[j].value })
	for _, it := range low[:3] {
		if it.value <= improvementThreshold {
			improvements = append(improvements, it.improvement)
		}
	}

	if s.RecoveryDebt >= 60 {
		improvements = appendUnique(improvements,
			"Сначала закройте «долг восстановления» (сон/стресс/нагрузка), потом ускоряйте прогресс.")
	}

	if hint, ok := goalHints[a.Goal]; ok {
		improvements = appendUnique(improvements, hint)
	}

	return strengths, improvements
}

// personaTag picks the profile label from the fixed rule table,
// first matching rule wins
func personaTag(g model.Gauges, recoveryDebt int) string {
	switch {
	case g.HealthIndex >= 80 && g.Consistency >= 75 && g.CardioRisk < 40:
		return "Стабильный прогрессор"
	case recoveryDebt >= 60:
		return "Накапливает усталость"
	case g.CardioRisk >= 65:
		return "Нужно снизить риски"
	case g.Consistency < 55:
		return "Нужен простой режим"
	default:
		return "Умеренный баланс"
	}
}

func trimSentence(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".") + "."
}

func buildSummaryText(name string, g model.Gauges, strengths, improvements []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Привет, %s! Индекс здоровья — %d/100; готовность — %d/100; уверенность расчёта — %d/100. ",
		name, g.HealthIndex, g.Readiness, g.Confidence)

	if len(strengths) > 0 {
		fmt.Fprintf(&b, "Сильная сторона: %s ", trimSentence(strengths[0]))
	}
	if len(improvements) > 0 {
		fmt.Fprintf(&b, "Зона роста: %s", trimSentence(improvements[0]))
	} else {
		b.WriteString("Показатели ровные — можно улучшать точечно без резких изменений.")
	}

	return b.String()
}
