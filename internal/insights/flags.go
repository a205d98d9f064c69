package insights

import (
	"fizikl/internal/model"
	"sort"
)

var severityRank = map[string]int{
	model.SeverityHigh: 0,
	model.SeverityWarn: 1,
	model.SeverityInfo: 2,
}

// sortAlerts orders alerts high -> warn -> info, preserving the original
// generation order within a severity. This ordering is a contract: it
// determines which issues the dashboard surfaces first.
func sortAlerts(alerts []model.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank[alerts[i].Severity] < severityRank[alerts[j].Severity]
	})
}

// BuildFlags derives risk flags and severity-tagged alerts from answers,
// scores and gauges. dq carries the soft validation warnings through.
func BuildFlags(a model.SurveyAnswers, s model.Scores, g model.Gauges, dq []string) model.Flags {
	var riskFlags []string
	var alerts []model.Alert

	if a.Smokes {
		riskFlags = append(riskFlags, "Курение: снижает выносливость и общий индекс здоровья.")
		alerts = append(alerts, model.Alert{
			Key:      "smoking",
			Severity: model.SeverityHigh,
			Title:    "Фактор риска: курение",
			Body:     "Даже сокращение количества сигарет улучшает метрики восстановления и кардио-риска.",
		})
	}

	if a.SleepHours < 6.0 {
		riskFlags = append(riskFlags, "Сон < 6 часов: восстановление и энергия вероятно проседают.")
		alerts = append(alerts, model.Alert{
			Key:      "sleep_low",
			Severity: model.SeverityHigh,
			Title:    "Критически мало сна",
			Body:     "Попробуйте добавить хотя бы +30 минут сна в течение ближайшей недели.",
		})
	}

	if a.StressLevel >= 8 {
		riskFlags = append(riskFlags, "Стресс 8–10: риск выгорания и срывов режима.")
		alerts = append(alerts, model.Alert{
			Key:      "stress_high",
			Severity: model.SeverityWarn,
			Title:    "Высокий стресс",
			Body:     "Паузы/прогулки/дыхание по 5 минут 2 раза в день уже дают эффект на самочувствие.",
		})
	}

	if a.WaterLiters < 1.2 {
		riskFlags = append(riskFlags, "Вода < 1.2 л: возможны скачки аппетита и усталость.")
		alerts = append(alerts, model.Alert{
			Key:      "water_low",
			Severity: model.SeverityInfo,
			Title:    "Низкое потребление воды",
			Body:     "Поднимайте объём постепенно: +0.3–0.5 л/день.",
		})
	}

	if a.FastFoodFrequency == model.FastFoodOften || a.FastFoodFrequency == model.FastFoodVeryOften {
		riskFlags = append(riskFlags, "Фастфуд часто: нагрузка на метаболический профиль выше.")
	}

	if s.RecoveryDebt >= 60 {
		alerts = append(alerts, model.Alert{
			Key:      "recovery_debt",
			Severity: model.SeverityWarn,
			Title:    "Накоплен долг восстановления",
			Body:     "Сон/стресс/нагрузка сейчас складываются в риск перетренированности или отката.",
		})
	}

	if g.CardioRisk >= 65 {
		alerts = append(alerts, model.Alert{
			Key:      "cardio_risk",
			Severity: model.SeverityWarn,
			Title:    "Повышенный кардио-риск (по анкете)",
			Body:     "Это не диагноз. Улучшайте сон и активность, а при жалобах — консультируйтесь с врачом.",
		})
	}

	if g.MetabolicLoad >= 70 {
		alerts = append(alerts, model.Alert{
			Key:      "metabolic_load",
			Severity: model.SeverityInfo,
			Title:    "Высокая метаболическая нагрузка",
			Body:     "Чаще всего улучшается через питание (реже фастфуд) и регулярное движение.",
		})
	}

	if len(alerts) == 0 && s.Sleep >= 75 && s.Nutrition >= 70 && s.Stress >= 65 {
		alerts = append(alerts, model.Alert{
			Key:      "green_zone",
			Severity: model.SeverityInfo,
			Title:    "Вы в «зелёной зоне»",
			Body:     "Сейчас лучшее — закрепить привычки и улучшать показатели точечно.",
		})
	}

	sortAlerts(alerts)

	return model.Flags{RiskFlags: riskFlags, DataQuality: dq, Alerts: alerts}
}
