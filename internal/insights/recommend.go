package insights

import (
	"fizikl/internal/model"
	"fmt"
	"sort"
)

// goalFocus maps each goal to the recommendation category that gets the
// alignment bonus during ranking
var goalFocus = map[model.Goal]string{
	model.GoalFatLoss:  "activity",
	model.GoalMassGain: "activity",
	model.GoalMaintain: "habits",
	model.GoalHealth:   "sleep",
}

const (
	goalAlignBonus  = 6
	maxDeficitBonus = 10
)

// candidate is a triggered catalog entry before ranking. weight combines
// the catalog base weight, the deficit bonus and the goal alignment bonus.
type candidate struct {
	rec    model.Recommendation
	weight int
}

// deficitBonus rewards distance below (or, for inverse metrics, above)
// the healthy threshold, one point per five units, capped
func deficitBonus(gap int) int {
	return clamp(gap/5, 0, maxDeficitBonus)
}

// buildCandidates walks the fixed catalog in order and collects every
// triggered entry. Catalog order is the ranking tie-break.
func buildCandidates(a model.SurveyAnswers, s model.Scores, g model.Gauges) []candidate {
	var out []candidate

	add := func(base, deficit int, rec model.Recommendation) {
		weight := base + deficitBonus(deficit)
		if rec.Category == goalFocus[a.Goal] {
			weight += goalAlignBonus
		}
		out = append(out, candidate{rec: rec, weight: weight})
	}

	if s.Sleep < 80 {
		add(88, 80-s.Sleep, model.Recommendation{
			Key:      "sleep_upgrade",
			Title:    "Улучшить сон (первый рычаг)",
			Why:      fmt.Sprintf("Сон %d/100 — он сильнее всего влияет на восстановление и энергию.", s.Sleep),
			NextStep: "План на 7 дней: фиксированный подъём + уберите экран за 45 минут до сна.",
			Category: "sleep",
		})
	}

	if s.Stress < 60 || a.StressLevel >= 7 {
		add(82, 60-s.Stress, model.Recommendation{
			Key:      "stress_protocol",
			Title:    "Протокол снижения стресса",
			Why:      "Стресс напрямую снижает качество восстановления и повышает вероятность срывов.",
			NextStep: "2× в день по 5 минут: прогулка/дыхание + один «безэкранный» слот вечером.",
			Category: "stress",
		})
	}

	if s.Hydration < 70 {
		add(62, 70-s.Hydration, model.Recommendation{
			Key:      "water_routine",
			Title:    "Сделать воду автоматической привычкой",
			Why:      fmt.Sprintf("Вода %d/100 — это простой и быстрый апгрейд самочувствия.", s.Hydration),
			NextStep: "Поставьте бутылку 0.5 л на рабочий стол и выпивайте 2 такие до 16:00.",
			Category: "hydration",
		})
	}

	if s.Nutrition < 70 {
		add(74, 70-s.Nutrition, model.Recommendation{
			Key:      "nutrition_anchor",
			Title:    "Якорный приём пищи",
			Why:      "Стабильный один приём в день резко улучшает общий рацион без силы воли.",
			NextStep: "Ежедневно: белок + овощи + сложные углеводы (или фрукты) — в одном приёме.",
			Category: "nutrition",
		})
	}

	if a.FastFoodFrequency == model.FastFoodOften || a.FastFoodFrequency == model.FastFoodVeryOften {
		add(79, 70-s.Nutrition, model.Recommendation{
			Key:      "fastfood_stepdown",
			Title:    "Снизить фастфуд на один шаг",
			Why:      "Частый фастфуд повышает метаболическую нагрузку.",
			NextStep: "На ближайшие 14 дней: замените 1 фастфуд-приём на альтернативу (bowl/суп/салат+белок).",
			Category: "nutrition",
		})
	}

	if a.Smokes {
		add(92, g.CardioRisk-40, model.Recommendation{
			Key:      "smoking_reduce",
			Title:    "Сократить курение",
			Why:      fmt.Sprintf("Кардио-риск %d/100 частично формируется привычками.", g.CardioRisk),
			NextStep: "Выберите шаг: минус 1 сиг/день или «окна без курения» до обеда.",
			Category: "habits",
		})
	}

	if a.WorkoutsPerWeek <= 1 {
		add(77, 60-s.Activity, model.Recommendation{
			Key:      "workouts_2x",
			Title:    "Минимум эффективности: 2 тренировки/нед",
			Why:      "С 2 тренировками прогресс становится предсказуемым.",
			NextStep: "2× по 35–45 минут: базовые упражнения на всё тело + прогулки в остальные дни.",
			Category: "activity",
		})
	} else if a.WorkoutsPerWeek >= 6 &&
		(s.RecoveryDebt >= 55 || a.SleepHours < 7 || a.StressLevel >= 7) {
		add(73, s.RecoveryDebt-35, model.Recommendation{
			Key:      "deload_week",
			Title:    "Неделя разгрузки",
			Why:      "Много тренировок на фоне сна/стресса часто накапливает долг восстановления.",
			NextStep: "1–2 дня замените на лёгкую активность: 30–45 мин ходьбы/мобилити.",
			Category: "recovery",
		})
	}

	switch a.Goal {
	case model.GoalFatLoss:
		if a.WorkoutsPerWeek >= 4 {
			add(58, 0, model.Recommendation{
				Key:      "steps_goal",
				Title:    "Добавить низкоинтенсивное кардио",
				Why:      "При высокой частоте тренировок шаги/прогулки помогают сжигать калории без перегрузки.",
				NextStep: "Добавьте 20–30 мин ходьбы в дни отдыха или после силовых.",
				Category: "activity",
			})
		} else {
			add(58, 0, model.Recommendation{
				Key:      "steps_goal",
				Title:    "Добавить шаги",
				Why:      "Шаги увеличивают расход энергии без сильной нагрузки на восстановление.",
				NextStep: "Цель на 10 дней: +2000 шагов к текущему уровню (или 7000–9000/день).",
				Category: "activity",
			})
		}
	case model.GoalMassGain:
		if a.WorkoutsPerWeek >= 3 {
			add(60, 0, model.Recommendation{
				Key:      "strength_plan",
				Title:    "Прогрессия нагрузки",
				Why:      "Для набора массы важна прогрессия: постепенно увеличивайте веса/объём.",
				NextStep: "Ведите дневник тренировок: фиксируйте веса и повторы, добавляйте понемногу.",
				Category: "activity",
			})
		} else {
			add(60, 0, model.Recommendation{
				Key:      "strength_plan",
				Title:    "Силовой план с прогрессией",
				Why:      "Для набора массы нужны минимум 3 силовые тренировки в неделю.",
				NextStep: "3×/нед: жим/тяга/присед (вариации) + ведите веса/повторы.",
				Category: "activity",
			})
		}
	}

	if g.Confidence < 70 {
		add(50, 70-g.Confidence, model.Recommendation{
			Key:      "data_check",
			Title:    "Уточнить ответы анкеты",
			Why:      "Есть несостыковки/крайние значения — это снижает точность рекомендаций.",
			NextStep: "Проверьте сон/воду/тренировки и заполните заново — дашборд станет точнее.",
			Category: "meta",
		})
	}

	return out
}

// BuildRecommendations ranks the triggered catalog entries: stable sort
// by weight descending (catalog order breaks ties), dedupe by key, then
// assign 1-based priority ranks. Top3 is a prefix of All, never padded.
func BuildRecommendations(a model.SurveyAnswers, s model.Scores, g model.Gauges) model.Recommendations {
	candidates := buildCandidates(a, s, g)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	seen := make(map[string]bool, len(candidates))
	all := make([]model.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.rec.Key] {
			continue
		}
		seen[c.rec.Key] = true
		c.rec.Priority = len(all) + 1
		all = append(all, c.rec)
	}

	top := all
	if len(all) > 3 {
		top = all[:3]
	}

	return model.Recommendations{Top3: top, All: all}
}
