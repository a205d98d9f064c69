// Package insights transforms validated survey answers into a full
// analytics summary: sub-scores, composite gauges, chart series, text
// insights, alerts and ranked recommendations.
//
// The pipeline is a single pass — Validate -> BuildScores -> BuildGauges
// -> {BuildCharts, BuildFlags, text} -> BuildRecommendations — with no
// shared state, so Generate is safe for concurrent use.
package insights

import (
	"fizikl/internal/model"
	"time"
)

// Version tags every generated summary with the rule-set it was produced
// under. Stored summaries are never reinterpreted under newer rules.
const Version = "insights.v3"

// Generate runs the full pipeline. The only possible error is a
// *model.ValidationError from the input stage; every later stage is a
// total function over validated input. Output is deterministic apart
// from GeneratedAt.
func Generate(raw model.SurveyAnswers) (*model.Summary, error) {
	a, err := Validate(raw)
	if err != nil {
		return nil, err
	}

	dq, notes := softChecks(a)

	scores := BuildScores(a)
	gauges := BuildGauges(a, scores, dq)

	charts := BuildCharts(a, scores, gauges)
	radar := BuildRadar(gauges)
	flags := BuildFlags(a, scores, gauges, dq)
	strengths, improvements := buildStrengthsAndImprovements(a, scores)
	recommendations := BuildRecommendations(a, scores, gauges)

	insight := model.Insight{
		SummaryText:      buildSummaryText(a.Name, gauges, strengths, improvements),
		Strengths:        strengths,
		ImprovementAreas: improvements,
		PersonaTag:       personaTag(gauges, scores.RecoveryDebt),
	}

	// Health index weights restated from the gauge table for auditing
	healthWeights := make(map[string]int)
	for _, t := range gaugeDefByKey("health_index").terms {
		healthWeights[t.basis] = iround(t.weight * 100)
	}

	return &model.Summary{
		User:            model.UserInfo{Name: a.Name, Age: a.Age, Goal: a.Goal},
		Gauges:          gauges,
		Scores:          scores,
		Radar:           radar,
		Charts:          charts,
		Insight:         insight,
		Recommendations: recommendations,
		Flags:           flags,
		Debug: model.Debug{
			SubScores: map[string]int{
				"activity":      scores.Activity,
				"sleep":         scores.Sleep,
				"stress":        scores.Stress,
				"hydration":     scores.Hydration,
				"nutrition":     scores.Nutrition,
				"smoking":       scores.Smoking,
				"age":           scores.AgeModifier,
				"neat":          scores.MovementNEAT,
				"habit_score":   scores.HabitScore,
				"recovery_debt": scores.RecoveryDebt,
			},
			Weights: healthWeights,
			Notes:   notes,
		},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     Version,
	}, nil
}
