package insights

import (
	"math"
	"testing"

	"fizikl/internal/model"
)

func buildGaugesFor(a model.SurveyAnswers) (model.Scores, model.Gauges) {
	dq, _ := softChecks(a)
	s := BuildScores(a)
	return s, BuildGauges(a, s, dq)
}

func TestBuildGaugesWorstCase(t *testing.T) {
	_, g := buildGaugesFor(worstCaseAnswers())

	want := model.Gauges{
		HealthIndex:      16,
		ActivityScore:    25,
		RecoveryQuality:  14,
		LifestyleBalance: 11,
		EnergyIndex:      5,
		MetabolicLoad:    86,
		CardioRisk:       72,
		Consistency:      20,
		Readiness:        0,
		Confidence:       68,
	}
	if g != want {
		t.Fatalf("gauges mismatch:\n got %+v\nwant %+v", g, want)
	}
}

func TestBuildGaugesHealthy(t *testing.T) {
	_, g := buildGaugesFor(healthyAnswers())

	want := model.Gauges{
		HealthIndex:      94,
		ActivityScore:    90,
		RecoveryQuality:  94,
		LifestyleBalance: 94,
		EnergyIndex:      97,
		MetabolicLoad:    5,
		CardioRisk:       11,
		Consistency:      90,
		Readiness:        93,
		Confidence:       92,
	}
	if g != want {
		t.Fatalf("gauges mismatch:\n got %+v\nwant %+v", g, want)
	}
}

func TestBuildGaugesMedium(t *testing.T) {
	_, g := buildGaugesFor(mediumAnswers())

	want := model.Gauges{
		HealthIndex:      79,
		ActivityScore:    62,
		RecoveryQuality:  86,
		LifestyleBalance: 78,
		EnergyIndex:      83,
		MetabolicLoad:    20,
		CardioRisk:       17,
		Consistency:      94,
		Readiness:        79,
		Confidence:       92,
	}
	if g != want {
		t.Fatalf("gauges mismatch:\n got %+v\nwant %+v", g, want)
	}
}

// The weight table must keep any in-range input in range: positive
// weights of every row sum to at most 1
func TestGaugeTableWeights(t *testing.T) {
	for _, def := range gaugeDefs {
		sum := 0.0
		for _, term := range def.terms {
			if term.weight > 0 {
				sum += term.weight
			}
		}
		if sum > 1.0+1e-9 {
			t.Errorf("gauge %s positive weights sum to %.4f, must not exceed 1", def.key, sum)
		}
	}
}

func TestGaugeTablePolarity(t *testing.T) {
	inverse := map[string]bool{"metabolic_load": true, "cardio_risk": true}
	for _, def := range gaugeDefs {
		want := model.PolarityDirect
		if inverse[def.key] {
			want = model.PolarityInverse
		}
		if def.polarity != want {
			t.Errorf("gauge %s polarity = %q, want %q", def.key, def.polarity, want)
		}
	}
}

func TestGaugesClampedOverDomain(t *testing.T) {
	levels := []model.ActivityLevel{model.ActivityLow, model.ActivityMedium, model.ActivityHigh, model.ActivityVeryHigh}
	frequencies := []model.FastFoodFrequency{model.FastFoodNever, model.FastFoodSometimes, model.FastFoodVeryOften}

	for _, level := range levels {
		for _, ff := range frequencies {
			for workouts := 0; workouts <= 7; workouts++ {
				for stress := 1; stress <= 10; stress++ {
					for _, smokes := range []bool{false, true} {
						a := model.SurveyAnswers{
							Name:              "x",
							Age:               80 - workouts*8,
							ActivityLevel:     level,
							Goal:              model.GoalHealth,
							WorkoutsPerWeek:   workouts,
							SleepHours:        12 - float64(stress)*0.5,
							StressLevel:       stress,
							WaterLiters:       5 - float64(workouts)*0.5,
							FastFoodFrequency: ff,
							Smokes:            smokes,
						}
						_, g := buildGaugesFor(a)
						for name, v := range map[string]int{
							"health_index": g.HealthIndex, "activity_score": g.ActivityScore,
							"recovery_quality": g.RecoveryQuality, "lifestyle_balance": g.LifestyleBalance,
							"energy_index": g.EnergyIndex, "metabolic_load": g.MetabolicLoad,
							"cardio_risk": g.CardioRisk, "consistency": g.Consistency,
							"readiness": g.Readiness, "confidence": g.Confidence,
						} {
							if v < 0 || v > 100 {
								t.Fatalf("%s out of range for %+v: %d", name, a, v)
							}
						}
					}
				}
			}
		}
	}
}

func TestConfidenceFloor(t *testing.T) {
	a := worstCaseAnswers()
	// Pile on warnings: the floor must hold at 40
	dq := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	if c := scoreConfidence(a, dq); c != 40 {
		t.Fatalf("confidence floor = %d, want 40", c)
	}
}

func TestAgeRiskEndpoints(t *testing.T) {
	if v := ageRisk(18); v != 10 {
		t.Errorf("ageRisk(18) = %d, want 10", v)
	}
	if v := ageRisk(80); v != 70 {
		t.Errorf("ageRisk(80) = %d, want 70", v)
	}
}

func TestHealthIndexMatchesTable(t *testing.T) {
	s, g := buildGaugesFor(mediumAnswers())

	total := 0.20*float64(s.Activity) + 0.20*float64(s.Sleep) + 0.18*float64(s.Stress) +
		0.10*float64(s.Hydration) + 0.18*float64(s.Nutrition) + 0.10*float64(s.Smoking) +
		0.04*float64(s.AgeModifier)
	if want := int(math.Round(total)); g.HealthIndex != want {
		t.Fatalf("health_index = %d, want %d from the weight table", g.HealthIndex, want)
	}
}
