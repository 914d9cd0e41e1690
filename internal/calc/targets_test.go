package calc_test

import (
	"testing"

	"github.com/fitfocus/fitfocus-cli/internal/calc"
	"github.com/fitfocus/fitfocus-cli/internal/model"
)

func baseProfile() model.UserProfile {
	return model.UserProfile{
		Name:           "Rafael",
		WeightKg:       70,
		HeightCm:       170,
		Age:            30,
		Gender:         model.GenderMale,
		Goal:           model.GoalLose,
		ActivityLevel:  model.ActivitySedentary,
		TargetChangeKg: 5,
		DurationWeeks:  8,
	}
}

func TestCalorieTargetAppliesMaleSafetyFloor(t *testing.T) {
	t.Parallel()

	// BMR 1617.5, TDEE 1941, daily adjustment 687.5 -> 1253.5, floored.
	got := calc.CalorieTarget(baseProfile())
	if got != 1400 {
		t.Fatalf("expected floored target 1400, got %d", got)
	}
}

func TestCalorieTargetAppliesFemaleSafetyFloor(t *testing.T) {
	t.Parallel()

	p := baseProfile()
	p.Gender = model.GenderFemale
	p.WeightKg = 50
	p.HeightCm = 155
	p.TargetChangeKg = 10
	p.DurationWeeks = 10

	got := calc.CalorieTarget(p)
	if got != 1200 {
		t.Fatalf("expected floored target 1200, got %d", got)
	}
}

func TestCalorieTargetMaintainIgnoresChangePlan(t *testing.T) {
	t.Parallel()

	p := baseProfile()
	p.Goal = model.GoalMaintain

	got := calc.CalorieTarget(p)
	if got != 1941 {
		t.Fatalf("expected maintenance target 1941, got %d", got)
	}

	// The change plan must not influence a maintenance target.
	p.TargetChangeKg = 20
	p.DurationWeeks = 2
	if again := calc.CalorieTarget(p); again != got {
		t.Fatalf("maintenance target changed with plan fields: %d vs %d", again, got)
	}
}

func TestCalorieTargetFallsBackToMaintenanceWithoutPlan(t *testing.T) {
	t.Parallel()

	p := baseProfile()
	p.TargetChangeKg = 0
	if got := calc.CalorieTarget(p); got != 1941 {
		t.Fatalf("expected maintenance fallback 1941 with zero target change, got %d", got)
	}

	p = baseProfile()
	p.DurationWeeks = 0
	if got := calc.CalorieTarget(p); got != 1941 {
		t.Fatalf("expected maintenance fallback 1941 with zero duration, got %d", got)
	}
}

func TestCalorieTargetGainAddsSurplus(t *testing.T) {
	t.Parallel()

	p := baseProfile()
	p.Goal = model.GoalGain

	// 1941 + 687.5 = 2628.5 -> 2629 (math.Round half away from zero).
	if got := calc.CalorieTarget(p); got != 2629 {
		t.Fatalf("expected surplus target 2629, got %d", got)
	}
}

func TestTDEEUnknownActivityDefaultsToSedentary(t *testing.T) {
	t.Parallel()

	p := baseProfile()
	p.ActivityLevel = model.ActivityLevel("astronaut")
	p.Goal = model.GoalMaintain

	if got := calc.CalorieTarget(p); got != 1941 {
		t.Fatalf("expected sedentary fallback 1941, got %d", got)
	}
}

func TestWaterTarget(t *testing.T) {
	t.Parallel()

	p := baseProfile()
	if got := calc.WaterTarget(p); got != 2450 {
		t.Fatalf("expected water target 2450 ml for 70 kg, got %d", got)
	}

	p.WeightKg = 72.5
	// 72.5 * 35 = 2537.5, rounded half away from zero.
	if got := calc.WaterTarget(p); got != 2538 {
		t.Fatalf("expected water target 2538 ml, got %d", got)
	}
}

func TestTotalConsumed(t *testing.T) {
	t.Parallel()

	stats := model.DailyStats{Foods: []model.LoggedFood{
		{Calories: 320},
		{Calories: 96},
		{Calories: 55},
	}}
	if got := calc.TotalConsumed(stats); got != 471 {
		t.Fatalf("expected total 471, got %d", got)
	}
	if got := calc.TotalConsumed(model.DailyStats{}); got != 0 {
		t.Fatalf("expected empty total 0, got %d", got)
	}
}
