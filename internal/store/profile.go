package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fitfocus/fitfocus-cli/internal/model"
)

// ProfileForm carries the raw onboarding fields before type coercion.
// All values arrive as strings, exactly as a form would submit them.
type ProfileForm struct {
	Name           string
	Weight         string
	Height         string
	Age            string
	Gender         string
	Goal           string
	ActivityLevel  string
	TargetChangeKg string
	DurationWeeks  string
}

const defaultDurationWeeks = 4

// CreateProfile parses and validates form, stores the result as the
// active profile, and persists. On validation failure nothing is
// mutated. DurationWeeks defaults to 4 when absent or zero,
// TargetChangeKg to 0, matching the onboarding form's behavior.
func (s *Store) CreateProfile(form ProfileForm) (model.UserProfile, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return model.UserProfile{}, invalidField("name", "is required")
	}
	weight, err := parsePositiveFloat("weight", form.Weight)
	if err != nil {
		return model.UserProfile{}, err
	}
	height, err := parsePositiveFloat("height", form.Height)
	if err != nil {
		return model.UserProfile{}, err
	}
	age, err := parsePositiveInt("age", form.Age)
	if err != nil {
		return model.UserProfile{}, err
	}

	gender := model.Gender(strings.TrimSpace(form.Gender))
	if gender != model.GenderMale && gender != model.GenderFemale {
		return model.UserProfile{}, invalidField("gender", "must be male or female")
	}
	goal := model.Goal(strings.TrimSpace(form.Goal))
	if goal != model.GoalLose && goal != model.GoalMaintain && goal != model.GoalGain {
		return model.UserProfile{}, invalidField("goal", "must be lose, maintain, or gain")
	}
	activity := model.ActivityLevel(strings.TrimSpace(form.ActivityLevel))
	switch activity {
	case model.ActivitySedentary, model.ActivityLight, model.ActivityModerate,
		model.ActivityActive, model.ActivityVeryActive:
	default:
		return model.UserProfile{}, invalidField("activity level",
			"must be sedentary, light, moderate, active, or very_active")
	}

	targetChange, err := parseOptionalNonNegativeFloat("target change", form.TargetChangeKg)
	if err != nil {
		return model.UserProfile{}, err
	}
	duration, err := parseOptionalNonNegativeFloat("duration", form.DurationWeeks)
	if err != nil {
		return model.UserProfile{}, err
	}
	if duration == 0 {
		duration = defaultDurationWeeks
	}

	profile := model.UserProfile{
		Name:           name,
		WeightKg:       weight,
		HeightCm:       height,
		Age:            age,
		Gender:         gender,
		Goal:           goal,
		ActivityLevel:  activity,
		TargetChangeKg: targetChange,
		DurationWeeks:  duration,
	}
	prev := s.profile
	s.profile = &profile
	if err := s.persist(); err != nil {
		s.profile = prev
		return model.UserProfile{}, err
	}
	return profile, nil
}

func parsePositiveFloat(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, invalidField(field, "is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidField(field, fmt.Sprintf("%q is not a number", raw))
	}
	if v <= 0 {
		return 0, invalidField(field, "must be > 0")
	}
	return v, nil
}

func parsePositiveInt(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, invalidField(field, "is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidField(field, fmt.Sprintf("%q is not a whole number", raw))
	}
	if v <= 0 {
		return 0, invalidField(field, "must be > 0")
	}
	return v, nil
}

func parseOptionalNonNegativeFloat(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidField(field, fmt.Sprintf("%q is not a number", raw))
	}
	if v < 0 {
		return 0, invalidField(field, "must be >= 0")
	}
	return v, nil
}
