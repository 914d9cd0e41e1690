package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserProfile is created once at onboarding and replaced wholesale; it is
// never partially mutated afterwards. JSON tags match the persisted
// snapshot shape.
type UserProfile struct {
	Name          string        `json:"name"`
	WeightKg      float64       `json:"weight"`
	HeightCm      float64       `json:"height"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Goal          Goal          `json:"goal"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	// TargetChangeKg and DurationWeeks only apply when Goal is lose or
	// gain; zero values mean "no deficit/surplus plan".
	TargetChangeKg float64 `json:"targetChangeKg"`
	DurationWeeks  float64 `json:"durationWeeks"`
}

type FoodItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Unit     string `json:"unit"`
}

// LoggedFood denormalizes name and calories at log time: later edits to a
// food item never retroactively change entries already logged.
type LoggedFood struct {
	ID        string `json:"id"`
	FoodID    string `json:"foodId"`
	Name      string `json:"name"`
	Calories  int    `json:"calories"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}

// DailyStats is the single mutable daily record. Foods are kept newest
// first. CompletedExercises is part of the persisted shape but no
// operation populates it yet; reserved.
type DailyStats struct {
	WaterDrank         int          `json:"waterDrank"` // milliliters, never negative
	Foods              []LoggedFood `json:"foods"`
	CompletedExercises []string     `json:"completedExercises"`
}

type CustomExercise struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Sets  string `json:"sets"`
	Reps  string `json:"reps"`
	Notes string `json:"notes,omitempty"`
}
