package models

// WorkoutPackage is a raw sensor package: a workout type code plus the
// positional readings for that workout type.
type WorkoutPackage struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

// Summary holds the metrics derived from a single workout
type Summary struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"` // hours
	Distance     float64 `json:"distance"` // km
	Speed        float64 `json:"speed"`    // km/h
	Calories     float64 `json:"calories"` // kcal
}

// Report is a computed summary as returned by the CLI and the API
type Report struct {
	ID          string  `json:"id"`
	WorkoutType string  `json:"workout_type"`
	Summary     Summary `json:"summary"`
	Message     string  `json:"message"`
}

// WorkoutType describes a recognized workout code and its data layout
type WorkoutType struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// BatchResult is the outcome of processing a list of packages
type BatchResult struct {
	Reports []Report     `json:"reports"`
	Errors  []BatchError `json:"errors,omitempty"`
}

// BatchError reports a package that could not be processed
type BatchError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}
