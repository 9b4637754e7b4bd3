package training

import (
	"errors"
	"fmt"
	"math"

	"fitness-tracker/internal/models"

	"github.com/google/uuid"
)

const summaryFormat = "Training type %s; Duration: %.3f h.; Distance: %.3f km; " +
	"Avg. speed: %.3f km/h; Calories burned: %.3f."

// ErrNonFiniteMetric is returned by CheckFinite when a metric is +Inf or NaN.
var ErrNonFiniteMetric = errors.New("non-finite metric")

// CheckFinite reports the first metric of s that cannot be represented as a
// finite number. The formulas produce such values for zero durations or
// heights, or when a tiny duration overflows the speed.
func CheckFinite(s models.Summary) error {
	metrics := []struct {
		name  string
		value float64
	}{
		{"duration", s.Duration},
		{"distance", s.Distance},
		{"speed", s.Speed},
		{"calories", s.Calories},
	}
	for _, m := range metrics {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrNonFiniteMetric, m.name, m.value)
		}
	}
	return nil
}

// FormatSummary renders s as a single human readable line
func FormatSummary(s models.Summary) string {
	return fmt.Sprintf(summaryFormat, s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}

// NewReport computes the summary of w and wraps it with a fresh report ID.
func NewReport(code string, w Workout) models.Report {
	s := w.Summary()
	return models.Report{
		ID:          uuid.NewString(),
		WorkoutType: code,
		Summary:     s,
		Message:     FormatSummary(s),
	}
}
