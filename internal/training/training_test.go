package training

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwimmingScenario(t *testing.T) {
	s := NewSwimming(720, 1, 80, 25, 40)

	require.InDelta(t, 0.9936, s.Distance(), 1e-9)
	require.InDelta(t, 1.0, s.MeanSpeed(), 1e-9)
	require.InDelta(t, 336.0, s.SpentCalories(), 1e-9)
}

func TestRunningScenario(t *testing.T) {
	r := NewRunning(15000, 1, 75)

	require.InDelta(t, 9.75, r.Distance(), 1e-9)
	require.InDelta(t, 9.75, r.MeanSpeed(), 1e-9)
	require.InDelta(t, 797.805, r.SpentCalories(), 1e-9)
}

func TestSportsWalkingScenario(t *testing.T) {
	w := NewSportsWalking(9000, 1, 75, 180)

	require.InDelta(t, 5.85, w.Distance(), 1e-9)
	require.InDelta(t, 5.85, w.MeanSpeed(), 1e-9)
	require.InDelta(t, 349.2517475, w.SpentCalories(), 1e-6)
}

func TestDistanceIsLinearInAction(t *testing.T) {
	pairs := []struct {
		name   string
		single Workout
		double Workout
	}{
		{"running", NewRunning(1000, 1, 70), NewRunning(2000, 1, 70)},
		{"walking", NewSportsWalking(1000, 1, 70, 170), NewSportsWalking(2000, 1, 70, 170)},
		{"swimming", NewSwimming(1000, 1, 70, 25, 10), NewSwimming(2000, 1, 70, 25, 10)},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			require.InDelta(t, 2*p.single.Distance(), p.double.Distance(), 1e-9)
		})
	}
}

func TestSwimmingSpeedIndependentOfDistance(t *testing.T) {
	short := NewSwimming(720, 1, 80, 25, 40)
	long := NewSwimming(720, 1, 80, 50, 40)

	require.Equal(t, short.Distance(), long.Distance())
	require.InDelta(t, 2*short.MeanSpeed(), long.MeanSpeed(), 1e-9)

	moreStrokes := NewSwimming(1440, 1, 80, 25, 40)
	require.Equal(t, short.MeanSpeed(), moreStrokes.MeanSpeed())
	require.NotEqual(t, short.Distance(), moreStrokes.Distance())
}

func TestSpentCaloriesIsIdempotent(t *testing.T) {
	for _, w := range []Workout{
		NewRunning(15000, 1, 75),
		NewSportsWalking(9000, 1, 75, 180),
		NewSwimming(720, 1, 80, 25, 40),
	} {
		require.Equal(t, w.SpentCalories(), w.SpentCalories(), w.Name())
		require.Equal(t, w.Summary(), w.Summary(), w.Name())
	}
}

func TestSummaryUsesVariantFormulas(t *testing.T) {
	s := NewSwimming(720, 1.5, 80, 25, 40)
	summary := s.Summary()

	require.Equal(t, "Swimming", summary.TrainingType)
	require.Equal(t, 1.5, summary.Duration)
	require.Equal(t, s.Distance(), summary.Distance)
	require.Equal(t, s.MeanSpeed(), summary.Speed)
	require.Equal(t, s.SpentCalories(), summary.Calories)
}

func TestDegenerateInputsDoNotPanic(t *testing.T) {
	r := NewRunning(1000, 0, 70)
	require.True(t, math.IsInf(r.MeanSpeed(), 1))

	w := NewSportsWalking(1000, 1, 70, 0)
	require.True(t, math.IsInf(w.SpentCalories(), 1))

	s := NewSwimming(0, 0, 70, 0, 0)
	require.True(t, math.IsNaN(s.MeanSpeed()))
}
