// Package training computes distance, speed and calories for the supported
// workout types and renders the result as a one-line summary.
package training

import "fitness-tracker/internal/models"

const (
	mInKm     = 1000
	minInHour = 60

	// stepLength is the distance in meters covered by one step.
	stepLength = 0.65
	// strokeLength is the distance in meters covered by one swimming stroke.
	strokeLength = 1.38
)

// Workout is the capability set shared by every workout type
type Workout interface {
	// Name is the display name used in summaries.
	Name() string
	// Distance returns the distance in kilometers.
	Distance() float64
	// MeanSpeed returns the average speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the calories burned in kcal.
	SpentCalories() float64
	// Summary collects all metrics into a summary value.
	Summary() models.Summary
}

// training holds the readings common to every workout type. No validation is
// done: a zero duration yields +Inf or NaN rather than an error.
type training struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg

	lenStep float64
}

// Distance returns action × step length in kilometers.
func (t training) Distance() float64 {
	return float64(t.Action) * t.lenStep / mInKm
}

// MeanSpeed returns the generic distance divided by duration.
func (t training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

func buildSummary(w Workout, duration float64) models.Summary {
	return models.Summary{
		TrainingType: w.Name(),
		Duration:     duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     w.SpentCalories(),
	}
}

const (
	runningCalSpeedMultiplier = 18
	runningCalSpeedShift      = 1.79
)

// Running is a run measured in steps
type Running struct {
	training
}

// NewRunning creates a running workout
func NewRunning(action int, duration, weight float64) Running {
	return Running{training{Action: action, Duration: duration, Weight: weight, lenStep: stepLength}}
}

func (r Running) Name() string { return "Running" }

func (r Running) SpentCalories() float64 {
	return (runningCalSpeedMultiplier*r.MeanSpeed() + runningCalSpeedShift) *
		r.Weight / mInKm * r.Duration * minInHour
}

func (r Running) Summary() models.Summary {
	return buildSummary(r, r.Duration)
}

const (
	walkingCalWeightMultiplier = 0.035
	walkingCalHeightMultiplier = 0.029

	// kmhInMs is 1000/3600 rounded to three places.
	kmhInMs = 0.278
	cmInM   = 100
)

// SportsWalking is a walk measured in steps; Height is in centimeters
type SportsWalking struct {
	training
	Height float64
}

// NewSportsWalking creates a walking workout
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		training: training{Action: action, Duration: duration, Weight: weight, lenStep: stepLength},
		Height:   height,
	}
}

func (w SportsWalking) Name() string { return "SportsWalking" }

// SpentCalories divides by height; a zero height yields +Inf or NaN.
func (w SportsWalking) SpentCalories() float64 {
	speedMs := w.MeanSpeed() * kmhInMs
	return (walkingCalWeightMultiplier*w.Weight +
		speedMs*speedMs/(w.Height/cmInM)*walkingCalHeightMultiplier*w.Weight) *
		(w.Duration * minInHour)
}

func (w SportsWalking) Summary() models.Summary {
	return buildSummary(w, w.Duration)
}

const (
	swimmingCalSpeedShift       = 1.1
	swimmingCalWeightMultiplier = 2
)

// Swimming is a pool swim measured in strokes. PoolLength is in meters.
//
// Distance keeps the stroke based formula while MeanSpeed is computed from
// pool length and lap count, so the two are not derived from each other.
type Swimming struct {
	training
	PoolLength float64
	LapCount   float64
}

// NewSwimming creates a swimming workout
func NewSwimming(action int, duration, weight, poolLength, lapCount float64) Swimming {
	return Swimming{
		training:   training{Action: action, Duration: duration, Weight: weight, lenStep: strokeLength},
		PoolLength: poolLength,
		LapCount:   lapCount,
	}
}

func (s Swimming) Name() string { return "Swimming" }

// MeanSpeed is the lap distance divided by duration.
func (s Swimming) MeanSpeed() float64 {
	return s.PoolLength * s.LapCount / mInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCalSpeedShift) * swimmingCalWeightMultiplier * s.Weight * s.Duration
}

func (s Swimming) Summary() models.Summary {
	return buildSummary(s, s.Duration)
}
