package training

import (
	"errors"
	"fmt"

	"fitness-tracker/internal/models"
)

// Workout type codes sent by the sensor unit.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

var (
	// ErrInvalidWorkoutCode is returned for codes other than SWM, RUN and WLK.
	ErrInvalidWorkoutCode = errors.New("invalid workout code")
	// ErrArityMismatch is returned when the data length does not match the
	// field count of the workout type.
	ErrArityMismatch = errors.New("data arity mismatch")
)

type variant struct {
	name   string
	fields []string
	build  func(data []float64) Workout
}

var variants = map[string]variant{
	CodeSwimming: {
		name:   "Swimming",
		fields: []string{"action", "duration", "weight", "pool_length", "lap_count"},
		build: func(d []float64) Workout {
			return NewSwimming(int(d[0]), d[1], d[2], d[3], d[4])
		},
	},
	CodeRunning: {
		name:   "Running",
		fields: []string{"action", "duration", "weight"},
		build: func(d []float64) Workout {
			return NewRunning(int(d[0]), d[1], d[2])
		},
	},
	CodeWalking: {
		name:   "SportsWalking",
		fields: []string{"action", "duration", "weight", "height"},
		build: func(d []float64) Workout {
			return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
		},
	},
}

// codeOrder keeps listings stable
var codeOrder = []string{CodeSwimming, CodeRunning, CodeWalking}

// Resolve builds the workout identified by code from positional sensor data.
// Only the code and the number of values are checked; the values themselves
// are passed to the formulas as is.
func Resolve(code string, data []float64) (Workout, error) {
	v, ok := variants[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWorkoutCode, code)
	}
	if len(data) != len(v.fields) {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrArityMismatch, code, len(v.fields), len(data))
	}
	return v.build(data), nil
}

// ResolvePackage is Resolve for a parsed package.
func ResolvePackage(p models.WorkoutPackage) (Workout, error) {
	return Resolve(p.WorkoutType, p.Data)
}

// Codes returns the recognized workout codes.
func Codes() []string {
	out := make([]string, len(codeOrder))
	copy(out, codeOrder)
	return out
}

// Arity returns the number of data values expected for code.
func Arity(code string) (int, error) {
	fields, err := Fields(code)
	if err != nil {
		return 0, err
	}
	return len(fields), nil
}

// Fields returns the names of the data values expected for code, in order.
func Fields(code string) ([]string, error) {
	v, ok := variants[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWorkoutCode, code)
	}
	fields := make([]string, len(v.fields))
	copy(fields, v.fields)
	return fields, nil
}

// Types describes every recognized workout type.
func Types() []models.WorkoutType {
	types := make([]models.WorkoutType, 0, len(codeOrder))
	for _, code := range codeOrder {
		v := variants[code]
		fields := make([]string, len(v.fields))
		copy(fields, v.fields)
		types = append(types, models.WorkoutType{Code: code, Name: v.name, Fields: fields})
	}
	return types
}
