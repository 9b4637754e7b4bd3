package training

import (
	"testing"

	"fitness-tracker/internal/models"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownCodes(t *testing.T) {
	cases := []struct {
		code string
		data []float64
		want Workout
	}{
		{CodeSwimming, []float64{720, 1, 80, 25, 40}, NewSwimming(720, 1, 80, 25, 40)},
		{CodeRunning, []float64{15000, 1, 75}, NewRunning(15000, 1, 75)},
		{CodeWalking, []float64{9000, 1, 75, 180}, NewSportsWalking(9000, 1, 75, 180)},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			w, err := Resolve(tc.code, tc.data)
			require.NoError(t, err)
			require.IsType(t, tc.want, w)
			require.Equal(t, tc.want, w)
		})
	}
}

func TestResolveInvalidCode(t *testing.T) {
	w, err := Resolve("XYZ", []float64{1, 1, 1})
	require.ErrorIs(t, err, ErrInvalidWorkoutCode)
	require.Nil(t, w)

	_, err = Resolve("run", []float64{1, 1, 1})
	require.ErrorIs(t, err, ErrInvalidWorkoutCode)
}

func TestResolveArityMismatch(t *testing.T) {
	_, err := Resolve(CodeRunning, []float64{15000, 1, 75, 180})
	require.ErrorIs(t, err, ErrArityMismatch)

	_, err = Resolve(CodeWalking, []float64{9000, 1, 75})
	require.ErrorIs(t, err, ErrArityMismatch)

	_, err = Resolve(CodeSwimming, nil)
	require.ErrorIs(t, err, ErrArityMismatch)
}

func TestResolveTruncatesAction(t *testing.T) {
	w, err := ResolvePackage(models.WorkoutPackage{WorkoutType: CodeRunning, Data: []float64{1000.9, 1, 70}})
	require.NoError(t, err)
	require.Equal(t, 1000, w.(Running).Action)
}

func TestArityAndTypes(t *testing.T) {
	for code, want := range map[string]int{CodeRunning: 3, CodeWalking: 4, CodeSwimming: 5} {
		got, err := Arity(code)
		require.NoError(t, err)
		require.Equal(t, want, got, code)
	}

	_, err := Arity("BIKE")
	require.ErrorIs(t, err, ErrInvalidWorkoutCode)

	require.Equal(t, []string{"SWM", "RUN", "WLK"}, Codes())

	types := Types()
	require.Len(t, types, 3)
	require.Equal(t, "SportsWalking", types[2].Name)
	require.Equal(t, []string{"action", "duration", "weight", "height"}, types[2].Fields)
}

func TestFields(t *testing.T) {
	fields, err := Fields(CodeSwimming)
	require.NoError(t, err)
	require.Equal(t, []string{"action", "duration", "weight", "pool_length", "lap_count"}, fields)

	fields[0] = "changed"
	again, _ := Fields(CodeSwimming)
	require.Equal(t, "action", again[0])

	_, err = Fields("XYZ")
	require.ErrorIs(t, err, ErrInvalidWorkoutCode)
}
