package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeStringValidate(t *testing.T) {
	t.Parallel()

	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, s := range valid {
		require.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "24:00", "12:60", "12:00:00", "noon"}
	for _, s := range invalid {
		require.ErrorIs(t, TimeString(s).Validate(), ErrInvalidTimeString, s)
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	t.Parallel()

	ts, err := NewTimeStringFromString("15:30")
	require.NoError(t, err)
	require.Equal(t, TimeString("15:30"), ts)

	_, err = NewTimeStringFromString("25:00")
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringAddMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      TimeString
		minutes int
		want    TimeString
	}{
		{"09:30", 30, "10:00"},
		{"09:30", 90, "11:00"},
		{"23:30", 45, "00:15"}, // переход через полночь
		{"12:00", 0, "12:00"},
		{"12:00", -15, "11:45"},
	}

	for _, tt := range tests {
		got, err := tt.in.AddMinutes(tt.minutes)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := TimeString("bad").AddMinutes(10)
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringOrdering(t *testing.T) {
	t.Parallel()

	require.True(t, TimeString("09:30").IsBefore("12:00"))
	require.True(t, TimeString("15:30").IsAfter("12:00"))
	require.False(t, TimeString("12:00").IsBefore("12:00"))
	require.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestTimeStringScan(t *testing.T) {
	t.Parallel()

	var ts TimeString

	// Postgres отдаёт TIME с секундами
	require.NoError(t, ts.Scan("09:30:00"))
	require.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("15:30:00")))
	require.Equal(t, TimeString("15:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 5, 11, 12, 0, 0, 0, time.UTC)))
	require.Equal(t, TimeString("12:00"), ts)

	require.NoError(t, ts.Scan(nil))
	require.True(t, ts.IsZero())

	require.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	t.Parallel()

	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	require.Equal(t, "09:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	require.Nil(t, v)

	_, err = TimeString("bad").Value()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}
