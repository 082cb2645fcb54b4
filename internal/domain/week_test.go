package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestISOWeeksInYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want int
	}{
		{2020, 53},
		{2021, 52},
		{2024, 52},
		{2025, 52},
		{2026, 53},
		{2027, 52},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ISOWeeksInYear(tt.year), "year %d", tt.year)
	}
}

func TestWeekRefValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, WeekRef{Year: 2026, Week: 1}.Validate())
	require.NoError(t, WeekRef{Year: 2026, Week: 53}.Validate())
	require.NoError(t, WeekRef{Year: 2020, Week: 53}.Validate())

	require.ErrorIs(t, WeekRef{Year: 2026, Week: 0}.Validate(), ErrInvalidWeek)
	require.ErrorIs(t, WeekRef{Year: 2026, Week: 54}.Validate(), ErrInvalidWeek)
	// 2025 only has 52 weeks
	require.ErrorIs(t, WeekRef{Year: 2025, Week: 53}.Validate(), ErrInvalidWeek)
	require.ErrorIs(t, WeekRef{Year: 1999, Week: 1}.Validate(), ErrInvalidWeek)
	require.ErrorIs(t, WeekRef{Year: 2350, Week: 1}.Validate(), ErrInvalidWeek)
}

func TestWeekRefMonday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		week WeekRef
		want string
	}{
		// 2026-W01 starts in the old calendar year
		{WeekRef{Year: 2026, Week: 1}, "2025-12-29"},
		{WeekRef{Year: 2026, Week: 2}, "2026-01-05"},
		{WeekRef{Year: 2025, Week: 1}, "2024-12-30"},
		{WeekRef{Year: 2024, Week: 1}, "2024-01-01"},
		{WeekRef{Year: 2020, Week: 53}, "2020-12-28"},
	}
	for _, tt := range tests {
		monday := tt.week.Monday()
		require.Equal(t, tt.want, monday.Format(DateFormat), tt.week.String())
		require.Equal(t, time.Monday, monday.Weekday(), tt.week.String())
	}
}

func TestWeekRefDateOf(t *testing.T) {
	t.Parallel()

	week := WeekRef{Year: 2026, Week: 10}
	require.Equal(t, "2026-03-02", week.DateOf(Monday).Format(DateFormat))
	require.Equal(t, "2026-03-04", week.DateOf(Wednesday).Format(DateFormat))
	require.Equal(t, "2026-03-06", week.DateOf(Friday).Format(DateFormat))
}

func TestWeekRefString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2026-W05", WeekRef{Year: 2026, Week: 5}.String())
	require.Equal(t, "2026-W35", WeekRef{Year: 2026, Week: 35}.String())
}
