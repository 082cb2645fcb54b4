package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWeek is returned when a (year, week) pair does not exist in the ISO calendar
var ErrInvalidWeek = errors.New("domain: invalid ISO week")

// WeekRef identifies one ISO-8601 calendar week
type WeekRef struct {
	Year int
	Week int
}

// Validate checks the week number against the actual ISO week count of the year (52 or 53)
func (w WeekRef) Validate() error {
	if w.Year < 2000 || w.Year > 2200 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidWeek, w.Year)
	}
	if w.Week < 1 || w.Week > ISOWeeksInYear(w.Year) {
		return fmt.Errorf("%w: year %d has %d weeks, got week %d",
			ErrInvalidWeek, w.Year, ISOWeeksInYear(w.Year), w.Week)
	}
	return nil
}

// Monday returns the ISO Monday of the week (UTC, midnight)
func (w WeekRef) Monday() time.Time {
	// 4 января всегда попадает в первую ISO-неделю года
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	isoMonday := jan4.AddDate(0, 0, -(int(jan4.Weekday())+6)%7)
	return isoMonday.AddDate(0, 0, (w.Week-1)*7)
}

// DateOf resolves the calendar date of a weekday within the week
func (w WeekRef) DateOf(day Weekday) time.Time {
	return w.Monday().AddDate(0, 0, day.Offset())
}

// String renders the week as "2025-W10"
func (w WeekRef) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Week)
}

// ISOWeeksInYear returns the number of ISO weeks in the year (52 or 53)
// December 28th always belongs to the last ISO week of its year
func ISOWeeksInYear(year int) int {
	dec28 := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC)
	_, week := dec28.ISOWeek()
	return week
}
