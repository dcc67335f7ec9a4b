package core

import (
	"fmt"
	"time"
)

// dateLayout is the ISO-8601 calendar date form used in the database.
// Lexicographic order of these strings equals chronological order.
const dateLayout = "2006-01-02"

type (
	// Date is a calendar day with no time-of-day component.
	Date struct {
		time.Time
	}

	// Month identifies a calendar year-month.
	Month struct {
		Year  int
		Month time.Month
	}
)

// NewDate creates a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String renders the ISO form stored in the date column.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// CurrentMonth is the Month containing the current wall-clock time.
func CurrentMonth() Month {
	return MonthOf(time.Now())
}

// Bounds returns the first and last calendar day of the month.
func (m Month) Bounds() (Date, Date) {
	first := NewDate(m.Year, m.Month, 1)
	last := Date{Time: first.AddDate(0, 1, -1)}
	return first, last
}

// String renders the YYYY-MM form used in export file names.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
