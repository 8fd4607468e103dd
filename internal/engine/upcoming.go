package engine

import (
	"iter"
	"log/slog"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Planner answers date questions about an address book relative to its Clock.
type Planner struct {
	Clock Clock

	// FormatSummary lets the caller inject localized event titles for Calendar.
	FormatSummary func(name string) string
}

// NewPlanner returns a Planner bound to the wall clock.
func NewPlanner() *Planner {
	return &Planner{Clock: RealClock{}}
}

// Today returns the local calendar date of the clock as UTC midnight.
// Birthdays are calendar days, so all arithmetic happens on midnights in a
// zone without DST.
func (p *Planner) Today() time.Time {
	y, m, d := p.Clock.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Horizon returns the last day included by Upcoming for the given today.
// It is the first Monday strictly after today, so the window spans one to
// seven days depending on the weekday.
func Horizon(today time.Time) time.Time {
	return nextWeekday(today, time.Monday)
}

// Upcoming lazily yields the contacts whose congratulation day falls between
// today and Horizon(today), both inclusive, in address book order.
func (p *Planner) Upcoming(book Records) iter.Seq[UpcomingBirthday] {
	today := p.Today()
	horizon := Horizon(today)

	slog.Debug(config.MsgUpcomingQuery,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyToday, today.Format(config.DateFormatBirthday),
		config.LogKeyHorizon, horizon.Format(config.DateFormatBirthday))

	return func(yield func(UpcomingBirthday) bool) {
		for rec := range book.All() {
			bd, ok := rec.Birthday()
			if !ok {
				continue
			}
			day := CongratulationDay(bd.Date(), today)
			if day.Before(today) || day.After(horizon) {
				continue
			}
			if !yield(UpcomingBirthday{Name: rec.Name(), Date: day.Format(config.DateFormatBirthday)}) {
				return
			}
		}
	}
}

// CongratulationDay returns the next weekday on which a person born on
// birthDate should be congratulated, counting from today.
//
// This year's occurrence is moved off the weekend to the following Monday; if
// the result already lies before today, next year's occurrence is used
// instead. A Feb 29 birthday falls on March 1 in common years (time.Date
// normalization).
func CongratulationDay(birthDate, today time.Time) time.Time {
	day := adjustForWeekend(occurrence(birthDate, today.Year()))
	if day.Before(today) {
		day = adjustForWeekend(occurrence(birthDate, today.Year()+1))
	}
	return day
}

func occurrence(birthDate time.Time, year int) time.Time {
	return time.Date(year, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
}

func adjustForWeekend(day time.Time) time.Time {
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return nextWeekday(day, time.Monday)
	default:
		return day
	}
}

// nextWeekday returns the first date strictly after start that falls on wd.
// The shift is always within [1, 7] days.
func nextWeekday(start time.Time, wd time.Weekday) time.Time {
	ahead := (int(wd) - int(start.Weekday()) + config.DaysPerWeek) % config.DaysPerWeek
	if ahead == 0 {
		ahead = config.DaysPerWeek
	}
	return start.AddDate(0, 0, ahead)
}
