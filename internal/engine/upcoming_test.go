package engine_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/contacts"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing using `testify/mock`.
type MockClock struct {
	mock.Mock
}

func (m *MockClock) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}

func newPlanner(t *testing.T, now time.Time) (*engine.Planner, *MockClock) {
	t.Helper()
	clock := new(MockClock)
	clock.On("Now").Return(now)
	return &engine.Planner{Clock: clock}, clock
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bookWith(t *testing.T, birthdays map[string]string, order ...string) *contacts.AddressBook {
	t.Helper()
	book := contacts.NewAddressBook()
	for _, name := range order {
		rec := contacts.NewRecord(name)
		if bd := birthdays[name]; bd != "" {
			require.NoError(t, rec.AddBirthday(bd))
		}
		book.Add(rec)
	}
	return book
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestHorizon(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		{"Monday reaches next Monday", date(2024, 6, 10), date(2024, 6, 17)},
		{"Wednesday", date(2024, 6, 12), date(2024, 6, 17)},
		{"Saturday", date(2024, 6, 15), date(2024, 6, 17)},
		{"Sunday is a one day window", date(2024, 6, 16), date(2024, 6, 17)},
		{"Across the year end", date(2024, 12, 31), date(2025, 1, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Horizon(tt.today))
		})
	}
}

func TestCongratulationDay(t *testing.T) {
	tests := []struct {
		name      string
		birthDate time.Time
		today     time.Time
		want      time.Time
	}{
		{
			name:      "Weekday this year",
			birthDate: date(1990, 6, 14),
			today:     date(2024, 6, 10),
			want:      date(2024, 6, 14),
		},
		{
			name:      "Saturday moves to Monday",
			birthDate: date(1990, 6, 15),
			today:     date(2024, 6, 10),
			want:      date(2024, 6, 17),
		},
		{
			name:      "Sunday moves to Monday",
			birthDate: date(1990, 6, 16),
			today:     date(2024, 6, 10),
			want:      date(2024, 6, 17),
		},
		{
			name:      "Birthday today",
			birthDate: date(1990, 6, 10),
			today:     date(2024, 6, 10),
			want:      date(2024, 6, 10),
		},
		{
			name:      "Passed birthday uses next year",
			birthDate: date(1990, 1, 1),
			today:     date(2024, 6, 10),
			want:      date(2025, 1, 1),
		},
		{
			name:      "Weekend birthday whose Monday is still ahead",
			birthDate: date(1990, 6, 8), // Saturday 2024-06-08
			today:     date(2024, 6, 10),
			want:      date(2024, 6, 10),
		},
		{
			name:      "Next year occurrence is weekend adjusted too",
			birthDate: date(1990, 1, 4), // Saturday 2025-01-04
			today:     date(2024, 6, 10),
			want:      date(2025, 1, 6),
		},
		{
			name:      "Leap day in a leap year",
			birthDate: date(2000, 2, 29),
			today:     date(2024, 1, 10),
			want:      date(2024, 2, 29),
		},
		{
			name:      "Leap day in a common year falls on March 1",
			birthDate: date(2000, 2, 29),
			today:     date(2027, 1, 10),
			want:      date(2027, 3, 1),
		},
		{
			name:      "Leap day shifted to March 1 on a Saturday moves to Monday",
			birthDate: date(2000, 2, 29),
			today:     date(2025, 1, 10),
			want:      date(2025, 3, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.CongratulationDay(tt.birthDate, tt.today))
		})
	}
}

func TestUpcoming_WeekScenario(t *testing.T) {
	// Monday 2024-06-10; the window closes on Monday 2024-06-17.
	planner, clock := newPlanner(t, time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC))
	book := bookWith(t, map[string]string{
		"Friday":   "14.06.1990",
		"Saturday": "15.06.1990",
		"Late":     "20.06.1990",
		"Past":     "01.01.1990",
		"Today":    "10.06.1985",
	}, "Friday", "NoBirthday", "Saturday", "Late", "Past", "Today")

	got := slices.Collect(planner.Upcoming(book))

	want := []engine.UpcomingBirthday{
		{Name: "Friday", Date: "14.06.2024"},
		{Name: "Saturday", Date: "17.06.2024"},
		{Name: "Today", Date: "10.06.2024"},
	}
	assert.Equal(t, want, got)
	clock.AssertExpectations(t)
}

func TestUpcoming_SundayWindowIsOneDay(t *testing.T) {
	planner, _ := newPlanner(t, time.Date(2024, 6, 16, 12, 0, 0, 0, time.UTC))
	book := bookWith(t, map[string]string{
		"Monday":  "17.06.1990",
		"Tuesday": "18.06.1990",
	}, "Monday", "Tuesday")

	got := slices.Collect(planner.Upcoming(book))

	assert.Equal(t, []engine.UpcomingBirthday{{Name: "Monday", Date: "17.06.2024"}}, got)
}

func TestUpcoming_AcrossYearEnd(t *testing.T) {
	// Monday 2024-12-30, window ends Monday 2025-01-06.
	planner, _ := newPlanner(t, time.Date(2024, 12, 30, 8, 0, 0, 0, time.UTC))
	book := bookWith(t, map[string]string{
		"NewYear": "01.01.1990",
		"Eve":     "31.12.1990",
		"Past":    "27.12.1990",
	}, "NewYear", "Eve", "Past")

	got := slices.Collect(planner.Upcoming(book))

	assert.Equal(t, []engine.UpcomingBirthday{
		{Name: "NewYear", Date: "01.01.2025"},
		{Name: "Eve", Date: "31.12.2024"},
	}, got)
}

func TestUpcoming_LeapDayInCommonYear(t *testing.T) {
	// Monday 2027-02-22; Feb 29 becomes Monday 2027-03-01, the horizon itself.
	planner, _ := newPlanner(t, time.Date(2027, 2, 22, 8, 0, 0, 0, time.UTC))
	book := bookWith(t, map[string]string{"Leap": "29.02.2000"}, "Leap")

	got := slices.Collect(planner.Upcoming(book))

	assert.Equal(t, []engine.UpcomingBirthday{{Name: "Leap", Date: "01.03.2027"}}, got)
}

func TestUpcoming_NoBirthdays(t *testing.T) {
	planner, _ := newPlanner(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	book := bookWith(t, nil, "A", "B")

	assert.Empty(t, slices.Collect(planner.Upcoming(book)))
}

func TestUpcoming_IsLazyAndDoesNotMutate(t *testing.T) {
	planner, _ := newPlanner(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	book := bookWith(t, map[string]string{
		"A": "11.06.1990",
		"B": "12.06.1990",
	}, "A", "B")
	before := book.String()

	var first []engine.UpcomingBirthday
	for u := range planner.Upcoming(book) {
		first = append(first, u)
		break
	}

	assert.Equal(t, []engine.UpcomingBirthday{{Name: "A", Date: "11.06.2024"}}, first)
	assert.Equal(t, before, book.String())
}

func TestToday_UsesLocalCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 2024-06-10 08:00 in UTC+9 is still 2024-06-09 in UTC.
	planner, _ := newPlanner(t, time.Date(2024, 6, 10, 8, 0, 0, 0, loc))

	assert.Equal(t, date(2024, 6, 10), planner.Today())
}
