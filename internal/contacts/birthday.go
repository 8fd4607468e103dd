package contacts

import (
	"fmt"
	"regexp"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

var birthdayPattern = regexp.MustCompile(config.PatternBirthday)

// Birthday keeps the date exactly as the user typed it (DD.MM.YYYY).
// The calendar value is derived on demand.
type Birthday struct {
	value string
}

// NewBirthday accepts raw only if it has the DD.MM.YYYY shape and names a real
// calendar day, so 30.02.2024 and 13.13.2024 are rejected.
func NewBirthday(raw string) (Birthday, error) {
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw)
	}
	if _, err := time.Parse(config.DateFormatBirthday, raw); err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw)
	}
	return Birthday{value: raw}, nil
}

// Date returns the birthday as a UTC midnight time value.
func (b Birthday) Date() time.Time {
	// The value was validated at construction.
	t, _ := time.Parse(config.DateFormatBirthday, b.value)
	return t
}

func (b Birthday) String() string {
	return b.value
}
