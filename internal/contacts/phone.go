package contacts

import (
	"fmt"
	"regexp"

	"github.com/tartampluch/go-addressbook/internal/config"
)

var phonePattern = regexp.MustCompile(config.PatternPhone)

// Phone is a validated ten digit phone number.
type Phone struct {
	value string
}

// NewPhone validates raw and wraps it.
func NewPhone(raw string) (Phone, error) {
	if err := validatePhone(raw); err != nil {
		return Phone{}, err
	}
	return Phone{value: raw}, nil
}

// Change re-validates raw and replaces the number in place.
func (p *Phone) Change(raw string) error {
	if err := validatePhone(raw); err != nil {
		return err
	}
	p.value = raw
	return nil
}

func (p Phone) String() string {
	return p.value
}

func validatePhone(raw string) error {
	if !phonePattern.MatchString(raw) {
		return fmt.Errorf("%w: %q", ErrInvalidPhoneFormat, raw)
	}
	return nil
}
