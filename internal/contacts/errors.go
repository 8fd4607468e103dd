package contacts

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Error kinds returned by the contact model. Callers match them with errors.Is.
var (
	ErrInvalidPhoneFormat = errors.New(config.ErrInvalidPhone)
	ErrInvalidDateFormat  = errors.New(config.ErrInvalidDate)
	ErrPhoneNotFound      = errors.New(config.ErrPhoneNotFound)
	ErrContactNotFound    = errors.New(config.ErrContactNotFound)
	ErrKeyNotFound        = errors.New(config.ErrKeyNotFound)
)

// NotFoundError reports a lookup miss together with the key that was asked for.
// It unwraps to one of the sentinel errors above.
type NotFoundError struct {
	Kind error
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return e.Kind
}
