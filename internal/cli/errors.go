package cli

import (
	"errors"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contacts"
)

// Errors raised by the command layer itself.
var (
	ErrNotEnoughParams = errors.New(config.ErrMissingArgs)
	ErrInvalidCommand  = errors.New(config.ErrUnknownCommand)
)

// describe turns an error returned by a handler into the one line shown to
// the user. It is the only place where error kinds meet display strings.
func (a *Assistant) describe(err error) string {
	var nf *contacts.NotFoundError

	switch {
	case errors.Is(err, ErrNotEnoughParams):
		return a.tr.Msg(config.TKeyNotEnoughParams)
	case errors.Is(err, ErrInvalidCommand):
		return a.tr.Msg(config.TKeyInvalidCommand)
	case errors.Is(err, contacts.ErrInvalidPhoneFormat):
		return a.tr.Msg(config.TKeyErrPhoneFormat)
	case errors.Is(err, contacts.ErrInvalidDateFormat):
		return a.tr.Msg(config.TKeyErrDateFormat)
	case errors.Is(err, contacts.ErrPhoneNotFound) && errors.As(err, &nf):
		return a.tr.Msg(config.TKeyErrPhoneNotFound, map[string]any{"Phone": nf.Key})
	case errors.Is(err, contacts.ErrContactNotFound), errors.Is(err, contacts.ErrKeyNotFound):
		return a.tr.Msg(config.TKeyContactNotExists)
	default:
		return a.tr.Msg(config.TKeyErrUnexpected, map[string]any{"Error": err})
	}
}
