package engine

import (
	"iter"

	"github.com/tartampluch/go-addressbook/internal/contacts"
)

// UpcomingBirthday is a transient query result: who to congratulate and on
// which (weekend adjusted) day, formatted as DD.MM.YYYY.
type UpcomingBirthday struct {
	Name string
	Date string
}

// Records is the read-only view of the address book the engine needs.
type Records interface {
	All() iter.Seq[*contacts.Record]
}
