package contacts

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// AddressBook maps contact names to records. Enumeration follows the order in
// which names were first added.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add stores rec under its name, replacing any record already there.
// A replaced record keeps its position in the enumeration order.
func (b *AddressBook) Add(rec *Record) {
	if _, exists := b.records[rec.name]; !exists {
		b.order = append(b.order, rec.name)
	}
	b.records[rec.name] = rec
}

// Find is an exact, case-sensitive lookup.
func (b *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return &NotFoundError{Kind: ErrKeyNotFound, Key: name}
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	return nil
}

// Len reports the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// All yields the records in insertion order.
func (b *AddressBook) All() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, name := range b.order {
			if !yield(b.records[name]) {
				return
			}
		}
	}
}

func (b *AddressBook) String() string {
	if b.Len() == 0 {
		return config.BookEmpty
	}

	lines := []string{config.BookHeader}
	for rec := range b.All() {
		phones := config.BookNoPhones
		if len(rec.phones) > 0 {
			phones = strings.Join(rec.PhoneValues(), config.PhoneSeparatorList)
		}
		birthday := config.BookNoBirthday
		if bd, ok := rec.Birthday(); ok {
			birthday = bd.String()
		}
		lines = append(lines, fmt.Sprintf(config.FormatBookLine, rec.name, phones, birthday))
	}
	return strings.Join(lines, "\n")
}
