package contacts

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// uidNamespace scopes the name-based identifiers handed out by Record.UID.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(config.UIDNamespace))

// Record holds everything known about one named contact.
// The name is fixed at creation; phones keep insertion order and never repeat.
type Record struct {
	name     string
	phones   []*Phone
	birthday *Birthday
}

// NewRecord creates an empty record for name.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the key the record is stored under.
func (r *Record) Name() string {
	return r.name
}

// UID is a stable identifier derived from the name, used when the record
// leaves the process (vCard, iCalendar).
func (r *Record) UID() uuid.UUID {
	return uuid.NewSHA1(uidNamespace, []byte(r.name))
}

// PhoneValues returns the phone numbers as plain strings.
func (r *Record) PhoneValues() []string {
	out := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		out = append(out, p.value)
	}
	return out
}

// Birthday returns the stored birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone appends raw unless the record already has it.
// A duplicate is silently ignored.
func (r *Record) AddPhone(raw string) error {
	if r.indexOf(raw) >= 0 {
		return nil
	}
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, &p)
	return nil
}

// EditPhone renames oldRaw to newRaw. When newRaw is already another entry of
// this record, oldRaw is dropped instead so the list stays unique.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i := r.indexOf(oldRaw)
	if i < 0 {
		return &NotFoundError{Kind: ErrPhoneNotFound, Key: oldRaw}
	}
	if oldRaw == newRaw {
		return nil
	}
	if r.indexOf(newRaw) >= 0 {
		r.phones = slices.Delete(r.phones, i, i+1)
		return nil
	}
	return r.phones[i].Change(newRaw)
}

// RemovePhone drops the first phone equal to raw. Missing numbers are ignored.
func (r *Record) RemovePhone(raw string) {
	if i := r.indexOf(raw); i >= 0 {
		r.phones = slices.Delete(r.phones, i, i+1)
	}
}

// FindPhone looks a number up by exact value.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := r.indexOf(raw)
	if i < 0 {
		return Phone{}, false
	}
	return *r.phones[i], true
}

// AddBirthday sets or replaces the birthday.
func (r *Record) AddBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) String() string {
	return fmt.Sprintf(config.FormatRecord, r.name, strings.Join(r.PhoneValues(), config.PhoneSeparatorRecord))
}

func (r *Record) indexOf(raw string) int {
	return slices.IndexFunc(r.phones, func(p *Phone) bool { return p.value == raw })
}
