package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contacts"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

func (a *Assistant) hello(_ []string) (string, error) {
	return a.tr.Msg(config.TKeyHello), nil
}

func (a *Assistant) help(_ []string) (string, error) {
	return a.tr.Msg(config.TKeyHelp, map[string]any{"Commands": config.HelpCommandsList}), nil
}

// addContact adds a phone to an existing contact or creates the contact.
// The phone is validated before a new record is stored.
func (a *Assistant) addContact(args []string) (string, error) {
	if err := need(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	if rec, ok := a.book.Find(name); ok {
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return a.tr.Msg(config.TKeyContactUpdated), nil
	}

	rec := contacts.NewRecord(name)
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	a.book.Add(rec)
	return a.tr.Msg(config.TKeyContactAdded), nil
}

func (a *Assistant) changeContact(args []string) (string, error) {
	if err := need(args, 3); err != nil {
		return "", err
	}
	rec, err := a.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return a.tr.Msg(config.TKeyPhoneUpdated), nil
}

func (a *Assistant) showPhone(args []string) (string, error) {
	if err := need(args, 1); err != nil {
		return "", err
	}
	rec, err := a.findRecord(args[0])
	if err != nil {
		return "", err
	}
	phones := rec.PhoneValues()
	if len(phones) == 0 {
		return a.tr.Msg(config.TKeyNoPhones), nil
	}
	return strings.Join(phones, "\n"), nil
}

func (a *Assistant) showAll(_ []string) (string, error) {
	return a.book.String(), nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	if err := need(args, 2); err != nil {
		return "", err
	}
	rec, err := a.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return a.tr.Msg(config.TKeyBirthdayAdded), nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	if err := need(args, 1); err != nil {
		return "", err
	}
	rec, err := a.findRecord(args[0])
	if err != nil {
		return "", err
	}
	bd, ok := rec.Birthday()
	if !ok {
		return a.tr.Msg(config.TKeyBirthdayNotAdded, map[string]any{"Name": rec.Name()}), nil
	}
	return a.tr.Msg(config.TKeyBirthdayIs, map[string]any{"Birthday": bd.String()}), nil
}

func (a *Assistant) birthdays(_ []string) (string, error) {
	var lines []string
	for u := range a.planner.Upcoming(a.book) {
		lines = append(lines, a.tr.Msg(config.TKeyCongratLine, map[string]any{"Name": u.Name, "Date": u.Date}))
	}
	if len(lines) == 0 {
		return a.tr.Msg(config.TKeyNoBirthdays, map[string]any{"Days": config.UpcomingHorizonDays}), nil
	}
	return strings.Join(lines, "\n"), nil
}

func (a *Assistant) removePhone(args []string) (string, error) {
	if err := need(args, 2); err != nil {
		return "", err
	}
	rec, err := a.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if _, ok := rec.FindPhone(args[1]); !ok {
		return "", &contacts.NotFoundError{Kind: contacts.ErrPhoneNotFound, Key: args[1]}
	}
	rec.RemovePhone(args[1])
	return a.tr.Msg(config.TKeyPhoneRemoved), nil
}

func (a *Assistant) deleteContact(args []string) (string, error) {
	if err := need(args, 1); err != nil {
		return "", err
	}
	if err := a.book.Delete(args[0]); err != nil {
		return "", err
	}
	return a.tr.Msg(config.TKeyContactDeleted), nil
}

func (a *Assistant) exportVCard(args []string) (_ string, err error) {
	if err := need(args, 1); err != nil {
		return "", err
	}
	path := args[0]

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrOpenFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	count, err := storage.ExportVCard(f, a.book)
	if err != nil {
		return "", err
	}
	return a.tr.Msg(config.TKeyVCardExported, map[string]any{"Count": count, "Path": path}), nil
}

func (a *Assistant) importVCard(args []string) (string, error) {
	if err := need(args, 1); err != nil {
		return "", err
	}
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrOpenFile, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s: %s", config.ErrNotRegularFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrOpenFile, err)
	}
	// Best effort close. Errors in Close() for read-only files are rarely actionable here.
	defer func() { _ = f.Close() }()

	count, err := storage.ImportVCard(f, a.book)
	if err != nil {
		return "", err
	}
	return a.tr.Msg(config.TKeyVCardImported, map[string]any{"Count": count, "Path": path}), nil
}

func (a *Assistant) exportICal(args []string) (string, error) {
	if err := need(args, 1); err != nil {
		return "", err
	}
	path := args[0]

	data, count, err := a.planner.Calendar(a.book)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrOpenFile, err)
	}
	return a.tr.Msg(config.TKeyICalExported, map[string]any{"Count": count, "Path": path}), nil
}
