package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contacts"
	"gopkg.in/yaml.v3"
)

// ErrPersistenceLoad is returned for every load failure except a missing file.
var ErrPersistenceLoad = errors.New(config.ErrPersistenceLoad)

// snapshot is the on-disk envelope. Contacts are a list to keep the book order.
type snapshot struct {
	Version  int               `yaml:"version"`
	Contacts []contactSnapshot `yaml:"contacts"`
}

type contactSnapshot struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones,omitempty"`
	Birthday string   `yaml:"birthday,omitempty"`
}

// Load reads the address book stored at path. A missing file yields an empty
// book; anything else that goes wrong is wrapped in ErrPersistenceLoad and the
// file is left untouched.
func Load(path string) (*contacts.AddressBook, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
	)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(config.MsgBookMissing)
		return contacts.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistenceLoad, err)
	}

	book, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPersistenceLoad, path, err)
	}

	log.Info(config.MsgBookLoaded, config.LogKeyCount, book.Len())
	return book, nil
}

// Decode rebuilds a book from snapshot bytes, re-validating every field.
func Decode(data []byte) (*contacts.AddressBook, error) {
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
	}
	if snap.Version != config.SnapshotVersion {
		return nil, fmt.Errorf("%s: %d", config.ErrSnapshotVersion, snap.Version)
	}

	book := contacts.NewAddressBook()
	for i, c := range snap.Contacts {
		rec := contacts.NewRecord(c.Name)
		for _, p := range c.Phones {
			if err := rec.AddPhone(p); err != nil {
				return nil, fmt.Errorf("%s #%d: %w", config.ErrSnapshotRecord, i, err)
			}
		}
		if c.Birthday != "" {
			if err := rec.AddBirthday(c.Birthday); err != nil {
				return nil, fmt.Errorf("%s #%d: %w", config.ErrSnapshotRecord, i, err)
			}
		}
		book.Add(rec)
	}
	return book, nil
}

// Encode serializes the whole book.
func Encode(book *contacts.AddressBook) ([]byte, error) {
	snap := snapshot{
		Version:  config.SnapshotVersion,
		Contacts: make([]contactSnapshot, 0, book.Len()),
	}
	for rec := range book.All() {
		c := contactSnapshot{Name: rec.Name(), Phones: rec.PhoneValues()}
		if bd, ok := rec.Birthday(); ok {
			c.Birthday = bd.String()
		}
		snap.Contacts = append(snap.Contacts, c)
	}
	return yaml.Marshal(&snap)
}

// Save writes the book to path. The data goes to a temporary file in the same
// directory first and is renamed over path, so the previous file survives a
// failed write.
func Save(path string, book *contacts.AddressBook) (err error) {
	data, err := Encode(book)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrPersistenceSave, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), config.TempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrPersistenceSave, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrPersistenceSave, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrPersistenceSave, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrPersistenceSave, err)
	}
	if err = os.Chmod(tmp.Name(), config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrPersistenceSave, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrPersistenceSave, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
		config.LogKeyCount, book.Len())
	return nil
}
