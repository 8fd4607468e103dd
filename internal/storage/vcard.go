package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contacts"
)

const uidURNPrefix = "urn:uuid:"

// ExportVCard writes every record as a vCard 4.0 card and returns how many
// cards were written. Birthdays are written as ISO dates.
func ExportVCard(w io.Writer, book *contacts.AddressBook) (int, error) {
	enc := vcard.NewEncoder(w)
	count := 0

	for rec := range book.All() {
		card := make(vcard.Card)
		card.SetValue(vcard.FieldFormattedName, rec.Name())
		card.SetName(&vcard.Name{GivenName: rec.Name()})
		card.SetValue(vcard.FieldUID, uidURNPrefix+rec.UID().String())
		for _, p := range rec.PhoneValues() {
			card.AddValue(vcard.FieldTelephone, p)
		}
		if bd, ok := rec.Birthday(); ok {
			card.SetValue(vcard.FieldBirthday, bd.Date().Format(config.DateFormatFullDash))
		}
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return count, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
		count++
	}

	slog.Info(config.MsgVCardExported,
		config.LogKeyComponent, config.CompVCard,
		config.LogKeyCount, count)
	return count, nil
}

// ImportVCard merges the cards read from r into book and returns how many
// cards were applied. A read error from r stops the import; cards merged
// before it are kept. Cards are matched to records by formatted name; phones
// are added (duplicates ignored) and a valid BDAY replaces the birthday.
// Fields that do not validate are skipped and logged, the rest of the card is
// still applied. A stream in which no card could be used is an error.
func ImportVCard(r io.Reader, book *contacts.AddressBook) (int, error) {
	log := slog.With(config.LogKeyComponent, config.CompVCard)
	src := &stickyReader{r: r}
	dec := vcard.NewDecoder(src)
	imported, skipped := 0, 0

	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A failing reader never reaches EOF, so it ends the import.
			if src.err != nil {
				return imported, fmt.Errorf("%s: %w", config.ErrVCardRead, src.err)
			}
			// Log error but continue to next card to maximize data recovery
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			skipped++
			continue
		}

		name := cardName(card)
		if name == "" {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, config.ErrContactNotFound)
			skipped++
			continue
		}

		rec, ok := book.Find(name)
		if !ok {
			rec = contacts.NewRecord(name)
			book.Add(rec)
		}

		for _, tel := range card.Values(vcard.FieldTelephone) {
			if err := rec.AddPhone(normalizePhone(tel)); err != nil {
				log.Warn(config.MsgSkippedPhone,
					config.LogKeyName, name,
					config.LogKeyValue, tel)
			}
		}

		if bday := card.Value(vcard.FieldBirthday); bday != "" {
			if err := rec.AddBirthday(normalizeBirthday(bday)); err != nil {
				log.Debug(config.MsgSkippedDate,
					config.LogKeyName, name,
					config.LogKeyValue, bday)
			}
		}
		imported++
	}

	if imported == 0 && skipped > 0 {
		return 0, fmt.Errorf("%s: %d cards skipped", config.ErrVCardDecode, skipped)
	}

	log.Info(config.MsgVCardImported,
		config.LogKeyCount, imported,
		config.LogKeySkipped, skipped)
	return imported, nil
}

// stickyReader keeps the first read error other than io.EOF, so the decode
// loop can tell a broken source from a malformed card.
type stickyReader struct {
	r   io.Reader
	err error
}

func (s *stickyReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && s.err == nil {
		s.err = err
	}
	return n, err
}

// cardName prefers FN and falls back to the structured N property.
func cardName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		return strings.TrimSpace(strings.Join([]string{n.GivenName, n.FamilyName}, " "))
	}
	return ""
}

// normalizePhone drops a tel: URI scheme and any punctuation so that
// "tel:050-123-45-67" becomes "0501234567".
func normalizePhone(raw string) string {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "tel:")
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if unicode.IsSpace(r) || strings.ContainsRune("-().", r) {
			return -1
		}
		// Keep anything else so validation rejects it.
		return r
	}, raw)
}

// normalizeBirthday converts the ISO layouts vCard uses to DD.MM.YYYY.
// Unknown layouts are returned unchanged and fail validation downstream.
func normalizeBirthday(raw string) string {
	for _, layout := range []string{config.DateFormatFullDash, config.DateFormatFullBasic} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(config.DateFormatBirthday)
		}
	}
	return raw
}
