package storage_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/contacts"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

func TestExportVCard(t *testing.T) {
	var buf bytes.Buffer

	count, err := storage.ExportVCard(&buf, sampleBook(t))
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "BEGIN:VCARD"))
	assert.Contains(t, out, "FN:John")
	assert.Contains(t, out, "TEL:0123456789")
	assert.Contains(t, out, "BDAY:1990-06-15")
	assert.Contains(t, out, "urn:uuid:")
}

func TestVCard_RoundTrip(t *testing.T) {
	original := sampleBook(t)
	var buf bytes.Buffer
	_, err := storage.ExportVCard(&buf, original)
	require.NoError(t, err)

	restored := contacts.NewAddressBook()
	count, err := storage.ImportVCard(&buf, restored)
	require.NoError(t, err)

	assert.Equal(t, 4, count)
	assert.Equal(t, original.String(), restored.String())
}

func TestImportVCard_MergesAndNormalizes(t *testing.T) {
	input := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:John",
		"TEL;TYPE=CELL:050-123-45-67",
		"TEL:not-a-number",
		"BDAY:19900615",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"N:Doe;Jane;;;",
		"TEL;VALUE=uri:tel:1111111111",
		"BDAY:--0615",
		"END:VCARD",
		"",
	}, "\r\n")

	book := contacts.NewAddressBook()
	john := contacts.NewRecord("John")
	require.NoError(t, john.AddPhone("0501234567"))
	book.Add(john)

	count, err := storage.ImportVCard(strings.NewReader(input), book)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	rec, ok := book.Find("John")
	require.True(t, ok)
	assert.Equal(t, []string{"0501234567"}, rec.PhoneValues(), "Existing phone must not be duplicated")
	bd, ok := rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.06.1990", bd.String())

	jane, ok := book.Find("Jane Doe")
	require.True(t, ok, "Structured name is used when FN is absent")
	assert.Equal(t, []string{"1111111111"}, jane.PhoneValues())
	_, ok = jane.Birthday()
	assert.False(t, ok, "Year-less birthdays cannot be stored")
}

func TestImportVCard_NothingUsable(t *testing.T) {
	book := contacts.NewAddressBook()

	count, err := storage.ImportVCard(strings.NewReader("BEGIN:VCARD\r\nVERSION:4.0\r\nFN:John\r\n"), book)

	assert.ErrorContains(t, err, config.ErrVCardDecode)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, book.Len())
}

func TestImportVCard_Empty(t *testing.T) {
	count, err := storage.ImportVCard(strings.NewReader(""), contacts.NewAddressBook())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestImportVCard_ReadFailureStops(t *testing.T) {
	errDisk := errors.New("disk on fire")
	card := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:John\r\nTEL:0123456789\r\nEND:VCARD\r\n"

	tests := []struct {
		name string
		src  io.Reader
	}{
		{"Failing from the start", iotest.ErrReader(errDisk)},
		{"Failing after a card", io.MultiReader(strings.NewReader(card), iotest.ErrReader(errDisk))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storage.ImportVCard(tt.src, contacts.NewAddressBook())
			assert.ErrorIs(t, err, errDisk)
			assert.ErrorContains(t, err, config.ErrVCardRead)
		})
	}
}

func TestImportVCard_DirectoryIsAnError(t *testing.T) {
	dir, err := os.Open(t.TempDir())
	require.NoError(t, err)
	defer func() { _ = dir.Close() }()

	book := contacts.NewAddressBook()
	count, err := storage.ImportVCard(dir, book)

	assert.ErrorContains(t, err, config.ErrVCardRead)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, book.Len())
}
