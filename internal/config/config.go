package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName         = "Go Address Book"
	AppID           = "com.github.tartampluch.go-addressbook"
	CommandName     = "go-addressbook"
	LogFileName     = "app.log"
	DefaultDataFile = "addressbook.yaml"
	TempFilePattern = ".addressbook-*.tmp"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the data file and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagFile         = "file"
	FlagLang         = "lang"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescFile     = "Path to the address book file"
	FlagDescLang     = "Language of the assistant messages"
	CmdShort         = "Interactive contact manager with birthday reminders"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// SupportedLanguages defines the list of available message languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Assistant Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdRemovePhone  = "remove-phone"
	CmdDelete       = "delete"
	CmdExportVCard  = "export-vcard"
	CmdImportVCard  = "import-vcard"
	CmdExportICal   = "export-ical"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome          = "welcome"
	TKeyPrompt           = "prompt"
	TKeyGoodbye          = "goodbye"
	TKeyHello            = "hello"
	TKeyHelp             = "help"
	TKeyInvalidCommand   = "invalid_command"
	TKeyNotEnoughParams  = "not_enough_params"
	TKeyContactAdded     = "contact_added"
	TKeyContactUpdated   = "contact_updated"
	TKeyContactDeleted   = "contact_deleted"
	TKeyContactNotExists = "contact_not_exists"
	TKeyPhoneUpdated     = "phone_updated"
	TKeyPhoneRemoved     = "phone_removed"
	TKeyNoPhones         = "no_phones"
	TKeyBirthdayAdded    = "birthday_added"
	TKeyBirthdayIs       = "birthday_is"        // Requires Birthday
	TKeyBirthdayNotAdded = "birthday_not_added" // Requires Name
	TKeyCongratLine      = "congrat_line"       // Requires Name, Date
	TKeyNoBirthdays      = "no_birthdays"
	TKeyErrPhoneFormat   = "err_phone_format"
	TKeyErrDateFormat    = "err_date_format"
	TKeyErrPhoneNotFound = "err_phone_not_found" // Requires Phone
	TKeyErrUnexpected    = "err_unexpected"      // Requires Error
	TKeyVCardExported    = "vcard_exported"      // Requires Count, Path
	TKeyVCardImported    = "vcard_imported"      // Requires Count, Path
	TKeyICalExported     = "ical_exported"       // Requires Count, Path
	TKeyEventSummary     = "event_summary"       // Requires Name
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"

	// UpcomingHorizonDays is the nominal look-ahead of the birthdays query.
	UpcomingHorizonDays = 7

	// DaysPerWeek is used for weekday wrap-around arithmetic.
	DaysPerWeek = 7

	// SnapshotVersion is the current on-disk format version.
	SnapshotVersion = 1

	// UIDNamespace seeds deterministic UUIDv5 identifiers for exported cards and events.
	UIDNamespace = "go-addressbook-v1"
)

// -----------------------------------------------------------------------------
// Data Formats & Patterns
// -----------------------------------------------------------------------------

const (
	// PatternPhone accepts exactly ten ASCII digits.
	PatternPhone = `^[0-9]{10}$`

	// PatternBirthday is the shape check applied before calendar validation.
	PatternBirthday = `^\d{2}\.\d{2}\.\d{4}$`

	// DateFormatBirthday is the user facing DD.MM.YYYY layout.
	DateFormatBirthday = "02.01.2006"

	// Layouts accepted for vCard BDAY on import.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"

	PhoneSeparatorRecord = "; "
	PhoneSeparatorList   = ", "
)

// -----------------------------------------------------------------------------
// Address Book Rendering
// -----------------------------------------------------------------------------

const (
	FormatRecord     = "Contact name: %s, phones: %s"
	FormatBookLine   = "%s: %s birthday: %s"
	BookHeader       = "Address Book:"
	BookEmpty        = "Address Book is empty."
	BookNoPhones     = "No phones"
	BookNoBirthday   = "not added"
	HelpCommandsList = "hello, add, change, phone, all, add-birthday, show-birthday, birthdays, remove-phone, delete, export-vcard, import-vcard, export-ical, help, close, exit"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Address Book//Engine//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"

	// iCal Properties
	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	FallbackSummary = "Birthday: %s"

	DefaultICalRefresh = 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidPhone    = "incorrect phone number"
	ErrInvalidDate     = "invalid date format, use DD.MM.YYYY"
	ErrPhoneNotFound   = "phone number not found"
	ErrContactNotFound = "contact not found"
	ErrKeyNotFound     = "no record under this name"
	ErrMissingArgs     = "not enough parameters"
	ErrUnknownCommand  = "unknown command"
	ErrPersistenceLoad = "failed to load address book"
	ErrPersistenceSave = "failed to save address book"
	ErrSnapshotVersion = "unsupported snapshot version"
	ErrSnapshotDecode  = "failed to decode snapshot"
	ErrSnapshotRecord  = "invalid record in snapshot"
	ErrVCardEncode     = "failed to encode vCard data"
	ErrVCardDecode     = "failed to decode vCard stream"
	ErrVCardRead       = "failed to read vCard stream"
	ErrNotRegularFile  = "not a regular file"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrOpenFile        = "failed to open file"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrReadInput       = "failed to read input"
	ErrWriteOutput     = "failed to write output"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrLanguageUnsupp  = "unsupported language"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgBookLoaded    = "Address book loaded"
	MsgBookMissing   = "Address book file not found, starting empty"
	MsgBookSaved     = "Address book saved"
	MsgCommand       = "Command executed"
	MsgCommandFailed = "Command failed"
	MsgInputClosed   = "Input closed, saving and exiting"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedPhone  = "Skipping invalid phone in vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgVCardExported = "vCard export finished"
	MsgVCardImported = "vCard import finished"
	MsgCalendarDone  = "Calendar generation successful"
	MsgUpcomingQuery = "Upcoming birthdays computed"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyCount     = "count"
	LogKeySkipped   = "skipped"
	LogKeyToday     = "today"
	LogKeyHorizon   = "horizon"
	LogKeyVersion   = "version"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild  = "build"
	LogKeyApp    = "app"
	LogKeyGoVer  = "go_version"
	LogKeyCommit = "commit"
	LogKeyBuilt  = "built"
	LogKeyEnv    = "env"
	LogKeyOS     = "os"
	LogKeyArch   = "arch"
	LogKeyPID    = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain    = "main"
	CompCLI     = "cli"
	CompEngine  = "engine"
	CompStorage = "storage"
	CompVCard   = "vcard"
	CompI18n    = "i18n"
)
