package config

import (
	"io/fs"
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
	AppName = "Go Shamsi"
	AppID   = "com.github.tartampluch.go-shamsi"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// Filesystem (Logs)
// -----------------------------------------------------------------------------

const (
	LogFileName = "go-shamsi.log"

	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagDate         = "date"
	FlagPersian      = "persian"
	FlagRemember     = "remember"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescLang     = "UI language for validation messages (en, fa)"
	FlagDescDate     = "Initial date to focus, e.g. 1403/01/01 (default: today)"
	FlagDescPersian  = "Print dates and grids with Persian digits"
	FlagDescRemember = "Reopen on the last confirmed date"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Calendar Constants
// -----------------------------------------------------------------------------

const (
	// Hard engine bounds. Conversions are verified against this span;
	// dates outside it are rejected, never silently computed.
	MinYear = 1200
	MaxYear = 1600

	// Default selectable window offered to shells: 1300/01/01 through the
	// end of Esfand five years from the current year.
	DefaultFirstYear  = 1300
	DefaultYearsAhead = 5

	MonthsPerYear   = 12
	DaysPerWeek     = 7
	GridWeekRows    = 6
	FirstHalfMonths = 6   // Farvardin..Shahrivar, 31 days each
	FirstHalfDays   = 186 // FirstHalfMonths * LongMonthDays
	LongMonthDays   = 31
	ShortMonthDays  = 30
	EsfandShortDays = 29
	MonthEsfand     = 12
)

// -----------------------------------------------------------------------------
// Computation Cache
// -----------------------------------------------------------------------------

const (
	// DefaultCacheCapacity bounds the calendar memo. Navigation revisits a
	// handful of months, so a small LRU covers steady-state traffic.
	DefaultCacheCapacity = 128
)

// -----------------------------------------------------------------------------
// Input & Display Formats
// -----------------------------------------------------------------------------

const (
	// DateInputPattern accepts the year/month/day shape typed into the
	// input field, after numeral normalization and trimming.
	DateInputPattern = `^(\d{1,4})/(\d{1,2})/(\d{1,2})$`

	DateSeparator   = "/"
	FormatDate      = "%04d/%02d/%02d"
	FormatGregorian = "%04d-%02d-%02d"
	FormatDisplay   = "%s، %s\n%s" // weekday name, month name, Persian day number
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	// Preference Keys
	PrefLanguage     = "language"
	PrefLastSelected = "last_selected_date"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fa"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle   = "win_title"
	TKeyBtnConfirm = "btn_confirm"
	TKeyBtnCancel  = "btn_cancel"
	TKeyBtnToday   = "btn_today"
	TKeyLblYear    = "lbl_year"

	// Validation Errors (UI)
	TKeyErrMalformed = "err_malformed_text"
	TKeyErrMonth     = "err_invalid_month"
	TKeyErrDay       = "err_nonexistent_day"
	TKeyErrRange     = "err_out_of_range"
	TKeyErrNumeral   = "err_unsupported_numeral"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrMonthRange    = "month must be between 1 and 12"
	ErrDayRange      = "day does not exist in that month"
	ErrYearBounds    = "date outside the supported calendar range"
	ErrRangeInverted = "minimum date is after maximum date"
	ErrOptionDate    = "invalid date in picker options"
	ErrInputRead     = "failed to read command input"
	ErrDateFlag      = "invalid -date value"
	ErrLangFlag      = "unsupported -lang value"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrCacheDir      = "could not resolve user cache directory"
	ErrCreateDir     = "could not create log directory"
	ErrLogFile       = "could not open log file"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	// English fallbacks used when the localizer is unavailable. The keys in
	// the locale catalogs carry the translated forms.
	FallbackErrMalformed = "Enter the date as year/month/day, e.g. 1403/01/01"
	FallbackErrMonth     = "Month must be between 1 and 12"
	FallbackErrDay       = "That day does not exist in the chosen month"
	FallbackErrRange     = "Date is outside the selectable range"
	FallbackErrNumeral   = "Only Persian or Latin digits are accepted"

	MsgLogWarning = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// REPL Output
// -----------------------------------------------------------------------------

const (
	ReplHelp = `commands:
  w a s d   move focus (week up, next day, week down, previous day)
  enter     confirm the focused date
  esc       cancel
  i TEXT    submit TEXT in input mode, e.g. i 1403/01/01
  y YEAR    jump to YEAR, e.g. y 1404
  m N       step N months, e.g. m -1
  t         focus today
  g         print the month grid
  o         reopen the picker
  h         this help
  q         quit`

	ReplPrompt    = "> "
	ReplState     = "[%s] focus %s\n"
	ReplPicked    = "picked %s\n"
	ReplCancelled = "selection cancelled\n"
	ReplClosed    = "picker closed; o reopens, q quits\n"
	ReplInvalid   = "invalid: %s\n"
	ReplUnknown   = "unknown command %q; h for help\n"
)

// -----------------------------------------------------------------------------
// Log Message Strings
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Shutdown signal received"
	MsgPickerOpen      = "Picker opened"
	MsgPickerClose     = "Picker closed"
	MsgModeSwitch      = "Navigation mode changed"
	MsgFocusMove       = "Focus moved"
	MsgDateConfirm     = "Date selection confirmed"
	MsgSelectionCancel = "Date selection cancelled"
	MsgInputReject     = "Date input rejected"
	MsgPrefCorrupt     = "Stored selection unreadable, ignoring"
	MsgCacheReady      = "Computation cache ready"
	MsgCacheBypass     = "Computation cache disabled, computing directly"
	MsgCachePurged     = "Computation cache purged"
	MsgKeyConsumed     = "Key consumed"
	MsgKeysBound       = "Keyboard capture installed"
	MsgKeysReleased    = "Keyboard capture released"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
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
	LogKeyDate      = "date"
	LogKeyKeyName   = "key_name"
	LogKeyReason    = "reason"
	LogKeyCapacity  = "capacity"
	LogKeyHits      = "hits"
	LogKeyMisses    = "misses"
	LogKeyFrom      = "from"
	LogKeyTo        = "to"
	LogKeyText      = "text"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain   = "main"
	CompEngine = "engine"
	CompCache  = "cache"
	CompPicker = "picker"
	CompUI     = "ui"
	CompI18n   = "i18n"
)
