// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the PostgreSQL driver into a
// machine-friendly error code and a readable description. Every
// driver error still surfaces as an internal server error.
package sqlerr

// Code is a driver-independent classification of a database error.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	StringDataRightTruncation Code = "string_data_right_truncation"
	NumericValueOutOfRange    Code = "numeric_value_out_of_range"
	InvalidTextRepresentation Code = "invalid_text_representation"
)

// Severity mirrors the PostgreSQL error severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized database error.
type Error struct {
	Code         Code
	Severity     Severity
	DatabaseCode string
	Message      string
	TableName    string
	ColumnName   string
	driverErr    error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// sqlStates maps the SQLSTATE values the stuff table can raise:
// NOT NULL on item/quantity, VARCHAR(255) bounds, INTEGER range and
// malformed literals.
var sqlStates = map[string]Code{
	"23502": NotNullViolation,
	"22001": StringDataRightTruncation,
	"22003": NumericValueOutOfRange,
	"22P02": InvalidTextRepresentation,
}

// MapCode converts a SQLSTATE into a Code.
func MapCode(sqlState string) Code {
	if code, ok := sqlStates[sqlState]; ok {
		return code
	}

	return Other
}

// MapSeverity converts the driver's severity string into a Severity.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}
