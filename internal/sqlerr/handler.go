package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/errs"
)

// ConvertPgError converts a raw pgconn.PgError into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:         MapCode(src.Code),
		Severity:     MapSeverity(src.Severity),
		DatabaseCode: src.Code,
		Message:      src.Message,
		TableName:    src.TableName,
		ColumnName:   src.ColumnName,
		driverErr:    src,
	}
}

// generateErrorCode creates "<TABLE>_<ACTION>" codes, e.g. STUFF_REQUIRED.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	action := "ERROR"
	switch errType {
	case NotNullViolation:
		action = "REQUIRED"
	case StringDataRightTruncation, NumericValueOutOfRange, InvalidTextRepresentation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", strings.ToUpper(tableName), action)
}

// describe produces a readable summary of sqlErr for logs.
func describe(sqlErr *Error) string {
	switch sqlErr.Code {
	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case StringDataRightTruncation:
		return "One or more values are too long"

	case NumericValueOutOfRange:
		return "One or more numbers are out of range"

	case InvalidTextRepresentation:
		return "One or more values have an invalid format"

	default:
		return "An error occurred while processing your request"
	}
}

// humanizeText turns "first_name" into "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// Describe returns a readable summary of a PostgreSQL error, or "" when
// err carries none.
func Describe(err error) string {
	var pgerr *pgconn.PgError
	if !errors.As(err, &pgerr) {
		return ""
	}

	return describe(ConvertPgError(pgerr))
}

// HandleError converts a low-level database error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - PgError: 500 whose code is derived from the SQLSTATE and table
//   - ErrNoRows: 404
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)

		return errs.NewInternalServerError(&errorCode)
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError(nil)
}
