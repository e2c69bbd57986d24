// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for forms or HTTPError for responses)
// so the client receives meaningful, consistent error messages.
package errs
