// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for form fields or HTTPError for responses)
// so every rejected submission reaches the client in one of the
// few fixed shapes the relay promises.
package errs
