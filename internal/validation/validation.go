// Package validation contains the logic for validating
// submission payloads.
//
// It uses the `validator` library to enforce per-field rules
// (required values, email format) and collects failures into a
// field-keyed map the client can understand.
package validation
