// Package handler is the entry point for a form submission.
//
// RelayHandler runs the submission pipeline (origin gate, payload
// parsing, validation, mail dispatch) against a platform event and
// always produces exactly one response. The remaining handlers serve
// the local development server: FunctionHandler replays HTTP requests
// as platform events, HealthHandler answers /status.
package handler
