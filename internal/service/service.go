// Package service contains the business logic.
//
// It sits between the handler and the mail transport. It receives a
// validated payload from the handler, turns it into one email and
// maps the transport outcome to the response the client sees.
package service
