// Package response builds the terminal response of an invocation.
//
// Every response is either JSON (for fetch/XHR clients) or empty
// (for plain HTML form posts, usually with a redirect). Headers are
// copied on write so the CORS headers computed by the gate are never
// mutated by a later stage.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/hkbertoson/form-relay/internal/errs"
)

// Headers are the single-value response headers.
type Headers map[string]string

// MessageSent is the success body for JSON clients.
const MessageSent = "Email sent successfully"

// Message is the `{"message": ...}` success body.
type Message struct {
	Message string `json:"message"`
}

// JSON returns status with v encoded as the body.
func JSON(status int, headers Headers, v any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		// Every body the relay sends is a flat struct or map of strings.
		body = []byte(`{"error":"` + http.StatusText(http.StatusInternalServerError) + `"}`)
		status = http.StatusInternalServerError
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers.clone(),
		Body:       string(body),
	}
}

// Empty returns status with no body.
func Empty(status int, headers Headers) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers.clone(),
		Body:       "",
	}
}

// Redirect returns a 303 See Other to location, so the browser follows
// it with a GET after the form POST.
func Redirect(headers Headers, location string) events.APIGatewayProxyResponse {
	h := headers.clone()
	h["Location"] = location
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusSeeOther,
		Headers:    h,
		Body:       "",
	}
}

// Error renders err with its own status: as JSON when asJSON is set,
// otherwise with an empty body.
func Error(err *errs.HTTPError, headers Headers, asJSON bool) events.APIGatewayProxyResponse {
	if asJSON {
		return JSON(err.Status, headers, err)
	}
	return Empty(err.Status, headers)
}

// Sent is the JSON success response.
func Sent(headers Headers) events.APIGatewayProxyResponse {
	return JSON(http.StatusOK, headers, Message{Message: MessageSent})
}

func (h Headers) clone() map[string]string {
	out := make(map[string]string, len(h)+1)
	for k, v := range h {
		out[k] = v
	}
	return out
}
