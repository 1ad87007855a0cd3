package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/hkbertoson/form-relay/internal/middleware"
	"github.com/hkbertoson/form-relay/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxBodyBytes caps the body replayed by the dev server. Netlify rejects
// function payloads above 6MB.
const maxBodyBytes = 6 << 20

// Handler is the base handler type holding shared dependencies.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// FunctionHandler serves the relay over plain HTTP, the way
// `netlify dev` serves a function locally.
type FunctionHandler struct {
	Handler
	relay *RelayHandler
}

// NewFunctionHandler wraps relay for the dev server.
func NewFunctionHandler(s *server.Server, relay *RelayHandler) *FunctionHandler {
	return &FunctionHandler{
		Handler: NewHandler(s),
		relay:   relay,
	}
}

// Invoke translates the request into a platform event, runs the relay
// and writes the response back unchanged.
func (h *FunctionHandler) Invoke(c echo.Context) error {
	req, err := toProxyRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.relay.Handle(c.Request().Context(), req)
	if err != nil {
		return err
	}

	header := c.Response().Header()
	for k, v := range resp.Headers {
		header.Set(k, v)
	}
	for k, values := range resp.MultiValueHeaders {
		for _, v := range values {
			header.Add(k, v)
		}
	}

	c.Response().WriteHeader(resp.StatusCode)
	if resp.Body == "" {
		return nil
	}
	_, err = io.WriteString(c.Response(), resp.Body)
	return err
}

func toProxyRequest(c echo.Context) (events.APIGatewayProxyRequest, error) {
	r := c.Request()

	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return events.APIGatewayProxyRequest{}, echo.NewHTTPError(http.StatusRequestEntityTooLarge)
		}
		return events.APIGatewayProxyRequest{}, errors.Wrap(err, "failed to read request body")
	}

	headers := make(map[string]string, len(r.Header))
	multi := make(map[string][]string, len(r.Header))
	for k, values := range r.Header {
		name := strings.ToLower(k)
		multi[name] = values
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	query := make(map[string]string)
	for k, values := range r.URL.Query() {
		if len(values) > 0 {
			query[k] = values[0]
		}
	}

	return events.APIGatewayProxyRequest{
		Path:                  r.URL.Path,
		HTTPMethod:            r.Method,
		Headers:               headers,
		MultiValueHeaders:     multi,
		QueryStringParameters: query,
		Body:                  string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  middleware.GetRequestID(c),
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  c.RealIP(),
				UserAgent: r.UserAgent(),
			},
		},
	}, nil
}
