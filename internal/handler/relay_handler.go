package handler

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/hkbertoson/form-relay/internal/config"
	"github.com/hkbertoson/form-relay/internal/errs"
	"github.com/hkbertoson/form-relay/internal/middleware"
	"github.com/hkbertoson/form-relay/internal/payload"
	"github.com/hkbertoson/form-relay/internal/response"
	"github.com/hkbertoson/form-relay/internal/service"
	"github.com/hkbertoson/form-relay/internal/validation"
	"github.com/rs/zerolog"
)

// netlifyRequestIDHeader is set by Netlify on every function invocation.
const netlifyRequestIDHeader = "x-nf-request-id"

// RelayHandler is the function entry point: gate, parse, validate, send.
//
// Every stage can end the invocation with a response; nothing is
// returned as an error.
type RelayHandler struct {
	cfg        *config.Config
	logger     zerolog.Logger
	gate       *middleware.OriginGate
	dispatcher *service.MailDispatcher
}

// NewRelayHandler builds the handler from the process-wide config.
func NewRelayHandler(cfg *config.Config, logger zerolog.Logger, dispatcher *service.MailDispatcher) *RelayHandler {
	return &RelayHandler{
		cfg:        cfg,
		logger:     logger,
		gate:       middleware.NewOriginGate(cfg.AllowList),
		dispatcher: dispatcher,
	}
}

// Handle has the signature lambda.Start expects. The error is always nil.
func (h *RelayHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()
	origin := requestHeader(req, "origin")
	asJSON := middleware.IsJSON(requestHeader(req, "content-type"))

	logger := h.logger.With().
		Str("request_id", requestID(req)).
		Str("method", req.HTTPMethod).
		Str("origin", origin).
		Bool("json", asJSON).
		Logger()
	ctx = logger.WithContext(ctx)

	resp := h.relay(ctx, req, origin, asJSON)

	// 5xx = server fault, 4xx = client fault, anything else is info.
	var e *zerolog.Event
	switch {
	case resp.StatusCode >= 500:
		e = logger.Error()
	case resp.StatusCode >= 400:
		e = logger.Warn()
	default:
		e = logger.Info()
	}
	e.Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("submission handled")

	return resp, nil
}

func (h *RelayHandler) relay(ctx context.Context, req events.APIGatewayProxyRequest, origin string, asJSON bool) events.APIGatewayProxyResponse {
	headers, stop := h.gate.Check(req.HTTPMethod, origin, asJSON)
	if stop != nil {
		return *stop
	}

	p := payload.Parse(requestBody(req))

	result := validation.Validate(p)
	if !result.Valid {
		return h.reject(ctx, errs.ValidationError(result.Errors), headers, origin, asJSON)
	}

	if !validation.IsEmail(p.Get("email")) {
		return h.reject(ctx, errs.NewBadRequestError(errs.MessageInvalidEmail, nil), headers, origin, asJSON)
	}

	return h.dispatcher.Send(ctx, service.Dispatch{
		Payload: p,
		Headers: headers,
		Origin:  origin,
		JSON:    asJSON,
	})
}

// reject answers a bad submission: the error body for JSON clients, a
// redirect to the error target for form posts.
func (h *RelayHandler) reject(ctx context.Context, err *errs.HTTPError, headers response.Headers, origin string, asJSON bool) events.APIGatewayProxyResponse {
	event := zerolog.Ctx(ctx).Debug().Str("error_code", err.Code)
	if len(err.Errors) > 0 {
		event = event.Interface("fields", err.Errors)
	}
	event.Msg(err.Error())

	if asJSON {
		return response.Error(err, headers, true)
	}
	return response.Redirect(headers, h.cfg.Redirect.ErrorURL(origin))
}

// requestHeader reads a header from the single-value map, falling back
// to the first multi-value entry.
func requestHeader(req events.APIGatewayProxyRequest, name string) string {
	if v := middleware.Header(req.Headers, name); v != "" {
		return v
	}
	for k, values := range req.MultiValueHeaders {
		if len(values) > 0 && strings.EqualFold(k, name) {
			return values[0]
		}
	}
	return ""
}

// requestBody undoes the platform's base64 wrapping. A body that claims
// to be base64 but is not decodes to nothing.
func requestBody(req events.APIGatewayProxyRequest) string {
	if !req.IsBase64Encoded {
		return req.Body
	}
	decoded, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func requestID(req events.APIGatewayProxyRequest) string {
	if id := req.RequestContext.RequestID; id != "" {
		return id
	}
	if id := requestHeader(req, netlifyRequestIDHeader); id != "" {
		return id
	}
	return uuid.New().String()
}
