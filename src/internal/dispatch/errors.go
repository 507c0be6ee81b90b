// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dispatch

import (
	"errors"
	"net/http"
	"strings"

	"github.com/H0llyW00dzZ/bfhl/src/internal/ai"
	"github.com/H0llyW00dzZ/bfhl/src/internal/request"
	"google.golang.org/genai"
)

// Kind classifies a failed request.
type Kind int

const (
	// KindMalformedBody means the body was not a single JSON value.
	KindMalformedBody Kind = iota + 1
	// KindValidation means the body was JSON but broke a request rule.
	KindValidation
	// KindUpstream means the AI provider failed.
	KindUpstream
	// KindInternal covers everything else.
	KindInternal
)

// Status returns the HTTP status code reported for k.
func (k Kind) Status() int {
	switch k {
	case KindMalformedBody, KindValidation:
		return http.StatusBadRequest
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindMalformedBody:
		return "malformed_body"
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Client facing messages that do not come from the validator.
const (
	MsgMalformedBody  = "Invalid JSON body"
	MsgInvalidAI      = "Invalid AI question"
	MsgInternal       = "Internal server error"
	MsgNotFound       = "Not Found"
	MsgAI             = "AI Error"
	upstreamMarkerAPI = "API"
	upstreamMarkerKey = "GEMINI"
)

// Error is a classified request failure. Message is returned to clients;
// Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Classify converts any error into an *Error.
//
// Rules, first match wins:
//   - an *Error is returned unchanged
//   - [request.ErrMalformedBody] becomes [KindMalformedBody]
//   - a *[request.ValidationError] becomes [KindValidation] with its message
//   - an upstream AI failure becomes [KindUpstream]
//   - any other AI failure becomes [KindInternal] reported as [MsgAI]
//   - anything else becomes [KindInternal] with a generic message
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var de *Error
	if errors.As(err, &de) {
		return de
	}
	if errors.Is(err, request.ErrMalformedBody) {
		return &Error{Kind: KindMalformedBody, Message: MsgMalformedBody, Err: err}
	}
	var ve *request.ValidationError
	if errors.As(err, &ve) {
		return &Error{Kind: KindValidation, Message: ve.Message, Err: err}
	}
	if isUpstream(err) {
		return &Error{Kind: KindUpstream, Message: MsgAI, Err: err}
	}
	if errors.Is(err, ai.ErrAI) {
		return &Error{Kind: KindInternal, Message: MsgAI, Err: err}
	}
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: err}
}

// isUpstream reports whether err came from the AI provider: either a typed
// provider error, a missing credential, or a message carrying one of the
// provider markers.
func isUpstream(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) || errors.Is(err, ai.ErrNotConfigured) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, upstreamMarkerAPI) || strings.Contains(msg, upstreamMarkerKey)
}
