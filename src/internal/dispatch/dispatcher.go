// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dispatch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/H0llyW00dzZ/bfhl/src/internal/ai"
	"github.com/H0llyW00dzZ/bfhl/src/internal/mathkit"
	"github.com/H0llyW00dzZ/bfhl/src/internal/request"
	"github.com/H0llyW00dzZ/bfhl/src/logger"
)

// DefaultOfficialEmail is reported when no official email was configured.
const DefaultOfficialEmail = "YOUR CHITKARA EMAIL"

// Envelope is the response shape shared by every endpoint and transport.
//
// On success Data holds the result and Error is empty; on failure Error
// holds a client-safe message and Data is nil. Data is only omitted when
// nil, so zero results such as an HCF of 0 are still reported.
type Envelope struct {
	IsSuccess     bool   `json:"is_success"`
	OfficialEmail string `json:"official_email"`
	Data          any    `json:"data,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Dispatcher executes operations. It holds only read-only state and is safe
// for concurrent use.
type Dispatcher struct {
	email string
	asker ai.Asker
	log   logger.Logger
}

// New creates a Dispatcher reporting email in every envelope.
// An empty email falls back to [DefaultOfficialEmail]; a nil log discards
// failure logs. asker may be nil, in which case AI queries fail as not
// configured.
func New(email string, asker ai.Asker, log logger.Logger) *Dispatcher {
	if email == "" {
		email = DefaultOfficialEmail
	}
	if log == nil {
		log = logger.NewJSONLogger(nil, true)
	}
	return &Dispatcher{email: email, asker: asker, log: log}
}

// Email returns the official email reported in envelopes.
func (d *Dispatcher) Email() string { return d.email }

// Compute runs op and returns its raw result.
//
// Results by operation:
//   - [request.Fibonacci]: []*big.Int
//   - [request.Prime]: []*big.Int, never nil
//   - [request.LCM]: *big.Int
//   - [request.HCF]: *big.Int
//   - [request.AIQuery]: string
//
// Errors are *[Error] values.
func (d *Dispatcher) Compute(ctx context.Context, op request.Operation) (any, error) {
	switch op := op.(type) {
	case request.Fibonacci:
		seq, err := mathkit.Fibonacci(op.N)
		if err != nil {
			return nil, Classify(err)
		}
		return seq, nil
	case request.Prime:
		return mathkit.PrimesFromSlice(op.Items), nil
	case request.LCM:
		v, err := mathkit.LCMOfSlice(op.Items)
		if err != nil {
			return nil, Classify(err)
		}
		return v, nil
	case request.HCF:
		v, err := mathkit.HCFOfSlice(op.Items)
		if err != nil {
			return nil, Classify(err)
		}
		return v, nil
	case request.AIQuery:
		return d.ask(ctx, op.Question)
	default:
		return nil, Classify(fmt.Errorf("unsupported operation %T", op))
	}
}

func (d *Dispatcher) ask(ctx context.Context, question string) (any, error) {
	if d.asker == nil {
		return nil, Classify(fmt.Errorf("%w: %w", ai.ErrAI, ai.ErrNotConfigured))
	}

	word, err := d.asker.Ask(ctx, question)
	if err != nil {
		return nil, Classify(err)
	}
	if word == "" {
		return nil, &Error{Kind: KindValidation, Message: MsgInvalidAI}
	}
	return word, nil
}

// Dispatch runs op and wraps the outcome in an envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, op request.Operation) (int, Envelope) {
	data, err := d.Compute(ctx, op)
	if err != nil {
		return d.Failure(err)
	}
	return http.StatusOK, d.Success(data)
}

// Handle validates a decoded body and dispatches it.
func (d *Dispatcher) Handle(ctx context.Context, body any) (int, Envelope) {
	op, err := request.Validate(body)
	if err != nil {
		return d.Failure(err)
	}
	return d.Dispatch(ctx, op)
}

// HandleRaw decodes, validates and dispatches a raw JSON body.
func (d *Dispatcher) HandleRaw(ctx context.Context, raw []byte) (int, Envelope) {
	body, err := request.Decode(raw)
	if err != nil {
		return d.Failure(err)
	}
	return d.Handle(ctx, body)
}

// Health returns the envelope served by the health endpoint.
func (d *Dispatcher) Health() Envelope {
	return Envelope{IsSuccess: true, OfficialEmail: d.email}
}

// Success wraps data in a success envelope.
func (d *Dispatcher) Success(data any) Envelope {
	return Envelope{IsSuccess: true, OfficialEmail: d.email, Data: data}
}

// Failure classifies err and returns its status and failure envelope.
// Upstream and internal failures are logged with their cause.
func (d *Dispatcher) Failure(err error) (int, Envelope) {
	de := Classify(err)
	if de.Kind == KindUpstream || de.Kind == KindInternal {
		d.log.Printf("%s failure: %v", de.Kind, de)
	}
	return de.Kind.Status(), Envelope{OfficialEmail: d.email, Error: de.Message}
}
