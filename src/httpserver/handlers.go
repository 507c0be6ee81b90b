// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/H0llyW00dzZ/bfhl/src/internal/dispatch"
	"github.com/H0llyW00dzZ/bfhl/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/bfhl/src/internal/request"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return s.writeEnvelope(c, http.StatusOK, s.dispatcher.Health())
}

func (s *Server) handleBFHL(c *fiber.Ctx) error {
	raw := c.Body()
	if len(raw) > s.bodyLimit {
		return s.writeFailure(c, request.ErrMalformedBody)
	}

	// A request without a body is an empty object, not a parse error.
	if len(bytes.TrimSpace(raw)) == 0 {
		status, env := s.dispatcher.Handle(c.UserContext(), map[string]any{})
		return s.writeEnvelope(c, status, env)
	}

	status, env := s.dispatcher.HandleRaw(c.UserContext(), raw)
	return s.writeEnvelope(c, status, env)
}

// errorHandler turns framework errors into failure envelopes.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			return s.writeEnvelope(c, http.StatusNotFound, dispatch.Envelope{
				OfficialEmail: s.dispatcher.Email(),
				Error:         dispatch.MsgNotFound,
			})
		case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
			return s.writeFailure(c, request.ErrMalformedBody)
		}
	}

	s.log.Printf("request %s: unhandled error: %v", requestIDFrom(c), err)
	return s.writeFailure(c, &dispatch.Error{Kind: dispatch.KindInternal, Message: dispatch.MsgInternal, Err: err})
}

func (s *Server) writeFailure(c *fiber.Ctx, err error) error {
	status, env := s.dispatcher.Failure(err)
	return s.writeEnvelope(c, status, env)
}

// writeEnvelope encodes env into a pooled buffer and copies it into the
// response.
func (s *Server) writeEnvelope(c *fiber.Ctx, status int, env dispatch.Envelope) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(env); err != nil {
		s.log.Printf("request %s: encoding response: %v", requestIDFrom(c), err)
		c.Status(http.StatusInternalServerError)
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(`{"is_success":false,"official_email":"","error":"Internal server error"}`)
	}

	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	// SetBody copies; buf goes back to the pool on return.
	c.Response().SetBody(buf.Bytes())
	return nil
}
