// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpserver

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request identifier in both directions.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen bounds client supplied identifiers.
const maxRequestIDLen = 128

const localsRequestID = "requestid"

type requestIDKey struct{}

// RequestIDFromContext returns the request identifier stored in ctx by the
// HTTP server, or "" when there is none.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestID accepts the client's X-Request-ID or generates a UUID, echoes it
// in the response and stores it in both the Fiber locals and the user context.
func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get(HeaderRequestID)
	if id == "" || len(id) > maxRequestIDLen {
		id = uuid.NewString()
	}

	c.Set(HeaderRequestID, id)
	c.Locals(localsRequestID, id)
	c.SetUserContext(context.WithValue(c.UserContext(), requestIDKey{}, id))
	return c.Next()
}

func requestIDFrom(c *fiber.Ctx) string {
	id, _ := c.Locals(localsRequestID).(string)
	return id
}

// accessLog writes one line per request once the response is complete.
func (s *Server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		// Render the envelope now so the logged status is the final one.
		if herr := c.App().ErrorHandler(c, err); herr != nil {
			return herr
		}
	}

	s.log.Printf("request %s: %s %s %d %s",
		requestIDFrom(c), c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start).Round(time.Microsecond))
	return nil
}
