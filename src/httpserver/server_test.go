// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/bfhl/src/config"
	"github.com/H0llyW00dzZ/bfhl/src/httpserver"
	"github.com/H0llyW00dzZ/bfhl/src/internal/ai"
	"github.com/H0llyW00dzZ/bfhl/src/internal/dispatch"
	"github.com/H0llyW00dzZ/bfhl/src/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

const testEmail = "student@example.edu"

// envelopeSchema describes every response the server may produce.
const envelopeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["is_success", "official_email"],
  "additionalProperties": false,
  "properties": {
    "is_success": {"type": "boolean"},
    "official_email": {"type": "string"},
    "data": {},
    "error": {"type": "string", "minLength": 1}
  },
  "oneOf": [
    {"properties": {"is_success": {"const": true}}, "not": {"required": ["error"]}},
    {"properties": {"is_success": {"const": false}}, "required": ["error"], "not": {"required": ["data"]}}
  ]
}`

var schemaLoader = gojsonschema.NewStringLoader(envelopeSchema)

type response struct {
	status int
	header http.Header
	body   []byte
	env    map[string]any
}

func newServer(t *testing.T, asker ai.Asker, logs io.Writer) *httpserver.Server {
	t.Helper()
	cfg := config.Default()
	cfg.OfficialEmail = testEmail
	cfg.Server.BodyLimitBytes = 1024

	log := logger.NewJSONLogger(logs, logs == nil)
	return httpserver.New(cfg, dispatch.New(cfg.OfficialEmail, asker, log), log)
}

// do sends a request through app.Test and checks the body against the
// envelope schema before returning it.
func do(t *testing.T, s *httpserver.Server, method, path, body string, headers ...string) response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	require.NoError(t, err, "body: %s", raw)
	for _, e := range result.Errors() {
		t.Errorf("schema violation: %s (body: %s)", e, raw)
	}

	var env map[string]any
	require.NoError(t, json.Unmarshal(raw, &env))

	return response{status: resp.StatusCode, header: resp.Header, body: raw, env: env}
}

func TestBFHL(t *testing.T) {
	s := newServer(t, ai.AskerFunc(func(context.Context, string) (string, error) { return "Mumbai", nil }), nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantData   string
		wantError  string
	}{
		{name: "fibonacci", body: `{"fibonacci": 7}`, wantStatus: http.StatusOK, wantData: `[0,1,1,2,3,5,8,13]`},
		{name: "fibonacci five", body: `{"fibonacci": 5}`, wantStatus: http.StatusOK, wantData: `[0,1,1,2,3,5]`},
		{name: "prime mixed", body: `{"prime": [1, 2, 3, 4, 5, 17]}`, wantStatus: http.StatusOK, wantData: `[2,3,5,17]`},
		{name: "prime", body: `{"prime": [2, 4, 7, 9, 11]}`, wantStatus: http.StatusOK, wantData: `[2,7,11]`},
		{name: "lcm", body: `{"lcm": [12, 18, 24]}`, wantStatus: http.StatusOK, wantData: `72`},
		{name: "hcf", body: `{"hcf": [24, 36, 60]}`, wantStatus: http.StatusOK, wantData: `12`},
		{name: "hcf zero", body: `{"hcf": [0]}`, wantStatus: http.StatusOK, wantData: `0`},
		{name: "ai", body: `{"AI": "What is the capital city of Maharashtra?"}`, wantStatus: http.StatusOK, wantData: `"Mumbai"`},
		{name: "two keys", body: `{"fibonacci": 3, "prime": [2]}`, wantStatus: http.StatusBadRequest, wantError: "Request must contain exactly one key, found: fibonacci, prime"},
		{name: "empty object", body: `{}`, wantStatus: http.StatusBadRequest, wantError: "Request must contain exactly one of: fibonacci, prime, lcm, hcf, AI"},
		{name: "fibonacci too large", body: `{"fibonacci": 10001}`, wantStatus: http.StatusBadRequest, wantError: "fibonacci value too large"},
		{name: "negative prime", body: `{"prime": [-1]}`, wantStatus: http.StatusBadRequest, wantError: "prime must be an array of non-negative integers"},
		{name: "malformed", body: `{"fibonacci":`, wantStatus: http.StatusBadRequest, wantError: "Invalid JSON body"},
		{name: "trailing data", body: `{"fibonacci": 1} {}`, wantStatus: http.StatusBadRequest, wantError: "Invalid JSON body"},
		{name: "oversized", body: `{"AI": "` + strings.Repeat("a", 1100) + `"}`, wantStatus: http.StatusBadRequest, wantError: "Invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, s, http.MethodPost, "/bfhl", tt.body)

			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, testEmail, resp.env["official_email"])
			assert.Contains(t, resp.header.Get("Content-Type"), "application/json")

			if tt.wantError != "" {
				assert.Equal(t, false, resp.env["is_success"])
				assert.Equal(t, tt.wantError, resp.env["error"])
				return
			}

			assert.Equal(t, true, resp.env["is_success"])
			data, err := json.Marshal(resp.env["data"])
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantData, string(data))
		})
	}
}

func TestBFHL_BeyondDoublePrecision(t *testing.T) {
	s := newServer(t, nil, nil)

	tests := []struct {
		name     string
		body     string
		wantData string
	}{
		{name: "prime", body: `{"prime": [9007199254740993, 9007199254740997]}`, wantData: `"data":[9007199254740997]`},
		{name: "lcm", body: `{"lcm": [10000000000000000000, 3]}`, wantData: `"data":30000000000000000000`},
		{name: "hcf", body: `{"hcf": [18446744073709551616, 4]}`, wantData: `"data":4`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, s, http.MethodPost, "/bfhl", tt.body)
			assert.Equal(t, http.StatusOK, resp.status)
			assert.Equal(t, true, resp.env["is_success"])
			assert.Contains(t, string(resp.body), tt.wantData)
		})
	}
}

func TestBFHL_EmptyBody(t *testing.T) {
	s := newServer(t, nil, nil)

	resp := do(t, s, http.MethodPost, "/bfhl", "")
	assert.Equal(t, http.StatusBadRequest, resp.status)
	assert.Equal(t, "Request must contain exactly one of: fibonacci, prime, lcm, hcf, AI", resp.env["error"])
}

func TestBFHL_LargeFibonacci(t *testing.T) {
	s := newServer(t, nil, nil)

	resp := do(t, s, http.MethodPost, "/bfhl", `{"fibonacci": 10000}`)
	require.Equal(t, http.StatusOK, resp.status)

	var env struct {
		Data []json.Number `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.body, &env))
	require.Len(t, env.Data, 10001)
	assert.Equal(t, "0", env.Data[0].String())
	assert.Len(t, env.Data[10000].String(), 2090, "F(10000) has 2090 decimal digits")
}

func TestBFHL_AIFailures(t *testing.T) {
	tests := []struct {
		name       string
		asker      ai.Asker
		wantStatus int
		wantError  string
	}{
		{
			name:       "empty answer",
			asker:      ai.AskerFunc(func(context.Context, string) (string, error) { return "", nil }),
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid AI question",
		},
		{
			name: "provider error",
			asker: ai.AskerFunc(func(context.Context, string) (string, error) {
				return "", fmt.Errorf("%w: AI API error: %w", ai.ErrAI, genai.APIError{Code: 503})
			}),
			wantStatus: http.StatusBadGateway,
			wantError:  "AI Error",
		},
		{
			name:       "missing credential",
			asker:      ai.NewGemini(ai.Config{}),
			wantStatus: http.StatusBadGateway,
			wantError:  "AI Error",
		},
		{
			name: "other failure",
			asker: ai.AskerFunc(func(context.Context, string) (string, error) {
				return "", errors.New("boom")
			}),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t, tt.asker, nil)
			resp := do(t, s, http.MethodPost, "/bfhl", `{"AI": "Why?"}`)
			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantError, resp.env["error"])
		})
	}
}

func TestBFHL_MissingCredentialDoesNotAffectMath(t *testing.T) {
	s := newServer(t, ai.NewGemini(ai.Config{}), nil)

	resp := do(t, s, http.MethodPost, "/bfhl", `{"lcm": [4, 6]}`)
	assert.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, float64(12), resp.env["data"])
}

func TestHealth(t *testing.T) {
	s := newServer(t, nil, nil)

	resp := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.status)
	assert.JSONEq(t, `{"is_success":true,"official_email":"student@example.edu"}`, string(resp.body))
}

func TestNotFound(t *testing.T) {
	s := newServer(t, nil, nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/"},
		{http.MethodGet, "/bfhl"},
		{http.MethodPost, "/health"},
		{http.MethodDelete, "/bfhl"},
		{http.MethodPost, "/api/v1/bfhl"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := do(t, s, tc.method, tc.path, "")
			assert.Equal(t, http.StatusNotFound, resp.status)
			assert.Equal(t, "Not Found", resp.env["error"])
			assert.Equal(t, false, resp.env["is_success"])
		})
	}
}

func TestRequestID(t *testing.T) {
	s := newServer(t, nil, nil)

	t.Run("generated", func(t *testing.T) {
		resp := do(t, s, http.MethodGet, "/health", "")
		id := resp.header.Get(httpserver.HeaderRequestID)
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "expected a UUID, got %q", id)
	})

	t.Run("propagated", func(t *testing.T) {
		resp := do(t, s, http.MethodGet, "/health", "", httpserver.HeaderRequestID, "trace-123")
		assert.Equal(t, "trace-123", resp.header.Get(httpserver.HeaderRequestID))
	})

	t.Run("oversized replaced", func(t *testing.T) {
		long := strings.Repeat("x", 200)
		resp := do(t, s, http.MethodGet, "/health", "", httpserver.HeaderRequestID, long)
		assert.NotEqual(t, long, resp.header.Get(httpserver.HeaderRequestID))
	})

	t.Run("reaches the asker", func(t *testing.T) {
		var got string
		s := newServer(t, ai.AskerFunc(func(ctx context.Context, _ string) (string, error) {
			got = httpserver.RequestIDFromContext(ctx)
			return "Yes", nil
		}), nil)

		do(t, s, http.MethodPost, "/bfhl", `{"AI": "ok?"}`, httpserver.HeaderRequestID, "trace-456")
		assert.Equal(t, "trace-456", got)
	})
}

func TestPanicRecovery(t *testing.T) {
	var logs bytes.Buffer
	s := newServer(t, ai.AskerFunc(func(context.Context, string) (string, error) {
		panic("asker exploded")
	}), &logs)

	resp := do(t, s, http.MethodPost, "/bfhl", `{"AI": "panic?"}`, httpserver.HeaderRequestID, "panic-1")
	assert.Equal(t, http.StatusInternalServerError, resp.status)
	assert.Equal(t, "Internal server error", resp.env["error"])
	assert.Equal(t, "panic-1", resp.header.Get(httpserver.HeaderRequestID))
	assert.Contains(t, logs.String(), "asker exploded")
	assert.Contains(t, logs.String(), "request panic-1: POST /bfhl 500")
}

func TestAccessLog(t *testing.T) {
	var logs bytes.Buffer
	s := newServer(t, nil, &logs)

	do(t, s, http.MethodPost, "/bfhl", `{"hcf": [4, 6]}`, httpserver.HeaderRequestID, "log-1")
	do(t, s, http.MethodGet, "/missing", "", httpserver.HeaderRequestID, "log-2")

	out := logs.String()
	assert.Contains(t, out, "request log-1: POST /bfhl 200")
	assert.Contains(t, out, "request log-2: GET /missing 404")
}

func TestConcurrentRequests(t *testing.T) {
	s := newServer(t, nil, nil)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		go func(n int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(fmt.Sprintf(`{"hcf": [%d, %d]}`, 6*n+6, 4*n+4)))
			resp, err := s.App().Test(req, -1)
			if err != nil {
				t.Error(err)
				return
			}
			defer resp.Body.Close()

			var env dispatch.Envelope
			if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
				t.Error(err)
				return
			}
			if want := float64(2 * (n + 1)); env.Data != want {
				t.Errorf("worker %d: got %v want %v", n, env.Data, want)
			}
		}(i)
	}
	wg.Wait()
}

func TestRun_Shutdown(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	s := httpserver.New(cfg, dispatch.New("", nil, nil), nil)

	ready := make(chan string, 1)
	s.App().Hooks().OnListen(func(ld fiber.ListenData) error {
		ready <- net.JoinHostPort(ld.Host, ld.Port)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	addr := <-ready
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRun_ListenError(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = "256.0.0.1:bad"
	s := httpserver.New(cfg, dispatch.New("", nil, nil), nil)

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP server failed")
}
