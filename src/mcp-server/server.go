// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"text/template"

	"github.com/H0llyW00dzZ/bfhl/src/config"
	"github.com/H0llyW00dzZ/bfhl/src/internal/dispatch"
	"github.com/H0llyW00dzZ/bfhl/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/bfhl/src/internal/request"
	"github.com/H0llyW00dzZ/bfhl/src/logger"
	"github.com/H0llyW00dzZ/bfhl/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/bfhl/src/version"
	"github.com/mark3labs/mcp-go/server"
)

var (
	versionMu  sync.RWMutex
	appVersion = version.Version
)

// GetVersion returns the version the MCP server reports, which is the one
// last passed to [Run] or the build version before that.
func GetVersion() string {
	versionMu.RLock()
	defer versionMu.RUnlock()
	return appVersion
}

func setVersion(v string) {
	versionMu.Lock()
	appVersion = v
	versionMu.Unlock()
}

// ServerConfig holds what [Run] needs to serve.
//
// Fields:
//   - Version: Version reported to clients, the build version when empty
//   - Config: Configuration exposed through the config resource
//   - Dispatcher: Dispatcher shared with the HTTP server (required)
//   - Logger: Receives transport errors; nil discards them
//   - In, Out: The stdio streams
type ServerConfig struct {
	Version    string
	Config     *config.Config
	Dispatcher *dispatch.Dispatcher
	Logger     logger.Logger
	In         io.Reader
	Out        io.Writer
}

// instructionsData feeds the instructions template.
type instructionsData struct {
	Tools          []toolSummary
	MaxFibonacci   int
	MaxItems       int
	MaxQuestionLen int
}

type toolSummary struct{ Name, Description string }

// loadInstructions renders the embedded instructions template for tools.
func loadInstructions(fsys templates.EmbedFS, tools []ToolDefinition) (string, error) {
	raw, err := fsys.ReadFile("bfhl_instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load instructions template: %w", err)
	}

	tmpl, err := template.New("instructions").Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	data := instructionsData{
		Tools:          make([]toolSummary, 0, len(tools)),
		MaxFibonacci:   request.MaxFibonacci,
		MaxItems:       request.MaxItems,
		MaxQuestionLen: request.MaxQuestionLen,
	}
	for _, t := range tools {
		data.Tools = append(data.Tools, toolSummary{Name: t.Tool.Name, Description: t.Tool.Description})
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()
	if err := tmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to render instructions: %w", err)
	}
	return buf.String(), nil
}

// NewServer builds the MCP server with every default tool, resource and
// prompt.
func NewServer(cfg ServerConfig) (*server.MCPServer, error) {
	tools := createTools()
	instructions, err := loadInstructions(templates.MagicEmbed, tools)
	if err != nil {
		return nil, err
	}

	return NewServerBuilder().
		WithConfig(cfg.Config).
		WithEmbed(templates.MagicEmbed).
		WithVersion(cfg.Version).
		WithDispatcher(cfg.Dispatcher).
		WithTools(tools...).
		WithDefaultResources().
		WithPrompts(createPrompts()...).
		WithInstructions(instructions).
		Build()
}

// Run serves MCP over cfg.In and cfg.Out until the input ends or ctx is
// cancelled; both count as a clean stop and return nil.
//
// Returns:
//   - error: Build failures wrapped with "failed to build server", or a
//     transport read error
func Run(ctx context.Context, cfg ServerConfig) error {
	if cfg.Version == "" {
		cfg.Version = version.Version
	}
	setVersion(cfg.Version)

	s, err := NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	l := cfg.Logger
	if l == nil {
		l = logger.NewJSONLogger(nil, true)
	}
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(newStdLogger(l))

	if err := stdio.Listen(ctx, cfg.In, cfg.Out); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// logWriter adapts a [logger.Logger] to the [io.Writer] behind a standard
// library logger, one entry per write.
type logWriter struct{ l logger.Logger }

func (w logWriter) Write(p []byte) (int, error) {
	w.l.Println(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func newStdLogger(l logger.Logger) *log.Logger {
	return log.New(logWriter{l: l}, "mcp: ", 0)
}
