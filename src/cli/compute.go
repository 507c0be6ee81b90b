// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/H0llyW00dzZ/bfhl/src/internal/dispatch"
	"github.com/H0llyW00dzZ/bfhl/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/bfhl/src/internal/helper/posix"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/spf13/cobra"
)

var (
	// ErrOperationFailed is returned by compute when the envelope reports a
	// failure. The envelope is still printed.
	ErrOperationFailed = errors.New("operation failed")

	// ErrNoInput is returned by compute when the request body is blank.
	ErrNoInput = errors.New("no request body given: pass JSON as an argument, with --file, or on stdin")

	// ErrConflictingInput is returned when both an argument and --file are given.
	ErrConflictingInput = errors.New("request body given both as an argument and with --file")
)

func (a *app) newComputeCommand() *cobra.Command {
	var (
		file  string
		table bool
	)

	cmd := &cobra.Command{
		Use:   "compute [JSON]",
		Short: "Run one request body and print the response envelope",
		Example: fmt.Sprintf(`  %[1]s compute '{"fibonacci": 7}'
  %[1]s compute --table '{"lcm": [12, 18, 24]}'
  echo '{"prime": [2, 4, 7]}' | %[1]s compute
  %[1]s compute --file request.json`, posix.GetExecutableName()),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := a.readBody(args, file)
			if err != nil {
				return err
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			status, env := newDispatcher(cfg, a.log).HandleRaw(cmd.Context(), raw)

			if table {
				err = writeEnvelopeTable(a.streams.Out, env)
			} else {
				err = writeEnvelopeJSON(a.streams.Out, env)
			}
			if err != nil {
				return err
			}

			if !env.IsSuccess {
				return fmt.Errorf("%w (status %d): %s", ErrOperationFailed, status, env.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the request body from FILE")
	cmd.Flags().BoolVarP(&table, "table", "t", false, "print the envelope as a markdown table")
	return cmd
}

// readBody takes the request body from the argument, the file or stdin,
// in that order.
func (a *app) readBody(args []string, file string) ([]byte, error) {
	var raw []byte
	switch {
	case len(args) == 1 && file != "":
		return nil, ErrConflictingInput
	case len(args) == 1:
		raw = []byte(args[0])
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading input file: %w", err)
		}
		raw = data
	default:
		data, err := readAll(a.streams.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		raw = data
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrNoInput
	}
	return raw, nil
}

// readAll drains r through a pooled buffer.
func readAll(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, nil
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

func writeEnvelopeJSON(w io.Writer, env dispatch.Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}
	return nil
}

// writeEnvelopeTable renders env as a two-column markdown table. The data
// cell holds the compact JSON of the result.
func writeEnvelopeTable(w io.Writer, env dispatch.Envelope) error {
	rows := [][]string{
		{"is_success", strconv.FormatBool(env.IsSuccess)},
		{"official_email", env.OfficialEmail},
	}
	if env.IsSuccess {
		data, err := json.Marshal(env.Data)
		if err != nil {
			return fmt.Errorf("failed to encode data: %w", err)
		}
		rows = append(rows, []string{"data", string(data)})
	} else {
		rows = append(rows, []string{"error", env.Error})
	}

	table := tablewriter.NewTable(w, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Field", "Value")
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
