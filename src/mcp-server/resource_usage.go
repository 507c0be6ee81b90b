// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/bfhl/src/internal/dispatch"
	"github.com/H0llyW00dzZ/bfhl/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/bfhl/src/internal/helper/jsonrpc"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

const bytesPerMB = 1024 * 1024

// ResourceUsageData is a snapshot of the server process.
type ResourceUsageData struct {
	Timestamp      string         `json:"timestamp"`
	MemoryUsage    map[string]any `json:"memory_usage"`
	GCStats        map[string]any `json:"gc_stats"`
	SystemInfo     map[string]any `json:"system_info"`
	DetailedMemory map[string]any `json:"detailed_memory,omitempty"`
}

// CollectResourceUsage gathers current runtime statistics. detailed adds
// allocator counters and GC pause totals.
func CollectResourceUsage(detailed bool) *ResourceUsageData {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	data := &ResourceUsageData{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		MemoryUsage: map[string]any{
			"heap_alloc_mb":    float64(m.HeapAlloc) / bytesPerMB,
			"heap_sys_mb":      float64(m.HeapSys) / bytesPerMB,
			"heap_idle_mb":     float64(m.HeapIdle) / bytesPerMB,
			"heap_inuse_mb":    float64(m.HeapInuse) / bytesPerMB,
			"heap_released_mb": float64(m.HeapReleased) / bytesPerMB,
			"heap_objects":     m.HeapObjects,
			"stack_inuse_mb":   float64(m.StackInuse) / bytesPerMB,
			"stack_sys_mb":     float64(m.StackSys) / bytesPerMB,
		},
		GCStats: map[string]any{
			"num_gc":          m.NumGC,
			"num_forced_gc":   m.NumForcedGC,
			"gc_cpu_fraction": m.GCCPUFraction,
			"enable_gc":       m.EnableGC,
		},
		SystemInfo: map[string]any{
			"go_version":    runtime.Version(),
			"go_os":         runtime.GOOS,
			"go_arch":       runtime.GOARCH,
			"num_cpu":       runtime.NumCPU(),
			"num_goroutine": runtime.NumGoroutine(),
		},
	}

	if detailed {
		data.DetailedMemory = map[string]any{
			"alloc_mb":          float64(m.Alloc) / bytesPerMB,
			"total_alloc_mb":    float64(m.TotalAlloc) / bytesPerMB,
			"sys_mb":            float64(m.Sys) / bytesPerMB,
			"mallocs":           m.Mallocs,
			"frees":             m.Frees,
			"gc_pause_total_ms": float64(m.PauseTotalNs) / float64(time.Millisecond),
			"next_gc_mb":        float64(m.NextGC) / bytesPerMB,
		}
	}

	return data
}

// FormatResourceUsageAsJSON renders data as indented JSON.
func FormatResourceUsageAsJSON(data *ResourceUsageData) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal resource usage: %w", err)
	}
	return string(jsonData), nil
}

// metricField maps a row label to the key it reads.
type metricField struct{ label, key string }

var (
	systemFields = []metricField{
		{"Go Version", "go_version"},
		{"Operating System", "go_os"},
		{"Architecture", "go_arch"},
		{"CPU Count", "num_cpu"},
		{"Goroutines", "num_goroutine"},
	}
	memoryFields = []metricField{
		{"Heap Allocated", "heap_alloc_mb"},
		{"Heap System", "heap_sys_mb"},
		{"Heap In Use", "heap_inuse_mb"},
		{"Heap Idle", "heap_idle_mb"},
		{"Heap Released", "heap_released_mb"},
		{"Heap Objects", "heap_objects"},
		{"Stack In Use", "stack_inuse_mb"},
		{"Stack System", "stack_sys_mb"},
	}
	gcFields = []metricField{
		{"GC Cycles", "num_gc"},
		{"Forced GC", "num_forced_gc"},
		{"GC CPU Fraction", "gc_cpu_fraction"},
		{"GC Enabled", "enable_gc"},
	}
	detailedFields = []metricField{
		{"Current Alloc", "alloc_mb"},
		{"Total Alloc", "total_alloc_mb"},
		{"System Memory", "sys_mb"},
		{"Mallocs", "mallocs"},
		{"Frees", "frees"},
		{"GC Pause Total", "gc_pause_total_ms"},
		{"Next GC", "next_gc_mb"},
	}
)

// FormatResourceUsageAsMarkdown renders data as a markdown report with one
// table per section.
func FormatResourceUsageAsMarkdown(data *ResourceUsageData) (string, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString("# Resource Usage Report\n\n")
	if parsed, err := time.Parse(time.RFC3339, data.Timestamp); err == nil {
		fmt.Fprintf(buf, "**Generated:** %s\n\n", parsed.Format("January 2, 2006 at 3:04 PM MST"))
	} else {
		fmt.Fprintf(buf, "**Generated:** %s\n\n", data.Timestamp)
	}

	sections := []struct {
		title  string
		values map[string]any
		fields []metricField
	}{
		{"System Information", data.SystemInfo, systemFields},
		{"Memory Usage", data.MemoryUsage, memoryFields},
		{"Garbage Collection", data.GCStats, gcFields},
		{"Detailed Memory Statistics", data.DetailedMemory, detailedFields},
	}
	for _, s := range sections {
		if s.values == nil {
			continue
		}
		fmt.Fprintf(buf, "## %s\n\n", s.title)
		table, err := formatMarkdownTable(s.values, s.fields)
		if err != nil {
			return "", fmt.Errorf("failed to render %s: %w", strings.ToLower(s.title), err)
		}
		buf.WriteString(table)
	}

	return buf.String(), nil
}

// formatMarkdownTable renders the present fields of values as a two-column
// markdown table.
func formatMarkdownTable(values map[string]any, fields []metricField) (string, error) {
	var sb strings.Builder

	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		if v, ok := values[f.key]; ok {
			rows = append(rows, []string{f.label, formatValueForMarkdown(v, f.key)})
		}
	}

	table := tablewriter.NewTable(&sb,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header("Metric", "Value")
	if err := table.Bulk(rows); err != nil {
		return "", err
	}
	if err := table.Render(); err != nil {
		return "", err
	}

	sb.WriteString("\n")
	return sb.String(), nil
}

// formatValueForMarkdown formats a metric value for display.
func formatValueForMarkdown(value any, key string) string {
	switch v := value.(type) {
	case float64:
		switch {
		case key == "gc_cpu_fraction":
			return fmt.Sprintf("%.4f%%", v*100)
		case strings.HasSuffix(key, "_mb"):
			return fmt.Sprintf("%.2f MB", v)
		case strings.HasSuffix(key, "_ms"):
			return fmt.Sprintf("%.2f ms", v)
		}
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// resourceUsageArgs are the arguments of the get_resource_usage tool.
type resourceUsageArgs struct {
	Detailed bool   `json:"detailed"`
	Format   string `json:"format"`
}

// handleGetResourceUsage reports process statistics as JSON or markdown.
func handleGetResourceUsage(ctx context.Context, request mcp.CallToolRequest, _ *dispatch.Dispatcher) (*mcp.CallToolResult, error) {
	args := resourceUsageArgs{Format: "json"}
	if err := jsonrpc.UnmarshalFromMap(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data := CollectResourceUsage(args.Detailed)

	switch format := args.Format; format {
	case "json":
		text, err := FormatResourceUsageAsJSON(data)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultStructured(data, text), nil
	case "markdown":
		text, err := FormatResourceUsageAsMarkdown(data)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(text), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: use json or markdown", format)), nil
	}
}
