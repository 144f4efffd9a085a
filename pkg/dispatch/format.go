package dispatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Format renders a handler result as text. Strings pass through unchanged,
// everything else is indented JSON. A missing result renders as "undefined"
// and JSON null as "null". Serialization failures are reported inline.
func Format(v any) string {
	switch r := v.(type) {
	case nil:
		return "undefined"
	case string:
		return r
	case json.RawMessage:
		if len(bytes.TrimSpace(r)) == 0 {
			return "undefined"
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, r, "", "  "); err != nil {
			return unserializable(err)
		}
		return buf.String()
	default:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return unserializable(err)
		}
		return string(data)
	}
}

func unserializable(err error) string {
	return fmt.Sprintf("[unserializable result: %v]", err)
}

// renderDiff returns the agent's diff text, or "No changes".
func renderDiff(raw json.RawMessage) any {
	var resp struct {
		Diff string `json:"diff"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return raw
	}
	if resp.Diff == "" {
		return "No changes"
	}
	return resp.Diff
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// renderLogs formats agent log entries one per line under a count header.
// Bodies without a logs array are rendered as JSON.
func renderLogs(raw json.RawMessage) any {
	var resp struct {
		Logs  []logEntry `json:"logs"`
		Count *int       `json:"count"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil || resp.Logs == nil {
		return raw
	}
	count := len(resp.Logs)
	if resp.Count != nil {
		count = *resp.Count
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Agent Logs (%d entries):\n\n", count)
	for i, e := range resp.Logs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%s] %-8s %s", e.Timestamp, e.Level, e.Message)
	}
	return b.String()
}

// ack returns confirm when the agent acknowledged with an empty body.
func ack(raw json.RawMessage, err error, confirm string) (any, error) {
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return confirm, nil
	}
	return raw, nil
}
