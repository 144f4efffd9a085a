package hamcp

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version is the release of the hamcp binary. It is stamped into the
// client-version header sent to the agent and reported over MCP.
var Version = strings.TrimSpace(rawVersion)
