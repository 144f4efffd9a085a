/*
Package observability provides Prometheus instrumentation for hamcp.

Metrics records two families: MCP tool calls (count and latency by tool and
outcome) and outbound agent requests (count and latency by operation and
status class). It satisfies both dispatch.Observer and agent.Observer, so a
single value is threaded through bootstrap and exposed at /metrics by the
network transports.
*/
package observability
