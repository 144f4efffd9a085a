/*
Package hamcp exposes a Home Assistant installation to AI agents over the
Model Context Protocol.

hamcp does not talk to Home Assistant directly. It forwards every tool call
to the HA Vibecode Agent, an add-on running next to Home Assistant that owns
file access, entity state, registries, Git versioning and the Supervisor API.
hamcp itself is stateless: it advertises a fixed catalog of tools, validates
arguments against each tool's input schema, translates the call into one or
more agent requests and renders the response as text.

# Layout

  - pkg/catalog: the tool descriptors and their input schemas.
  - pkg/dispatch: routes a validated call to its handler and renders the result.
  - pkg/agent: the HTTP client for the agent API.
  - pkg/commitmsg: derives Git commit messages from tool arguments.
  - pkg/adapters/mcp: the stdio, SSE and streamable HTTP transports.
  - cmd/hamcp: the command line entry point.

# Usage

	export HA_AGENT_URL=http://homeassistant.local:8099
	export HA_AGENT_KEY=...
	hamcp serve

Any MCP client that launches a stdio server can then use the tools. The
tools, call and health subcommands are useful to inspect the catalog and to
exercise a single tool without a client.
*/
package hamcp
