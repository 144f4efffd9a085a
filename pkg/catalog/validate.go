package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/mark3labs/mcp-go/mcp"
)

// ValidationError reports arguments that do not satisfy a tool's schema.
type ValidationError struct {
	Tool   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, e.Reason)
	}
	return fmt.Sprintf("invalid arguments for %s: %s: %s", e.Tool, e.Field, e.Reason)
}

// Validate checks args against the input schema of the named tool. Unknown
// names wrap ErrUnknownTool. A null optional argument counts as absent; a
// null required one is rejected.
func Validate(name string, args map[string]any) error {
	schema, ok := schemas[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	err := schema.VisitJSON(withoutOptionalNulls(schema, args))
	if err == nil {
		return nil
	}

	var se *openapi3.SchemaError
	if errors.As(err, &se) {
		return &ValidationError{
			Tool:   name,
			Field:  strings.Join(se.JSONPointer(), "."),
			Reason: se.Reason,
		}
	}
	return &ValidationError{Tool: name, Reason: err.Error()}
}

func withoutOptionalNulls(schema *openapi3.Schema, args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}
	required := make(map[string]bool, len(schema.Required))
	for _, r := range schema.Required {
		required[r] = true
	}
	for k, v := range out {
		if v == nil && !required[k] {
			delete(out, k)
		}
	}
	return out
}

// inputSchema converts the JSON schema advertised by an mcp.Tool into an
// openapi3 schema. Only the constructs the catalog uses are understood:
// primitive types, enums, string arrays and free-form objects.
func inputSchema(t mcp.Tool) *openapi3.Schema {
	root := openapi3.NewObjectSchema()

	names := make([]string, 0, len(t.InputSchema.Properties))
	for name := range t.InputSchema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop, _ := t.InputSchema.Properties[name].(map[string]any)
		root.WithProperty(name, propertySchema(prop))
	}
	if len(t.InputSchema.Required) > 0 {
		root.Required = append([]string(nil), t.InputSchema.Required...)
	}
	return root
}

func propertySchema(prop map[string]any) *openapi3.Schema {
	var s *openapi3.Schema
	switch prop["type"] {
	case "string":
		s = openapi3.NewStringSchema()
	case "number":
		s = openapi3.NewFloat64Schema()
	case "integer":
		s = openapi3.NewIntegerSchema()
	case "boolean":
		s = openapi3.NewBoolSchema()
	case "array":
		s = openapi3.NewArraySchema()
		if items, ok := prop["items"].(map[string]any); ok {
			s.WithItems(propertySchema(items))
		}
	case "object":
		s = openapi3.NewObjectSchema()
	default:
		return &openapi3.Schema{}
	}

	switch enum := prop["enum"].(type) {
	case []string:
		values := make([]any, len(enum))
		for i, v := range enum {
			values[i] = v
		}
		s.WithEnum(values...)
	case []any:
		s.WithEnum(enum...)
	}
	return s
}
