package dispatch

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// decode copies args into a parameter struct using its mapstructure tags.
// JSON numbers arrive as float64 and are converted to the field type.
func decode(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}

// Optional-argument accessors. Absent or mistyped values yield the zero
// value; required fields have already been checked against the schema.

func str(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func integer(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func flag(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

func object(args map[string]any, key string) map[string]any {
	m, _ := args[key].(map[string]any)
	return m
}
