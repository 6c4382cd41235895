package spec

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Overlay returns base with the fields named in values replaced. Keys are the
// snake_case parameter names; string values are converted, so query strings
// and key=value flags can be applied directly. Unknown keys and blank values
// are an error.
func Overlay(base CostParameters, values map[string]any) (CostParameters, error) {
	for k, v := range values {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return base, fmt.Errorf("decoding parameters: %s has an empty value", k)
		}
	}
	out := base
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return base, fmt.Errorf("creating parameter decoder: %w", err)
	}
	if err := dec.Decode(values); err != nil {
		return base, fmt.Errorf("decoding parameters: %w", err)
	}
	return out, nil
}
