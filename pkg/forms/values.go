package forms

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadValues reads a form values file (YAML or JSON; JSON is a subset of
// YAML) and returns the field value mapping. Scalars of any type are
// coerced to strings, explicit nulls become the empty string, and nested
// structures are rejected with an error naming the offending key.
func LoadValues(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file %q: %w", path, err)
	}
	return ParseValues(data)
}

// ParseValues parses YAML/JSON bytes into a Values mapping. See LoadValues.
func ParseValues(data []byte) (Values, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse values: %w", err)
	}

	values := make(Values, len(raw))
	for key, val := range raw {
		s, err := coerceScalar(val)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		values[FieldName(key)] = s
	}
	return values, nil
}

// coerceScalar converts an arbitrary decoded scalar to its string form.
// nil (YAML null / absent JSON value) degrades to "".
func coerceScalar(val any) (string, error) {
	switch v := val.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		// yaml.v3 decodes unquoted integers as int, so a float64 here was
		// written with a decimal point; keep the original precision.
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("expected a scalar value, got %T", val)
	}
}
