package book

import (
	"fmt"
	"math"
)

// ValidationError describes a field of a month document with the wrong shape.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// ValidateTypes checks the raw document before any entry is parsed:
// "take" and "put" must be lists of strings and "target", if set, an integer.
func ValidateTypes(raw map[string]any) []ValidationError {
	var errs []ValidationError

	for _, key := range []string{"take", "put"} {
		if err := checkStringList(raw, key); err != nil {
			errs = append(errs, *err)
		}
	}

	if v, ok := raw["target"]; ok {
		if _, ok := asInt(v); !ok {
			errs = append(errs, ValidationError{
				Field:       "target",
				Description: fmt.Sprintf("expected an integer, got %s", typeName(v)),
			})
		}
	}

	return errs
}

func checkStringList(raw map[string]any, key string) *ValidationError {
	v, ok := raw[key]
	if !ok {
		return &ValidationError{Field: key, Description: "missing list"}
	}
	list, ok := v.([]any)
	if !ok {
		return &ValidationError{Field: key, Description: fmt.Sprintf("expected a list, got %s", typeName(v))}
	}
	for i, item := range list {
		if _, ok := item.(string); !ok {
			return &ValidationError{
				Field:       key,
				Description: fmt.Sprintf("item %d: expected a string, got %s", i, typeName(item)),
			}
		}
	}
	return nil
}

// fromRaw builds a Document from a raw map that passed ValidateTypes.
func fromRaw(raw map[string]any) Document {
	doc := Document{
		Take: stringList(raw["take"]),
		Put:  stringList(raw["put"]),
	}
	if v, ok := raw["target"]; ok {
		n, _ := asInt(v)
		doc.Target = &n
	}

	for k, v := range raw {
		switch k {
		case "take", "put", "target":
			continue
		}
		if doc.Extra == nil {
			doc.Extra = make(map[string]any)
		}
		doc.Extra[k] = v
	}
	return doc
}

func stringList(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, item.(string))
	}
	return out
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "float"
	case []any:
		return "list"
	case map[string]any:
		return "table"
	}
	return fmt.Sprintf("%T", v)
}
