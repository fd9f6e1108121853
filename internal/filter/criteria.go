package filter

import (
	"fmt"
	"strconv"
)

// Criteria is the bag of named filter inputs for one search request. Part
// of it comes from the caller's request body and part is forced in by the
// orchestrator from session identity; by the time it reaches the catalog
// the two are indistinguishable.
type Criteria map[string]interface{}

// MissingKeyError reports a required criterion that was absent from the
// bag. It carries the key so the client can highlight the field.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("Missing required key %q!", e.Key)
}

// String reads an optional string criterion, tolerating any scalar the
// JSON decoder may have produced.
func (c Criteria) String(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// Int reads an optional integer criterion. JSON numbers arrive as
// float64; numeric strings are accepted for form-shaped clients.
func (c Criteria) Int(key string) *int {
	v, ok := c[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case int:
		return &n
	case float64:
		i := int(n)
		return &i
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return &i
		}
	}
	return nil
}

// Bool reads an optional boolean criterion, defaulting to false.
func (c Criteria) Bool(key string) bool {
	v, ok := c[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Strings reads an optional list-of-strings criterion. A bare string
// counts as a one-element list. The second return distinguishes "absent"
// from "present but empty".
func (c Criteria) Strings(key string) ([]string, bool) {
	v, ok := c[key]
	if !ok || v == nil {
		return nil, false
	}
	switch vs := v.(type) {
	case []string:
		return vs, true
	case string:
		return []string{vs}, true
	case []interface{}:
		out := make([]string, 0, len(vs))
		for _, item := range vs {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}

// Set reads an optional list criterion into a Set, nil when absent.
func (c Criteria) Set(key string) *Set {
	vs, ok := c.Strings(key)
	if !ok {
		return nil
	}
	return NewSet(vs)
}

// RequireSet is Set for criteria the filter cannot run without.
func (c Criteria) RequireSet(key string) (*Set, error) {
	s := c.Set(key)
	if s == nil {
		return nil, &MissingKeyError{Key: key}
	}
	return s, nil
}

// RequireString reads a mandatory scalar criterion.
func (c Criteria) RequireString(key string) (string, error) {
	if _, ok := c[key]; !ok {
		return "", &MissingKeyError{Key: key}
	}
	return c.String(key), nil
}

// Range assembles a Range from the `<key>_lower` / `<key>_upper` pair of
// criteria. Either side may be absent.
func (c Criteria) Range(key string) Range {
	var r Range
	if v := c.String(key + "_lower"); v != "" {
		r.Lower = &v
	}
	if v := c.String(key + "_upper"); v != "" {
		r.Upper = &v
	}
	return r
}
