// Package schema validates untyped client-descriptor and server-connection
// input against the shapes the config builders are allowed to receive.
//
// Every schema exposes two validation modes. The safe mode is an ordinary
// Parse function returning (value, error) where a non-nil error is always a
// [*Error] carrying field-level issues in schema-declaration order. The
// strict mode is the Must variant, which panics with the same [*Error] and is
// intended for call sites that already guarantee well-formed input.
package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Issue is a single validation problem located by a path into the input.
type Issue struct {
	// Path locates the offending field, e.g. ["transport"] or
	// ["oauth", "dcr", "redirect_uri_patterns"].
	Path []string `json:"path"`

	// Message is a human-readable description of the problem.
	Message string `json:"message"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return strings.Join(i.Path, ".") + ": " + i.Message
}

// Error aggregates the issues found while validating one input value.
// Issues appear in schema-declaration order; Issues[0] is the issue callers
// are expected to inspect in single-error scenarios.
type Error struct {
	Issues []Issue `json:"issues"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch len(e.Issues) {
	case 0:
		return "validation failed"
	case 1:
		return "validation failed: " + e.Issues[0].Error()
	default:
		return fmt.Sprintf("validation failed: %s (and %d more issues)",
			e.Issues[0].Error(), len(e.Issues)-1)
	}
}

// typeName returns the JSON-ish type name of v for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return "number"
	case []any, []string:
		return "array"
	case map[string]any, map[string]string:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// decoder walks an untyped object collecting issues in call order.
// All field readers return the zero value when the field is absent or
// mistyped, recording the corresponding issue.
type decoder struct {
	issues []Issue
}

func (d *decoder) add(path []string, format string, args ...any) {
	// Clone: callers build paths with append off shared prefixes.
	d.issues = append(d.issues, Issue{
		Path:    slices.Clone(path),
		Message: fmt.Sprintf(format, args...),
	})
}

// err returns the accumulated issues as a *Error, or nil if none.
func (d *decoder) err() *Error {
	if len(d.issues) == 0 {
		return nil
	}
	return &Error{Issues: d.issues}
}

// object asserts that v is an object. A nil return with ok=false means the
// issue has already been recorded.
func (d *decoder) object(path []string, v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		d.add(path, "expected object, got %s", typeName(v))
		return nil, false
	}
	return obj, true
}

// requireString reads a mandatory string field.
func (d *decoder) requireString(obj map[string]any, path ...string) string {
	key := path[len(path)-1]
	v, ok := obj[key]
	if !ok {
		d.add(path, "required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.add(path, "expected string, got %s", typeName(v))
		return ""
	}
	return s
}

// optionalString reads an optional string field. The second return reports
// whether the field was present and well-typed.
func (d *decoder) optionalString(obj map[string]any, path ...string) (string, bool) {
	key := path[len(path)-1]
	v, ok := obj[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		d.add(path, "expected string, got %s", typeName(v))
		return "", false
	}
	return s, true
}

// requireBool reads a mandatory boolean field.
func (d *decoder) requireBool(obj map[string]any, path ...string) bool {
	key := path[len(path)-1]
	v, ok := obj[key]
	if !ok {
		d.add(path, "required")
		return false
	}
	b, ok := v.(bool)
	if !ok {
		d.add(path, "expected boolean, got %s", typeName(v))
		return false
	}
	return b
}

// stringSlice converts v into a []string, accepting both []string and the
// []any produced by encoding/json.
func (d *decoder) stringSlice(path []string, v any) ([]string, bool) {
	switch vv := v.(type) {
	case []string:
		return vv, true
	case []any:
		out := make([]string, 0, len(vv))
		for i, elem := range vv {
			s, ok := elem.(string)
			if !ok {
				d.add(append(path, fmt.Sprint(i)), "expected string, got %s", typeName(elem))
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		d.add(path, "expected array, got %s", typeName(v))
		return nil, false
	}
}

// optionalStringSlice reads an optional array-of-strings field.
func (d *decoder) optionalStringSlice(obj map[string]any, path ...string) ([]string, bool) {
	key := path[len(path)-1]
	v, ok := obj[key]
	if !ok {
		return nil, false
	}
	return d.stringSlice(path, v)
}

// requireStringSlice reads a mandatory array-of-strings field.
func (d *decoder) requireStringSlice(obj map[string]any, path ...string) ([]string, bool) {
	key := path[len(path)-1]
	v, ok := obj[key]
	if !ok {
		d.add(path, "required")
		return nil, false
	}
	return d.stringSlice(path, v)
}

// optionalStringMap reads an optional object-of-strings field, accepting both
// map[string]string and the map[string]any produced by encoding/json.
func (d *decoder) optionalStringMap(obj map[string]any, path ...string) map[string]string {
	key := path[len(path)-1]
	v, ok := obj[key]
	if !ok {
		return nil
	}
	switch vv := v.(type) {
	case map[string]string:
		return vv
	case map[string]any:
		out := make(map[string]string, len(vv))
		for k, elem := range vv {
			s, ok := elem.(string)
			if !ok {
				d.add(append(path, k), "expected string, got %s", typeName(elem))
				return nil
			}
			out[k] = s
		}
		return out
	default:
		d.add(path, "expected object, got %s", typeName(v))
		return nil
	}
}

// optionalObject reads an optional nested object field.
func (d *decoder) optionalObject(obj map[string]any, path ...string) (map[string]any, bool) {
	key := path[len(path)-1]
	v, ok := obj[key]
	if !ok {
		return nil, false
	}
	nested, ok := v.(map[string]any)
	if !ok {
		d.add(path, "expected object, got %s", typeName(v))
		return nil, false
	}
	return nested, true
}
