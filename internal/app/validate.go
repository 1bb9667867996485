package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// body is a decoded request payload. Field validation inspects the raw
// values so that each resource can keep its historical per-field ordering
// and error codes.
type body map[string]any

func decodeBodyMap(r *http.Request) (body, error) {
	if r.Body == nil {
		return body{}, nil
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	var m map[string]any
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("invalid JSON body")
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

func (b body) has(key string) bool {
	_, ok := b[key]
	return ok
}

// falsy reports whether a value fails a loose required-field check: absent,
// null, empty string, zero number, or false.
func (b body) falsy(key string) bool {
	v, ok := b[key]
	if !ok || v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case bool:
		return !t
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	default:
		return false
	}
}

// missing reports whether the field is absent or explicitly null. Unlike
// falsy, zero and empty string pass.
func (b body) missing(key string) bool {
	v, ok := b[key]
	return !ok || v == nil
}

// asInt parses an integer field. Numeric strings are accepted alongside
// JSON numbers.
func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case json.Number:
		n, err := strconv.Atoi(t.String())
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	t, ok := v.(bool)
	return t, ok
}

// trimmedString returns the field as a trimmed string, "" when it is not a
// string at all.
func (b body) trimmedString(key string) string {
	s, _ := asString(b[key])
	return strings.TrimSpace(s)
}
