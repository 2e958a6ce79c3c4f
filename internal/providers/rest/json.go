package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// DecodeObject parses body as a JSON object keyed by field name.
// Valid JSON that is not an object decodes to an empty map so that field
// lookups report MissingFieldError.
func DecodeObject(body []byte) (map[string]json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, &MalformedBodyError{Err: errors.New("body is not valid JSON")}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, &MalformedBodyError{Err: err}
	}
	if obj == nil {
		obj = map[string]json.RawMessage{}
	}
	return obj, nil
}

// StringField returns the textual form of a scalar field. Numbers keep their
// raw representation, strings are unquoted. Absent, null, empty and
// non-scalar values are reported as MissingFieldError.
func StringField(obj map[string]json.RawMessage, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", &MissingFieldError{Field: key}
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", &MissingFieldError{Field: key}
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", &MalformedBodyError{Err: err}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "", &MissingFieldError{Field: key}
		}
		return s, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw), nil
	default:
		// null, true/false, objects and arrays
		return "", &MissingFieldError{Field: key}
	}
}
