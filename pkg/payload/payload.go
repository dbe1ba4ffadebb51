package payload

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Payload is one level of an untyped extraction payload.
type Payload map[string]any

// FromJSON decodes a JSON object into a Payload.
func FromJSON(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// Has reports whether the key is present, regardless of its value.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the trimmed string at key. ok is false when the key is
// missing or the value is not a string; non-string scalars are not coerced
// here.
func (p Payload) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}

	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// Float returns the number at key. JSON numbers arrive as float64; integer Go
// types and json.Number are accepted for payloads built in code. A numeric
// string that parses is recovered, since extraction output often quotes
// numbers. Everything else reports ok=false.
func (p Payload) Float(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Bool returns the boolean at key. Only a real boolean counts; truthy strings
// and numbers report ok=false.
func (p Payload) Bool(key string) (bool, bool) {
	v, ok := p[key]
	if !ok {
		return false, false
	}

	b, ok := v.(bool)
	if !ok {
		return false, false
	}
	return b, true
}

// StringSlice returns the sequence at key with every scalar entry in string
// form: strings are kept as-is, numbers and booleans are coerced, and nested
// structures and nulls are dropped. Entry order is preserved. ok is false when
// the key is missing or the value is not a sequence.
func (p Payload) StringSlice(key string) ([]string, bool) {
	raw, ok := p[key]
	if !ok {
		return nil, false
	}

	seq, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	result := make([]string, 0, len(seq))
	for _, item := range seq {
		switch v := item.(type) {
		case string:
			result = append(result, v)
		case float64:
			result = append(result, strconv.FormatFloat(v, 'f', -1, 64))
		case float32:
			result = append(result, strconv.FormatFloat(float64(v), 'f', -1, 32))
		case int:
			result = append(result, strconv.Itoa(v))
		case int32:
			result = append(result, strconv.FormatInt(int64(v), 10))
		case int64:
			result = append(result, strconv.FormatInt(v, 10))
		case json.Number:
			result = append(result, v.String())
		case bool:
			result = append(result, strconv.FormatBool(v))
		}
	}
	return result, true
}

// Objects returns the sequence at key as one Payload per entry. An entry that
// is not a mapping becomes a nil Payload, holding its position in the sequence
// so the caller can account for it instead of losing the row. ok is false when
// the key is missing or the value is not a sequence.
func (p Payload) Objects(key string) ([]Payload, bool) {
	raw, ok := p[key]
	if !ok {
		return nil, false
	}

	seq, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	result := make([]Payload, len(seq))
	for i, item := range seq {
		if m, ok := item.(map[string]any); ok {
			result[i] = Payload(m)
		}
	}
	return result, true
}
