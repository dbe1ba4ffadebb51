package payload

import "strings"

// Merge overlays override onto base and returns a new payload; neither input
// is modified. A key from override wins only when it carries substance: blank
// strings, empty sequences and mappings, zero numbers, false booleans, and
// nulls leave the base value in place. This is how competing extractions are
// reconciled: the richer source fills the gaps the other left.
func Merge(base, override Payload) Payload {
	merged := make(Payload, len(base)+len(override))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range override {
		if hasSubstance(value) {
			merged[key] = value
		}
	}
	return merged
}

func hasSubstance(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case bool:
		return v
	case float64:
		return v != 0
	case float32:
		return v != 0
	case int:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case Payload:
		return len(v) > 0
	default:
		return true
	}
}
