package candidate

import "sort"

// ErrorMap maps a field path (dotted, with zero-based indices for sequence
// members, e.g. "work_experience.0.end_date") to the ordered violation
// messages recorded for that path. A path is present only when it has at
// least one message, and an empty map is the sole signal that a record is
// acceptable.
type ErrorMap map[string][]string

// Add appends a message to the path's message list.
func (em ErrorMap) Add(path, message string) {
	em[path] = append(em[path], message)
}

// Has reports whether any message was recorded for the path.
func (em ErrorMap) Has(path string) bool {
	_, ok := em[path]
	return ok
}

// Get returns the messages recorded for the path, in the order they were
// added.
func (em ErrorMap) Get(path string) []string {
	return em[path]
}

// Fields returns every failing path in lexical order.
func (em ErrorMap) Fields() []string {
	fields := make([]string, 0, len(em))
	for path := range em {
		fields = append(fields, path)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty reports whether the record passed every check.
func (em ErrorMap) IsEmpty() bool {
	return len(em) == 0
}
