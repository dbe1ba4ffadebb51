package sanitizer

import "strings"

// TrimStringSlice trims surrounding whitespace from every entry.
func TrimStringSlice(slice []string) []string {
	trimmed := make([]string, len(slice))
	for i := range slice {
		trimmed[i] = strings.TrimSpace(slice[i])
	}
	return trimmed
}

// FilterEmpty removes entries that are empty or whitespace-only. The result
// is never nil.
func FilterEmpty(slice []string) []string {
	kept := make([]string, 0, len(slice))
	for _, item := range slice {
		if strings.TrimSpace(item) == "" {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// CleanStringSlice is the standard cleanup for list fields coming out of an
// extraction payload: trim every entry, then drop the ones left empty. Entry
// order is preserved and duplicates are kept; whether repetition matters is
// the caller's judgment, not a cleanup concern.
func CleanStringSlice(slice []string) []string {
	return Apply(slice,
		TrimStringSlice,
		FilterEmpty,
	)
}
