package compose

import "strings"

// ReverseName converts a name from "Firstname Lastname" to
// "Lastname, Firstname" for documentation headers.
//
// Placeholder text starting with "[" or "(" is returned verbatim, as are
// single-word names and the empty string. For names with several given names
// the last token becomes the surname and everything before it stays together:
// "Anna Maria Schmidt" becomes "Schmidt, Anna Maria".
func ReverseName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return trimmed
	}

	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "(") {
		return trimmed
	}

	parts := strings.Fields(trimmed)
	if len(parts) == 1 {
		return trimmed
	}

	lastname := parts[len(parts)-1]
	firstname := strings.Join(parts[:len(parts)-1], " ")
	return lastname + ", " + firstname
}
