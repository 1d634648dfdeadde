package scan

import "regexp"

var cellHeaderRe = regexp.MustCompile(`Cell \d+ - `)

// Split cuts raw scan output into one block per cell, in source order.
// Anything before the first "Cell NN - " header is dropped.
func Split(raw string) []string {
	parts := cellHeaderRe.Split(raw, -1)
	if len(parts) < 2 {
		return []string{}
	}
	return parts[1:]
}
