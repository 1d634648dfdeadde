package scan

import "strings"

// blockIndent is the indentation iwlist gives every line of a cell
// after the first one.
const blockIndent = 20

// cursor walks the lines of a cell block front to back.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(block string) *cursor {
	return &cursor{lines: dedent(strings.Repeat(" ", blockIndent) + block)}
}

func (t *cursor) done() bool {
	return t.pos >= len(t.lines)
}

func (t *cursor) peek() (string, bool) {
	if t.done() {
		return "", false
	}
	return t.lines[t.pos], true
}

func (t *cursor) next() (string, bool) {
	line, ok := t.peek()
	if ok {
		t.pos++
	}
	return line, ok
}

// consumeWhilePrefix advances over every following line that starts with
// prefix and returns them untouched.
func (t *cursor) consumeWhilePrefix(prefix string) []string {
	var out []string
	for {
		line, ok := t.peek()
		if !ok || !strings.HasPrefix(line, prefix) {
			return out
		}
		out = append(out, line)
		t.pos++
	}
}

// dedent removes the whitespace prefix shared by every non-blank line and
// returns the lines. Whitespace-only lines become empty and do not take part
// in computing the margin.
func dedent(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	margin := ""
	first := true
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			margin = indent
			first = false
			continue
		}
		margin = commonPrefix(margin, indent)
	}

	if margin == "" {
		return lines
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return lines
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
