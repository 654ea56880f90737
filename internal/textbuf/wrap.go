package textbuf

import "strings"

// WrapLine wraps a single line at word boundaries to fit within width.
// Words are packed greedily onto the current output line; a run of
// consecutive spaces contributes at most one separator to the rebuilt
// text. A single word longer than width is emitted unsplit on its own
// line. The result always has at least one element.
func WrapLine(line string, width int) []string {
	if line == "" {
		return []string{""}
	}
	if lineLength(line) <= width {
		return []string{line}
	}

	var lines []string
	current := ""
	for _, word := range strings.Split(line, " ") {
		if word == "" {
			continue
		}
		test := word
		if current != "" {
			test = current + " " + word
		}
		if lineLength(test) <= width {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
