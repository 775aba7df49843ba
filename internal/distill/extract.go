// Package distill turns raw fetch artifacts into per-crate Markdown
// summaries plus a navigation index.
package distill

import "strings"

// maxFeatures bounds the number of README bullets collected. The cap keeps
// generated summaries short; it is not a correctness limit.
const maxFeatures = 12

// ExtractFeatures scans README text for a "Features" section and collects
// its bullet lines.
//
// The heading must sit at the start of a line, use one to four '#' markers,
// and read exactly "Features" (case-insensitive) once trimmed; partial
// matches like "Feature Flags" do not count. The section ends at the next
// heading of any of the four levels. Within it, a line is a feature if it
// starts with "-" or "*" after trimming; prose and blank lines are skipped.
// A missing section yields an empty result, not an error.
func ExtractFeatures(readme string) []string {
	lines := strings.Split(readme, "\n")

	start := -1
	for i, line := range lines {
		if text, ok := headingText(line); ok && strings.EqualFold(strings.TrimSpace(text), "Features") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var feats []string
	for _, line := range lines[start:] {
		if text, ok := headingText(line); ok && strings.TrimSpace(text) != "" {
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") {
			feats = append(feats, strings.TrimSpace(strings.TrimLeft(trimmed, "-* ")))
			if len(feats) >= maxFeatures {
				break
			}
		}
	}
	return feats
}

// headingText reports whether line is a level 1-4 heading and returns the
// text after the marker run. The marker must be the first character of the
// line and be followed by a space or tab.
func headingText(line string) (string, bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 4 || n >= len(line) {
		return "", false
	}
	if line[n] != ' ' && line[n] != '\t' {
		return "", false
	}
	return line[n:], true
}
