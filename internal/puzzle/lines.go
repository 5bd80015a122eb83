package puzzle

import "strings"

// Lines splits text into newline-terminated records. A trailing "\r" is
// stripped from every record and a final newline does not open an extra
// empty record, so "a\nb\n" and "a\r\nb" both yield [a b].
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
