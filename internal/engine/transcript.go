package engine

import "strings"

// FormatTranscript renders fragments as "<start>: <text>" lines joined by a
// single newline. Order is kept as given and nothing is merged or rounded:
// the model builds deep links from these start values.
func FormatTranscript(frags []Fragment) string {
	var sb strings.Builder
	for i, f := range frags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.Start.String())
		sb.WriteString(": ")
		sb.WriteString(f.Text)
	}
	return sb.String()
}
