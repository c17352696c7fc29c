package harness

import "strings"

const (
	pathSeparator = " > "
	idSeparator   = "/"

	// maxEntryLen bounds report entry values written to the log.
	maxEntryLen = 256
)

// joinPath joins non-empty parts with sep.
func joinPath(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// indent returns two spaces per level of depth.
func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("  ", depth)
}

// truncate shortens s to at most maxLen bytes, marking the cut with "...".
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatTags renders tags the way they appear in report entries: "[Math, Circle]".
func formatTags(tags []string) string {
	return "[" + strings.Join(tags, ", ") + "]"
}

// splitList splits a comma separated list, trimming blanks and dropping empties.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
