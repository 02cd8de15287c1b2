package loader

import (
	"strings"
)

// CacheKey generates a unique cache key for a GraphFile based on its ID and path.
func CacheKey(file GraphFile) string {
	return file.ID + ":" + file.FilePath
}

// SplitList splits a delimiter-separated list field. Both the full-width
// comma "，" and the ASCII comma are accepted; tokens are trimmed and empty
// tokens are dropped.
func SplitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(strings.ReplaceAll(value, "，", ","), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// normalizeText drops invalid UTF-8, NUL bytes and a leading byte order mark
// and converts line endings to "\n".
func normalizeText(content []byte) string {
	s := strings.ToValidUTF8(string(content), "")
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
