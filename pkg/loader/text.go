package loader

import (
	"strings"
)

// ParseTextBlocks parses "key: value" blocks separated by blank lines. Both
// the ASCII colon and the full-width colon "：" separate key and value; the
// first one on a line wins. Lines without a separator are ignored, as are
// blocks that yield no field.
func ParseTextBlocks(content []byte) []Record {
	text := normalizeText(content)

	records := make([]Record, 0)
	current := Record{}
	flush := func() {
		if len(current) > 0 {
			records = append(records, current)
		}
		current = Record{}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		key, value, ok := cutField(line)
		if !ok {
			continue
		}
		current[key] = value
	}
	flush()

	return records
}

func cutField(line string) (string, string, bool) {
	idx := strings.IndexAny(line, ":：")
	if idx < 0 {
		return "", "", false
	}
	key := strings.TrimSpace(line[:idx])
	rest := line[idx:]
	if strings.HasPrefix(rest, "：") {
		rest = rest[len("："):]
	} else {
		rest = rest[1:]
	}
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(rest), true
}
