package loader

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaptinlin/jsonrepair"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseCareJSON parses a JSON array of care facilities. Malformed input, such
// as trailing commas or unquoted keys in hand-edited files, is repaired
// before parsing.
func ParseCareJSON(content []byte) ([]CareRecord, error) {
	var out []CareRecord
	if err := unmarshalFlexible(normalizeText(content), &out); err != nil {
		return nil, fmt.Errorf("failed to parse care records: %w", err)
	}
	return out, nil
}

// ParseJSONRecords parses a JSON array of flat objects into records. String
// values are kept as-is, arrays of scalars are joined with "，" so they can be
// split again like any other list field, and other scalars are formatted.
func ParseJSONRecords(content []byte) ([]Record, error) {
	var raw []map[string]any
	if err := unmarshalFlexible(normalizeText(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	out := make([]Record, 0, len(raw))
	for _, obj := range raw {
		rec := Record{}
		for k, v := range obj {
			if s, ok := scalarText(v); ok {
				rec[strings.TrimSpace(k)] = s
			}
		}
		if len(rec) > 0 {
			out = append(out, rec)
		}
	}
	return out, nil
}

func unmarshalFlexible(input string, out any) error {
	input = strings.TrimSpace(input)

	if err := json.Unmarshal([]byte(input), out); err == nil {
		return nil
	}

	repaired, err := jsonrepair.JSONRepair(input)
	if err != nil {
		return fmt.Errorf("json repair failed: %w", err)
	}

	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("unmarshal failed after repair: %w", err)
	}
	return nil
}

func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return strings.TrimSpace(t), true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := scalarText(item); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "，"), true
	default:
		return "", false
	}
}
