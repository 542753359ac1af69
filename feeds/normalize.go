package feeds

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder is served for records without an image.
const Placeholder = "/placeholder.png"

// Record is one decoded feed row.
type Record = map[string]any

// Field returns the first non-nil value among keys. Keys are tried verbatim first,
// then case-insensitively, since spreadsheet headers drift ("Location", "location").
func Field(rec Record, keys ...string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	for _, k := range keys {
		for rk, v := range rec {
			if v != nil && strings.EqualFold(rk, k) {
				return v
			}
		}
	}
	return nil
}

// String coerces scalars to a trimmed string. Non-scalars give "".
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// Float coerces numbers and numeric strings. Missing and blank values are 0.
// Infinities and NaN are rejected.
func Float(v any) (float64, error) {
	f, err := parseFloat(v)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("not a finite number: %v", v)
	}
	return f, nil
}

func parseFloat(v any) (float64, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case json.Number:
		return t.Float64()
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", t)
		}
		return f, nil
	}
	return 0, fmt.Errorf("not a number: %v", v)
}

// SplitList splits a comma- or newline-separated cell into trimmed labels, dropping
// blanks and case-insensitive repeats. The result is never nil.
func SplitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	out := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		label := strings.TrimSpace(p)
		if label == "" {
			continue
		}
		key := strings.ToLower(label)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, label)
	}
	return out
}

// List accepts either a delimiter-joined string or a JSON/YAML array.
func List(v any) []string {
	switch t := v.(type) {
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, String(item))
		}
		return SplitList(strings.Join(parts, "\n"))
	case []string:
		return SplitList(strings.Join(t, "\n"))
	case nil:
		return []string{}
	}
	return SplitList(String(v))
}

// ImageOr returns the image reference or the placeholder when it is missing.
func ImageOr(v any) string {
	if s := String(v); s != "" {
		return s
	}
	return Placeholder
}

var hoursLabel = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*(?:h|hr|hrs|hour|hours)\s*$`)

// HoursFromLabel reads a duration label such as "3 Hours", "Half Day" or "Full Day".
func HoursFromLabel(label string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "full day":
		return 8, true
	case "half day":
		return 4, true
	}
	m := hoursLabel.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
