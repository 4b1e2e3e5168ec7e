package todo

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the canonical checklist expiration date format.
const DateLayout = "2006-01-02"

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// timestampLayouts are tried in order when parsing free-form datetime strings.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	DateLayout,
}

// newItemID generates checklist item IDs. Replaced in tests.
var newItemID = uuid.NewString

// NormalizeDate converts any supported date representation into a
// YYYY-MM-DD string. Supported inputs are time.Time, {seconds, nanoseconds}
// and {_seconds, _nanoseconds} maps, datetime strings and date-only strings.
// Anything else, including nil and unparseable values, yields nil.
func NormalizeDate(v any) *string {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return normalizeDateString(x)
	case *string:
		if x == nil {
			return nil
		}
		return normalizeDateString(*x)
	case float64, float32, int, int64, json.Number:
		return nil
	}

	ts, ok := ParseTimestamp(v)
	if !ok {
		return nil
	}
	s := ts.UTC().Format(DateLayout)
	return &s
}

func normalizeDateString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if dateOnlyPattern.MatchString(trimmed) {
		if _, err := time.Parse(DateLayout, trimmed); err != nil {
			return nil
		}
		return &trimmed
	}
	ts, ok := parseTimestampString(trimmed)
	if !ok {
		return nil
	}
	s := ts.UTC().Format(DateLayout)
	return &s
}

// IsValidDate reports whether s is a YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	if !dateOnlyPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseTimestamp decodes a stored timestamp. It accepts time.Time, seconds /
// nanoseconds maps (with or without a leading underscore), datetime strings,
// and epoch milliseconds.
func ParseTimestamp(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil || x.IsZero() {
			return time.Time{}, false
		}
		return *x, true
	case map[string]any:
		return parseSecondsMap(x)
	case string:
		return parseTimestampString(strings.TrimSpace(x))
	default:
		ms, ok := toFloat(v)
		if !ok || math.IsNaN(ms) || math.IsInf(ms, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(ms)).UTC(), true
	}
}

func parseSecondsMap(m map[string]any) (time.Time, bool) {
	for _, prefix := range []string{"_", ""} {
		secs, ok := toFloat(m[prefix+"seconds"])
		if !ok {
			continue
		}
		nanos, _ := toFloat(m[prefix+"nanoseconds"])
		return time.Unix(int64(secs), int64(nanos)).UTC(), true
	}
	return time.Time{}, false
}

func parseTimestampString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// ResolvePosition returns the stored position when present, otherwise the
// creation time in epoch milliseconds, otherwise now.
func ResolvePosition(position any, createdAt any, now time.Time) float64 {
	if p, ok := toFloat(position); ok && !math.IsNaN(p) {
		return p
	}
	if ts, ok := ParseTimestamp(createdAt); ok {
		return float64(ts.UnixMilli())
	}
	return float64(now.UnixMilli())
}

// NormalizeChecklist returns a canonical copy of items:
//
//   - missing or duplicate IDs are replaced with fresh ones
//   - expiration dates are normalized, and cleared for unchecked items or when
//     subCategory does not track expirations
//   - when dropBlank is set, items whose trimmed text is empty are removed
func NormalizeChecklist(items []ChecklistItem, subCategory string, dropBlank bool) []ChecklistItem {
	tracks := IsCoursesSubCategory(subCategory)
	out := make([]ChecklistItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		if dropBlank && strings.TrimSpace(item.Text) == "" {
			continue
		}
		if _, dup := seen[item.ID]; item.ID == "" || dup {
			item.ID = newItemID()
		}
		seen[item.ID] = struct{}{}

		item.ExpirationDate = NormalizeDate(item.ExpirationDate)
		if !item.Checked || !tracks {
			item.ExpirationDate = nil
		}
		out = append(out, item)
	}
	return out
}
