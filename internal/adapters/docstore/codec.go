package docstore

import (
	"encoding/json"
	"fmt"
	"time"
)

// Document is the decoded body of a stored document. Values are those
// produced by encoding/json, except that stored timestamps decode to
// time.Time.
type Document = map[string]any

type serverTimestamp struct{}

// ServerTimestamp is a placeholder value replaced by the store clock when
// the document is written.
var ServerTimestamp any = serverTimestamp{}

const (
	secondsKey = "_seconds"
	nanosKey   = "_nanoseconds"
)

// encode renders data as stored JSON. time.Time values and ServerTimestamp
// become {"_seconds", "_nanoseconds"} objects.
func encode(data Document, now time.Time) (string, error) {
	b, err := json.Marshal(encodeValue(data, now))
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	return string(b), nil
}

func encodeValue(v any, now time.Time) any {
	switch x := v.(type) {
	case serverTimestamp:
		return timestampObject(now)
	case time.Time:
		return timestampObject(x)
	case *time.Time:
		if x == nil {
			return nil
		}
		return timestampObject(*x)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = encodeValue(val, now)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = encodeValue(val, now)
		}
		return out
	default:
		return v
	}
}

func timestampObject(t time.Time) map[string]any {
	return map[string]any{
		secondsKey: t.Unix(),
		nanosKey:   t.Nanosecond(),
	}
}

func decode(raw string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if doc == nil {
		doc = Document{}
	}
	for k, v := range doc {
		doc[k] = decodeValue(v)
	}
	return doc, nil
}

func decodeValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		if ts, ok := asTimestamp(x); ok {
			return ts
		}
		for k, val := range x {
			x[k] = decodeValue(val)
		}
		return x
	case []any:
		for i, val := range x {
			x[i] = decodeValue(val)
		}
		return x
	default:
		return v
	}
}

func asTimestamp(m map[string]any) (time.Time, bool) {
	if len(m) != 2 {
		return time.Time{}, false
	}
	secs, ok := m[secondsKey].(float64)
	if !ok {
		return time.Time{}, false
	}
	nanos, ok := m[nanosKey].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(secs), int64(nanos)).UTC(), true
}
