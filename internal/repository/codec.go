package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Timestamps are persisted as RFC 3339 strings and parsed back to UTC
// instants on read. RFC3339Nano keeps sub-second precision across the
// round trip.

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func encodeTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return encodeTime(*t)
}

func decodeTime(v any) (time.Time, error) {
	switch val := v.(type) {
	case string:
		t, err := time.Parse(time.RFC3339Nano, val)
		if err != nil {
			return time.Time{}, err
		}
		return t.UTC(), nil
	case primitive.DateTime:
		return val.Time().UTC(), nil
	case time.Time:
		return val.UTC(), nil
	case nil:
		return time.Time{}, fmt.Errorf("timestamp missing")
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

func decodeTimePtr(v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := decodeTime(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// encodeStringPtr stores optional strings as plain values or nulls so reads
// see exactly what the driver would hand back.
func encodeStringPtr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func docString(doc bson.M, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func docStringPtr(doc bson.M, key string) *string {
	if v, ok := doc[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func docInt(doc bson.M, key string) int {
	switch v := doc[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
