package repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTimeRoundTripKeepsMicroseconds(t *testing.T) {
	original := time.Date(2026, 1, 15, 10, 30, 45, 123456000, time.UTC)

	decoded, err := decodeTime(encodeTime(original))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Equal(original) {
		t.Fatalf("round trip = %v, want %v", decoded, original)
	}
	if decoded.Nanosecond() != 123456000 {
		t.Errorf("nanoseconds = %d, want 123456000", decoded.Nanosecond())
	}
}

func TestEncodeTimeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	local := time.Date(2026, 1, 15, 11, 30, 0, 0, loc)

	encoded := encodeTime(local)
	decoded, err := decodeTime(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	if !decoded.Equal(want) {
		t.Fatalf("decoded = %v, want %v", decoded, want)
	}
	if decoded.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", decoded.Location())
	}
}

func TestEncodedTimesSortLexicographically(t *testing.T) {
	earlier := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	later := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	if encodeTime(earlier) >= encodeTime(later) {
		t.Fatalf("string order broken: %q !< %q", encodeTime(earlier), encodeTime(later))
	}
}

func TestDecodeTimeAcceptsDriverTypes(t *testing.T) {
	want := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	fromPrimitive, err := decodeTime(primitive.NewDateTimeFromTime(want))
	if err != nil {
		t.Fatalf("primitive.DateTime: %v", err)
	}
	if !fromPrimitive.Equal(want) {
		t.Errorf("primitive.DateTime = %v, want %v", fromPrimitive, want)
	}

	fromTime, err := decodeTime(want)
	if err != nil {
		t.Fatalf("time.Time: %v", err)
	}
	if !fromTime.Equal(want) {
		t.Errorf("time.Time = %v, want %v", fromTime, want)
	}

	if _, err := decodeTime(nil); err == nil {
		t.Error("decodeTime(nil) returned no error")
	}
	if _, err := decodeTime(42); err == nil {
		t.Error("decodeTime(int) returned no error")
	}
}

func TestDecodeTimePtr(t *testing.T) {
	got, err := decodeTimePtr(nil)
	if err != nil || got != nil {
		t.Fatalf("nil input: got %v, %v", got, err)
	}

	want := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	got, err = decodeTimePtr(encodeTime(want))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got == nil || !got.Equal(want) {
		t.Fatalf("decoded = %v, want %v", got, want)
	}
}

func TestDocHelpers(t *testing.T) {
	doc := bson.M{
		"name":      "acme",
		"empty":     "",
		"sla_int32": int32(24),
		"sla_f64":   float64(48),
	}

	if got := docString(doc, "name"); got != "acme" {
		t.Errorf("docString = %q", got)
	}
	if got := docString(doc, "missing"); got != "" {
		t.Errorf("docString missing = %q, want empty", got)
	}
	if got := docStringPtr(doc, "empty"); got != nil {
		t.Errorf("docStringPtr empty = %v, want nil", got)
	}
	if got := docInt(doc, "sla_int32"); got != 24 {
		t.Errorf("docInt int32 = %d, want 24", got)
	}
	if got := docInt(doc, "sla_f64"); got != 48 {
		t.Errorf("docInt float64 = %d, want 48", got)
	}
	if got := docInt(doc, "missing"); got != 0 {
		t.Errorf("docInt missing = %d, want 0", got)
	}
}
