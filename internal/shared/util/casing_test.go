package util

import (
	"reflect"
	"testing"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"videoUrl":        "video_url",
		"compassHeading":  "compass_heading",
		"selectedGoals":   "selected_goals",
		"detailedReport":  "detailed_report",
		"id":              "id",
		"analysisId":      "analysis_id",
		"paymentStatus":   "payment_status",
		"propertyAddress": "property_address",
	}
	for in, want := range cases {
		if got := ToSnakeCase(in); got != want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToCamelCase(t *testing.T) {
	cases := map[string]string{
		"video_url":           "videoUrl",
		"compass_heading":     "compassHeading",
		"created_at":          "createdAt",
		"consultation_status": "consultationStatus",
		"id":                  "id",
	}
	for in, want := range cases {
		if got := ToCamelCase(in); got != want {
			t.Errorf("ToCamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCaseRoundTrip(t *testing.T) {
	names := []string{
		"videoUrl", "compassHeading", "selectedGoals", "floorPlan",
		"zones", "summary", "detailedReport", "scheduledTime",
		"timezone", "paymentId", "consultantId", "notes", "status",
	}
	for _, name := range names {
		if got := ToCamelCase(ToSnakeCase(name)); got != name {
			t.Errorf("round trip %q -> %q", name, got)
		}
	}
}

func TestRecordConverters(t *testing.T) {
	rec := map[string]any{
		"videoUrl":       "https://x/video.mp4",
		"compassHeading": 45.5,
		"status":         "uploading",
	}
	snake := RecordToSnakeCase(rec)
	want := map[string]any{
		"video_url":       "https://x/video.mp4",
		"compass_heading": 45.5,
		"status":          "uploading",
	}
	if !reflect.DeepEqual(snake, want) {
		t.Fatalf("RecordToSnakeCase = %#v, want %#v", snake, want)
	}
	back := RecordToCamelCase(snake)
	if !reflect.DeepEqual(back, rec) {
		t.Fatalf("RecordToCamelCase = %#v, want %#v", back, rec)
	}
}
