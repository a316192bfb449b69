package analyses

import (
	"encoding/json"
	"fmt"
)

// structuredFields are the analysis fields whose logical value is a
// nested object/array, persisted as JSON text in a single column.
var structuredFields = []string{
	"selectedGoals",
	"floorPlan",
	"zones",
	"summary",
	"detailedReport",
}

// encodeStructured replaces each present structured field's value with
// its JSON text form before write. Values that are already text pass
// through; absent fields stay absent.
func encodeStructured(rec map[string]any) error {
	for _, field := range structuredFields {
		val, ok := rec[field]
		if !ok || val == nil {
			continue
		}
		if _, isText := val.(string); isText {
			continue
		}
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("encode %s: %w", field, err)
		}
		rec[field] = string(data)
	}
	return nil
}

// decodeStructured replaces each structured field's text value with its
// parsed typed form after read. Already-structured values are left
// untouched, so decoding twice is a no-op.
func decodeStructured(rec map[string]any) error {
	for _, field := range structuredFields {
		val, ok := rec[field]
		if !ok || val == nil {
			continue
		}
		raw, isText := val.(string)
		if !isText {
			continue
		}
		parsed, err := parseStructured(field, raw)
		if err != nil {
			return err
		}
		rec[field] = parsed
	}
	return nil
}

func parseStructured(field, raw string) (any, error) {
	var (
		parsed any
		err    error
	)
	switch field {
	case "selectedGoals":
		var v []string
		err = json.Unmarshal([]byte(raw), &v)
		parsed = v
	case "floorPlan":
		v := &FloorPlan{}
		err = json.Unmarshal([]byte(raw), v)
		parsed = v
	case "zones":
		var v []Zone
		err = json.Unmarshal([]byte(raw), &v)
		parsed = v
	case "summary":
		v := &AnalysisSummary{}
		err = json.Unmarshal([]byte(raw), v)
		parsed = v
	case "detailedReport":
		v := &DetailedReport{}
		err = json.Unmarshal([]byte(raw), v)
		parsed = v
	default:
		return nil, fmt.Errorf("unknown structured field %q", field)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", field, err)
	}
	return parsed, nil
}
