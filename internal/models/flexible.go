package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexibleStringSlice accepts a JSON array of strings, a string holding a
// serialized JSON array, or a comma-separated string. Clients submit image
// lists and language lists in all three shapes.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*f = values
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*f = []string{}
		return nil
	}

	// A string payload may itself be a serialized array
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &values); err == nil {
			*f = values
			return nil
		}
	}

	parts := strings.Split(raw, ",")
	values = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	*f = values
	return nil
}

// FlexibleInt accepts a JSON number or a numeric string and falls back to
// zero when the value cannot be parsed.
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleInt(n)
		return nil
	}

	var fl float64
	if err := json.Unmarshal(data, &fl); err == nil {
		*f = FlexibleInt(int(fl))
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexibleInt(parsed)
	return nil
}
