package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFlexibleStringSliceShapes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"native array", `["a.jpg","b.jpg"]`, []string{"a.jpg", "b.jpg"}},
		{"serialized array string", `"[\"a.jpg\",\"b.jpg\"]"`, []string{"a.jpg", "b.jpg"}},
		{"comma separated", `"Bangla, English ,Hindi"`, []string{"Bangla", "English", "Hindi"}},
		{"single value", `"Bangla"`, []string{"Bangla"}},
		{"empty string", `""`, []string{}},
		{"empty array", `[]`, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got FlexibleStringSlice
			if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if !reflect.DeepEqual([]string(got), tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFlexibleStringSliceRejectsObjects(t *testing.T) {
	var got FlexibleStringSlice
	if err := json.Unmarshal([]byte(`{"a":1}`), &got); err == nil {
		t.Error("expected an error for an object payload")
	}
}

func TestFlexibleIntShapes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"number", `42`, 42},
		{"numeric string", `"17"`, 17},
		{"float", `3.9`, 3},
		{"unparsable string defaults to zero", `"lots"`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got FlexibleInt
			if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if int(got) != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}
