package suggest

import (
	"fmt"
	"strings"
	"testing"
)

func sampleJSON(n int) string {
	var items []string
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(`{"name":"Chore %d","description":"d","gems":%d,"location":"Kitchen","category":"cleaning"}`, i, i+1))
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestParseSuggestionJSON(t *testing.T) {
	plain := sampleJSON(6)

	tests := []struct {
		name    string
		content string
	}{
		{"bare array", plain},
		{"fenced", "```json\n" + plain + "\n```"},
		{"fenced no language", "```\n" + plain + "\n```"},
		{"wrapped object", `{"suggestions":` + plain + `}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestionJSON(tt.content)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(got) != 6 {
				t.Errorf("parsed %d suggestions, want 6", len(got))
			}
		})
	}
}

func TestParseSuggestionJSONGarbage(t *testing.T) {
	if _, err := parseSuggestionJSON("Sure! Here are some chores:"); err == nil {
		t.Error("expected an error for prose")
	}
}

func TestNormalize(t *testing.T) {
	var in []Suggestion
	for i := 0; i < 15; i++ {
		in = append(in, Suggestion{Name: fmt.Sprintf("Chore %d", i), Gems: 0})
	}
	in[3].Name = "   " // dropped

	out := normalize(in)
	if len(out) != 10 {
		t.Fatalf("normalized to %d, want the cap of 10", len(out))
	}
	for _, s := range out {
		if s.Gems < 1 {
			t.Errorf("%s has gems %d, want at least 1", s.Name, s.Gems)
		}
		if s.Category == "" {
			t.Errorf("%s has no category", s.Name)
		}
	}
}

func TestNormalizeTooFew(t *testing.T) {
	in := []Suggestion{
		{Name: "One", Gems: 1},
		{Name: "Two", Gems: 1},
		{Name: ""},
	}
	if out := normalize(in); out != nil {
		t.Errorf("expected nil for %d usable suggestions", len(out))
	}
}

func TestFallbackBuckets(t *testing.T) {
	for _, age := range []int{3, 5, 7, 11, 14} {
		got := Fallback(age)
		if len(got) < 5 {
			t.Errorf("age %d: %d suggestions, want at least 5", age, len(got))
		}
		for _, s := range got {
			if s.Name == "" || s.Gems < 1 {
				t.Errorf("age %d: bad entry %+v", age, s)
			}
		}
	}
}
