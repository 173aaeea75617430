package models

import (
	"encoding/json"
	"testing"
)

func TestQuantity_ExactText(t *testing.T) {
	// Re-encoding must not reformat financial values, so the rendered text
	// keeps the scale it was parsed with, trailing zeros included.
	cases := []string{"1.5", "1.50", "0.100", "0", "42", "-3.07", "1500"}
	for _, text := range cases {
		q, err := ParseQuantity(text)
		if err != nil {
			t.Errorf("ParseQuantity(%q) failed: %v", text, err)
			continue
		}
		if got := q.String(); got != text {
			t.Errorf("Expected %q to render as itself, got %q", text, got)
		}
	}
}

func TestQuantity_ValueEquality(t *testing.T) {
	a := dec(t, "1.50")
	b := dec(t, "1.5")
	if a.Cmp(*b) != 0 {
		t.Error("Expected 1.50 and 1.5 to compare equal by value")
	}
	if a.String() == b.String() {
		t.Error("Expected 1.50 and 1.5 to keep their distinct renderings")
	}
}

func TestParseQuantity_Invalid(t *testing.T) {
	_, err := ParseQuantity("not-a-number")
	if err == nil {
		t.Fatal("Expected error for bad decimal text")
	}
}

func TestQuantity_JSON(t *testing.T) {
	q := dec(t, "2.50")
	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2.50"` {
		t.Errorf(`Expected "2.50", got %s`, data)
	}

	var decoded Quantity
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.String() != "2.50" {
		t.Errorf("Expected exact text 2.50 after round trip, got %s", decoded)
	}

	// Bare JSON numbers are accepted too.
	if err := json.Unmarshal([]byte(`0.25`), &decoded); err != nil {
		t.Fatalf("Unmarshal of bare number failed: %v", err)
	}
	if decoded.String() != "0.25" {
		t.Errorf("Expected 0.25, got %s", decoded)
	}

	if err := json.Unmarshal([]byte(`"nope"`), &decoded); err == nil {
		t.Error("Expected error for bad decimal text")
	}
}
