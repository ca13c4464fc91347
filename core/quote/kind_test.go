package quote

import (
	"encoding/json"
	"testing"

	"service-pricing/internal/errors"
)

func TestKindTitles(t *testing.T) {
	want := map[Kind]string{
		KindEngineeringProject: "Engineering Project",
		KindTechnologyAnalysis: "Technology Analysis",
		KindLegalConsulting:    "Legal Consulting",
		KindUnknown:            "Professional Service",
	}
	for k, title := range want {
		if k.Title() != title {
			t.Errorf("%d: expected title '%s', got '%s'", k, title, k.Title())
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, in := range []string{"legal_consulting", "Legal-Consulting", "  LEGAL_CONSULTING "} {
		k, err := ParseKind(in)
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", in, err)
		}
		if k != KindLegalConsulting {
			t.Errorf("ParseKind(%q) = %s", in, k)
		}
	}

	for _, in := range []string{"plumbing", "unknown"} {
		_, err := ParseKind(in)
		if !errors.IsType(err, errors.TypeInput) {
			t.Errorf("ParseKind(%q): expected INPUT_ERROR, got %v", in, err)
		}
	}
}

func TestKindJSON(t *testing.T) {
	var payload struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal([]byte(`{"kind":"engineering-project"}`), &payload); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if payload.Kind != KindEngineeringProject {
		t.Errorf("Expected engineering project, got %s", payload.Kind)
	}

	if err := json.Unmarshal([]byte(`{"kind":"astrology"}`), &payload); err == nil {
		t.Error("Expected error for unknown kind")
	}
}

func TestUnknownKindBreakdownDecodes(t *testing.T) {
	b := New(KindUnknown, "Site survey", d("10"), 2, 2, d("100")).Breakdown()

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	t.Logf("breakdown: %s", data)

	var decoded Breakdown
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal of marshalled breakdown failed: %v", err)
	}
	if decoded.Kind != KindUnknown || decoded.Title != "Professional Service" {
		t.Errorf("Expected unknown kind with generic title, got %s / %s", decoded.Kind, decoded.Title)
	}
	if !decoded.FinalPrice.Equal(b.FinalPrice) {
		t.Errorf("Final price changed in round trip: %s != %s", decoded.FinalPrice, b.FinalPrice)
	}
}
