package quote

import (
	"strings"

	"service-pricing/internal/errors"
)

// Kind identifies the professional service being quoted. It only changes
// the report title; every kind is priced with the same formula.
type Kind int

const (
	// KindUnknown is the zero value. It prices normally and reports under a
	// generic title.
	KindUnknown Kind = iota
	KindEngineeringProject
	KindTechnologyAnalysis
	KindLegalConsulting
)

type kindInfo struct {
	slug  string
	title string
}

const unknownTitle = "Professional Service"

// Adding a service kind is a new entry here.
var kinds = map[Kind]kindInfo{
	KindEngineeringProject: {slug: "engineering_project", title: "Engineering Project"},
	KindTechnologyAnalysis: {slug: "technology_analysis", title: "Technology Analysis"},
	KindLegalConsulting:    {slug: "legal_consulting", title: "Legal Consulting"},
}

// Kinds returns the known kinds in declaration order
func Kinds() []Kind {
	return []Kind{KindEngineeringProject, KindTechnologyAnalysis, KindLegalConsulting}
}

// String returns the kind slug
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.slug
	}
	return "unknown"
}

// Title returns the display title used in reports
func (k Kind) Title() string {
	if info, ok := kinds[k]; ok {
		return info.title
	}
	return unknownTitle
}

// IsKnown reports whether k is one of the declared kinds
func (k Kind) IsKnown() bool {
	_, ok := kinds[k]
	return ok
}

// ParseKind resolves a slug such as "legal_consulting" or "Legal-Consulting".
func ParseKind(s string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k, info := range kinds {
		if info.slug == norm {
			return k, nil
		}
	}
	return KindUnknown, errors.UnknownKind(s)
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "unknown",
// the text of KindUnknown, so a marshalled Breakdown always decodes again;
// ParseKind keeps rejecting it for user input.
func (k *Kind) UnmarshalText(text []byte) error {
	if string(text) == KindUnknown.String() {
		*k = KindUnknown
		return nil
	}
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
