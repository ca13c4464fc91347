// Package hcl loads quotes files written in HCL.
//
//	quote "engineering_project" "structural_design" {
//	  description     = "Building structural design"
//	  estimated_hours = 40
//	  complexity      = 4
//	  urgency         = 3
//	  hourly_rate     = 200
//	  discounts       = [10]
//	  urgencies       = [5]
//	}
package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"service-pricing/core/quote"
	"service-pricing/core/scenario"
	"service-pricing/internal/errors"
	"service-pricing/internal/logging"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "quote", LabelNames: []string{"kind", "name"}},
	},
}

var quoteSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description", Required: true},
		{Name: "estimated_hours", Required: true},
		{Name: "complexity", Required: true},
		{Name: "urgency", Required: true},
		{Name: "hourly_rate", Required: true},
		{Name: "discounts"},
		{Name: "urgencies"},
	},
}

// Loader turns quotes files into scenarios
type Loader struct {
	// Strict runs Quote.Validate on every quote
	Strict bool
}

// NewLoader creates a loader
func NewLoader(strict bool) *Loader {
	return &Loader{Strict: strict}
}

// Load reads and parses a quotes file
func (l *Loader) Load(ctx context.Context, path string) ([]scenario.Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("quotes file", path)
		}
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to read %s", path)
	}
	return l.LoadBytes(ctx, src, path)
}

// LoadBytes parses quotes from memory; filename is used in error positions
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) ([]scenario.Scenario, error) {
	log := logging.With(zap.String("file", filename)).Named("hcl")

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	seen := make(map[string]hcl.Range)
	scenarios := make([]scenario.Scenario, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := block.Labels[1]
		if prev, dup := seen[name]; dup {
			return nil, diagError(hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Duplicate quote",
				Detail:   fmt.Sprintf("A quote named %q was already defined at %s.", name, prev),
				Subject:  block.LabelRanges[1].Ptr(),
			}})
		}
		seen[name] = block.DefRange

		s, err := l.decodeQuote(block)
		if err != nil {
			return nil, err
		}
		log.Debug("quote loaded",
			zap.String("name", name),
			zap.Stringer("kind", s.Quote.Kind()),
			zap.Int("line", block.DefRange.Start.Line),
		)
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

func (l *Loader) decodeQuote(block *hcl.Block) (scenario.Scenario, error) {
	kind, err := quote.ParseKind(block.Labels[0])
	if err != nil {
		r := block.LabelRanges[0]
		return scenario.Scenario{}, errors.AtPosition(r.Filename, r.Start.Line, "invalid quote block", err)
	}

	content, diags := block.Body.Content(quoteSchema)
	if diags.HasErrors() {
		return scenario.Scenario{}, diagError(diags)
	}
	attrs := content.Attributes

	var all hcl.Diagnostics
	description, d := attrString(attrs["description"])
	all = append(all, d...)
	hours, d := attrDecimal(attrs["estimated_hours"])
	all = append(all, d...)
	complexity, d := attrInt(attrs["complexity"])
	all = append(all, d...)
	urgency, d := attrInt(attrs["urgency"])
	all = append(all, d...)
	rate, d := attrDecimal(attrs["hourly_rate"])
	all = append(all, d...)

	s := scenario.Scenario{Name: block.Labels[1]}
	if attr, ok := attrs["discounts"]; ok {
		s.Discounts, d = attrDecimalList(attr)
		all = append(all, d...)
	}
	if attr, ok := attrs["urgencies"]; ok {
		s.Urgencies, d = attrIntList(attr)
		all = append(all, d...)
	}
	if all.HasErrors() {
		return scenario.Scenario{}, diagError(all)
	}

	s.Quote = quote.New(kind, description, hours, complexity, urgency, rate)
	if l.Strict {
		if err := s.Quote.Validate(); err != nil {
			return scenario.Scenario{}, errors.Wrapf(errors.TypeInput, err, "quote %q", s.Name).
				WithContext("file", block.DefRange.Filename).
				WithContext("line", block.DefRange.Start.Line)
		}
	}
	return s, nil
}

// diagError reports the first error diagnostic with its position
func diagError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		if diag.Subject != nil {
			return errors.AtPosition(diag.Subject.Filename, diag.Subject.Start.Line, diag.Summary, diags)
		}
		return errors.Parsing(diag.Summary, diags)
	}
	return nil
}
