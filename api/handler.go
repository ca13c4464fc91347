// Package api - request handling for quote evaluation
// Handlers only translate between HTTP and the core packages.
package api

import (
	"service-pricing/core/quote"
	"service-pricing/core/scenario"
	"service-pricing/internal/errors"
)

// Handler turns requests into scenarios
type Handler struct {
	strict bool
}

// NewHandler creates a handler; strict is the default validation mode
func NewHandler(strict bool) *Handler {
	return &Handler{strict: strict}
}

func (h *Handler) toScenario(req *QuoteRequest) (scenario.Scenario, error) {
	kind, err := quote.ParseKind(req.Kind)
	if err != nil {
		return scenario.Scenario{}, err
	}

	s := scenario.Scenario{
		Name:      req.Name,
		Quote:     quote.New(kind, req.Description, req.EstimatedHours, req.Complexity, req.Urgency, req.HourlyRate),
		Discounts: req.Discounts,
		Urgencies: req.Urgencies,
	}

	strict, err := h.isStrict(req.Mode)
	if err != nil {
		return scenario.Scenario{}, err
	}
	if strict {
		if err := s.Quote.Validate(); err != nil {
			return scenario.Scenario{}, err
		}
	}
	return s, nil
}

func (h *Handler) isStrict(mode ValidationMode) (bool, error) {
	switch mode {
	case ModeDefault:
		return h.strict, nil
	case ModeStrict:
		return true, nil
	case ModePermissive:
		return false, nil
	default:
		return false, errors.InvalidQuote("mode", "unknown mode %q", mode)
	}
}

func kindInfos() []KindInfo {
	kinds := quote.Kinds()
	infos := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		infos = append(infos, KindInfo{Kind: k.String(), Title: k.Title()})
	}
	return infos
}
