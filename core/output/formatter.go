// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"service-pricing/core/scenario"
	"service-pricing/core/types"
	"service-pricing/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is the human-readable report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

// Result is the envelope around a batch of evaluated scenarios
type Result struct {
	// ID uniquely identifies this run
	ID string `json:"id"`

	// GeneratedAt is when the scenarios were evaluated
	GeneratedAt time.Time `json:"generated_at"`

	// Source names where the quotes came from (samples, cli, api, a file path)
	Source string `json:"source"`

	// Currency is the currency every amount is expressed in
	Currency types.Currency `json:"currency"`

	// Scenarios are the evaluated scenarios, in input order
	Scenarios []*scenario.Result `json:"scenarios"`
}

// NewResult wraps evaluated scenarios in a fresh envelope
func NewResult(source string, currency types.Currency, scenarios []*scenario.Result) *Result {
	return &Result{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Currency:    currency,
		Scenarios:   scenarios,
	}
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// NewDefaultRegistry returns a registry holding the cli and json formatters
func NewDefaultRegistry(showReport bool) *Registry {
	r := NewRegistry()
	_ = r.Register(&CLIFormatter{ShowReport: showReport})
	_ = r.Register(&JSONFormatter{Indent: "  "})
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[formatter.Format()]; exists {
		return errors.Newf(errors.TypeInternal, "formatter already registered: %s", formatter.Format())
	}
	r.formatters[formatter.Format()] = formatter
	return nil
}

// GetFormatter returns a formatter for a format type
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	return f, ok
}

// Lookup is GetFormatter with an error for unknown formats
func (r *Registry) Lookup(format string) (Formatter, error) {
	if f, ok := r.GetFormatter(Format(format)); ok {
		return f, nil
	}
	return nil, errors.NotSupported("output format " + format)
}

// GetAll returns all registered formatters sorted by format
func (r *Registry) GetAll() []Formatter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Formatter, 0, len(r.formatters))
	for _, f := range r.formatters {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Format() < all[j].Format() })
	return all
}
