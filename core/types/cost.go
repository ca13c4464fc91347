// Package types - Money types shared by the engine and its outputs
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

var currencySymbols = map[Currency]string{
	CurrencyBRL: "R$",
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
}

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the marker printed in front of amounts.
// Unknown currencies are printed by their code.
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return string(c)
}

// IsKnown reports whether the currency has a registered symbol
func (c Currency) IsKnown() bool {
	_, ok := currencySymbols[c]
	return ok
}

// ParseCurrency normalizes a currency code. Empty input yields the default.
func ParseCurrency(code string) Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return CurrencyBRL
	}
	return Currency(code)
}

// FormatAmount renders an amount with the currency marker and two decimal places
func (c Currency) FormatAmount(amount decimal.Decimal) string {
	return c.Symbol() + " " + FormatFixed(amount)
}

// FormatFixed rounds half away from zero to two places for display
func FormatFixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}
