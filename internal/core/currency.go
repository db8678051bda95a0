// Package core holds the entity model and financial math: accounts, loans
// with EMI schedules, transactions, budgets, reminders and the static
// currency conversion table.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Currency is an ISO 4217 code from the fixed supported set.
type Currency string

const (
	AUD Currency = "AUD"
	INR Currency = "INR"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// Currencies lists every supported currency in display order.
func Currencies() []Currency {
	return []Currency{AUD, INR, USD, EUR, GBP}
}

func (c Currency) IsValid() bool {
	switch c {
	case AUD, INR, USD, EUR, GBP:
		return true
	default:
		return false
	}
}

func (c Currency) String() string {
	return string(c)
}

// ParseCurrency parses a currency code, case-insensitively.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
	}
	return c, nil
}

type currencyPair struct {
	from, to Currency
}

// Converter converts amounts between currencies using a static directed
// rate table. The table is known to be incomplete; pairs without an entry
// convert at Fallback instead of failing.
type Converter struct {
	rates    map[currencyPair]float64
	Fallback float64
}

// defaultRates is the static table shipped with the application. It is
// directed and deliberately asymmetric: EUR->USD, GBP->USD and GBP->INR
// have no entries and resolve to the fallback rate.
var defaultRates = map[currencyPair]float64{
	{AUD, INR}: 55.34,
	{AUD, USD}: 0.66,
	{AUD, EUR}: 0.61,
	{AUD, GBP}: 0.52,

	{INR, AUD}: 0.018,
	{INR, USD}: 0.012,
	{INR, EUR}: 0.011,
	{INR, GBP}: 0.0095,

	{USD, AUD}: 1.52,
	{USD, INR}: 83.10,
	{USD, EUR}: 0.92,
	{USD, GBP}: 0.79,

	{EUR, AUD}: 1.64,
	{EUR, INR}: 90.25,
	{EUR, GBP}: 0.86,

	{GBP, AUD}: 1.92,
	{GBP, EUR}: 1.17,
}

// NewConverter returns a converter over the built-in rate table with the
// 1:1 fallback for missing pairs.
func NewConverter() *Converter {
	return &Converter{rates: defaultRates, Fallback: 1.0}
}

// NewConverterWithRates returns a converter over a caller-supplied table.
// Keys are "FROM/TO" pair strings, e.g. "AUD/INR".
func NewConverterWithRates(rates map[string]float64, fallback float64) (*Converter, error) {
	table := make(map[currencyPair]float64, len(rates))
	for key, rate := range rates {
		from, to, ok := strings.Cut(key, "/")
		if !ok {
			return nil, fmt.Errorf("invalid rate key %q: want FROM/TO", key)
		}
		f, err := ParseCurrency(from)
		if err != nil {
			return nil, err
		}
		t, err := ParseCurrency(to)
		if err != nil {
			return nil, err
		}
		if rate <= 0 {
			return nil, fmt.Errorf("invalid rate %v for %q", rate, key)
		}
		table[currencyPair{f, t}] = rate
	}
	return &Converter{rates: table, Fallback: fallback}, nil
}

// Rate returns the directed rate for (from, to) and whether the table has
// an entry for the pair. Same-currency pairs report (1, true).
func (c *Converter) Rate(from, to Currency) (float64, bool) {
	if from == to {
		return 1, true
	}
	rate, ok := c.rates[currencyPair{from, to}]
	return rate, ok
}

// ExchangeRate returns the rate used for display: the table entry when
// present, the fallback otherwise.
func (c *Converter) ExchangeRate(from, to Currency) float64 {
	rate, ok := c.Rate(from, to)
	if !ok {
		return c.Fallback
	}
	return rate
}

// Convert converts amount from one currency into another. Same-currency
// conversions return the amount unchanged without touching the table, so
// no floating rounding is introduced on no-op conversions. No rounding is
// applied; callers format for display.
func (c *Converter) Convert(amount float64, from, to Currency) float64 {
	if from == to {
		return amount
	}
	return amount * c.ExchangeRate(from, to)
}
