// Package currency converts amounts between currencies through a static
// INR-based rate table.
package currency

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/paisawise/paisawise/pkg/mathutil"
)

// ErrUnknownCurrency marks a code the rate table does not carry.
var ErrUnknownCurrency = errors.New("unknown currency code")

// defaultRates holds the INR value of one unit of each currency. Rates
// are indicative, not live; the application config may override them.
var defaultRates = map[string]float64{
	"INR": 1,
	"USD": 87.50,
	"EUR": 95.20,
	"GBP": 111.00,
	"JPY": 0.59,
	"AUD": 56.80,
	"CAD": 63.20,
	"SGD": 64.50,
	"CHF": 97.40,
	"AED": 23.82,
	"SAR": 23.33,
	"HKD": 11.20,
	"NZD": 52.10,
}

// Table is an immutable-by-convention map of currency codes to their INR
// value. Build one per configuration, not per request.
type Table struct {
	rates map[string]float64
}

// DefaultTable returns a table with the built-in indicative rates.
func DefaultTable() *Table {
	rates := make(map[string]float64, len(defaultRates))
	for code, rate := range defaultRates {
		rates[code] = rate
	}
	return &Table{rates: rates}
}

// NewTable builds a table from the given INR-value rates on top of the
// defaults, so a config may override some codes and add new ones.
func NewTable(overrides map[string]float64) (*Table, error) {
	t := DefaultTable()
	for code, rate := range overrides {
		if err := t.Override(code, rate); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Override sets the INR value of one currency unit.
func (t *Table) Override(code string, inrValue float64) error {
	code = normalize(code)
	if code == "" {
		return fmt.Errorf("currency code must not be empty")
	}
	if code == "INR" && inrValue != 1 {
		return fmt.Errorf("the INR rate is fixed at 1")
	}
	if inrValue <= 0 {
		return fmt.Errorf("rate for %s must be positive, got %f", code, inrValue)
	}
	t.rates[code] = inrValue
	return nil
}

// Rate returns the INR value of one unit of the given currency.
func (t *Table) Rate(code string) (float64, error) {
	rate, ok := t.rates[normalize(code)]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownCurrency, code)
	}
	return rate, nil
}

// Codes returns the table's currency codes in sorted order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Rates returns a copy of the table for display.
func (t *Table) Rates() map[string]float64 {
	rates := make(map[string]float64, len(t.rates))
	for code, rate := range t.rates {
		rates[code] = rate
	}
	return rates
}

// Conversion holds the outcome of a currency conversion.
type Conversion struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	Rate      float64 `json:"rate"`
	Converted float64 `json:"converted"`
}

// Convert cross-rates an amount between two currencies through INR.
func (t *Table) Convert(amount float64, from, to string) (*Conversion, error) {
	if amount < 0 {
		return nil, fmt.Errorf("amount must not be negative, got %.2f", amount)
	}

	fromRate, err := t.Rate(from)
	if err != nil {
		return nil, err
	}
	toRate, err := t.Rate(to)
	if err != nil {
		return nil, err
	}

	rate := fromRate / toRate
	return &Conversion{
		From:      normalize(from),
		To:        normalize(to),
		Amount:    amount,
		Rate:      mathutil.RoundTo(rate, 6),
		Converted: mathutil.Round(amount * rate),
	}, nil
}

// WithRate converts using a caller-supplied direct rate instead of the
// table, for when the user has a quote in hand.
func WithRate(amount float64, from, to string, rate float64) (*Conversion, error) {
	if amount < 0 {
		return nil, fmt.Errorf("amount must not be negative, got %.2f", amount)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("rate must be positive, got %f", rate)
	}

	return &Conversion{
		From:      normalize(from),
		To:        normalize(to),
		Amount:    amount,
		Rate:      mathutil.RoundTo(rate, 6),
		Converted: mathutil.Round(amount * rate),
	}, nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
