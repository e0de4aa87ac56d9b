// Package catalog registers every calculator the suite exposes along with
// the metadata the home page and API discovery endpoints serve.
package catalog

import "fmt"

// Calculator categories used to group entries on the home page.
const (
	CategoryLoans       = "loans"
	CategoryInvestments = "investments"
	CategoryTax         = "tax"
	CategoryPlanning    = "planning"
	CategoryUtilities   = "utilities"
)

// Definition describes a single calculator in the catalog.
type Definition struct {
	// ID is the stable identifier used in API routes and scenario files.
	ID string `json:"id"`

	// Title is the human-readable calculator name.
	Title string `json:"title"`

	// Category groups the calculator on the home page.
	Category string `json:"category"`

	// Description is a one-line summary of what the calculator answers.
	Description string `json:"description"`

	// LearnSlug points at the related learn article, if one exists.
	LearnSlug string `json:"learnSlug,omitempty"`
}

// definitions holds every calculator in stable display order: loans first,
// then investments, tax, planning, and utilities.
var definitions = []Definition{
	{
		ID:          "emi",
		Title:       "EMI Calculator",
		Category:    CategoryLoans,
		Description: "Monthly installment, total interest, and amortization schedule for a loan, including prepayment savings.",
		LearnSlug:   "emi",
	},
	{
		ID:          "sip",
		Title:       "SIP Calculator",
		Category:    CategoryInvestments,
		Description: "Future value of a monthly investment plan, with optional annual step-up.",
		LearnSlug:   "sip",
	},
	{
		ID:          "lumpsum",
		Title:       "Lumpsum Calculator",
		Category:    CategoryInvestments,
		Description: "Growth of a one-time investment compounded annually.",
	},
	{
		ID:          "swp",
		Title:       "SWP Calculator",
		Category:    CategoryInvestments,
		Description: "How long a corpus sustains fixed monthly withdrawals while the balance keeps earning.",
	},
	{
		ID:          "fd",
		Title:       "FD Calculator",
		Category:    CategoryInvestments,
		Description: "Fixed deposit maturity value for a chosen compounding frequency.",
	},
	{
		ID:          "rd",
		Title:       "RD Calculator",
		Category:    CategoryInvestments,
		Description: "Recurring deposit maturity value using quarterly compounding.",
	},
	{
		ID:          "ppf",
		Title:       "PPF Calculator",
		Category:    CategoryInvestments,
		Description: "Public Provident Fund balance across the 15-year term and optional 5-year extensions.",
		LearnSlug:   "ppf",
	},
	{
		ID:          "income-tax",
		Title:       "Income Tax Calculator",
		Category:    CategoryTax,
		Description: "Tax liability under the new and old regimes, with a side-by-side comparison.",
		LearnSlug:   "income-tax-regimes",
	},
	{
		ID:          "hra",
		Title:       "HRA Exemption Calculator",
		Category:    CategoryTax,
		Description: "House rent allowance exemption as the least of the three statutory amounts.",
		LearnSlug:   "hra",
	},
	{
		ID:          "gratuity",
		Title:       "Gratuity Calculator",
		Category:    CategoryTax,
		Description: "Gratuity payable on leaving a job after five years of service.",
	},
	{
		ID:          "retirement",
		Title:       "Retirement Corpus Calculator",
		Category:    CategoryPlanning,
		Description: "Corpus needed at retirement for an inflation-adjusted income, and the SIP that gets you there.",
	},
	{
		ID:          "fire",
		Title:       "FIRE Calculator",
		Category:    CategoryPlanning,
		Description: "Financial-independence targets (lean, regular, fat, coast) and time to reach them.",
		LearnSlug:   "fire",
	},
	{
		ID:          "networth",
		Title:       "Net Worth Calculator",
		Category:    CategoryPlanning,
		Description: "Assets minus liabilities with a category-wise breakdown.",
	},
	{
		ID:          "inflation",
		Title:       "Inflation Calculator",
		Category:    CategoryPlanning,
		Description: "Future cost of today's expenses and the eroded purchasing power of money.",
	},
	{
		ID:          "currency",
		Title:       "Currency Converter",
		Category:    CategoryUtilities,
		Description: "Convert between supported currencies using cross rates through INR.",
	},
	{
		ID:          "breakeven",
		Title:       "Break-even Calculator",
		Category:    CategoryUtilities,
		Description: "Units and revenue needed for a product to cover its fixed costs.",
	},
	{
		ID:          "compound-interest",
		Title:       "Compound Interest Calculator",
		Category:    CategoryUtilities,
		Description: "Compound growth of a principal for any rate, term, and compounding frequency.",
	},
	{
		ID:          "simple-interest",
		Title:       "Simple Interest Calculator",
		Category:    CategoryUtilities,
		Description: "Interest on a principal without compounding.",
	},
	{
		ID:          "cagr",
		Title:       "CAGR Calculator",
		Category:    CategoryUtilities,
		Description: "Compound annual growth rate between a beginning and ending value.",
	},
}

// All returns every calculator definition in stable display order. The
// returned slice is a copy; callers may reorder it freely.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// IDs returns the identifiers of all calculators in catalog order.
func IDs() []string {
	ids := make([]string, len(definitions))
	for i, def := range definitions {
		ids[i] = def.ID
	}
	return ids
}

// Lookup returns the definition for the given calculator ID.
func Lookup(id string) (Definition, error) {
	for _, def := range definitions {
		if def.ID == id {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("unknown calculator %q", id)
}

// ByCategory groups all definitions by category, preserving catalog order
// within each group.
func ByCategory() map[string][]Definition {
	grouped := make(map[string][]Definition)
	for _, def := range definitions {
		grouped[def.Category] = append(grouped[def.Category], def)
	}
	return grouped
}
