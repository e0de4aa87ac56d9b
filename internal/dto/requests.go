// Package dto defines the request structures shared by the HTTP API and
// the scenario runner. Each struct carries json tags for the API, yaml
// tags for scenario files, validator tags for range checks, and a mapper
// into the owning calculator package's input type.
package dto

import (
	"github.com/paisawise/paisawise/pkg/breakeven"
	"github.com/paisawise/paisawise/pkg/deposit"
	"github.com/paisawise/paisawise/pkg/hra"
	"github.com/paisawise/paisawise/pkg/interest"
	"github.com/paisawise/paisawise/pkg/loan"
	"github.com/paisawise/paisawise/pkg/networth"
	"github.com/paisawise/paisawise/pkg/ppf"
	"github.com/paisawise/paisawise/pkg/retirement"
	"github.com/paisawise/paisawise/pkg/sip"
	"github.com/paisawise/paisawise/pkg/swp"
	"github.com/paisawise/paisawise/pkg/tax"
)

// EMIRequest represents the inputs for the EMI calculator.
type EMIRequest struct {
	Principal    float64 `json:"principal" yaml:"principal" validate:"required,gt=0"`
	AnnualRate   float64 `json:"annual_rate" yaml:"annual_rate" validate:"gte=0,lte=50"`
	TermMonths   int     `json:"term_months" yaml:"term_months" validate:"required,gt=0,lte=600"`
	StartMonth   string  `json:"start_month,omitempty" yaml:"start_month,omitempty"`
	ExtraMonthly float64 `json:"extra_monthly,omitempty" yaml:"extra_monthly,omitempty" validate:"gte=0"`
	ExtraYearly  float64 `json:"extra_yearly,omitempty" yaml:"extra_yearly,omitempty" validate:"gte=0"`
}

// Input converts the request into the loan package's input.
func (r EMIRequest) Input() loan.Input {
	return loan.Input{
		Principal:    r.Principal,
		AnnualRate:   r.AnnualRate,
		TermMonths:   r.TermMonths,
		StartMonth:   r.StartMonth,
		ExtraMonthly: r.ExtraMonthly,
		ExtraYearly:  r.ExtraYearly,
	}
}

// SIPRequest represents the inputs for the SIP calculator.
type SIPRequest struct {
	Monthly       float64 `json:"monthly" yaml:"monthly" validate:"required,gt=0"`
	AnnualRate    float64 `json:"annual_rate" yaml:"annual_rate" validate:"gte=0,lte=50"`
	Years         int     `json:"years" yaml:"years" validate:"required,gt=0,lte=50"`
	StepUpPercent float64 `json:"step_up_percent,omitempty" yaml:"step_up_percent,omitempty" validate:"gte=0,lte=100"`
}

// Input converts the request into the sip package's input.
func (r SIPRequest) Input() sip.Input {
	return sip.Input{
		Monthly:       r.Monthly,
		AnnualRate:    r.AnnualRate,
		Years:         r.Years,
		StepUpPercent: r.StepUpPercent,
	}
}

// LumpsumRequest represents the inputs for the lumpsum calculator.
type LumpsumRequest struct {
	Amount     float64 `json:"amount" yaml:"amount" validate:"required,gt=0"`
	AnnualRate float64 `json:"annual_rate" yaml:"annual_rate" validate:"gte=0,lte=50"`
	Years      int     `json:"years" yaml:"years" validate:"required,gt=0,lte=50"`
}

// SWPRequest represents the inputs for the systematic withdrawal calculator.
type SWPRequest struct {
	Corpus        float64 `json:"corpus" yaml:"corpus" validate:"required,gt=0"`
	Monthly       float64 `json:"monthly" yaml:"monthly" validate:"required,gt=0"`
	AnnualRate    float64 `json:"annual_rate" yaml:"annual_rate" validate:"gte=0,lte=50"`
	HorizonMonths int     `json:"horizon_months,omitempty" yaml:"horizon_months,omitempty" validate:"gte=0,lte=600"`
	StartMonth    string  `json:"start_month,omitempty" yaml:"start_month,omitempty"`
}

// Input converts the request into the swp package's input.
func (r SWPRequest) Input() swp.Input {
	return swp.Input{
		Corpus:        r.Corpus,
		Monthly:       r.Monthly,
		AnnualRate:    r.AnnualRate,
		HorizonMonths: r.HorizonMonths,
		StartMonth:    r.StartMonth,
	}
}

// FDRequest represents the inputs for the fixed deposit calculator.
type FDRequest struct {
	Principal   float64 `json:"principal" yaml:"principal" validate:"required,gt=0"`
	AnnualRate  float64 `json:"annual_rate" yaml:"annual_rate" validate:"gte=0,lte=50"`
	TermMonths  int     `json:"term_months" yaml:"term_months" validate:"required,gt=0,lte=600"`
	Compounding string  `json:"compounding,omitempty" yaml:"compounding,omitempty" validate:"omitempty,oneof=monthly quarterly half-yearly yearly"`
	Payout      bool    `json:"payout,omitempty" yaml:"payout,omitempty"`
}

// Input converts the request into the deposit package's FD input.
func (r FDRequest) Input() deposit.FDInput {
	return deposit.FDInput{
		Principal:   r.Principal,
		AnnualRate:  r.AnnualRate,
		TermMonths:  r.TermMonths,
		Compounding: deposit.Compounding(r.Compounding),
		Payout:      r.Payout,
	}
}

// RDRequest represents the inputs for the recurring deposit calculator.
type RDRequest struct {
	Monthly    float64 `json:"monthly" yaml:"monthly" validate:"required,gt=0"`
	AnnualRate float64 `json:"annual_rate" yaml:"annual_rate" validate:"gte=0,lte=50"`
	TermMonths int     `json:"term_months" yaml:"term_months" validate:"required,gt=0,lte=600"`
}

// Input converts the request into the deposit package's RD input.
func (r RDRequest) Input() deposit.RDInput {
	return deposit.RDInput{
		Monthly:    r.Monthly,
		AnnualRate: r.AnnualRate,
		TermMonths: r.TermMonths,
	}
}

// PPFRequest represents the inputs for the PPF calculator.
type PPFRequest struct {
	Yearly     float64 `json:"yearly" yaml:"yearly" validate:"required,gte=500,lte=150000"`
	AnnualRate float64 `json:"annual_rate,omitempty" yaml:"annual_rate,omitempty" validate:"gte=0,lte=50"`
	Extensions int     `json:"extensions,omitempty" yaml:"extensions,omitempty" validate:"gte=0,lte=7"`
}

// Input converts the request into the ppf package's input.
func (r PPFRequest) Input() ppf.Input {
	return ppf.Input{
		Yearly:     r.Yearly,
		AnnualRate: r.AnnualRate,
		Extensions: r.Extensions,
	}
}

// IncomeTaxRequest represents the inputs for the income tax calculator.
// Regime selects "new", "old", or "compare"; empty means compare.
type IncomeTaxRequest struct {
	Regime           string  `json:"regime,omitempty" yaml:"regime,omitempty" validate:"omitempty,oneof=new old compare"`
	GrossIncome      float64 `json:"gross_income" yaml:"gross_income" validate:"required,gt=0"`
	Section80C       float64 `json:"section_80c,omitempty" yaml:"section_80c,omitempty" validate:"gte=0"`
	Section80D       float64 `json:"section_80d,omitempty" yaml:"section_80d,omitempty" validate:"gte=0"`
	HomeLoanInterest float64 `json:"home_loan_interest,omitempty" yaml:"home_loan_interest,omitempty" validate:"gte=0"`
	OtherDeductions  float64 `json:"other_deductions,omitempty" yaml:"other_deductions,omitempty" validate:"gte=0"`
}

// Deductions converts the claimed amounts into the tax package's type.
// Statutory caps are applied by the tax package, not here.
func (r IncomeTaxRequest) Deductions() tax.Deductions {
	return tax.Deductions{
		Section80C:       r.Section80C,
		Section80D:       r.Section80D,
		HomeLoanInterest: r.HomeLoanInterest,
		Other:            r.OtherDeductions,
	}
}

// Compare reports whether the request asks for a regime comparison.
func (r IncomeTaxRequest) Compare() bool {
	return r.Regime == "" || r.Regime == "compare"
}

// HRARequest represents the inputs for the HRA exemption calculator.
type HRARequest struct {
	Basic       float64 `json:"basic" yaml:"basic" validate:"required,gt=0"`
	HRAReceived float64 `json:"hra_received" yaml:"hra_received" validate:"gte=0"`
	RentPaid    float64 `json:"rent_paid" yaml:"rent_paid" validate:"gte=0"`
	Metro       bool    `json:"metro,omitempty" yaml:"metro,omitempty"`
}

// Input converts the request into the hra package's input.
func (r HRARequest) Input() hra.Input {
	return hra.Input{
		Basic:       r.Basic,
		HRAReceived: r.HRAReceived,
		RentPaid:    r.RentPaid,
		Metro:       r.Metro,
	}
}

// GratuityRequest represents the inputs for the gratuity calculator.
type GratuityRequest struct {
	MonthlySalary  float64 `json:"monthly_salary" yaml:"monthly_salary" validate:"required,gt=0"`
	YearsOfService float64 `json:"years_of_service" yaml:"years_of_service" validate:"required,gt=0,lte=60"`
}

// Input converts the request into the tax package's gratuity input.
func (r GratuityRequest) Input() tax.GratuityInput {
	return tax.GratuityInput{
		MonthlySalary:  r.MonthlySalary,
		YearsOfService: r.YearsOfService,
	}
}

// RetirementRequest represents the inputs for the retirement corpus
// calculator.
type RetirementRequest struct {
	CurrentAge     int     `json:"current_age" yaml:"current_age" validate:"required,gt=0,lte=100"`
	RetirementAge  int     `json:"retirement_age" yaml:"retirement_age" validate:"required,gtfield=CurrentAge"`
	LifeExpectancy int     `json:"life_expectancy" yaml:"life_expectancy" validate:"required,gtfield=RetirementAge,lte=120"`
	MonthlyExpense float64 `json:"monthly_expense" yaml:"monthly_expense" validate:"required,gt=0"`
	InflationRate  float64 `json:"inflation_rate" yaml:"inflation_rate" validate:"gte=0,lte=50"`
	PreReturn      float64 `json:"pre_return" yaml:"pre_return" validate:"gte=0,lte=50"`
	PostReturn     float64 `json:"post_return" yaml:"post_return" validate:"gte=0,lte=50"`
	ExistingCorpus float64 `json:"existing_corpus,omitempty" yaml:"existing_corpus,omitempty" validate:"gte=0"`
}

// Input converts the request into the retirement package's input.
func (r RetirementRequest) Input() retirement.Input {
	return retirement.Input{
		CurrentAge:     r.CurrentAge,
		RetirementAge:  r.RetirementAge,
		LifeExpectancy: r.LifeExpectancy,
		MonthlyExpense: r.MonthlyExpense,
		InflationRate:  r.InflationRate,
		PreReturn:      r.PreReturn,
		PostReturn:     r.PostReturn,
		ExistingCorpus: r.ExistingCorpus,
	}
}

// FIRERequest represents the inputs for the FIRE calculator.
type FIRERequest struct {
	AnnualExpenses        float64 `json:"annual_expenses" yaml:"annual_expenses" validate:"required,gt=0"`
	WithdrawalRatePercent float64 `json:"withdrawal_rate_percent,omitempty" yaml:"withdrawal_rate_percent,omitempty" validate:"gte=0,lte=20"`
	CurrentCorpus         float64 `json:"current_corpus,omitempty" yaml:"current_corpus,omitempty" validate:"gte=0"`
	MonthlySavings        float64 `json:"monthly_savings,omitempty" yaml:"monthly_savings,omitempty" validate:"gte=0"`
	AnnualReturn          float64 `json:"annual_return" yaml:"annual_return" validate:"gte=0,lte=50"`
	CurrentAge            int     `json:"current_age,omitempty" yaml:"current_age,omitempty" validate:"gte=0,lte=100"`
	RetirementAge         int     `json:"retirement_age,omitempty" yaml:"retirement_age,omitempty" validate:"gte=0,lte=100"`
}

// Input converts the request into the retirement package's FIRE input.
func (r FIRERequest) Input() retirement.FIREInput {
	return retirement.FIREInput{
		AnnualExpenses:        r.AnnualExpenses,
		WithdrawalRatePercent: r.WithdrawalRatePercent,
		CurrentCorpus:         r.CurrentCorpus,
		MonthlySavings:        r.MonthlySavings,
		AnnualReturn:          r.AnnualReturn,
		CurrentAge:            r.CurrentAge,
		RetirementAge:         r.RetirementAge,
	}
}

// NetWorthRequest represents the inputs for the net worth calculator.
// All amounts default to zero so partial balance sheets are valid.
type NetWorthRequest struct {
	Cash        float64 `json:"cash,omitempty" yaml:"cash,omitempty" validate:"gte=0"`
	Deposits    float64 `json:"deposits,omitempty" yaml:"deposits,omitempty" validate:"gte=0"`
	Investments float64 `json:"investments,omitempty" yaml:"investments,omitempty" validate:"gte=0"`
	Property    float64 `json:"property,omitempty" yaml:"property,omitempty" validate:"gte=0"`
	Vehicle     float64 `json:"vehicle,omitempty" yaml:"vehicle,omitempty" validate:"gte=0"`
	OtherAssets float64 `json:"other_assets,omitempty" yaml:"other_assets,omitempty" validate:"gte=0"`

	HomeLoan         float64 `json:"home_loan,omitempty" yaml:"home_loan,omitempty" validate:"gte=0"`
	VehicleLoan      float64 `json:"vehicle_loan,omitempty" yaml:"vehicle_loan,omitempty" validate:"gte=0"`
	PersonalLoan     float64 `json:"personal_loan,omitempty" yaml:"personal_loan,omitempty" validate:"gte=0"`
	CreditCard       float64 `json:"credit_card,omitempty" yaml:"credit_card,omitempty" validate:"gte=0"`
	OtherLiabilities float64 `json:"other_liabilities,omitempty" yaml:"other_liabilities,omitempty" validate:"gte=0"`
}

// Input converts the request into the networth package's input.
func (r NetWorthRequest) Input() networth.Input {
	return networth.Input{
		Assets: networth.Assets{
			Cash:        r.Cash,
			Deposits:    r.Deposits,
			Investments: r.Investments,
			Property:    r.Property,
			Vehicle:     r.Vehicle,
			Other:       r.OtherAssets,
		},
		Liabilities: networth.Liabilities{
			HomeLoan:     r.HomeLoan,
			VehicleLoan:  r.VehicleLoan,
			PersonalLoan: r.PersonalLoan,
			CreditCard:   r.CreditCard,
			Other:        r.OtherLiabilities,
		},
	}
}

// InflationRequest represents the inputs for the inflation calculator.
type InflationRequest struct {
	Amount        float64 `json:"amount" yaml:"amount" validate:"required,gt=0"`
	InflationRate float64 `json:"inflation_rate" yaml:"inflation_rate" validate:"required,gt=0,lte=50"`
	Years         float64 `json:"years" yaml:"years" validate:"required,gt=0,lte=100"`
}

// Input converts the request into the interest package's inflation input.
func (r InflationRequest) Input() interest.InflationInput {
	return interest.InflationInput{
		Amount:        r.Amount,
		InflationRate: r.InflationRate,
		Years:         r.Years,
	}
}

// CurrencyRequest represents the inputs for the currency converter. A
// non-zero Rate bypasses the table and converts at the caller's quote.
type CurrencyRequest struct {
	Amount float64 `json:"amount" yaml:"amount" validate:"required,gt=0"`
	From   string  `json:"from" yaml:"from" validate:"required,len=3,alpha"`
	To     string  `json:"to" yaml:"to" validate:"required,len=3,alpha"`
	Rate   float64 `json:"rate,omitempty" yaml:"rate,omitempty" validate:"gte=0"`
}

// BreakEvenRequest represents the inputs for the break-even calculator.
type BreakEvenRequest struct {
	FixedCosts          float64 `json:"fixed_costs" yaml:"fixed_costs" validate:"required,gt=0"`
	PricePerUnit        float64 `json:"price_per_unit" yaml:"price_per_unit" validate:"required,gt=0"`
	VariableCostPerUnit float64 `json:"variable_cost_per_unit" yaml:"variable_cost_per_unit" validate:"gte=0"`
	TargetProfit        float64 `json:"target_profit,omitempty" yaml:"target_profit,omitempty" validate:"gte=0"`
}

// Input converts the request into the breakeven package's input.
func (r BreakEvenRequest) Input() breakeven.Input {
	return breakeven.Input{
		FixedCosts:          r.FixedCosts,
		PricePerUnit:        r.PricePerUnit,
		VariableCostPerUnit: r.VariableCostPerUnit,
		TargetProfit:        r.TargetProfit,
	}
}

// CompoundInterestRequest represents the inputs for the compound interest
// calculator.
type CompoundInterestRequest struct {
	Principal  float64 `json:"principal" yaml:"principal" validate:"required,gt=0"`
	AnnualRate float64 `json:"annual_rate" yaml:"annual_rate" validate:"required,gt=0,lte=50"`
	Years      float64 `json:"years" yaml:"years" validate:"required,gt=0,lte=100"`
	Frequency  string  `json:"frequency,omitempty" yaml:"frequency,omitempty" validate:"omitempty,oneof=monthly quarterly half-yearly yearly"`
}

// Input converts the request into the interest package's compound input.
func (r CompoundInterestRequest) Input() interest.CompoundInput {
	return interest.CompoundInput{
		Principal:  r.Principal,
		AnnualRate: r.AnnualRate,
		Years:      r.Years,
		Frequency:  interest.Frequency(r.Frequency),
	}
}

// SimpleInterestRequest represents the inputs for the simple interest
// calculator.
type SimpleInterestRequest struct {
	Principal  float64 `json:"principal" yaml:"principal" validate:"required,gt=0"`
	AnnualRate float64 `json:"annual_rate" yaml:"annual_rate" validate:"required,gt=0,lte=50"`
	Years      float64 `json:"years" yaml:"years" validate:"required,gt=0,lte=100"`
}

// Input converts the request into the interest package's simple input.
func (r SimpleInterestRequest) Input() interest.SimpleInput {
	return interest.SimpleInput{
		Principal:  r.Principal,
		AnnualRate: r.AnnualRate,
		Years:      r.Years,
	}
}

// CAGRRequest represents the inputs for the CAGR calculator.
type CAGRRequest struct {
	BeginValue float64 `json:"begin_value" yaml:"begin_value" validate:"required,gt=0"`
	EndValue   float64 `json:"end_value" yaml:"end_value" validate:"required,gt=0"`
	Years      float64 `json:"years" yaml:"years" validate:"required,gt=0,lte=100"`
}

// Input converts the request into the interest package's CAGR input.
func (r CAGRRequest) Input() interest.CAGRInput {
	return interest.CAGRInput{
		BeginValue: r.BeginValue,
		EndValue:   r.EndValue,
		Years:      r.Years,
	}
}
