package scenario

import (
	"fmt"
	"strings"

	"github.com/paisawise/paisawise/internal/catalog"
	"github.com/paisawise/paisawise/internal/dto"
	"github.com/paisawise/paisawise/pkg/breakeven"
	"github.com/paisawise/paisawise/pkg/currency"
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
	"github.com/paisawise/paisawise/pkg/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Outcome pairs one calculation with its computed result.
type Outcome struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Result   interface{} `json:"result"`
	Warnings []string    `json:"warnings,omitempty"`
}

// Runner executes scenario calculations sequentially.
type Runner struct {
	logger *zap.Logger
	rates  *currency.Table
}

// NewRunner creates a runner. A nil rate table falls back to the built-in
// currency rates.
func NewRunner(logger *zap.Logger, rates *currency.Table) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rates == nil {
		rates = currency.DefaultTable()
	}
	return &Runner{logger: logger, rates: rates}
}

// Run executes every calculation in order and stops at the first failure.
func (r *Runner) Run(scenario *Scenario) ([]Outcome, error) {
	r.logger.Info("running scenario",
		zap.String("op", "scenario.Runner.Run"),
		zap.Int("calculations", len(scenario.Calculations)))

	outcomes := make([]Outcome, 0, len(scenario.Calculations))
	for i, calc := range scenario.Calculations {
		outcome, err := r.runOne(i, calc)
		if err != nil {
			return nil, fmt.Errorf("calculation %q: %w", calc.DisplayName(i), err)
		}
		outcomes = append(outcomes, *outcome)
	}
	return outcomes, nil
}

// runOne decodes the calculation's params into the request type for its
// calculator, validates them, and computes the result.
func (r *Runner) runOne(index int, calc Calculation) (*Outcome, error) {
	outcome := &Outcome{Name: calc.DisplayName(index), Type: calc.Type}

	switch calc.Type {
	case "emi":
		var req dto.EMIRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := loan.NewScheduleBuilder(r.logger).Build(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Warnings = req.Warnings()
	case "sip":
		var req dto.SIPRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := sip.Project(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Warnings = req.Warnings()
	case "lumpsum":
		var req dto.LumpsumRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := interest.Lumpsum(req.Amount, req.AnnualRate, req.Years)
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Warnings = req.Warnings()
	case "swp":
		var req dto.SWPRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := swp.NewPlanner(r.logger).Plan(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Warnings = req.Warnings()
	case "fd":
		var req dto.FDRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := deposit.FixedDeposit(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Warnings = req.Warnings()
	case "rd":
		var req dto.RDRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := deposit.RecurringDeposit(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Warnings = req.Warnings()
	case "ppf":
		var req dto.PPFRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := ppf.Project(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
	case "income-tax":
		var req dto.IncomeTaxRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		if req.Compare() {
			result, err := tax.CompareRegimes(req.GrossIncome, req.Deductions())
			if err != nil {
				return nil, err
			}
			outcome.Result = result
		} else {
			result, err := tax.Compute(tax.Regime(req.Regime), req.GrossIncome, req.Deductions())
			if err != nil {
				return nil, err
			}
			outcome.Result = result
		}
	case "hra":
		var req dto.HRARequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := hra.Exemption(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
	case "gratuity":
		var req dto.GratuityRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := tax.Gratuity(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
	case "retirement":
		var req dto.RetirementRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := retirement.Plan(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Warnings = req.Warnings()
	case "fire":
		var req dto.FIRERequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := retirement.FIRE(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Warnings = req.Warnings()
	case "networth":
		var req dto.NetWorthRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := networth.Compute(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
	case "currency":
		var req dto.CurrencyRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		var result *currency.Conversion
		var err error
		if req.Rate > 0 {
			result, err = currency.WithRate(req.Amount, req.From, req.To, req.Rate)
		} else {
			result, err = r.rates.Convert(req.Amount, req.From, req.To)
		}
		if err != nil {
			return nil, err
		}
		outcome.Result = result
	case "breakeven":
		var req dto.BreakEvenRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := breakeven.Compute(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
	case "compound-interest":
		var req dto.CompoundInterestRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := interest.Compound(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Warnings = req.Warnings()
	case "simple-interest":
		var req dto.SimpleInterestRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := interest.Simple(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
	case "cagr":
		var req dto.CAGRRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := interest.CAGR(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
	case "inflation":
		var req dto.InflationRequest
		if err := r.decode(calc.Params, &req); err != nil {
			return nil, err
		}
		result, err := interest.Inflation(req.Input())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
	default:
		return nil, fmt.Errorf("unknown calculation type %q, valid types: %s",
			calc.Type, strings.Join(catalog.IDs(), ", "))
	}

	r.logger.Debug("completed calculation",
		zap.String("op", "scenario.Runner.runOne"),
		zap.String("name", outcome.Name),
		zap.String("type", outcome.Type))
	return outcome, nil
}

// decode maps loosely-typed scenario params onto a request struct and
// validates it. Params round-trip through YAML so the request structs'
// yaml tags apply.
func (r *Runner) decode(params map[string]interface{}, target interface{}) error {
	raw, err := yaml.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode params: %w", err)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode params: %w", err)
	}
	return validation.Struct(target)
}
