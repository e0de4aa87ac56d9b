// Package swp simulates systematic withdrawal plans month by month.
package swp

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/datetime"
	"github.com/paisawise/paisawise/pkg/mathutil"
	"go.uber.org/zap"
)

// Input holds the parameters for a withdrawal plan.
type Input struct {
	Corpus     float64
	Monthly    float64
	AnnualRate float64

	// HorizonMonths caps the simulation; zero means the default horizon.
	HorizonMonths int

	// StartMonth optionally anchors the ledger to calendar months
	// ("2006-01" layout). When empty, rows carry period numbers only.
	StartMonth string
}

// Entry holds the values for a single ledger month.
type Entry struct {
	Period     int     `json:"period"`
	Month      string  `json:"month,omitempty"`
	Opening    float64 `json:"opening"`
	Growth     float64 `json:"growth"`
	Withdrawal float64 `json:"withdrawal"`
	Closing    float64 `json:"closing"`
}

// Result holds the complete outcome of a withdrawal plan.
type Result struct {
	MonthsLasted   int     `json:"months_lasted"`
	FinalBalance   float64 `json:"final_balance"`
	TotalWithdrawn float64 `json:"total_withdrawn"`
	TotalGrowth    float64 `json:"total_growth"`

	// Sustainable is true when the corpus was still growing at the end of
	// the horizon, meaning the withdrawals never deplete it.
	Sustainable bool    `json:"sustainable"`
	Ledger      []Entry `json:"ledger"`
}

// Planner produces month-by-month withdrawal ledgers.
type Planner struct {
	logger *zap.Logger
}

// NewPlanner creates a planner instance.
func NewPlanner(logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{logger: logger}
}

// Plan simulates the withdrawal plan. Each month the corpus grows at the
// monthly rate first and the withdrawal is taken from the grown balance,
// so a plan funded exactly by growth holds its value.
func (p *Planner) Plan(in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	horizon := in.HorizonMonths
	if horizon == 0 {
		horizon = constants.DefaultSWPHorizonMonths
	}

	var months []string
	if in.StartMonth != "" {
		var err error
		months, err = datetime.SequenceMonths(in.StartMonth, horizon)
		if err != nil {
			return nil, fmt.Errorf("invalid start month %q: %w", in.StartMonth, err)
		}
	}

	result := &Result{
		Ledger: make([]Entry, 0, horizon),
	}

	balance := in.Corpus
	totalWithdrawn := 0.0
	totalGrowth := 0.0
	lastGrowth := 0.0

	for period := 1; period <= horizon; period++ {
		opening := balance
		growth := opening * mathutil.MonthlyRate(in.AnnualRate)
		afterGrowth := opening + growth

		withdrawal := in.Monthly
		depleted := false
		if mathutil.Round(afterGrowth-withdrawal) <= 0 {
			// The corpus cannot fund a full withdrawal this month.
			withdrawal = afterGrowth
			depleted = true
		}
		balance = afterGrowth - withdrawal
		if depleted {
			balance = 0
		}

		entry := Entry{
			Period:     period,
			Opening:    mathutil.Round(opening),
			Growth:     mathutil.Round(growth),
			Withdrawal: mathutil.Round(withdrawal),
			Closing:    mathutil.Round(balance),
		}
		if months != nil {
			entry.Month = months[period-1]
		}
		result.Ledger = append(result.Ledger, entry)

		totalWithdrawn += withdrawal
		totalGrowth += growth
		lastGrowth = growth

		if depleted {
			p.logger.Debug(fmt.Sprintf("corpus depleted after %d months", period),
				zap.String("op", "swp.Plan"),
			)
			break
		}
	}

	result.MonthsLasted = len(result.Ledger)
	result.FinalBalance = mathutil.Round(balance)
	result.TotalWithdrawn = mathutil.Round(totalWithdrawn)
	result.TotalGrowth = mathutil.Round(totalGrowth)
	result.Sustainable = result.MonthsLasted == horizon && lastGrowth >= in.Monthly

	return result, nil
}

func (in Input) validate() error {
	if in.Corpus <= 0 {
		return fmt.Errorf("corpus must be positive, got %.2f", in.Corpus)
	}
	if in.Monthly <= 0 {
		return fmt.Errorf("monthly withdrawal must be positive, got %.2f", in.Monthly)
	}
	if in.AnnualRate < 0 {
		return fmt.Errorf("annual rate must not be negative, got %.2f", in.AnnualRate)
	}
	if in.HorizonMonths < 0 {
		return fmt.Errorf("horizon must not be negative, got %d", in.HorizonMonths)
	}
	if in.HorizonMonths > constants.MaxTenureMonths {
		return fmt.Errorf("horizon of %d months exceeds the maximum of %d", in.HorizonMonths, constants.MaxTenureMonths)
	}
	return nil
}
