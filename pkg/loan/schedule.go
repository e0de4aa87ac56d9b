package loan

import (
	"fmt"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/paisawise/paisawise/pkg/datetime"
	"github.com/paisawise/paisawise/pkg/mathutil"
	"go.uber.org/zap"
)

// ScheduleBuilder produces month-by-month amortization schedules.
type ScheduleBuilder struct {
	logger *zap.Logger
}

// NewScheduleBuilder creates a builder instance.
func NewScheduleBuilder(logger *zap.Logger) *ScheduleBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleBuilder{logger: logger}
}

// Build computes the EMI and the full amortization schedule for the input.
// Extra principal payments shorten the schedule; the result reports the
// interest saved against the no-extra baseline.
func (b *ScheduleBuilder) Build(in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	emi := MonthlyPayment(in.Principal, in.AnnualRate, in.TermMonths)
	baselineInterest := emi*float64(in.TermMonths) - in.Principal

	var months []string
	if in.StartMonth != "" {
		var err error
		months, err = datetime.SequenceMonths(in.StartMonth, in.TermMonths)
		if err != nil {
			return nil, fmt.Errorf("invalid start month %q: %w", in.StartMonth, err)
		}
	}

	result := &Result{
		EMI:      mathutil.Round(emi),
		Schedule: make([]Payment, 0, in.TermMonths),
	}

	balance := in.Principal
	totalInterest := 0.0
	totalPayment := 0.0

	for period := 1; period <= in.TermMonths; period++ {
		interest := InterestPortion(balance, in.AnnualRate)
		principalPart := emi - interest

		extra := in.ExtraMonthly
		if in.ExtraYearly > 0 && period%constants.MonthsPerYear == 0 {
			extra += in.ExtraYearly
		}

		// Prevent overpayment on the closing installment: never draw down
		// more principal than remains.
		reduction := principalPart + extra
		closing := false
		if mathutil.Round(balance-reduction) <= 0 {
			reduction = balance
			closing = true
		}

		payment := interest + reduction
		balance -= reduction
		if closing {
			// Machine error would otherwise leave a residual balance.
			balance = 0
		}

		row := Payment{
			Period:    period,
			Payment:   mathutil.Round(payment),
			Principal: mathutil.Round(reduction),
			Interest:  mathutil.Round(interest),
			Balance:   mathutil.Round(balance),
		}
		if months != nil {
			row.Month = months[period-1]
		}
		result.Schedule = append(result.Schedule, row)

		totalInterest += interest
		totalPayment += payment

		if closing {
			if period < in.TermMonths {
				b.logger.Debug(fmt.Sprintf("loan repaid %d months early", in.TermMonths-period),
					zap.String("op", "loan.Build"),
				)
			}
			break
		}
	}

	result.MonthsToRepay = len(result.Schedule)
	result.TotalInterest = mathutil.Round(totalInterest)
	result.TotalPayment = mathutil.Round(totalPayment)
	result.InterestSaved = mathutil.Round(mathutil.Max(baselineInterest-totalInterest, 0))
	result.Yearly = yearlyTotals(result.Schedule)

	return result, nil
}

// yearlyTotals groups schedule rows into loan years.
func yearlyTotals(schedule []Payment) []YearRow {
	if len(schedule) == 0 {
		return nil
	}

	rows := make([]YearRow, 0, (len(schedule)+constants.MonthsPerYear-1)/constants.MonthsPerYear)
	var current YearRow
	for _, p := range schedule {
		year := (p.Period-1)/constants.MonthsPerYear + 1
		if current.Year != year {
			if current.Year != 0 {
				rows = append(rows, current)
			}
			current = YearRow{Year: year}
		}
		current.Payment = mathutil.Round(current.Payment + p.Payment)
		current.Principal = mathutil.Round(current.Principal + p.Principal)
		current.Interest = mathutil.Round(current.Interest + p.Interest)
		current.ClosingBalance = p.Balance
	}
	rows = append(rows, current)
	return rows
}
