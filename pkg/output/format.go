// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/paisawise/paisawise/pkg/breakeven"
	"github.com/paisawise/paisawise/pkg/currency"
	"github.com/paisawise/paisawise/pkg/deposit"
	"github.com/paisawise/paisawise/pkg/format"
	"github.com/paisawise/paisawise/pkg/hra"
	"github.com/paisawise/paisawise/pkg/interest"
	"github.com/paisawise/paisawise/pkg/loan"
	"github.com/paisawise/paisawise/pkg/networth"
	"github.com/paisawise/paisawise/pkg/ppf"
	"github.com/paisawise/paisawise/pkg/retirement"
	"github.com/paisawise/paisawise/pkg/scenario"
	"github.com/paisawise/paisawise/pkg/sip"
	"github.com/paisawise/paisawise/pkg/swp"
	"github.com/paisawise/paisawise/pkg/tax"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Row is one rendered line of an outcome. Value carries the display
// string, Plain the machine-readable one for CSV.
type Row struct {
	Label string
	Value string
	Plain string
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(outcomes []scenario.Outcome) {
	p := message.NewPrinter(language.MustParse("en-IN"))
	for i, outcome := range outcomes {
		fmt.Printf("--- Results for %s (%s) ---\n", outcome.Name, outcome.Type)
		for _, row := range Rows(outcome) {
			fmt.Printf("%-34s %s\n", row.Label, row.Value)
		}
		printLedger(p, outcome)
		for _, warning := range outcome.Warnings {
			fmt.Printf("note: %s\n", warning)
		}
		if i < len(outcomes)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(outcomes []scenario.Outcome) {
	fmt.Printf("\"calculation\",\"type\",\"metric\",\"value\"\n")
	for _, outcome := range outcomes {
		for _, row := range Rows(outcome) {
			fmt.Printf("\"%s\",\"%s\",\"%s\",\"%s\"\n", outcome.Name, outcome.Type, row.Label, row.Plain)
		}
	}
}

// JsonFormat outputs the raw results as indented JSON.
func JsonFormat(outcomes []scenario.Outcome) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(outcomes)
}

// Rows flattens an outcome's headline values into label/value pairs.
// Ledgers and schedules are rendered separately by PrettyFormat.
func Rows(outcome scenario.Outcome) []Row {
	switch result := outcome.Result.(type) {
	case *loan.Result:
		rows := []Row{
			currencyRow("Monthly EMI", result.EMI),
			currencyRow("Total interest", result.TotalInterest),
			currencyRow("Total payment", result.TotalPayment),
			countRow("Months to repay", result.MonthsToRepay),
		}
		if result.InterestSaved > 0 {
			rows = append(rows, currencyRow("Interest saved by prepayment", result.InterestSaved))
		}
		return rows
	case *sip.Result:
		return []Row{
			currencyRow("Future value", result.FutureValue),
			currencyRow("Amount invested", result.Invested),
			currencyRow("Wealth gain", result.WealthGain),
		}
	case *interest.LumpsumResult:
		return []Row{
			currencyRow("Future value", result.FutureValue),
			currencyRow("Amount invested", result.Invested),
			currencyRow("Wealth gain", result.WealthGain),
		}
	case *swp.Result:
		return []Row{
			countRow("Months lasted", result.MonthsLasted),
			currencyRow("Final balance", result.FinalBalance),
			currencyRow("Total withdrawn", result.TotalWithdrawn),
			currencyRow("Total growth", result.TotalGrowth),
			textRow("Sustainable indefinitely", yesNo(result.Sustainable)),
		}
	case *deposit.FDResult:
		return []Row{
			currencyRow("Maturity value", result.MaturityValue),
			currencyRow("Interest earned", result.Interest),
			percentRow("Effective annual yield", result.EffectiveYieldPercent),
		}
	case *deposit.RDResult:
		return []Row{
			currencyRow("Maturity value", result.MaturityValue),
			currencyRow("Amount deposited", result.Deposited),
			currencyRow("Interest earned", result.Interest),
		}
	case *ppf.Result:
		return []Row{
			currencyRow("Maturity value", result.MaturityValue),
			currencyRow("Amount invested", result.Invested),
			currencyRow("Interest earned", result.Interest),
			countRow("Term in years", result.TermYears),
			percentRow("Rate", result.RatePercent),
		}
	case *tax.Result:
		return taxRows(result)
	case *tax.Comparison:
		return []Row{
			currencyRow("New regime tax", result.New.Total),
			currencyRow("Old regime tax", result.Old.Total),
			textRow("Recommended regime", string(result.Recommended)),
			currencyRow("Saving", result.Saving),
		}
	case *tax.GratuityResult:
		return []Row{
			textRow("Eligible", yesNo(result.Eligible)),
			countRow("Years counted", result.YearsCounted),
			currencyRow("Formula amount", result.Amount),
			currencyRow("Gratuity payable", result.Payable),
		}
	case *hra.Result:
		return []Row{
			currencyRow("HRA exempt", result.Exempt),
			currencyRow("HRA taxable", result.Taxable),
			currencyRow("Actual HRA received", result.ActualHRA),
			currencyRow("Rent beyond 10% of basic", result.RentExcess),
			currencyRow("Share of basic salary", result.SalaryShare),
			textRow("Binding limit", result.Binding),
		}
	case *retirement.Result:
		rows := []Row{
			countRow("Years to retirement", result.YearsToRetirement),
			countRow("Years in retirement", result.RetirementYears),
			currencyRow("Monthly expense at retirement", result.MonthlyExpenseAtRetirement),
			currencyRow("Corpus required", result.CorpusRequired),
		}
		if result.ExistingCorpusValue > 0 {
			rows = append(rows, currencyRow("Existing corpus at retirement", result.ExistingCorpusValue))
		}
		rows = append(rows,
			currencyRow("Corpus shortfall", result.CorpusShortfall),
			currencyRow("Monthly SIP required", result.MonthlySIPRequired),
		)
		return rows
	case *retirement.FIREResult:
		rows := []Row{
			currencyRow("FIRE number", result.FIRENumber),
			currencyRow("Lean FIRE", result.LeanFIRE),
			currencyRow("Fat FIRE", result.FatFIRE),
		}
		if result.CoastFIRE > 0 {
			rows = append(rows, currencyRow("Coast FIRE", result.CoastFIRE))
		}
		rows = append(rows,
			textRow("Years to FIRE", strconv.FormatFloat(result.YearsToFIRE, 'f', 1, 64)),
			textRow("Reachable", yesNo(result.Reachable)),
		)
		return rows
	case *networth.Result:
		rows := []Row{
			currencyRow("Total assets", result.TotalAssets),
			currencyRow("Total liabilities", result.TotalLiabilities),
			currencyRow("Net worth", result.NetWorth),
			percentRow("Liabilities to assets", result.LiabilityRatioPercent),
		}
		for _, share := range result.AssetShares {
			rows = append(rows, percentRow("Share of "+share.Category, share.Percent))
		}
		return rows
	case *currency.Conversion:
		return []Row{
			textRow("From", fmt.Sprintf("%.2f %s", result.Amount, result.From)),
			textRow("Rate", strconv.FormatFloat(result.Rate, 'f', 6, 64)),
			textRow("Converted", fmt.Sprintf("%.2f %s", result.Converted, result.To)),
		}
	case *breakeven.Result:
		rows := []Row{
			currencyRow("Contribution margin per unit", result.ContributionMargin),
			percentRow("Contribution margin ratio", result.ContributionMarginRatioPercent),
			countRow("Break-even units", result.BreakEvenUnits),
			currencyRow("Break-even revenue", result.BreakEvenRevenue),
		}
		if result.TargetProfitUnits > 0 {
			rows = append(rows,
				countRow("Units for target profit", result.TargetProfitUnits),
				currencyRow("Revenue for target profit", result.TargetProfitRevenue),
			)
		}
		return rows
	case *interest.CompoundResult:
		return []Row{
			currencyRow("Maturity amount", result.Amount),
			currencyRow("Interest earned", result.Interest),
		}
	case *interest.SimpleResult:
		return []Row{
			currencyRow("Interest", result.Interest),
			currencyRow("Total amount", result.Amount),
		}
	case *interest.CAGRResult:
		return []Row{
			percentRow("CAGR", result.CAGRPercent),
			textRow("Growth multiple", strconv.FormatFloat(result.GrowthMultiple, 'f', 2, 64)+"x"),
		}
	case *interest.InflationResult:
		return []Row{
			currencyRow("Future cost", result.FutureCost),
			currencyRow("Purchasing power of today's amount", result.PurchasingPower),
		}
	default:
		return []Row{textRow("Result", fmt.Sprintf("%+v", outcome.Result))}
	}
}

func taxRows(result *tax.Result) []Row {
	rows := []Row{
		textRow("Regime", string(result.Regime)),
		currencyRow("Taxable income", result.Taxable),
		currencyRow("Tax per slabs", result.SlabTax),
	}
	if result.Rebate > 0 {
		rows = append(rows, currencyRow("Rebate under 87A", result.Rebate))
	}
	if result.Surcharge > 0 {
		rows = append(rows, currencyRow("Surcharge", result.Surcharge))
	}
	rows = append(rows,
		currencyRow("Health and education cess", result.Cess),
		currencyRow("Total tax", result.Total),
		percentRow("Effective rate", result.EffectiveRate),
	)
	return rows
}

// printLedger renders the month-wise or year-wise tables for results
// that carry them.
func printLedger(p *message.Printer, outcome scenario.Outcome) {
	switch result := outcome.Result.(type) {
	case *loan.Result:
		if len(result.Yearly) == 0 {
			return
		}
		fmt.Printf("\nYear | Payment      | Principal    | Interest     | Balance\n")
		fmt.Printf("____ | _______      | _________    | ________     | _______\n")
		for _, row := range result.Yearly {
			_, _ = p.Printf("%4d | %12.2f | %12.2f | %12.2f | %12.2f\n",
				row.Year, row.Payment, row.Principal, row.Interest, row.ClosingBalance)
		}
	case *swp.Result:
		if len(result.Ledger) == 0 {
			return
		}
		fmt.Printf("\nMonth | Opening      | Growth     | Withdrawal | Closing\n")
		fmt.Printf("_____ | _______      | ______     | __________ | _______\n")
		for _, entry := range result.Ledger {
			label := entry.Month
			if label == "" {
				label = strconv.Itoa(entry.Period)
			}
			_, _ = p.Printf("%5s | %12.2f | %10.2f | %10.2f | %12.2f\n",
				label, entry.Opening, entry.Growth, entry.Withdrawal, entry.Closing)
		}
	case *ppf.Result:
		if len(result.Ledger) == 0 {
			return
		}
		fmt.Printf("\nYear | Opening      | Deposit    | Interest   | Closing\n")
		fmt.Printf("____ | _______      | _______    | ________   | _______\n")
		for _, entry := range result.Ledger {
			_, _ = p.Printf("%4d | %12.2f | %10.2f | %10.2f | %12.2f\n",
				entry.Year, entry.Opening, entry.Deposit, entry.Interest, entry.Closing)
		}
	case *interest.CompoundResult:
		printYearRows(p, result.Yearly)
	case *interest.LumpsumResult:
		printYearRows(p, result.Yearly)
	}
}

func printYearRows(p *message.Printer, rows []interest.YearRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Printf("\nYear | Opening      | Interest   | Closing\n")
	fmt.Printf("____ | _______      | ________   | _______\n")
	for _, row := range rows {
		_, _ = p.Printf("%4d | %12.2f | %10.2f | %12.2f\n",
			row.Year, row.Opening, row.Interest, row.Closing)
	}
}

func currencyRow(label string, amount float64) Row {
	return Row{Label: label, Value: format.Currency(amount), Plain: strconv.FormatFloat(amount, 'f', 2, 64)}
}

func percentRow(label string, rate float64) Row {
	return Row{Label: label, Value: format.Percent(rate), Plain: strconv.FormatFloat(rate, 'f', 2, 64)}
}

func countRow(label string, n int) Row {
	s := strconv.Itoa(n)
	return Row{Label: label, Value: s, Plain: s}
}

func textRow(label, value string) Row {
	return Row{Label: label, Value: value, Plain: value}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
