package dto

import "github.com/paisawise/paisawise/pkg/validation"

// Warnings returns advisory notes for EMI inputs.
func (r EMIRequest) Warnings() []string {
	return validation.AppendWarning(nil, validation.WarnLongTenure("tenure", r.TermMonths))
}

// Warnings returns advisory notes for SIP inputs.
func (r SIPRequest) Warnings() []string {
	return validation.AppendWarning(nil, validation.WarnOptimisticRate("expected return", r.AnnualRate))
}

// Warnings returns advisory notes for lumpsum inputs.
func (r LumpsumRequest) Warnings() []string {
	return validation.AppendWarning(nil, validation.WarnOptimisticRate("expected return", r.AnnualRate))
}

// Warnings returns advisory notes for SWP inputs.
func (r SWPRequest) Warnings() []string {
	return validation.AppendWarning(nil, validation.WarnOptimisticRate("expected return", r.AnnualRate))
}

// Warnings returns advisory notes for FD inputs.
func (r FDRequest) Warnings() []string {
	return validation.AppendWarning(nil, validation.WarnOptimisticRate("deposit rate", r.AnnualRate))
}

// Warnings returns advisory notes for RD inputs.
func (r RDRequest) Warnings() []string {
	return validation.AppendWarning(nil, validation.WarnOptimisticRate("deposit rate", r.AnnualRate))
}

// Warnings returns advisory notes for retirement inputs.
func (r RetirementRequest) Warnings() []string {
	warnings := validation.AppendWarning(nil, validation.WarnOptimisticRate("pre-retirement return", r.PreReturn))
	warnings = validation.AppendWarning(warnings, validation.WarnOptimisticRate("post-retirement return", r.PostReturn))
	if r.InflationRate > r.PostReturn {
		warnings = append(warnings, "inflation above the post-retirement return means the corpus loses ground every year of retirement")
	}
	return warnings
}

// Warnings returns advisory notes for FIRE inputs.
func (r FIRERequest) Warnings() []string {
	return validation.AppendWarning(nil, validation.WarnOptimisticRate("expected return", r.AnnualReturn))
}

// Warnings returns advisory notes for compound interest inputs.
func (r CompoundInterestRequest) Warnings() []string {
	return validation.AppendWarning(nil, validation.WarnOptimisticRate("annual rate", r.AnnualRate))
}
