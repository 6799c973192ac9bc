package payroll

import (
	"github.com/shopspring/decimal"
)

// CalculateNetSalary derives net pay from its components. The result is not
// floored at zero: deductions exceeding base plus allowances produce a
// negative net salary, which callers must preserve.
func CalculateNetSalary(base, allowances, deductions decimal.Decimal) decimal.Decimal {
	return base.Add(allowances).Sub(deductions)
}

// CalculateTotalPayroll sums net salaries over the records.
func CalculateTotalPayroll(records []Payroll) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.NetSalary)
	}
	return total
}

// CalculateAverageSalary returns total net divided by record count, or zero
// for an empty set.
func CalculateAverageSalary(records []Payroll) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	return CalculateTotalPayroll(records).Div(decimal.NewFromInt(int64(len(records))))
}

// SalaryRange returns the minimum and maximum net salary over the records.
// Both are zero for an empty set.
func SalaryRange(records []Payroll) (min, max decimal.Decimal) {
	if len(records) == 0 {
		return decimal.Zero, decimal.Zero
	}
	min, max = records[0].NetSalary, records[0].NetSalary
	for _, rec := range records[1:] {
		if rec.NetSalary.LessThan(min) {
			min = rec.NetSalary
		}
		if rec.NetSalary.GreaterThan(max) {
			max = rec.NetSalary
		}
	}
	return min, max
}
