// Package accounting derives normalized weekly totals from raw hour
// entries and absence flags. Everything here is pure: all inputs, including
// any prior-week carry-over, arrive as explicit parameters, and multi-week
// figures are sums of independently computed per-week results.
package accounting

import "github.com/shopspring/decimal"

var (
	// WeeklyNormalThreshold is the 35-hour normal baseline.
	WeeklyNormalThreshold = decimal.NewFromInt(35)

	// AbsenceDayHours is the fixed full-day equivalence for absences.
	// Deliberately a constant, not derived from contracted weekly hours.
	AbsenceDayHours = decimal.NewFromInt(7)
)

// DayHours is one ledger row's Monday..Sunday values.
type DayHours = [7]decimal.Decimal

// AbsenceDays is the accounting view of one absence record: how many
// weekdays are flagged and how the category behaves.
type AbsenceDays struct {
	// Days is the number of flagged weekdays, 0..5.
	Days int
	// Payable categories (paid leave, off-site) count toward the weekly
	// total as if worked.
	Payable bool
	// Owed categories (sick) additively increase the deficit instead of
	// reducing the threshold.
	Owed bool
}

// Hours is the full-day-equivalent hour value of the flagged days.
func (a AbsenceDays) Hours() decimal.Decimal {
	return AbsenceDayHours.Mul(decimal.NewFromInt(int64(a.Days)))
}

// Inputs are the week-level adjustments.
type Inputs struct {
	// HolidayWeekdays is the number of public holidays falling
	// Monday-Friday in the week; each one shrinks the owed-hours
	// baseline by a day equivalent.
	HolidayWeekdays int
	// CarryOver is the deficit already caught up in prior weeks. It only
	// ever reduces owed hours, never below zero.
	CarryOver decimal.Decimal
}

// WeeklyTotals is the normalized result for one employee and one week.
type WeeklyTotals struct {
	Worked         decimal.Decimal `json:"heures_travaillees"`
	PayableAbsence decimal.Decimal `json:"heures_absences_payees"`
	SickAbsence    decimal.Decimal `json:"heures_maladie"`
	UnpaidAbsence  decimal.Decimal `json:"heures_absences_non_payees"`
	Total          decimal.Decimal `json:"total_heures"`
	Normal         decimal.Decimal `json:"heures_normales"`
	Overtime       decimal.Decimal `json:"heures_supplementaires"`
	Owed           decimal.Decimal `json:"heures_dues"`
	CarriedOver    decimal.Decimal `json:"heures_rattrapees"`
}

// ComputeWeekTotals folds ledger rows and absence records into weekly
// totals. No rounding beyond the storage precision of the inputs.
func ComputeWeekTotals(entries []DayHours, absences []AbsenceDays, in Inputs) WeeklyTotals {
	worked := decimal.Zero
	for _, days := range entries {
		for _, h := range days {
			worked = worked.Add(h)
		}
	}

	payable := decimal.Zero
	sick := decimal.Zero
	unpaid := decimal.Zero
	for _, a := range absences {
		hours := a.Hours()
		switch {
		case a.Payable:
			payable = payable.Add(hours)
		case a.Owed:
			sick = sick.Add(hours)
		default:
			unpaid = unpaid.Add(hours)
		}
	}

	total := worked.Add(payable)
	normal := decimal.Min(total, WeeklyNormalThreshold)
	overtime := decimal.Max(decimal.Zero, total.Sub(WeeklyNormalThreshold))

	// Public holidays shrink only the owed baseline; normal and overtime
	// stay against the plain threshold.
	owedBaseline := WeeklyNormalThreshold.Sub(
		AbsenceDayHours.Mul(decimal.NewFromInt(int64(in.HolidayWeekdays))))
	owedBaseline = decimal.Max(decimal.Zero, owedBaseline)

	owed := decimal.Max(decimal.Zero, owedBaseline.Sub(total))
	owed = owed.Add(sick)
	owed = decimal.Max(decimal.Zero, owed.Sub(in.CarryOver))

	return WeeklyTotals{
		Worked:         worked,
		PayableAbsence: payable,
		SickAbsence:    sick,
		UnpaidAbsence:  unpaid,
		Total:          total,
		Normal:         normal,
		Overtime:       overtime,
		Owed:           owed,
		CarriedOver:    in.CarryOver,
	}
}

// SumTotals adds independently computed per-week totals. Never recompute a
// multi-week figure against merged raw rows; day-of-week buckets from
// different weeks would collide.
func SumTotals(perWeek []WeeklyTotals) WeeklyTotals {
	sum := WeeklyTotals{
		Worked:         decimal.Zero,
		PayableAbsence: decimal.Zero,
		SickAbsence:    decimal.Zero,
		UnpaidAbsence:  decimal.Zero,
		Total:          decimal.Zero,
		Normal:         decimal.Zero,
		Overtime:       decimal.Zero,
		Owed:           decimal.Zero,
		CarriedOver:    decimal.Zero,
	}
	for _, t := range perWeek {
		sum.Worked = sum.Worked.Add(t.Worked)
		sum.PayableAbsence = sum.PayableAbsence.Add(t.PayableAbsence)
		sum.SickAbsence = sum.SickAbsence.Add(t.SickAbsence)
		sum.UnpaidAbsence = sum.UnpaidAbsence.Add(t.UnpaidAbsence)
		sum.Total = sum.Total.Add(t.Total)
		sum.Normal = sum.Normal.Add(t.Normal)
		sum.Overtime = sum.Overtime.Add(t.Overtime)
		sum.Owed = sum.Owed.Add(t.Owed)
		sum.CarriedOver = sum.CarriedOver.Add(t.CarriedOver)
	}
	return sum
}
