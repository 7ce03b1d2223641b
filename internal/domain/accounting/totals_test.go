package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func fullDays(perDay string) DayHours {
	h := d(perDay)
	return DayHours{h, h, h, h, h, decimal.Zero, decimal.Zero}
}

func TestFortyHourWeek(t *testing.T) {
	// 8h/day Monday-Friday on one project/task.
	totals := ComputeWeekTotals([]DayHours{fullDays("8")}, nil, Inputs{CarryOver: decimal.Zero})

	assert.True(t, totals.Worked.Equal(d("40")), "worked = %s", totals.Worked)
	assert.True(t, totals.Total.Equal(d("40")))
	assert.True(t, totals.Normal.Equal(d("35")))
	assert.True(t, totals.Overtime.Equal(d("5")))
	assert.True(t, totals.Owed.IsZero())
}

func TestPaidLeaveCountsAsWorked(t *testing.T) {
	// 4 days x 7h worked, Friday flagged paid leave.
	entries := []DayHours{{d("7"), d("7"), d("7"), d("7"), decimal.Zero, decimal.Zero, decimal.Zero}}
	absences := []AbsenceDays{{Days: 1, Payable: true}}

	totals := ComputeWeekTotals(entries, absences, Inputs{CarryOver: decimal.Zero})

	assert.True(t, totals.Worked.Equal(d("28")))
	assert.True(t, totals.PayableAbsence.Equal(d("7")))
	assert.True(t, totals.Total.Equal(d("35")))
	assert.True(t, totals.Normal.Equal(d("35")))
	assert.True(t, totals.Overtime.IsZero())
	assert.True(t, totals.Owed.IsZero())
}

func TestSickDaysGenerateOwedHours(t *testing.T) {
	// 4 days x 7h worked, one sick day. Sick time does not fill the
	// baseline and additionally increases the deficit.
	entries := []DayHours{{d("7"), d("7"), d("7"), d("7"), decimal.Zero, decimal.Zero, decimal.Zero}}
	absences := []AbsenceDays{{Days: 1, Owed: true}}

	totals := ComputeWeekTotals(entries, absences, Inputs{CarryOver: decimal.Zero})

	assert.True(t, totals.Total.Equal(d("28")))
	assert.True(t, totals.SickAbsence.Equal(d("7")))
	// 35 - 28 = 7 baseline deficit, plus 7 sick hours.
	assert.True(t, totals.Owed.Equal(d("14")), "owed = %s", totals.Owed)
}

func TestUnpaidAbsenceTrackedSeparately(t *testing.T) {
	absences := []AbsenceDays{{Days: 2}}
	totals := ComputeWeekTotals(nil, absences, Inputs{CarryOver: decimal.Zero})

	assert.True(t, totals.UnpaidAbsence.Equal(d("14")))
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.Owed.Equal(d("35")))
}

func TestThresholdArithmetic(t *testing.T) {
	cases := []struct {
		perDay                  string
		normal, overtime, owed string
	}{
		{"0", "0", "0", "35"},
		{"5", "25", "0", "10"},
		{"7", "35", "0", "0"},
		{"8", "35", "5", "0"},
		{"10", "35", "15", "0"},
	}
	for _, c := range cases {
		totals := ComputeWeekTotals([]DayHours{fullDays(c.perDay)}, nil, Inputs{CarryOver: decimal.Zero})

		assert.True(t, totals.Normal.Equal(d(c.normal)), "%sh/day normal = %s", c.perDay, totals.Normal)
		assert.True(t, totals.Overtime.Equal(d(c.overtime)), "%sh/day overtime = %s", c.perDay, totals.Overtime)
		assert.True(t, totals.Owed.Equal(d(c.owed)), "%sh/day owed = %s", c.perDay, totals.Owed)

		// normal + overtime always reassembles the total.
		assert.True(t, totals.Normal.Add(totals.Overtime).Equal(totals.Total))
		// Deficit and overtime are mutually exclusive.
		assert.False(t, totals.Overtime.IsPositive() && totals.Owed.IsPositive())
	}
}

func TestHolidayShrinksOwedBaselineOnly(t *testing.T) {
	// 4 days x 7h with one public holiday in the week: no deficit.
	entries := []DayHours{{d("7"), d("7"), d("7"), d("7"), decimal.Zero, decimal.Zero, decimal.Zero}}

	totals := ComputeWeekTotals(entries, nil, Inputs{HolidayWeekdays: 1, CarryOver: decimal.Zero})

	assert.True(t, totals.Owed.IsZero(), "owed = %s", totals.Owed)
	// Normal hours still measured against the plain threshold.
	assert.True(t, totals.Normal.Equal(d("28")))
	assert.True(t, totals.Overtime.IsZero())
}

func TestCarryOverReducesOwed(t *testing.T) {
	entries := []DayHours{fullDays("6")} // 30h, 5h deficit

	totals := ComputeWeekTotals(entries, nil, Inputs{CarryOver: d("3")})
	assert.True(t, totals.Owed.Equal(d("2")))
	assert.True(t, totals.CarriedOver.Equal(d("3")))

	// Carry-over never drives owed negative.
	totals = ComputeWeekTotals(entries, nil, Inputs{CarryOver: d("10")})
	assert.True(t, totals.Owed.IsZero())
}

func TestSumTotalsIsSumOfPerWeekResults(t *testing.T) {
	week1 := ComputeWeekTotals([]DayHours{fullDays("8")}, nil, Inputs{CarryOver: decimal.Zero}) // 40h
	week2 := ComputeWeekTotals([]DayHours{fullDays("6")}, nil, Inputs{CarryOver: decimal.Zero}) // 30h

	sum := SumTotals([]WeeklyTotals{week1, week2})

	assert.True(t, sum.Total.Equal(d("70")))
	assert.True(t, sum.Overtime.Equal(d("5")))
	assert.True(t, sum.Owed.Equal(d("5")))
	assert.True(t, sum.Normal.Equal(d("65")))
}
