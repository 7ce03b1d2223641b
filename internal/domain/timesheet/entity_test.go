package timesheet

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/validator"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestEntryTotal(t *testing.T) {
	entry := HourEntry{Hours: [7]decimal.Decimal{
		d("7.5"), d("7.5"), d("8"), d("7"), d("5"), decimal.Zero, decimal.Zero,
	}}
	assert.Equal(t, "35.0", entry.Total().StringFixed(1))
}

func TestAggregateHoursByDay(t *testing.T) {
	entries := []HourEntry{
		{Hours: [7]decimal.Decimal{d("4"), d("4"), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero}},
		{Hours: [7]decimal.Decimal{d("3.5"), decimal.Zero, d("7"), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero}},
	}
	totals := AggregateHoursByDay(entries)
	assert.Equal(t, "7.5", totals[0].StringFixed(1))
	assert.Equal(t, "4.0", totals[1].StringFixed(1))
	assert.Equal(t, "7.0", totals[2].StringFixed(1))
	assert.True(t, totals[6].IsZero())
}

func TestUpsertRequestValidate(t *testing.T) {
	req := UpsertEntryRequest{
		ProjectID: 1, TaskID: 2, Year: 2025, Week: 10,
		Monday: d("8"),
	}
	assert.NoError(t, req.Validate())

	req.Week = 60
	err := req.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "semaine")

	req.Week = 10
	req.Tuesday = d("25")
	err = req.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "mardi")

	req.Tuesday = d("-1")
	err = req.Validate()
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "mardi")
}

func TestUpsertRequestMissingKeyFields(t *testing.T) {
	req := UpsertEntryRequest{Year: 2025, Week: 10}
	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "projet_id")
	assert.Contains(t, m, "tache_id")
}

func TestUpsertRequestDayHoursDefaultToZero(t *testing.T) {
	var req UpsertEntryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"projet_id":"1","tache_id":"2","annee":2025,"semaine":10,"lundi":"7.5"}`), &req))
	hours := req.DayHours()
	assert.Equal(t, "7.5", hours[0].StringFixed(1))
	for i := 1; i < 7; i++ {
		assert.True(t, hours[i].IsZero(), "day %d", i)
	}
}
