package absence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		parsed, err := ParseType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}

	_, err := ParseType("vacation")
	assert.ErrorIs(t, err, ErrUnknownType)
	_, err = ParseType("")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestTypeBehavior(t *testing.T) {
	cases := []struct {
		typ      Type
		payable  bool
		owed     bool
	}{
		{TypePaidLeave, true, false},
		{TypeOffSite, true, false},
		{TypeSick, false, true},
		{TypeUnpaid, false, false},
		{TypeOther, false, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.payable, c.typ.CountsAsWorked(), "%s payable", c.typ)
		assert.Equal(t, c.owed, c.typ.GeneratesOwed(), "%s owed", c.typ)
		assert.NotEmpty(t, c.typ.Label())
	}
}

func TestDaysCount(t *testing.T) {
	record := AbsenceRecord{Days: [5]bool{true, false, true, false, true}}
	assert.Equal(t, 3, record.DaysCount())

	view := record.AccountingDays()
	assert.Equal(t, 3, view.Days)
	assert.Equal(t, "21.0", view.Hours().StringFixed(1))
}

func TestAccountingViewKeepsCategoryBehavior(t *testing.T) {
	records := []AbsenceRecord{
		{Type: TypePaidLeave, Days: [5]bool{true, false, false, false, false}},
		{Type: TypeSick, Days: [5]bool{false, true, true, false, false}},
	}
	view := AccountingView(records)
	require.Len(t, view, 2)
	assert.True(t, view[0].Payable)
	assert.False(t, view[0].Owed)
	assert.False(t, view[1].Payable)
	assert.True(t, view[1].Owed)
	assert.Equal(t, 2, view[1].Days)
}
