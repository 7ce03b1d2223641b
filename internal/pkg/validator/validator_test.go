package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	valid := []int{2000, 2025, 2100}
	invalid := []int{0, 1999, 2101, -2025}
	for _, y := range valid {
		if !IsValidYear(y) {
			t.Errorf("IsValidYear(%d) = false, want true", y)
		}
	}
	for _, y := range invalid {
		if IsValidYear(y) {
			t.Errorf("IsValidYear(%d) = true, want false", y)
		}
	}
}

func TestIsValidWeekNumber(t *testing.T) {
	valid := []int{1, 52, 53}
	invalid := []int{0, -1, 54}
	for _, w := range valid {
		if !IsValidWeekNumber(w) {
			t.Errorf("IsValidWeekNumber(%d) = false, want true", w)
		}
	}
	for _, w := range invalid {
		if IsValidWeekNumber(w) {
			t.Errorf("IsValidWeekNumber(%d) = true, want false", w)
		}
	}
}

func TestIsValidDayHours(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"7.5", true},
		{"24", true},
		{"24.1", false},
		{"-0.5", false},
	}
	for _, c := range cases {
		h, err := decimal.NewFromString(c.input)
		if err != nil {
			t.Fatalf("bad test input %q: %v", c.input, err)
		}
		if got := IsValidDayHours(h); got != c.want {
			t.Errorf("IsValidDayHours(%s) = %v, want %v", c.input, got, c.want)
		}
	}
}
