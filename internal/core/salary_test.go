package core_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"nexquery/internal/core"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSalaryBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		base  string
		pct   string
		lower string
		upper string
	}{
		{"five percent around 50000", "50000", "5", "47500", "52500"},
		{"ten percent around 100000", "100000", "10", "90000", "110000"},
		{"zero percent is a point", "60000", "0", "60000", "60000"},
		{"negative pct same as positive", "50000", "-5", "47500", "52500"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lower, upper := core.SalaryBounds(dec(tt.base), dec(tt.pct))
			if !lower.Equal(dec(tt.lower)) {
				t.Errorf("lower = %s, want %s", lower, tt.lower)
			}
			if !upper.Equal(dec(tt.upper)) {
				t.Errorf("upper = %s, want %s", upper, tt.upper)
			}
		})
	}
}

func TestAdjustedSalary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		old  string
		pct  string
		want string
	}{
		{"ten percent raise", "50000", "10", "55000"},
		{"fractional pct", "50000", "3.2", "51600"},
		{"zero pct is identity", "72000", "0", "72000"},
		{"negative pct decreases", "50000", "-10", "45000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := core.AdjustedSalary(dec(tt.old), dec(tt.pct))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("AdjustedSalary(%s, %s) = %s, want %s", tt.old, tt.pct, got, tt.want)
			}
		})
	}
}

func TestSelectInSalaryRange_InclusiveBounds(t *testing.T) {
	t.Parallel()

	employees := []core.Employee{
		{EmpID: 1, Salary: dec("47499.99")},
		{EmpID: 2, Salary: dec("47500")},
		{EmpID: 3, Salary: dec("50000")},
		{EmpID: 4, Salary: dec("52500")},
		{EmpID: 5, Salary: dec("52500.01")},
	}

	selected := core.SelectInSalaryRange(employees, dec("47500"), dec("52500"))
	if len(selected) != 3 {
		t.Fatalf("selected %d employees, want 3", len(selected))
	}
	for i, wantID := range []int{2, 3, 4} {
		if selected[i].EmpID != wantID {
			t.Errorf("selected[%d].EmpID = %d, want %d", i, selected[i].EmpID, wantID)
		}
	}
}

func TestSelectInSalaryRange_Empty(t *testing.T) {
	t.Parallel()

	employees := []core.Employee{{EmpID: 1, Salary: dec("30000")}}
	if got := core.SelectInSalaryRange(employees, dec("47500"), dec("52500")); len(got) != 0 {
		t.Fatalf("selected %d employees, want 0", len(got))
	}
}
