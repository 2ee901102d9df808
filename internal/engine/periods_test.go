package engine

import (
	"testing"

	"salesboard/internal/model"
)

// TestAvailablePeriods 期间去重后按年倒序、月倒序
func TestAvailablePeriods(t *testing.T) {
	wb := newTestWorkbook()
	periods := AvailablePeriods(wb)

	want := []model.PeriodOption{
		{Year: 2025, Month: "October", Display: "October 2025"},
		{Year: 2025, Month: "August", Display: "August 2025"},
		{Year: 2025, Month: "July", Display: "July 2025"},
		{Year: 2024, Month: "July", Display: "July 2024"},
	}
	if len(periods) != len(want) {
		t.Fatalf("len(periods) = %d, want %d: %+v", len(periods), len(want), periods)
	}
	for i, p := range periods {
		if p != want[i] {
			t.Errorf("periods[%d] = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestAvailableYears(t *testing.T) {
	wb := newTestWorkbook()
	years := AvailableYears(wb)
	if len(years) != 2 || years[0] != 2025 || years[1] != 2024 {
		t.Errorf("years = %v, want [2025 2024]", years)
	}
}

// TestCostRows 成本参考表行位固定在物理第 110-120 行
func TestCostRows(t *testing.T) {
	rows := make([][]string, 120)
	for i := range rows {
		rows[i] = []string{"", "", ""}
	}
	rows[108] = []string{"Jul'25", "1200", "800"}
	rows[109] = []string{"Aug'25", "1100", "750"}
	rows[115] = []string{"not a month", "1", "2"}

	wb := newTestWorkbook()
	wb.Sheets[model.SheetCosts] = &model.Sheet{
		Name:   model.SheetCosts,
		Header: []string{"A", "B", "C"},
		Rows:   rows,
	}

	got := CostRows(wb)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2: %+v", len(got), got)
	}
	if got[0].Month != "July" || got[0].Year != 2025 || !floatEquals(got[0].Fuel, 1200) || !floatEquals(got[0].LEC, 800) {
		t.Errorf("got[0] = %+v", got[0])
	}
}

// TestCostRowsAbsent 成本表可选，缺失返回 nil
func TestCostRowsAbsent(t *testing.T) {
	wb := newTestWorkbook()
	if got := CostRows(wb); got != nil {
		t.Errorf("got = %+v, want nil", got)
	}
}
