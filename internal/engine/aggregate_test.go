package engine

import (
	"testing"

	"salesboard/internal/model"
)

// TestSalesByCategory 同类别多行求和，合计行可对账
func TestSalesByCategory(t *testing.T) {
	wb := newTestWorkbook()
	aggs := SalesByCategory(wb.Sheet(model.SheetData), "July", 2025)

	// Water, Juice, Unknown, Service + Grand Total
	if len(aggs) != 5 {
		t.Fatalf("len(aggs) = %d, want 5", len(aggs))
	}

	water := aggs[0]
	if water.Category != "Water" || !floatEquals(water.Quantity, 150) ||
		!floatEquals(water.Liters, 75) || !floatEquals(water.Amount, 300) {
		t.Errorf("Water = %+v, want qty 150 / liters 75 / amount 300", water)
	}

	// 空类别进 Unknown 桶而不是被丢弃
	if aggs[2].Category != "Unknown" || !floatEquals(aggs[2].Quantity, 5) {
		t.Errorf("Unknown = %+v", aggs[2])
	}

	total := aggs[len(aggs)-1]
	if total.Category != model.GrandTotalLabel {
		t.Fatalf("末行应为 Grand Total, got %q", total.Category)
	}
	var qty, liters, amount float64
	for _, a := range aggs[:len(aggs)-1] {
		qty += a.Quantity
		liters += a.Liters
		amount += a.Amount
	}
	if !floatEquals(total.Quantity, qty) || !floatEquals(total.Liters, liters) || !floatEquals(total.Amount, amount) {
		t.Errorf("Grand Total = %+v, want (%v, %v, %v)", total, qty, liters, amount)
	}
	if !floatEquals(total.Quantity, 185) || !floatEquals(total.Amount, 420) {
		t.Errorf("Grand Total = %+v, want qty 185 / amount 420", total)
	}
}

// TestSalesByCategorySelectionMiss 选择无匹配时返回零值合计而不是报错
func TestSalesByCategorySelectionMiss(t *testing.T) {
	wb := newTestWorkbook()
	aggs := SalesByCategory(wb.Sheet(model.SheetData), "March", 2025)

	if len(aggs) != 1 {
		t.Fatalf("len(aggs) = %d, want 1 (仅零值合计行)", len(aggs))
	}
	if aggs[0].Category != model.GrandTotalLabel || aggs[0].Quantity != 0 || aggs[0].Amount != 0 {
		t.Errorf("empty total = %+v", aggs[0])
	}
}

// TestProductionByCategory 生产表没有金额列，金额保持 0
func TestProductionByCategory(t *testing.T) {
	wb := newTestWorkbook()
	aggs := ProductionByCategory(wb.Sheet(model.SheetProduction), "Jul'25", 2025)

	if len(aggs) != 3 {
		t.Fatalf("len(aggs) = %d, want 3", len(aggs))
	}
	if aggs[0].Category != "Water" || !floatEquals(aggs[0].Quantity, 120) || !floatEquals(aggs[0].Liters, 60) {
		t.Errorf("Water = %+v", aggs[0])
	}
	total := aggs[2]
	if !floatEquals(total.Quantity, 150) || !floatEquals(total.Liters, 75) || total.Amount != 0 {
		t.Errorf("Grand Total = %+v", total)
	}
}

// TestSalesBySalesperson 维度聚合按金额降序，末尾追加合计
func TestSalesBySalesperson(t *testing.T) {
	wb := newTestWorkbook()
	aggs := SalesBySalesperson(wb.Sheet(model.SheetFPR), "July", 2025)

	if len(aggs) != 3 {
		t.Fatalf("len(aggs) = %d, want 3", len(aggs))
	}
	if aggs[0].Name != "Alice" || !floatEquals(aggs[0].Amount, 500) {
		t.Errorf("first = %+v, want Alice 500", aggs[0])
	}
	if aggs[1].Name != "Bob" || !floatEquals(aggs[1].Amount, 300) {
		t.Errorf("second = %+v, want Bob 300", aggs[1])
	}
	if aggs[2].Name != model.GrandTotalLabel || !floatEquals(aggs[2].Amount, 800) {
		t.Errorf("total = %+v, want 800", aggs[2])
	}

	// 降序不变式
	for i := 0; i < len(aggs)-2; i++ {
		if aggs[i].Amount < aggs[i+1].Amount {
			t.Errorf("维度聚合未按金额降序: %+v", aggs[:len(aggs)-1])
		}
	}
}

// TestSalesByLocationAndType 另外两个维度复用同一聚合
func TestSalesByLocationAndType(t *testing.T) {
	wb := newTestWorkbook()

	locs := SalesByLocation(wb.Sheet(model.SheetFPR), "July", 2025)
	if locs[0].Name != "Kampala" || !floatEquals(locs[0].Amount, 500) {
		t.Errorf("location = %+v", locs[0])
	}

	types := SalesByType(wb.Sheet(model.SheetFPR), "July", 2025)
	if types[0].Name != "Retail" || !floatEquals(types[0].Amount, 500) {
		t.Errorf("type = %+v", types[0])
	}
	if types[len(types)-1].Amount != 800 {
		t.Errorf("type total = %+v", types[len(types)-1])
	}
}
