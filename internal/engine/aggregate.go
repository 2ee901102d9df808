package engine

import (
	"sort"

	"salesboard/internal/model"
)

// UnknownBucket 类别/维度为空的行归入该桶而不是丢弃，保证合计始终可对账
const UnknownBucket = "Unknown"

// SalesByCategory 按产品类别汇总 Data 表的销售实际数
// 类别按首次出现顺序排列，末尾追加 Grand Total
func SalesByCategory(sheet *model.Sheet, month string, year int) []model.CategoryAggregate {
	monthName := NormalizeMonth(month)
	var order []string
	sums := make(map[string]*model.CategoryAggregate)

	for _, r := range SalesRecords(sheet) {
		if r.Year != year || r.Month != monthName {
			continue
		}
		key := r.Category
		if key == "" {
			key = UnknownBucket
		}
		agg, ok := sums[key]
		if !ok {
			agg = &model.CategoryAggregate{Category: key}
			sums[key] = agg
			order = append(order, key)
		}
		agg.Quantity += r.Qty
		agg.Liters += r.Liters
		agg.Amount += r.Amount
	}

	return appendCategoryTotal(order, sums)
}

// ProductionByCategory 按产品类别汇总 Production Data 表的产量
func ProductionByCategory(sheet *model.Sheet, month string, year int) []model.CategoryAggregate {
	monthName := NormalizeMonth(month)
	var order []string
	sums := make(map[string]*model.CategoryAggregate)

	for _, r := range productionRows(sheet) {
		if r.Year != year || r.Month != monthName {
			continue
		}
		key := r.Category
		if key == "" {
			key = UnknownBucket
		}
		agg, ok := sums[key]
		if !ok {
			agg = &model.CategoryAggregate{Category: key}
			sums[key] = agg
			order = append(order, key)
		}
		agg.Quantity += r.Qty
		agg.Liters += r.Liters
	}

	return appendCategoryTotal(order, sums)
}

func appendCategoryTotal(order []string, sums map[string]*model.CategoryAggregate) []model.CategoryAggregate {
	out := make([]model.CategoryAggregate, 0, len(order)+1)
	total := model.CategoryAggregate{Category: model.GrandTotalLabel}
	for _, key := range order {
		agg := sums[key]
		out = append(out, *agg)
		total.Quantity += agg.Quantity
		total.Liters += agg.Liters
		total.Amount += agg.Amount
	}
	return append(out, total)
}

// 三个维度共用同一套分组逻辑，只是取键不同

// SalesBySalesperson 按业务员汇总 FPR 表销售额
func SalesBySalesperson(sheet *model.Sheet, month string, year int) []model.DimensionAggregate {
	return sumByDimension(sheet, month, year, func(r fprRow) string { return r.Salesman })
}

// SalesByLocation 按区域汇总 FPR 表销售额
func SalesByLocation(sheet *model.Sheet, month string, year int) []model.DimensionAggregate {
	return sumByDimension(sheet, month, year, func(r fprRow) string { return r.Location })
}

// SalesByType 按销售类型汇总 FPR 表销售额
func SalesByType(sheet *model.Sheet, month string, year int) []model.DimensionAggregate {
	return sumByDimension(sheet, month, year, func(r fprRow) string { return r.SalesType })
}

// sumByDimension 维度聚合：按金额降序排列后追加 Grand Total
func sumByDimension(sheet *model.Sheet, month string, year int, keyOf func(fprRow) string) []model.DimensionAggregate {
	monthName := NormalizeMonth(month)
	var order []string
	sums := make(map[string]float64)

	for _, r := range fprRows(sheet) {
		if r.Year != year || r.Month != monthName {
			continue
		}
		key := keyOf(r)
		if key == "" {
			key = UnknownBucket
		}
		if _, ok := sums[key]; !ok {
			order = append(order, key)
		}
		sums[key] += r.Amount
	}

	out := make([]model.DimensionAggregate, 0, len(order)+1)
	total := 0.0
	for _, key := range order {
		out = append(out, model.DimensionAggregate{Name: key, Amount: sums[key]})
		total += sums[key]
	}
	// 金额相同的保持首次出现顺序
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return append(out, model.DimensionAggregate{Name: model.GrandTotalLabel, Amount: total})
}

// categoryYearSums 多期间变体：月份集合 × 年份集合的并集筛选
// 同比视图用它一次取回每类别每年的数量和金额
type categoryYearSums struct {
	order  []string
	qty    map[string]map[int]float64
	amount map[string]map[int]float64
}

func categoryTotalsByYear(sheet *model.Sheet, months []string, years []int) categoryYearSums {
	monthSet := make(map[string]bool, len(months))
	for _, m := range months {
		if name := NormalizeMonth(m); name != "" {
			monthSet[name] = true
		}
	}
	yearSet := make(map[int]bool, len(years))
	for _, y := range years {
		yearSet[y] = true
	}

	sums := categoryYearSums{
		qty:    make(map[string]map[int]float64),
		amount: make(map[string]map[int]float64),
	}
	for _, r := range SalesRecords(sheet) {
		if !yearSet[r.Year] || !monthSet[r.Month] {
			continue
		}
		key := r.Category
		if key == "" {
			key = UnknownBucket
		}
		if _, ok := sums.qty[key]; !ok {
			sums.order = append(sums.order, key)
			sums.qty[key] = make(map[int]float64)
			sums.amount[key] = make(map[int]float64)
		}
		sums.qty[key][r.Year] += r.Qty
		sums.amount[key][r.Year] += r.Amount
	}
	return sums
}
