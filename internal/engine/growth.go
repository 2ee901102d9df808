package engine

import (
	"sort"

	"salesboard/internal/model"
)

// MonthOverMonth 某年的环比视图
// 按日历顺序遍历十二个月，跳过无数据的月份；
// 增长率对比的是前一个"有数据"的月份，首个有数据的月份为 nil
func MonthOverMonth(wb *model.Workbook, year int, opts Options) []model.MoMRow {
	opts = opts.normalize()
	allowed := make(map[string]bool, len(opts.MoMCategories))
	for _, c := range opts.MoMCategories {
		allowed[c] = true
	}

	rows := SalesRecords(wb.Sheet(model.SheetData))

	var out []model.MoMRow
	var prevAmount float64
	first := true

	for _, monthName := range monthOrder {
		qtyByCat := make(map[string]float64)
		var totalQty, amount float64
		present := false

		for _, r := range rows {
			if r.Year != year || r.Month != monthName {
				continue
			}
			present = true
			amount += r.Amount
			// 白名单外的类别仅在环比视图中忽略
			if allowed[r.Category] {
				qtyByCat[r.Category] += r.Qty
				totalQty += r.Qty
			}
		}
		if !present {
			continue
		}

		row := model.MoMRow{
			Month:              monthName,
			QuantityByCategory: qtyByCat,
			TotalQuantity:      totalQty,
			SalesAmount:        amount,
		}
		if !first && prevAmount != 0 {
			row.GrowthPct = fptr((amount - prevAmount) / prevAmount)
		}
		out = append(out, row)
		prevAmount = amount
		first = false
	}
	return out
}

// YearOverYear 选定月份集合的同比视图
// 年份取筛选后数据中实际存在的年份（按升序，通常为两年）；
// 数量表和金额表的类别收录条件各自独立：该表口径下至少一年非零
func YearOverYear(wb *model.Workbook, months []string) (qty, amount model.YoYTable) {
	if len(months) == 0 {
		months = monthOrder
	}

	monthSet := make(map[string]bool, len(months))
	for _, m := range months {
		if name := NormalizeMonth(m); name != "" {
			monthSet[name] = true
		}
	}

	rows := SalesRecords(wb.Sheet(model.SheetData))
	yearSet := make(map[int]bool)
	for _, r := range rows {
		if monthSet[r.Month] && r.Year > 0 {
			yearSet[r.Year] = true
		}
	}
	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	sums := categoryTotalsByYear(wb.Sheet(model.SheetData), months, years)

	qty = buildYoYTable(years, sums.order, sums.qty)
	amount = buildYoYTable(years, sums.order, sums.amount)
	return qty, amount
}

func buildYoYTable(years []int, order []string, byCat map[string]map[int]float64) model.YoYTable {
	table := model.YoYTable{
		Years: append([]int{}, years...),
		Total: model.YoYRow{Category: model.GrandTotalLabel, ByYear: make(map[int]float64)},
	}

	for _, cat := range order {
		nonzero := false
		row := model.YoYRow{Category: cat, ByYear: make(map[int]float64, len(years))}
		for _, y := range years {
			v := byCat[cat][y]
			row.ByYear[y] = v
			if v != 0 {
				nonzero = true
			}
		}
		// 所有年份都为零的类别不进该表
		if !nonzero {
			continue
		}
		table.Rows = append(table.Rows, row)
		for _, y := range years {
			table.Total.ByYear[y] += row.ByYear[y]
		}
	}
	return table
}
