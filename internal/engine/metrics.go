package engine

import (
	"salesboard/internal/model"
)

// 衍生指标：实际汇总 + 预算口径 + 工作日数 → 差异/比率/日均

func fptr(v float64) *float64 { return &v }

func metric(name string, budget, actual float64) model.SummaryMetric {
	return model.SummaryMetric{
		Name:     name,
		Budget:   fptr(budget),
		Actual:   actual,
		Variance: fptr(actual - budget),
	}
}

// actualOnly 没有预算口径的指标行
func actualOnly(name string, actual float64) model.SummaryMetric {
	return model.SummaryMetric{Name: name, Actual: actual}
}

// safeDiv 除零保护：约定结果为 0，不出现 Inf/NaN
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// ComparisonSales 销售的预算 vs 实际对比
func ComparisonSales(wb *model.Workbook, month string, year int, opts Options) model.Comparison {
	opts = opts.normalize()
	monthName := NormalizeMonth(month)
	days := WorkingDays(wb.Sheet(model.SheetDays), monthName, year, opts)
	budget := CalculateBudget(wb.Sheet(model.SheetProjection), wb.Sheet(model.SheetData), monthName, year, opts)

	var actualCases, actualAmount float64
	for _, r := range SalesRecords(wb.Sheet(model.SheetData)) {
		if r.Year != year || r.Month != monthName {
			continue
		}
		actualCases += r.Qty
		actualAmount += r.Amount
	}

	collection := opts.CollectionRatio * actualAmount
	if opts.CollectionAmount != nil {
		collection = *opts.CollectionAmount
	}
	// 回款效率按销售额百分比表示，销售额为 0 时约定为 0
	efficiency := safeDiv(collection, actualAmount) * 100

	return model.Comparison{
		Year:        year,
		Month:       monthName,
		WorkingDays: days,
		Metrics: []model.SummaryMetric{
			metric("Sales Cases", budget.Cases, actualCases),
			metric("Daily Case Avg",
				safeDiv(budget.Cases, float64(days)),
				safeDiv(actualCases, float64(days))),
			metric("Sales Amount (US$)", budget.Amount, actualAmount),
			actualOnly("Collection (US$)", collection),
			actualOnly("Collection Efficiency Ratio (% of Sales)", efficiency),
		},
	}
}

// ComparisonProduction 生产的预算 vs 实际对比
// 预算箱数同样来自投影表；升数没有预算口径
func ComparisonProduction(wb *model.Workbook, month string, year int, opts Options) model.Comparison {
	opts = opts.normalize()
	monthName := NormalizeMonth(month)
	days := WorkingDays(wb.Sheet(model.SheetDays), monthName, year, opts)
	budget := CalculateBudget(wb.Sheet(model.SheetProjection), wb.Sheet(model.SheetData), monthName, year, opts)

	var actualCases, actualLiters float64
	for _, r := range productionRows(wb.Sheet(model.SheetProduction)) {
		if r.Year != year || r.Month != monthName {
			continue
		}
		actualCases += r.Qty
		actualLiters += r.Liters
	}

	return model.Comparison{
		Year:        year,
		Month:       monthName,
		WorkingDays: days,
		Metrics: []model.SummaryMetric{
			metric("Production Cases", budget.Cases, actualCases),
			metric("Daily Case Avg",
				safeDiv(budget.Cases, float64(days)),
				safeDiv(actualCases, float64(days))),
			actualOnly("Production in Liters", actualLiters),
			actualOnly("Daily Liter Avg", safeDiv(actualLiters, float64(days))),
		},
	}
}
