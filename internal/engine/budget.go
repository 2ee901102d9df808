package engine

import (
	"salesboard/internal/model"
)

// 投影表（Sales Projection 2025）是半结构化表：
// 合计行固定在物理第 66 行，月份列位固定，均不随表头解析
const projectionTotalsRow = 64 // 去掉表头后的数据行下标，物理行 66

// projectionMonthCol 月份全名 → 投影表列位的静态 12 项查找表
// 前三列是 Product Category / Product Category 2 / Products
var projectionMonthCol = map[string]int{
	"January": 3, "February": 4, "March": 5, "April": 6,
	"May": 7, "June": 8, "July": 9, "August": 10,
	"September": 11, "October": 12, "November": 13, "December": 14,
}

// CalculateBudget 解析某月的预算口径
// 预算数据来自人工维护的工作簿，任何结构性缺失都降级为 0 而不是报错
func CalculateBudget(projection, data *model.Sheet, month string, year int, opts Options) model.BudgetFigure {
	var fig model.BudgetFigure
	monthName := NormalizeMonth(month)
	if monthName == "" {
		return fig
	}

	// 箱数：投影表合计行在该月列的值；表不够长时保持 0
	if projection != nil && len(projection.Rows) > projectionTotalsRow {
		if col, ok := projectionMonthCol[monthName]; ok {
			fig.Cases = parseFloat(getCell(projection.Rows[projectionTotalsRow], col))
		}
	}

	// 金额：Data 表 Amount-Budget 列按月份匹配求和
	// 缺省不过滤年份（沿用原始口径），可经 opts 开启
	for _, r := range SalesRecords(data) {
		if r.Month != monthName {
			continue
		}
		if opts.BudgetFilterByYear && r.Year != year {
			continue
		}
		fig.Amount += r.AmountBudget
	}

	return fig
}

// WorkingDays 从参考表按 (月, 年) 精确匹配取工作日数
// 无匹配时返回约定的回退值
func WorkingDays(sheet *model.Sheet, month string, year int, opts Options) int {
	opts = opts.normalize()
	monthName := NormalizeMonth(month)
	if sheet == nil || monthName == "" {
		return opts.WorkingDaysDefault
	}

	cols := resolveDaysColumns(sheet.Header)
	for _, row := range sheet.Rows {
		rowMonth, rowYear, ok := SplitMonthLabel(getCell(row, cols.month))
		if !ok || rowMonth != monthName {
			continue
		}
		// Months 列自带年份后缀时优先用它，否则看 Year 列
		if rowYear == 0 {
			rowYear = parseInt(getCell(row, cols.year))
		}
		if rowYear != year {
			continue
		}
		if d := parseInt(getCell(row, cols.days)); d > 0 {
			return d
		}
	}
	return opts.WorkingDaysDefault
}
