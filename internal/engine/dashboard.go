package engine

import (
	"salesboard/internal/model"
)

// Selection 看板的期间选择
type Selection struct {
	// Month 月份标签，三种写法（"July" / "Jul" / "Jul'25"）均可
	Month string
	// Year 年份；Month 自带年份后缀时可省略
	Year int
	// YoYMonths 同比视图的月份集合，空表示全年十二个月
	YoYMonths []string
}

// Build 汇编一次期间选择对应的完整看板
// 纯函数：同一工作簿快照 + 同一选择必然得到同一结果，内部无任何缓存；
// 结构校验是唯一的失败出口，之后的缺陷都降级进结果
func Build(wb *model.Workbook, sel Selection, opts Options) (*model.Dashboard, error) {
	if err := wb.Validate(); err != nil {
		return nil, err
	}
	opts = opts.normalize()

	monthName, labelYear, _ := SplitMonthLabel(sel.Month)
	year := sel.Year
	if year == 0 {
		year = labelYear
	}

	fpr := wb.Sheet(model.SheetFPR)
	yoyQty, yoyAmount := YearOverYear(wb, sel.YoYMonths)

	d := &model.Dashboard{
		Month:       monthName,
		Year:        year,
		Sales:       ComparisonSales(wb, monthName, year, opts),
		Production:  ComparisonProduction(wb, monthName, year, opts),
		MoM:         MonthOverMonth(wb, year, opts),
		YoYQuantity: yoyQty,
		YoYAmount:   yoyAmount,

		SalesByCategory:      SalesByCategory(wb.Sheet(model.SheetData), monthName, year),
		ProductionByCategory: ProductionByCategory(wb.Sheet(model.SheetProduction), monthName, year),

		Split: model.SalesSplit{
			Salesperson: SalesBySalesperson(fpr, monthName, year),
			Location:    SalesByLocation(fpr, monthName, year),
			SalesType:   SalesByType(fpr, monthName, year),
		},
	}
	d.WorkingDays = d.Sales.WorkingDays
	return d, nil
}
