package exporter

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"salesboard/internal/model"
)

// ExportDashboardExcel 把看板写为 xlsx 工作簿，每个视图一张表
// 返回的文件由调用方负责写出和关闭
func ExportDashboardExcel(d *model.Dashboard) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummarySheet(f, d); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeCategorySheet(f, "Sales by Category", d.SalesByCategory); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeCategorySheet(f, "Production by Category", d.ProductionByCategory); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeGrowthSheet(f, d); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeSplitSheet(f, d); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func optCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

// writeSummarySheet 预算 vs 实际对比（销售 + 生产）
func writeSummarySheet(f *excelize.File, d *model.Dashboard) error {
	const sheet = "Summary"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"Period", fmt.Sprintf("%s %d", d.Month, d.Year)},
		{"Working Days", d.WorkingDays},
		{},
		{"Sales Budget vs Actual"},
		{"Metric", "Budget", "Actual", "Variance"},
	}
	for _, m := range d.Sales.Metrics {
		rows = append(rows, []interface{}{m.Name, optCell(m.Budget), m.Actual, optCell(m.Variance)})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Production Budget vs Actual"},
		[]interface{}{"Metric", "Budget", "Actual", "Variance"})
	for _, m := range d.Production.Metrics {
		rows = append(rows, []interface{}{m.Name, optCell(m.Budget), m.Actual, optCell(m.Variance)})
	}

	for i, row := range rows {
		if err := setRow(f, sheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCategorySheet(f *excelize.File, sheet string, aggs []model.CategoryAggregate) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := setRow(f, sheet, 1, []interface{}{"Category", "Quantity", "Liters", "Amount"}); err != nil {
		return err
	}
	for i, a := range aggs {
		if err := setRow(f, sheet, i+2, []interface{}{a.Category, a.Quantity, a.Liters, a.Amount}); err != nil {
			return err
		}
	}
	return nil
}

// writeGrowthSheet 环比与同比合并到一张表
func writeGrowthSheet(f *excelize.File, d *model.Dashboard) error {
	const sheet = "Growth"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Month over Month"},
		{"Month", "Total Quantity", "Sales Amount", "Growth"},
	}
	for _, r := range d.MoM {
		rows = append(rows, []interface{}{r.Month, r.TotalQuantity, r.SalesAmount, optCell(r.GrowthPct)})
	}

	appendYoY := func(title string, table model.YoYTable) {
		rows = append(rows, []interface{}{}, []interface{}{title})
		header := []interface{}{"Category"}
		for _, y := range table.Years {
			header = append(header, strconv.Itoa(y))
		}
		rows = append(rows, header)
		for _, r := range append(table.Rows, table.Total) {
			record := []interface{}{r.Category}
			for _, y := range table.Years {
				record = append(record, r.ByYear[y])
			}
			rows = append(rows, record)
		}
	}
	appendYoY("Year over Year Quantity", d.YoYQuantity)
	appendYoY("Year over Year Amount", d.YoYAmount)

	for i, row := range rows {
		if err := setRow(f, sheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSplitSheet(f *excelize.File, d *model.Dashboard) error {
	const sheet = "Sales Split"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	var rows [][]interface{}
	groups := []struct {
		title string
		aggs  []model.DimensionAggregate
	}{
		{"Sales by Salesperson", d.Split.Salesperson},
		{"Sales by Location", d.Split.Location},
		{"Sales by Type", d.Split.SalesType},
	}
	for i, g := range groups {
		if i > 0 {
			rows = append(rows, []interface{}{})
		}
		rows = append(rows, []interface{}{g.title}, []interface{}{"Name", "Amount"})
		for _, a := range g.aggs {
			rows = append(rows, []interface{}{a.Name, a.Amount})
		}
	}

	for i, row := range rows {
		if err := setRow(f, sheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}
