package engine

import (
	"fmt"

	"salesboard/internal/model"
)

// newTestWorkbook 构造测试用工作簿
// 数据覆盖：多行同类别、空类别、零值类别、跳月、跨年
func newTestWorkbook() *model.Workbook {
	dataHeader := []string{
		"Year", "Month", "Product Category", "Product Category 2", "Products",
		"Type of Sales", "Qty-Actual", "Qty in Liters", "Amount-Actual (US$)", "Amount-Budget (US$)",
	}
	dataRows := [][]string{
		{"2025", "Jul'25", "Water", "Still", "Aqua 500ml", "Retail", "100", "50", "200", "180"},
		{"2025", "Jul'25", "Water", "Still", "Aqua 1L", "Retail", "50", "25", "100", "90"},
		{"2025", "Jul'25", "Juice", "", "Mango 300ml", "Wholesale", "30", "10", "90", "100"},
		{"2025", "Jul'25", "", "", "Misc", "", "5", "2", "10", "0"},
		{"2025", "Jul'25", "Service", "", "Delivery", "", "0", "0", "20", "0"},
		{"2025", "Aug'25", "Water", "Still", "Aqua 500ml", "Retail", "80", "40", "160", "150"},
		{"2025", "Oct'25", "Water", "Still", "Aqua 500ml", "Retail", "40", "20", "80", "70"},
		{"2024", "Jul'24", "Water", "Still", "Aqua 500ml", "Retail", "90", "45", "150", "85"},
		{"2024", "Jul'24", "Cordial", "", "Lime 1L", "Retail", "0", "0", "0", "0"},
	}

	productionHeader := []string{"Year", "Month", "Product Category", "Qty-Actual", "Qty in Liters"}
	productionRows := [][]string{
		{"2025", "Jul'25", "Water", "120", "60"},
		{"2025", "Jul'25", "Juice", "30", "15"},
		{"2024", "Jul'24", "Water", "100", "50"},
	}

	fprHeader := []string{"Year", "Month", "SalesMan", "Location", "Type of sales", "Amount"}
	fprRows := [][]string{
		{"2025", "Jul", "Alice", "Kampala", "Retail", "500"},
		{"2025", "Jul", "Bob", "Gulu", "Wholesale", "300"},
		{"2025", "Aug", "Alice", "Kampala", "Retail", "999"},
		{"2024", "Jul", "Carol", "Jinja", "Retail", "50"},
	}

	daysHeader := []string{"Year", "Months", "Days in months"}
	daysRows := [][]string{
		{"2025", "Jul'25", "25"},
		{"2025", "Aug'25", "24"},
		{"2024", "Jul'24", "26"},
	}

	wb := &model.Workbook{
		FileID:   "test",
		Filename: "fixture.xlsx",
		Sheets: map[string]*model.Sheet{
			model.SheetData:           {Name: model.SheetData, Header: dataHeader, Rows: dataRows},
			model.SheetProduction:     {Name: model.SheetProduction, Header: productionHeader, Rows: productionRows},
			model.SheetFPR:            {Name: model.SheetFPR, Header: fprHeader, Rows: fprRows},
			model.SheetDays:           {Name: model.SheetDays, Header: daysHeader, Rows: daysRows},
			model.SheetProjection:     newTestProjection(),
			model.SheetProductMaster:  {Name: model.SheetProductMaster, Header: []string{"Products"}, Rows: [][]string{{"Aqua 500ml"}}},
			model.SheetCustomerMaster: {Name: model.SheetCustomerMaster, Header: []string{"Customer"}, Rows: [][]string{{"Acme"}}},
		},
	}
	return wb
}

// newTestProjection 投影表：65 行数据，合计行在下标 64（物理第 66 行）
func newTestProjection() *model.Sheet {
	header := []string{
		"Product Category", "Product Category 2", "Products",
		"Jan'25", "Feb'25", "Mar'25", "Apr'25", "May'25", "Jun'25",
		"Jul'25", "Aug'25", "Sep'25", "Oct'25", "Nov'25", "Dec'25",
	}
	rows := make([][]string, 65)
	for i := range rows {
		rows[i] = []string{"Water", "Still", fmt.Sprintf("Product %d", i), "10", "10", "10", "10", "10", "10", "10", "10", "10", "10", "10", "10"}
	}
	rows[64] = []string{"", "", "Total", "1000", "0", "0", "0", "0", "0", "5000", "0", "0", "0", "0", "0"}
	return &model.Sheet{Name: model.SheetProjection, Header: header, Rows: rows}
}

// floatEquals 浮点数近似相等判断
func floatEquals(a, b float64) bool {
	const epsilon = 1e-9
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}
