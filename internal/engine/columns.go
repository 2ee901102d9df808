package engine

import (
	"strconv"
	"strings"

	"salesboard/internal/model"
)

// 列解析按表头精确匹配（大小写敏感，仅去首尾空白）
// 未命中返回 -1，之后所有对 -1 列的取值都按空值处理：
// 各表携带的可选列不同，解析必须逐表容错而不是抛错

func findExactCol(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseFloat 容错数值解析：空值、非数值一律按 0，不传播 NaN
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(s string) int {
	return int(parseFloat(s))
}

// salesColumns Data 表的列位
type salesColumns struct {
	year, month, category          int
	qtyActual, liters              int
	amountActual, amountBudget     int
	product, subCategory, saleType int
}

func resolveSalesColumns(header []string) salesColumns {
	return salesColumns{
		year:         findExactCol(header, "Year"),
		month:        findExactCol(header, "Month"),
		category:     findExactCol(header, "Product Category"),
		qtyActual:    findExactCol(header, "Qty-Actual"),
		liters:       findExactCol(header, "Qty in Liters"),
		amountActual: findExactCol(header, "Amount-Actual (US$)"),
		amountBudget: findExactCol(header, "Amount-Budget (US$)"),
		product:      findExactCol(header, "Products"),
		subCategory:  findExactCol(header, "Product Category 2"),
		saleType:     findExactCol(header, "Type of Sales"),
	}
}

// SalesRecord 列解析完成后立即构造的命名字段记录
// 下游聚合和目录登记只面对字段名，不再接触列位
type SalesRecord struct {
	Year         int
	Month        string // 已归一为全名
	Category     string
	Qty          float64
	Liters       float64
	Amount       float64
	AmountBudget float64
	Product      string
	SubCategory  string
	TypeOfSales  string
}

func SalesRecords(s *model.Sheet) []SalesRecord {
	if s == nil {
		return nil
	}
	cols := resolveSalesColumns(s.Header)
	out := make([]SalesRecord, 0, len(s.Rows))
	for _, row := range s.Rows {
		out = append(out, SalesRecord{
			Year:         parseInt(getCell(row, cols.year)),
			Month:        NormalizeMonth(getCell(row, cols.month)),
			Category:     getCell(row, cols.category),
			Qty:          parseFloat(getCell(row, cols.qtyActual)),
			Liters:       parseFloat(getCell(row, cols.liters)),
			Amount:       parseFloat(getCell(row, cols.amountActual)),
			AmountBudget: parseFloat(getCell(row, cols.amountBudget)),
			Product:      getCell(row, cols.product),
			SubCategory:  getCell(row, cols.subCategory),
			TypeOfSales:  getCell(row, cols.saleType),
		})
	}
	return out
}

// productionColumns Production Data 表的列位（没有金额列）
type productionColumns struct {
	year, month, category, qtyActual, liters int
}

func resolveProductionColumns(header []string) productionColumns {
	return productionColumns{
		year:      findExactCol(header, "Year"),
		month:     findExactCol(header, "Month"),
		category:  findExactCol(header, "Product Category"),
		qtyActual: findExactCol(header, "Qty-Actual"),
		liters:    findExactCol(header, "Qty in Liters"),
	}
}

type productionRow struct {
	Year     int
	Month    string
	Category string
	Qty      float64
	Liters   float64
}

func productionRows(s *model.Sheet) []productionRow {
	if s == nil {
		return nil
	}
	cols := resolveProductionColumns(s.Header)
	out := make([]productionRow, 0, len(s.Rows))
	for _, row := range s.Rows {
		out = append(out, productionRow{
			Year:     parseInt(getCell(row, cols.year)),
			Month:    NormalizeMonth(getCell(row, cols.month)),
			Category: getCell(row, cols.category),
			Qty:      parseFloat(getCell(row, cols.qtyActual)),
			Liters:   parseFloat(getCell(row, cols.liters)),
		})
	}
	return out
}

// fprColumns SALES BY FPR 表的列位（没有升数列）
type fprColumns struct {
	year, month, salesman, location, salesType, amount int
}

func resolveFPRColumns(header []string) fprColumns {
	return fprColumns{
		year:      findExactCol(header, "Year"),
		month:     findExactCol(header, "Month"),
		salesman:  findExactCol(header, "SalesMan"),
		location:  findExactCol(header, "Location"),
		salesType: findExactCol(header, "Type of sales"),
		amount:    findExactCol(header, "Amount"),
	}
}

type fprRow struct {
	Year      int
	Month     string
	Salesman  string
	Location  string
	SalesType string
	Amount    float64
}

func fprRows(s *model.Sheet) []fprRow {
	if s == nil {
		return nil
	}
	cols := resolveFPRColumns(s.Header)
	out := make([]fprRow, 0, len(s.Rows))
	for _, row := range s.Rows {
		out = append(out, fprRow{
			Year:      parseInt(getCell(row, cols.year)),
			Month:     NormalizeMonth(getCell(row, cols.month)),
			Salesman:  getCell(row, cols.salesman),
			Location:  getCell(row, cols.location),
			SalesType: getCell(row, cols.salesType),
			Amount:    parseFloat(getCell(row, cols.amount)),
		})
	}
	return out
}

// daysColumns Day (in Month) 表的列位
type daysColumns struct {
	year, month, days int
}

func resolveDaysColumns(header []string) daysColumns {
	return daysColumns{
		year:  findExactCol(header, "Year"),
		month: findExactCol(header, "Months"),
		days:  findExactCol(header, "Days in months"),
	}
}
