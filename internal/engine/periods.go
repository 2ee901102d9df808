package engine

import (
	"fmt"
	"sort"

	"salesboard/internal/model"
)

// AvailablePeriods Data 表中实际存在数据的 (月, 年) 组合
// 按年份倒序、月份日历倒序排列
func AvailablePeriods(wb *model.Workbook) []model.PeriodOption {
	seen := make(map[string]bool)
	var out []model.PeriodOption

	for _, r := range SalesRecords(wb.Sheet(model.SheetData)) {
		if r.Year == 0 || r.Month == "" {
			continue
		}
		key := fmt.Sprintf("%s %d", r.Month, r.Year)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, model.PeriodOption{
			Year:    r.Year,
			Month:   r.Month,
			Display: key,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return MonthIndex(out[i].Month) > MonthIndex(out[j].Month)
	})
	return out
}

// AvailableYears Data 表中实际存在的年份，倒序
func AvailableYears(wb *model.Workbook) []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range SalesRecords(wb.Sheet(model.SheetData)) {
		if r.Year > 0 && !seen[r.Year] {
			seen[r.Year] = true
			out = append(out, r.Year)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Dashboard-1 表不是规整表格：成本参考行固定在物理第 110-120 行
const (
	costRowsStart = 108 // 去掉表头后的数据行下标，物理行 110
	costRowsEnd   = 118 // 含，物理行 120
)

// CostRows 提取可选的成本参考行（燃油 / 电费）
// 表不存在或行解析失败都按尽力而为处理，返回能解出的部分
func CostRows(wb *model.Workbook) []model.CostRow {
	sheet := wb.Sheet(model.SheetCosts)
	if sheet == nil {
		return nil
	}

	var out []model.CostRow
	for i := costRowsStart; i <= costRowsEnd && i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		monthName, year, ok := SplitMonthLabel(getCell(row, 0))
		if !ok {
			continue
		}
		out = append(out, model.CostRow{
			Month: monthName,
			Year:  year,
			Fuel:  parseFloat(getCell(row, 1)),
			LEC:   parseFloat(getCell(row, 2)),
		})
	}
	return out
}
