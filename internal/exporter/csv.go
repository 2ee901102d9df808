package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"salesboard/internal/model"
)

// CSV 导出：看板各视图逐段写入同一个文件，段之间空行分隔
// 表格消费方（Excel / pandas）都能直接打开

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

// WriteDashboardCSV 把完整看板写为 CSV
func WriteDashboardCSV(w io.Writer, d *model.Dashboard) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Period", fmt.Sprintf("%s %d", d.Month, d.Year)}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Working Days", strconv.Itoa(d.WorkingDays)}); err != nil {
		return err
	}

	sections := []func(*csv.Writer, *model.Dashboard) error{
		writeComparisonSection("Sales Budget vs Actual", func(d *model.Dashboard) model.Comparison { return d.Sales }),
		writeComparisonSection("Production Budget vs Actual", func(d *model.Dashboard) model.Comparison { return d.Production }),
		writeCategorySection("Sales by Category", func(d *model.Dashboard) []model.CategoryAggregate { return d.SalesByCategory }),
		writeCategorySection("Production by Category", func(d *model.Dashboard) []model.CategoryAggregate { return d.ProductionByCategory }),
		writeMoMSection,
		writeYoYSection("Year over Year Quantity", func(d *model.Dashboard) model.YoYTable { return d.YoYQuantity }),
		writeYoYSection("Year over Year Amount", func(d *model.Dashboard) model.YoYTable { return d.YoYAmount }),
		writeSplitSection,
	}

	for _, section := range sections {
		if err := cw.Write(nil); err != nil {
			return err
		}
		if err := section(cw, d); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeComparisonSection(title string, pick func(*model.Dashboard) model.Comparison) func(*csv.Writer, *model.Dashboard) error {
	return func(cw *csv.Writer, d *model.Dashboard) error {
		if err := cw.Write([]string{title}); err != nil {
			return err
		}
		if err := cw.Write([]string{"Metric", "Budget", "Actual", "Variance"}); err != nil {
			return err
		}
		for _, m := range pick(d).Metrics {
			row := []string{m.Name, formatOptional(m.Budget), formatFloat(m.Actual), formatOptional(m.Variance)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeCategorySection(title string, pick func(*model.Dashboard) []model.CategoryAggregate) func(*csv.Writer, *model.Dashboard) error {
	return func(cw *csv.Writer, d *model.Dashboard) error {
		if err := cw.Write([]string{title}); err != nil {
			return err
		}
		if err := cw.Write([]string{"Category", "Quantity", "Liters", "Amount"}); err != nil {
			return err
		}
		for _, a := range pick(d) {
			row := []string{a.Category, formatFloat(a.Quantity), formatFloat(a.Liters), formatFloat(a.Amount)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeMoMSection(cw *csv.Writer, d *model.Dashboard) error {
	if err := cw.Write([]string{"Month over Month"}); err != nil {
		return err
	}

	// 类别列取各月出现过的并集，按首次出现顺序
	var cats []string
	seen := make(map[string]bool)
	for _, row := range d.MoM {
		for cat := range row.QuantityByCategory {
			if !seen[cat] {
				seen[cat] = true
				cats = append(cats, cat)
			}
		}
	}

	header := append([]string{"Month"}, cats...)
	header = append(header, "Total Quantity", "Sales Amount", "Growth")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range d.MoM {
		record := []string{row.Month}
		for _, cat := range cats {
			record = append(record, formatFloat(row.QuantityByCategory[cat]))
		}
		record = append(record, formatFloat(row.TotalQuantity), formatFloat(row.SalesAmount), formatOptional(row.GrowthPct))
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeYoYSection(title string, pick func(*model.Dashboard) model.YoYTable) func(*csv.Writer, *model.Dashboard) error {
	return func(cw *csv.Writer, d *model.Dashboard) error {
		table := pick(d)

		if err := cw.Write([]string{title}); err != nil {
			return err
		}
		header := []string{"Category"}
		for _, y := range table.Years {
			header = append(header, strconv.Itoa(y))
		}
		if err := cw.Write(header); err != nil {
			return err
		}

		writeRow := func(r model.YoYRow) error {
			record := []string{r.Category}
			for _, y := range table.Years {
				record = append(record, formatFloat(r.ByYear[y]))
			}
			return cw.Write(record)
		}
		for _, r := range table.Rows {
			if err := writeRow(r); err != nil {
				return err
			}
		}
		return writeRow(table.Total)
	}
}

func writeSplitSection(cw *csv.Writer, d *model.Dashboard) error {
	groups := []struct {
		title string
		rows  []model.DimensionAggregate
	}{
		{"Sales by Salesperson", d.Split.Salesperson},
		{"Sales by Location", d.Split.Location},
		{"Sales by Type", d.Split.SalesType},
	}

	for i, g := range groups {
		if i > 0 {
			if err := cw.Write(nil); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{g.title}); err != nil {
			return err
		}
		if err := cw.Write([]string{"Name", "Amount"}); err != nil {
			return err
		}
		for _, a := range g.rows {
			if err := cw.Write([]string{a.Name, formatFloat(a.Amount)}); err != nil {
				return err
			}
		}
	}
	return nil
}
