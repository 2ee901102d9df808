package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"salesboard/internal/engine"
	"salesboard/internal/exporter"
	"salesboard/internal/model"
	"salesboard/internal/service/excel"
)

var (
	month      string
	year       int
	outputPath string
	format     string
	yoyMonths  []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sbexport [workbook.xlsx]",
		Short: "离线生成销售经营看板",
		Long:  "sbexport 直接读取业务工作簿，计算选定期间的看板并导出为 csv / xlsx / json。",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&month, "month", "m", "", "月份标签 (July / Jul / Jul'25)")
	rootCmd.Flags().IntVarP(&year, "year", "y", 0, "年份 (月份标签带年份后缀时可省略)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "输出文件路径 (json 缺省为 stdout)")
	rootCmd.Flags().StringVar(&format, "format", "csv", "输出格式: csv, xlsx, json")
	rootCmd.Flags().StringSliceVar(&yoyMonths, "yoy-month", nil, "同比视图月份集合，缺省全年")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("打开工作簿失败: %w", err)
	}
	defer f.Close()

	parser := excel.NewParser()
	if err := parser.LoadFile(f); err != nil {
		return err
	}
	defer parser.Close()

	wb, err := parser.Materialize(context.Background(), inputPath)
	if err != nil {
		return fmt.Errorf("读取工作簿失败: %w", err)
	}

	if month == "" {
		return fmt.Errorf("必须通过 --month 指定月份")
	}

	d, err := engine.Build(wb, engine.Selection{
		Month:     month,
		Year:      year,
		YoYMonths: yoyMonths,
	}, engine.DefaultOptions())
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "csv":
		return writeCSV(d)
	case "xlsx":
		return writeExcel(d)
	case "json":
		return writeJSON(d)
	default:
		return fmt.Errorf("不支持的格式: %s (csv / xlsx / json)", format)
	}
}

func defaultOutput(d *model.Dashboard, ext string) string {
	if outputPath != "" {
		return outputPath
	}
	return fmt.Sprintf("dashboard_%s_%d.%s", d.Month, d.Year, ext)
}

func writeCSV(d *model.Dashboard) error {
	path := defaultOutput(d, "csv")
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := exporter.WriteDashboardCSV(out, d); err != nil {
		return err
	}
	fmt.Printf("已导出: %s\n", path)
	return nil
}

func writeExcel(d *model.Dashboard) error {
	f, err := exporter.ExportDashboardExcel(d)
	if err != nil {
		return err
	}
	defer f.Close()

	path := defaultOutput(d, "xlsx")
	if err := f.SaveAs(path); err != nil {
		return err
	}
	fmt.Printf("已导出: %s\n", path)
	return nil
}

func writeJSON(d *model.Dashboard) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}
	fmt.Printf("已导出: %s\n", outputPath)
	return nil
}
