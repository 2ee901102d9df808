package excel

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"salesboard/internal/model"
)

// buildTestFile 在内存中构造一个最小的业务工作簿
func buildTestFile(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()

	sheets := map[string][][]string{
		model.SheetData: {
			{"Year", "Month", "Product Category", "Qty-Actual", "Qty in Liters", "Amount-Actual (US$)", "Amount-Budget (US$)"},
			{"2025", "Jul'25", "Water", "100", "50", "200", "180"},
		},
		model.SheetProduction: {
			{"Year", "Month", "Product Category", "Qty-Actual", "Qty in Liters"},
			{"2025", "Jul'25", "Water", "120", "60"},
		},
		model.SheetFPR: {
			{"Year", "Month", "SalesMan", "Location", "Type of sales", "Amount"},
			{"2025", "Jul", "Alice", "Kampala", "Retail", "500"},
		},
		model.SheetDays: {
			{"Year", "Months", "Days in months"},
			{"2025", "Jul'25", "25"},
		},
		model.SheetProjection: {
			{"Product Category", "Product Category 2", "Products", "Jan'25"},
			{"Water", "Still", "Aqua 500ml", "10"},
		},
		model.SheetProductMaster: {
			{"Products"},
		},
		model.SheetCustomerMaster: {
			{"Customer"},
		},
	}

	first := true
	for name, rows := range sheets {
		if first {
			f.SetSheetName("Sheet1", name)
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("NewSheet(%s): %v", name, err)
			}
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow(%s): %v", name, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return &buf
}

// TestMaterialize 工作簿读入内存快照后表头与数据行分离
func TestMaterialize(t *testing.T) {
	p := NewParser()
	if err := p.LoadFile(buildTestFile(t)); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	defer p.Close()

	wb, err := p.Materialize(context.Background(), "fixture.xlsx")
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if wb.Filename != "fixture.xlsx" || wb.FileID == "" {
		t.Errorf("wb = %+v", wb)
	}

	data := wb.Sheet(model.SheetData)
	if data == nil {
		t.Fatal("缺 Data 表")
	}
	if len(data.Header) != 7 || data.Header[0] != "Year" {
		t.Errorf("header = %v", data.Header)
	}
	if len(data.Rows) != 1 || data.Rows[0][2] != "Water" {
		t.Errorf("rows = %v", data.Rows)
	}

	// 快照应通过结构校验
	if err := wb.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

// TestMaterializeNoFile 未加载文件时报错
func TestMaterializeNoFile(t *testing.T) {
	p := NewParser()
	if _, err := p.Materialize(context.Background(), "x.xlsx"); err == nil {
		t.Fatal("未加载文件应报错")
	}
}

// TestGetSheets 表列表带行数
func TestGetSheets(t *testing.T) {
	p := NewParser()
	if err := p.LoadFile(buildTestFile(t)); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	defer p.Close()

	infos, err := p.GetSheets()
	if err != nil {
		t.Fatalf("GetSheets: %v", err)
	}
	if len(infos) != 7 {
		t.Errorf("len(infos) = %d, want 7", len(infos))
	}
}

// TestLoadFileBadContent 非 xlsx 内容报错
func TestLoadFileBadContent(t *testing.T) {
	p := NewParser()
	if err := p.LoadFile(bytes.NewBufferString("not an excel file")); err == nil {
		t.Fatal("应报错")
	}
}
