package model

import (
	"fmt"
	"strings"
)

// 工作簿内的工作表名是固定契约，不做模糊识别
const (
	SheetData           = "Data"
	SheetProduction     = "Production Data"
	SheetFPR            = "SALES BY FPR"
	SheetDays           = "Day (in Month)"
	SheetProjection     = "Sales Projection 2025"
	SheetProductMaster  = "Product Master"
	SheetCustomerMaster = "Customer Master"
	SheetCosts          = "Dashboard-1"
)

// requiredDataSheets 参与计算的必需工作表（表头 + 至少一行数据）
var requiredDataSheets = []string{
	SheetData,
	SheetProduction,
	SheetFPR,
	SheetDays,
	SheetProjection,
}

// requiredRefSheets 仅校验存在性的参考工作表，引擎本身不读取
var requiredRefSheets = []string{
	SheetProductMaster,
	SheetCustomerMaster,
}

// Sheet 单个工作表：表头行 + 数据行
// 数据行可能短于表头，越界访问按空值处理
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// RowCount 物理行数（含表头）
func (s *Sheet) RowCount() int {
	if s == nil {
		return 0
	}
	if len(s.Header) == 0 && len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows) + 1
}

// SheetInfo 工作表概要
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}

// Workbook 一次上传对应的全部工作表（只读快照）
type Workbook struct {
	FileID   string
	Filename string
	Sheets   map[string]*Sheet
}

// Sheet 按名称取工作表，不存在返回 nil
func (w *Workbook) Sheet(name string) *Sheet {
	if w == nil {
		return nil
	}
	return w.Sheets[name]
}

// SheetInfos 工作表概要列表（按工作簿内已知顺序）
func (w *Workbook) SheetInfos() []SheetInfo {
	infos := make([]SheetInfo, 0, len(w.Sheets))
	for _, name := range append(append([]string{}, requiredDataSheets...), requiredRefSheets...) {
		if s := w.Sheets[name]; s != nil {
			infos = append(infos, SheetInfo{Name: name, RowCount: s.RowCount()})
		}
	}
	return infos
}

// Validate 结构校验：必需工作表缺失或行数不足时整体失败
// 这是唯一会中止计算的错误类别，其余缺陷都降级为零值
func (w *Workbook) Validate() error {
	var missing []string

	for _, name := range requiredDataSheets {
		s := w.Sheet(name)
		if s == nil {
			missing = append(missing, name)
			continue
		}
		if s.RowCount() < 2 {
			missing = append(missing, fmt.Sprintf("%s (仅 %d 行)", name, s.RowCount()))
		}
	}

	// 参考表只要求存在
	for _, name := range requiredRefSheets {
		if w.Sheet(name) == nil {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("工作簿缺少必需的工作表: %s", strings.Join(missing, ", "))
	}
	return nil
}
