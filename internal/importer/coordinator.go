package importer

import (
	"context"
	"fmt"
	"io"
	"log"

	"salesboard/internal/engine"
	"salesboard/internal/model"
	"salesboard/internal/service/excel"
	"salesboard/internal/service/workbook"
	"salesboard/internal/store"
)

// Coordinator 上传导入协调器
// 一次上传：解析 → 结构校验 → 目录登记 → 替换当前快照 → 记录历史
type Coordinator struct {
	store  *store.Store
	holder *workbook.Holder
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.Store, holder *workbook.Holder) *Coordinator {
	return &Coordinator{
		store:  st,
		holder: holder,
	}
}

// Result 一次导入的结果
type Result struct {
	UploadID        string   `json:"uploadId"`
	Filename        string   `json:"filename"`
	SheetsProcessed []string `json:"sheetsProcessed"`
	Periods         []string `json:"periods"`
	Warnings        []string `json:"warnings,omitempty"`
}

// Import 导入一个上传的工作簿
// 结构校验失败是唯一的业务失败出口；目录登记失败只降级为警告
func (c *Coordinator) Import(ctx context.Context, filename string, reader io.Reader) (*Result, error) {
	parser := excel.NewParser()
	if err := parser.LoadFile(reader); err != nil {
		return nil, fmt.Errorf("解析 Excel 失败: %w", err)
	}
	defer parser.Close()

	uploadID := parser.GetFileID()
	if err := c.store.InsertUpload(uploadID, filename); err != nil {
		return nil, fmt.Errorf("登记上传记录失败: %w", err)
	}

	wb, err := parser.Materialize(ctx, filename)
	if err != nil {
		c.markError(uploadID, err)
		return nil, fmt.Errorf("读取工作簿失败: %w", err)
	}

	if err := wb.Validate(); err != nil {
		c.markError(uploadID, err)
		return nil, err
	}

	result := &Result{
		UploadID: uploadID,
		Filename: filename,
	}

	// 目录登记失败不阻断导入
	result.Warnings = c.syncCatalog(wb)

	// 校验通过后整体替换当前快照
	c.holder.Set(wb)

	for _, info := range wb.SheetInfos() {
		result.SheetsProcessed = append(result.SheetsProcessed, info.Name)
	}
	for _, p := range engine.AvailablePeriods(wb) {
		result.Periods = append(result.Periods, p.Display)
	}

	if err := c.store.MarkUploadSuccess(uploadID, result.SheetsProcessed, result.Periods); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("更新上传记录失败: %v", err))
	}

	return result, nil
}

func (c *Coordinator) markError(uploadID string, cause error) {
	if err := c.store.MarkUploadError(uploadID, cause.Error()); err != nil {
		log.Printf("标记上传失败状态出错: %v", err)
	}
}

// syncCatalog 把 Data 表出现的类别与产品登记进目录
func (c *Coordinator) syncCatalog(wb *model.Workbook) []string {
	var warnings []string

	type productKey struct {
		category, name string
	}
	seen := make(map[productKey]bool)

	for _, r := range engine.SalesRecords(wb.Sheet(model.SheetData)) {
		// 空类别与聚合口径一致，归入 Unknown 桶
		category := r.Category
		if category == "" {
			category = engine.UnknownBucket
		}
		catID, err := c.store.EnsureCategory(category)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("登记类别 %q 失败: %v", category, err))
			continue
		}
		if r.Product == "" {
			continue
		}
		key := productKey{category, r.Product}
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, err := c.store.EnsureProduct(catID, r.Product, r.SubCategory, r.TypeOfSales); err != nil {
			warnings = append(warnings, fmt.Sprintf("登记产品 %q 失败: %v", r.Product, err))
		}
	}

	return warnings
}
