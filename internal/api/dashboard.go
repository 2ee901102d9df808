package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesboard/internal/engine"
	"salesboard/internal/model"
)

// ListPeriods 数据中实际存在的期间选项
// GET /api/periods
func (h *Handler) ListPeriods(c *gin.Context) {
	wb, ok := h.currentWorkbook(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"periods": engine.AvailablePeriods(wb),
		"years":   engine.AvailableYears(wb),
	})
}

// GetDashboard 完整看板
// GET /api/dashboard?month=Jul'25&year=2025
func (h *Handler) GetDashboard(c *gin.Context) {
	wb, ok := h.currentWorkbook(c)
	if !ok {
		return
	}

	d, err := engine.Build(wb, h.selection(c), h.requestOptions(c))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetSalesComparison 销售预算 vs 实际
// GET /api/comparison/sales
func (h *Handler) GetSalesComparison(c *gin.Context) {
	wb, ok := h.currentWorkbook(c)
	if !ok {
		return
	}
	sel := h.selection(c)
	c.JSON(http.StatusOK, engine.ComparisonSales(wb, sel.Month, sel.Year, h.requestOptions(c)))
}

// GetProductionComparison 生产预算 vs 实际
// GET /api/comparison/production
func (h *Handler) GetProductionComparison(c *gin.Context) {
	wb, ok := h.currentWorkbook(c)
	if !ok {
		return
	}
	sel := h.selection(c)
	c.JSON(http.StatusOK, engine.ComparisonProduction(wb, sel.Month, sel.Year, h.requestOptions(c)))
}

// GetSplit 三维度销售拆分
// GET /api/split
func (h *Handler) GetSplit(c *gin.Context) {
	wb, ok := h.currentWorkbook(c)
	if !ok {
		return
	}
	sel := h.selection(c)
	month := engine.NormalizeMonth(sel.Month)
	fpr := wb.Sheet(model.SheetFPR)
	c.JSON(http.StatusOK, gin.H{
		"salesperson": engine.SalesBySalesperson(fpr, month, sel.Year),
		"location":    engine.SalesByLocation(fpr, month, sel.Year),
		"salesType":   engine.SalesByType(fpr, month, sel.Year),
	})
}

// GetCosts 可选的成本参考行
// GET /api/costs
func (h *Handler) GetCosts(c *gin.Context) {
	wb, ok := h.currentWorkbook(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"costs": engine.CostRows(wb)})
}
