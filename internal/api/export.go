package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"salesboard/internal/engine"
	"salesboard/internal/exporter"
	"salesboard/internal/model"
)

func (h *Handler) buildDashboard(c *gin.Context) (*model.Dashboard, bool) {
	wb, ok := h.currentWorkbook(c)
	if !ok {
		return nil, false
	}
	d, err := engine.Build(wb, h.selection(c), h.requestOptions(c))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return nil, false
	}
	return d, true
}

// ExportCSV 看板 CSV 导出
// GET /api/export/csv?month=Jul'25&year=2025
func (h *Handler) ExportCSV(c *gin.Context) {
	d, ok := h.buildDashboard(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := exporter.WriteDashboardCSV(&buf, d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("dashboard_%s_%d.csv", d.Month, d.Year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 看板 xlsx 导出
// GET /api/export/xlsx?month=Jul'25&year=2025
func (h *Handler) ExportExcel(c *gin.Context) {
	d, ok := h.buildDashboard(c)
	if !ok {
		return
	}

	f, err := exporter.ExportDashboardExcel(d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("dashboard_%s_%d.xlsx", d.Month, d.Year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
