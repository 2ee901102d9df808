package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesboard/internal/engine"
)

// GetMoM 环比视图
// GET /api/growth/mom?year=2025
func (h *Handler) GetMoM(c *gin.Context) {
	wb, ok := h.currentWorkbook(c)
	if !ok {
		return
	}

	year := parseQueryInt(c, "year")
	if year == 0 {
		year = h.selection(c).Year
	}
	c.JSON(http.StatusOK, gin.H{
		"year": year,
		"rows": engine.MonthOverMonth(wb, year, h.requestOptions(c)),
	})
}

// GetYoY 同比视图
// GET /api/growth/yoy?month=July&month=August（month 可重复，缺省全年）
func (h *Handler) GetYoY(c *gin.Context) {
	wb, ok := h.currentWorkbook(c)
	if !ok {
		return
	}

	months := c.QueryArray("month")
	qty, amount := engine.YearOverYear(wb, months)
	c.JSON(http.StatusOK, gin.H{
		"quantity": qty,
		"amount":   amount,
	})
}
