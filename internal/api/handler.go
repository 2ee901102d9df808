package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salesboard/internal/config"
	"salesboard/internal/engine"
	"salesboard/internal/importer"
	"salesboard/internal/model"
	"salesboard/internal/service/workbook"
	"salesboard/internal/store"
)

// Handler API 处理器
type Handler struct {
	store       *store.Store
	holder      *workbook.Holder
	coordinator *importer.Coordinator
	business    config.BusinessConfig
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.Store, holder *workbook.Holder, business config.BusinessConfig) *Handler {
	return &Handler{
		store:       st,
		holder:      holder,
		coordinator: importer.NewCoordinator(st, holder),
		business:    business,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 上传与历史
	router.POST("/upload", h.Upload)
	router.GET("/uploads", h.ListUploads)
	router.DELETE("/uploads/:id", h.DeleteUpload)

	// 期间选择
	router.GET("/periods", h.ListPeriods)

	// 看板与各视图
	router.GET("/dashboard", h.GetDashboard)
	router.GET("/comparison/sales", h.GetSalesComparison)
	router.GET("/comparison/production", h.GetProductionComparison)
	router.GET("/growth/mom", h.GetMoM)
	router.GET("/growth/yoy", h.GetYoY)
	router.GET("/split", h.GetSplit)
	router.GET("/costs", h.GetCosts)

	// 产品目录
	router.GET("/categories", h.ListCategories)
	router.POST("/categories", h.CreateCategory)
	router.PATCH("/categories/:id", h.UpdateCategory)
	router.DELETE("/categories/:id", h.DeleteCategory)
	router.GET("/products", h.ListProducts)
	router.POST("/products", h.CreateProduct)
	router.PATCH("/products/:id", h.UpdateProduct)
	router.DELETE("/products/:id", h.DeleteProduct)

	// 导出
	router.GET("/export/csv", h.ExportCSV)
	router.GET("/export/xlsx", h.ExportExcel)
}

// engineOptions 业务配置映射为引擎参数
func (h *Handler) engineOptions() engine.Options {
	opts := engine.DefaultOptions()
	if h.business.WorkingDaysDefault > 0 {
		opts.WorkingDaysDefault = h.business.WorkingDaysDefault
	}
	if h.business.CollectionRatio > 0 {
		opts.CollectionRatio = h.business.CollectionRatio
	}
	opts.BudgetFilterByYear = h.business.BudgetFilterByYear
	if len(h.business.MoMCategories) > 0 {
		opts.MoMCategories = h.business.MoMCategories
	}
	return opts
}

// requestOptions 引擎参数加上请求级覆盖（显式回款金额）
func (h *Handler) requestOptions(c *gin.Context) engine.Options {
	opts := h.engineOptions()
	if v := c.Query("collection"); v != "" {
		if amount, err := strconv.ParseFloat(v, 64); err == nil && amount >= 0 {
			opts.CollectionAmount = &amount
		}
	}
	return opts
}

// currentWorkbook 取当前快照，没有则响应 409
func (h *Handler) currentWorkbook(c *gin.Context) (*model.Workbook, bool) {
	wb, err := h.holder.Get()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "尚未上传工作簿"})
		return nil, false
	}
	return wb, true
}

// selection 从查询参数解析期间选择，缺省取配置里的默认期间
func (h *Handler) selection(c *gin.Context) engine.Selection {
	sel := engine.Selection{
		Month: c.Query("month"),
		Year:  parseQueryInt(c, "year"),
	}
	if sel.Month == "" {
		sel.Month = h.business.DefaultMonth
	}
	if sel.Year == 0 {
		if _, y, ok := engine.SplitMonthLabel(sel.Month); ok && y > 0 {
			sel.Year = y
		} else {
			sel.Year = h.business.DefaultYear
		}
	}
	sel.YoYMonths = c.QueryArray("yoyMonth")
	return sel
}

func parseQueryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
