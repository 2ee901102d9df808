package model

// GrandTotalLabel 聚合结果末尾追加的合计行名称
const GrandTotalLabel = "Grand Total"

// CategoryAggregate 按产品类别汇总的一行
type CategoryAggregate struct {
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Liters   float64 `json:"liters"`
	Amount   float64 `json:"amount"`
}

// DimensionAggregate 按维度（业务员/区域/销售类型）汇总的一行
type DimensionAggregate struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// BudgetFigure 预算口径：箱数来自投影表合计行，金额来自预算列求和
type BudgetFigure struct {
	Cases  float64 `json:"cases"`
	Amount float64 `json:"amount"`
}

// SummaryMetric 预算-实际-差异三元组
// Budget/Variance 为 nil 表示该指标没有预算口径（如回款行）
type SummaryMetric struct {
	Name     string   `json:"name"`
	Budget   *float64 `json:"budget"`
	Actual   float64  `json:"actual"`
	Variance *float64 `json:"variance"`
}

// Comparison 某一期间的预算 vs 实际对比视图
type Comparison struct {
	Year        int             `json:"year"`
	Month       string          `json:"month"`
	WorkingDays int             `json:"workingDays"`
	Metrics     []SummaryMetric `json:"metrics"`
}

// MoMRow 环比视图中的一行（一个有数据的月份）
// GrowthPct 为 nil 表示没有可比的前序月份
type MoMRow struct {
	Month              string             `json:"month"`
	QuantityByCategory map[string]float64 `json:"quantityByCategory"`
	TotalQuantity      float64            `json:"totalQuantity"`
	SalesAmount        float64            `json:"salesAmount"`
	GrowthPct          *float64           `json:"momGrowthPct"`
}

// YoYRow 同比视图中的一行：某类别按年份展开的数值
type YoYRow struct {
	Category string          `json:"category"`
	ByYear   map[int]float64 `json:"byYear"`
}

// YoYTable 同比表：数量表和金额表各自独立构建
type YoYTable struct {
	Years []int   `json:"years"`
	Rows  []YoYRow `json:"rows"`
	Total YoYRow  `json:"total"`
}

// SalesSplit 三个维度的销售拆分
type SalesSplit struct {
	Salesperson []DimensionAggregate `json:"salesperson"`
	Location    []DimensionAggregate `json:"location"`
	SalesType   []DimensionAggregate `json:"salesType"`
}

// CostRow 成本参考行（可选的 Dashboard-1 表）
type CostRow struct {
	Month string  `json:"month"`
	Year  int     `json:"year"`
	Fuel  float64 `json:"fuel"`
	LEC   float64 `json:"lec"`
}

// PeriodOption 数据中实际存在的 (月, 年) 组合
type PeriodOption struct {
	Year    int    `json:"year"`
	Month   string `json:"month"`
	Display string `json:"display"`
}

// Dashboard 一次期间选择对应的完整看板结果
// 每次选择变化都整体重算，内部不缓存
type Dashboard struct {
	Month       string `json:"month"`
	Year        int    `json:"year"`
	WorkingDays int    `json:"workingDays"`

	Sales      Comparison `json:"sales"`
	Production Comparison `json:"production"`

	SalesByCategory      []CategoryAggregate `json:"salesByCategory"`
	ProductionByCategory []CategoryAggregate `json:"productionByCategory"`

	MoM         []MoMRow `json:"mom"`
	YoYQuantity YoYTable `json:"yoyQuantity"`
	YoYAmount   YoYTable `json:"yoyAmount"`

	Split SalesSplit `json:"split"`
}
