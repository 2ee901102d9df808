package engine

// DefaultWorkingDays (月, 年) 在参考表中无匹配时的回退值
// 这是明确约定的缺省，不是静默缺陷
const DefaultWorkingDays = 27

// DefaultCollectionRatio 未提供回款金额时按销售额的占位比例估算
const DefaultCollectionRatio = 0.95

// defaultMoMCategories 环比视图的七类别白名单缺省值
// 白名单只影响环比视图，可通过配置覆盖
var defaultMoMCategories = []string{
	"Water", "Juice", "CSD", "Energy Drink", "Cordial", "Dairy", "Mocktail",
}

// Options 引擎可调参数，零值经 normalize 后等价于 DefaultOptions
type Options struct {
	// WorkingDaysDefault 工作日回退值
	WorkingDaysDefault int
	// CollectionRatio 回款占位比例
	CollectionRatio float64
	// CollectionAmount 调用方显式提供的回款金额，优先于比例估算
	CollectionAmount *float64
	// BudgetFilterByYear 预算金额求和是否附加年份过滤
	// 原始行为不过滤年份，保留为可配置项而非直接"修正"
	BudgetFilterByYear bool
	// MoMCategories 环比视图类别白名单
	MoMCategories []string
}

// DefaultOptions 缺省参数
func DefaultOptions() Options {
	return Options{
		WorkingDaysDefault: DefaultWorkingDays,
		CollectionRatio:    DefaultCollectionRatio,
		MoMCategories:      append([]string{}, defaultMoMCategories...),
	}
}

func (o Options) normalize() Options {
	if o.WorkingDaysDefault <= 0 {
		o.WorkingDaysDefault = DefaultWorkingDays
	}
	if o.CollectionRatio <= 0 {
		o.CollectionRatio = DefaultCollectionRatio
	}
	if len(o.MoMCategories) == 0 {
		o.MoMCategories = append([]string{}, defaultMoMCategories...)
	}
	return o
}
