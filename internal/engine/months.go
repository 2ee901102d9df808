package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// monthOrder 日历顺序的十二个月全名
var monthOrder = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// shortMonths 三字母缩写 → 全名
var shortMonths = map[string]string{
	"Jan": "January", "Feb": "February", "Mar": "March", "Apr": "April",
	"May": "May", "Jun": "June", "Jul": "July", "Aug": "August",
	"Sep": "September", "Oct": "October", "Nov": "November", "Dec": "December",
}

var fullMonths = func() map[string]bool {
	m := make(map[string]bool, len(monthOrder))
	for _, name := range monthOrder {
		m[name] = true
	}
	return m
}()

// 月份标签在各表里有三种写法："July"、"Jul"、"Jul'25"
// 所有比较都先经过这里归一为全名，年份单独携带
var reMonthLabel = regexp.MustCompile(`^([A-Za-z]+)\s*(?:'(\d{2}))?$`)

// SplitMonthLabel 解析月份标签，返回 (全名, 年份, 是否有效)
// 不带年份后缀时年份为 0
func SplitMonthLabel(label string) (string, int, bool) {
	label = strings.TrimSpace(label)
	m := reMonthLabel.FindStringSubmatch(label)
	if m == nil {
		return "", 0, false
	}

	name := m[1]
	if !fullMonths[name] {
		canon := strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
		switch {
		case fullMonths[canon]:
			name = canon
		case len(canon) == 3:
			full, ok := shortMonths[canon]
			if !ok {
				return "", 0, false
			}
			name = full
		default:
			return "", 0, false
		}
	}

	year := 0
	if m[2] != "" {
		yy, _ := strconv.Atoi(m[2])
		year = 2000 + yy
	}
	return name, year, true
}

// NormalizeMonth 把任意写法的月份标签归一为全名，无法识别返回空串
func NormalizeMonth(label string) string {
	name, _, ok := SplitMonthLabel(label)
	if !ok {
		return ""
	}
	return name
}

// MonthIndex 月份全名在日历中的下标（0-11），未知返回 -1
func MonthIndex(name string) int {
	for i, m := range monthOrder {
		if m == name {
			return i
		}
	}
	return -1
}

// MonthOrder 返回日历顺序的月份全名副本
func MonthOrder() []string {
	out := make([]string, len(monthOrder))
	copy(out, monthOrder)
	return out
}
