package digest

import "time"

// 东八区，所有展示时间与时段判定都按北京时间
var locBeijing *time.Location

func init() {
	locBeijing, _ = time.LoadLocation("Asia/Shanghai")
	if locBeijing == nil {
		locBeijing = time.FixedZone("CST", 8*3600)
	}
}

// FormatBeijing 北京时间展示串，如 2026年08月29日 08:05
func FormatBeijing(t time.Time) string {
	return t.In(locBeijing).Format("2006年01月02日 15:04")
}

// PeriodInfo 按北京时间小时返回时段标签与说明
func PeriodInfo(t time.Time) (label, desc string) {
	switch t.In(locBeijing).Hour() {
	case 0, 1:
		return "🌙 深夜档", "美洲市场收盘 | 全球要闻回顾"
	case 8, 9:
		return "🌅 早间档", "亚洲开盘前瞻 | 投资早参"
	case 16, 17:
		return "🌆 午后档", "欧洲盘中 | 实时要闻"
	default:
		return "📰 特别播报", "全球要闻精选"
	}
}
