package collector

import (
	"log"

	"github.com/longxia/globalbrief/internal/config"
)

// Headline 单条新闻标题。去重以修剪后的标题字符串精确相等为准，
// URL 与来源名只用于展示。
type Headline struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// Fetcher 抽象每一个新闻数据源。
// Fetch 永不返回错误：源不可达或解析失败时返回空切片，
// 下游把"源不可达"与"源为空"当成同一种情况处理。
type Fetcher interface {
	Name() string
	Fetch() []Headline
}

// New 按来源配置构造对应类型的 Fetcher；未知类型返回 nil。
func New(src config.Source) Fetcher {
	switch src.Type {
	case config.SourceRollNews:
		return &RollNewsFetcher{
			SourceName:  src.Name,
			URL:         src.URL,
			Limit:       src.Limit,
			MaxAgeHours: src.MaxAgeHours,
		}
	case config.SourceRSS:
		return &RSSFetcher{
			SourceName:  src.Name,
			URL:         src.URL,
			Limit:       src.Limit,
			MaxAgeHours: src.MaxAgeHours,
		}
	case config.SourceTrending:
		return &BaiduHotFetcher{SourceName: src.Name, Limit: src.Limit}
	default:
		log.Printf("unknown source type %q for %s", src.Type, src.Name)
		return nil
	}
}
