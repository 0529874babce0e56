package collector

import (
	"log"
	"strconv"
	"strings"
	"time"
)

// RollNewsFetcher 新浪滚动新闻 JSON 接口，一次请求取一页
type RollNewsFetcher struct {
	SourceName  string
	URL         string
	Limit       int
	MaxAgeHours int
}

func (f *RollNewsFetcher) Name() string { return f.SourceName }

type rollNewsResp struct {
	Result struct {
		Data []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
			Link  string `json:"link"`
			// 接口历史上既返回过字符串也返回过数字，宽松接收
			Ctime any `json:"ctime"`
		} `json:"data"`
	} `json:"result"`
}

func (f *RollNewsFetcher) Fetch() []Headline {
	var payload rollNewsResp
	if err := fetchJSON(f.URL, &payload); err != nil {
		log.Printf("rollnews %s: %v", f.SourceName, err)
		return nil
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 5
	}
	maxAge := time.Duration(f.MaxAgeHours) * time.Hour
	now := time.Now()

	var out []Headline
	for _, item := range payload.Result.Data {
		if maxAge > 0 {
			if ts := parseUnix(item.Ctime); ts > 0 && now.Sub(time.Unix(ts, 0)) > maxAge {
				continue
			}
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		link := item.URL
		if link == "" {
			link = item.Link
		}
		out = append(out, Headline{Title: title, URL: link, Source: f.SourceName})
		if len(out) >= limit {
			break
		}
	}
	return out
}

// parseUnix 宽松解析时间戳字段；无法解析时返回 0，表示不做新鲜度过滤
func parseUnix(v any) int64 {
	switch x := v.(type) {
	case float64:
		return int64(x)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
