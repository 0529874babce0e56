package collector

import (
	"log"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// RSSFetcher RSS / Atom 源。gofeed 统一处理 RSS <item> 与
// Atom <entry> 以及带命名空间的 title 标签。
type RSSFetcher struct {
	SourceName  string
	URL         string
	Limit       int
	MaxAgeHours int
}

func (f *RSSFetcher) Name() string { return f.SourceName }

func (f *RSSFetcher) Fetch() []Headline {
	text, err := fetchText(f.URL, nil)
	if err != nil {
		log.Printf("rss %s: %v", f.SourceName, err)
		return nil
	}

	feed, err := gofeed.NewParser().ParseString(text)
	if err != nil {
		log.Printf("rss %s parse: %v", f.SourceName, err)
		return nil
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 5
	}
	maxAge := time.Duration(f.MaxAgeHours) * time.Hour
	now := time.Now()

	var out []Headline
	for _, item := range feed.Items {
		// 新鲜度：优先 pubDate / published，退回 updated；无日期时不过滤
		ts := item.PublishedParsed
		if ts == nil {
			ts = item.UpdatedParsed
		}
		if maxAge > 0 && ts != nil && now.Sub(*ts) > maxAge {
			continue
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		out = append(out, Headline{Title: title, URL: item.Link, Source: f.SourceName})
		if len(out) >= limit {
			break
		}
	}
	return out
}
