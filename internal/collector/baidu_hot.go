package collector

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// BaiduHotFetcher 抓取百度实时热搜榜，供热搜趋势桶直取榜首条目
type BaiduHotFetcher struct {
	SourceName string
	Limit      int
}

func (b *BaiduHotFetcher) Name() string { return b.SourceName }

const baiduHotURL = "https://top.baidu.com/board?tab=realtime"

func (b *BaiduHotFetcher) Fetch() []Headline {
	c := colly.NewCollector(
		colly.AllowedDomains("top.baidu.com"),
		colly.UserAgent(userAgent),
	)
	c.SetRequestTimeout(fetchTimeout)

	results := make([]Headline, 0, 50)

	// 页面结构可能调整，此处基于当前的 DOM 结构做"尽力而为"的解析
	c.OnHTML("div.category-wrap_iQLoo", func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildText("div.c-single-text-ellipsis"))
		if title == "" {
			title = firstEllipsisText(e.DOM)
		}
		if title == "" {
			return
		}

		link := strings.TrimSpace(e.ChildAttr("a", "href"))
		switch {
		case link == "":
			link = baiduHotURL
		case !strings.HasPrefix(link, "http"):
			link = "https://top.baidu.com" + link
		}

		results = append(results, Headline{Title: title, URL: link, Source: b.SourceName})
	})

	if err := c.Visit(baiduHotURL); err != nil {
		log.Printf("baidu hot: %v", err)
		return nil
	}
	if len(results) == 0 {
		log.Printf("baidu hot: got 0 items")
		return nil
	}

	limit := b.Limit
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// firstEllipsisText 兜底：标题类 class 变化时，取条目内第一个省略样式文本块
func firstEllipsisText(sel *goquery.Selection) string {
	var text string
	sel.Find("div[class*='text-ellipsis']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text = strings.TrimSpace(s.Text())
		return text == ""
	})
	return text
}
