package report

import (
	"strings"
	"testing"

	"github.com/longxia/globalbrief/internal/collector"
	"github.com/longxia/globalbrief/internal/digest"
	"github.com/longxia/globalbrief/internal/market"
)

func sampleDigest() *digest.Digest {
	return &digest.Digest{
		BeijingTime: "2026年08月29日 08:05",
		Period:      "🌅 早间档",
		PeriodDesc:  "亚洲开盘前瞻 | 投资早参",
		Buckets: []digest.Bucket{
			{Key: "ai_tech", Title: "🤖 AI & 科技前沿 TECH & AI", Items: []collector.Headline{
				{Title: "英伟达发布新GPU芯片", URL: "https://e.com/1", Source: "中国科技/AI"},
				{Title: "无链接条目", Source: "虎嗅"},
			}},
			{Key: "canada", Title: "🇨🇦 加拿大 CANADA"},
		},
		Indices: []market.QuoteRecord{
			{Code: "sh000001", Name: "🇨🇳 上证指数", Price: "3421.50", ChangePct: 0.15, State: market.Available, Dir: market.Up},
			{Code: "usDJI", Name: "🇺🇸 道琼斯", Price: market.PendingPrice, State: market.DataPending},
		},
		HKStocks: []market.QuoteRecord{
			{Code: "hk00700", Name: "腾讯控股", Price: "412.80", ChangePct: -1.02, State: market.Available, Dir: market.Down},
		},
		Coins: []market.CoinRecord{
			{ID: "bitcoin", Name: "比特币", Symbol: "BTC", Icon: "₿", Price: 67000.5, ChangePct24h: 1.2, State: market.Available, Dir: market.Up},
		},
		TotalArticles: 2,
		SourceCount:   35,
	}
}

func TestRenderBriefing(t *testing.T) {
	html, err := Render(sampleDigest())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"全球要闻简报",
		"GLOBAL NEWS BRIEFING",
		"🌅 早间档",
		"2026年08月29日 08:05",
		"共 2 条要闻",
		"综合 35 个源",
		`<a href="https://e.com/1"`,
		"英伟达发布新GPU芯片",
		"via 中国科技/AI",
		"🇨🇳 上证指数",
		"▲ +0.15%",
		"▼ -1.02%",
		"₿ 比特币",
		"$67000.50",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered briefing missing %q", want)
		}
	}
}

func TestRenderEmptyBucketPlaceholder(t *testing.T) {
	html, err := Render(sampleDigest())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "暂无新闻更新") {
		t.Fatal("empty bucket should render placeholder text")
	}
	if !strings.Contains(html, "🇨🇦 加拿大 CANADA") {
		t.Fatal("empty bucket title should still render")
	}
}

func TestRenderPendingQuote(t *testing.T) {
	html, err := Render(sampleDigest())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, market.PendingPrice) {
		t.Fatal("pending quote should render placeholder price")
	}
	if !strings.Contains(html, colorPending) {
		t.Fatal("pending quote should use pending color")
	}
	// 无链接的条目不应渲染成锚
	if strings.Contains(html, `<a href=""`) {
		t.Fatal("headline without url must not render an empty anchor")
	}
}
