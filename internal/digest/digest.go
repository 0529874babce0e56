package digest

import (
	"log"
	"sync"
	"time"

	"github.com/longxia/globalbrief/internal/collector"
	"github.com/longxia/globalbrief/internal/config"
	"github.com/longxia/globalbrief/internal/market"
)

// Digest 一次完整流水线的产物：所有桶与行情表，抓取完成后一次性构建，
// 运行之间不保留任何状态。
type Digest struct {
	BeijingTime string `json:"beijingTime"`
	Period      string `json:"period"`
	PeriodDesc  string `json:"periodDesc"`

	Buckets []Bucket `json:"buckets"`

	Indices  []market.QuoteRecord `json:"indices"`
	HKStocks []market.QuoteRecord `json:"hkStocks"`
	Coins    []market.CoinRecord  `json:"coins"`

	TotalArticles int `json:"totalArticles"`
	SourceCount   int `json:"sourceCount"`
}

// Build 执行整条流水线：并发抓取全部来源与行情，汇合后构建池、桶和行情表。
// 每个抓取任务自行吸收失败，汇合点之后没有任何失败路径。
func Build(cfg *config.Config) *Digest {
	log.Println("start briefing pipeline...")
	start := time.Now()

	bySource, quoteText, coinRows := fetchAll(cfg)

	pools := BuildPools(cfg.Sources, bySource)
	buckets := make([]Bucket, 0, len(DefaultBuckets))
	total := 0
	for _, spec := range DefaultBuckets {
		b := BuildBucket(spec, pools, bySource)
		total += len(b.Items)
		buckets = append(buckets, b)
	}

	parsed := market.ParseSnapshot(quoteText)
	now := time.Now()
	period, periodDesc := PeriodInfo(now)

	d := &Digest{
		BeijingTime:   FormatBeijing(now),
		Period:        period,
		PeriodDesc:    periodDesc,
		Buckets:       buckets,
		Indices:       market.BuildQuoteTable(market.GlobalIndices, parsed),
		HKStocks:      market.BuildQuoteTable(market.HKStocks, parsed),
		Coins:         market.BuildCoinTable(coinRows),
		TotalArticles: total,
		SourceCount:   len(cfg.Sources),
	}

	log.Printf("pipeline done: %d articles from %d sources in %s", total, len(cfg.Sources), time.Since(start).Round(time.Millisecond))
	return d
}

// fetchAll 有界并发抓取：新闻源、行情快照、加密货币行情全部入同一个池，
// 等待全部完成后返回。单任务 panic 被吸收为该源无数据。
func fetchAll(cfg *config.Config) (bySource map[string][]collector.Headline, quoteText string, coinRows []map[string]any) {
	workers := cfg.FetchWorkers
	if workers <= 0 {
		workers = 10
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, workers)
	)
	bySource = make(map[string][]collector.Headline, len(cfg.Sources))

	run := func(task func()) {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			task()
		}()
	}

	for _, src := range cfg.Sources {
		f := collector.New(src)
		if f == nil {
			continue
		}
		name := src.Name
		run(func() {
			items := fetchSafe(f)
			mu.Lock()
			bySource[name] = items
			mu.Unlock()
		})
	}

	symbols := append(market.Codes(market.GlobalIndices), market.Codes(market.HKStocks)...)
	run(func() {
		text := collector.FetchQuoteSnapshot(cfg.QuoteURL, symbols)
		mu.Lock()
		quoteText = text
		mu.Unlock()
	})
	run(func() {
		rows := collector.FetchCoinMarkets(cfg.CoinMarketsURL)
		mu.Lock()
		coinRows = rows
		mu.Unlock()
	})

	wg.Wait()
	return bySource, quoteText, coinRows
}

// fetchSafe 把 Fetch 中的意外 panic 统一转化为"该源为空"
func fetchSafe(f collector.Fetcher) (items []collector.Headline) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("fetch %s panic: %v", f.Name(), r)
			items = nil
		}
	}()
	return f.Fetch()
}
