// Package health 检查所有配置新闻源的可用性：可达、可解析、有内容。
// 连续失败的源在达到阈值后自动切换到已知的备用地址。
package health

import (
	"log"
	"sync"
	"time"

	"github.com/longxia/globalbrief/internal/collector"
	"github.com/longxia/globalbrief/internal/config"
)

// FailThreshold 连续失败多少次后切换备用地址
const FailThreshold = 3

// 已知备用地址（RSSHub 镜像），仅覆盖有公开镜像的源
var fallbackURLs = map[string]string{
	"虎嗅":   "https://rsshub.rssforever.com/huxiu/article",
	"IT之家": "https://rsshub.rssforever.com/ithome",
	"36氪":  "https://rsshub.rssforever.com/36kr/news",
	"少数派":  "https://rsshub.rssforever.com/sspai/matrix",
	"钛媒体":  "https://rsshub.rssforever.com/tmtpost/recommend",
	"界面新闻": "https://rsshub.rssforever.com/jiemian/list/4",
	"Solidot": "https://rsshub.rssforever.com/solidot",
	"南方周末": "https://rsshub.rssforever.com/infzm/2",
}

// Result 单个源的一次检查结果
type Result struct {
	Name    string        `json:"name"`
	URL     string        `json:"url"`
	OK      bool          `json:"ok"`
	Items   int           `json:"items"`
	Latency time.Duration `json:"latency"`
}

// CheckAll 并行检查全部源：抓取一次，有条目即视为健康
func CheckAll(sources []config.Source, workers int) []Result {
	if workers <= 0 {
		workers = 10
	}

	results := make([]Result, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, src := range sources {
		f := collector.New(src)
		if f == nil {
			results[i] = Result{Name: src.Name, URL: src.URL}
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, src config.Source, f collector.Fetcher) {
			defer wg.Done()
			defer func() { <-sem }()

			start := time.Now()
			items := f.Fetch()
			results[i] = Result{
				Name:    src.Name,
				URL:     src.URL,
				OK:      len(items) > 0,
				Items:   len(items),
				Latency: time.Since(start).Round(time.Millisecond),
			}
		}(i, src, f)
	}
	wg.Wait()
	return results
}

// Swap 一次待执行的备用地址切换
type Swap struct {
	Name string
	From string
	To   string
}

// Apply 用本轮结果更新连续失败计数，返回达到阈值且有备用地址的切换项。
// 已处于备用地址的源不再重复切换。
func Apply(results []Result, state State) []Swap {
	var swaps []Swap
	for _, r := range results {
		if r.OK {
			if state[r.Name] > 0 {
				log.Printf("health: %s recovered", r.Name)
			}
			state[r.Name] = 0
			continue
		}

		state[r.Name]++
		fallback, hasFallback := fallbackURLs[r.Name]
		if state[r.Name] >= FailThreshold && hasFallback && r.URL != fallback {
			swaps = append(swaps, Swap{Name: r.Name, From: r.URL, To: fallback})
		}
	}
	return swaps
}
