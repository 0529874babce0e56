package main

import (
	"fmt"
	"log"
	"os"

	"github.com/longxia/globalbrief/internal/config"
	"github.com/longxia/globalbrief/internal/health"
)

// 检查所有新闻源的可用性，维护连续失败计数，
// 达到阈值且有备用地址的源自动切换（仅当使用外部源配置文件时）。
func main() {
	cfg := config.Load()

	results := health.CheckAll(cfg.Sources, cfg.FetchWorkers)

	okCount := 0
	for _, r := range results {
		mark := "❌"
		if r.OK {
			mark = "✅"
			okCount++
		}
		fmt.Printf("%s %-20s items=%-3d latency=%-8s %s\n", mark, r.Name, r.Items, r.Latency, r.URL)
	}
	fmt.Printf("\n%d/%d sources healthy\n", okCount, len(results))

	state := health.LoadState(cfg.HealthStatePath)
	swaps := health.Apply(results, state)
	if err := health.SaveState(cfg.HealthStatePath, state); err != nil {
		log.Printf("save health state: %v", err)
	}

	for _, sw := range swaps {
		if cfg.SourcesFile == "" {
			log.Printf("health: %s failing %d+ times, fallback available at %s (set NEWS_SOURCES_FILE to enable auto-swap)",
				sw.Name, health.FailThreshold, sw.To)
			continue
		}
		swapped, err := health.SwapURL(cfg.SourcesFile, sw.From, sw.To)
		if err != nil {
			log.Printf("health: swap %s: %v", sw.Name, err)
			continue
		}
		if swapped {
			log.Printf("health: %s switched to fallback %s", sw.Name, sw.To)
			state[sw.Name] = 0
		}
	}
	if len(swaps) > 0 {
		if err := health.SaveState(cfg.HealthStatePath, state); err != nil {
			log.Printf("save health state: %v", err)
		}
	}

	if okCount < len(results) {
		os.Exit(1)
	}
}
