package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// 来源类型
const (
	SourceRollNews = "rollnews" // 滚动新闻 JSON 接口
	SourceRSS      = "rss"      // RSS / Atom
	SourceTrending = "trending" // 热搜榜（HTML 抓取）
)

// Source 描述一个新闻源及其所属的池
type Source struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	URL         string   `json:"url"`
	Limit       int      `json:"limit"`
	MaxAgeHours int      `json:"maxAgeHours"`
	Pools       []string `json:"pools"`
}

type Config struct {
	AppPort  string
	CronSpec string

	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	Recipient string

	QuoteURL       string
	CoinMarketsURL string

	FetchWorkers    int
	HealthStatePath string
	SourcesFile     string

	Sources []Source
}

func Load() *Config {
	// 凭证文件与原系统保持一致：~/.stock-monitor.env，不存在时静默跳过
	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".stock-monitor.env"))
	}

	cfg := &Config{
		AppPort:  getEnv("APP_PORT", "9000"),
		CronSpec: getEnv("CRON_SPEC", "0 0,8,16 * * *"),

		SMTPHost:  getEnv("SMTP_HOST", "smtp.163.com"),
		SMTPPort:  getEnv("SMTP_PORT", "465"),
		SMTPUser:  os.Getenv("SMTP_USER"),
		SMTPPass:  os.Getenv("SMTP_PASS"),
		Recipient: os.Getenv("BRIEF_RECIPIENT"),

		QuoteURL:       getEnv("QUOTE_URL", "https://qt.gtimg.cn/q="),
		CoinMarketsURL: getEnv("COIN_MARKETS_URL", defaultCoinMarketsURL),

		FetchWorkers:    getEnvInt("FETCH_WORKERS", 10),
		HealthStatePath: getEnv("HEALTH_STATE_PATH", "logs/source-health.json"),
		SourcesFile:     os.Getenv("NEWS_SOURCES_FILE"),

		Sources: DefaultSources(),
	}

	// 可选的 JSON 源配置文件覆盖内置源列表
	if cfg.SourcesFile != "" {
		srcs, err := LoadSources(cfg.SourcesFile)
		if err != nil {
			log.Fatalf("load sources file %s: %v", cfg.SourcesFile, err)
		}
		cfg.Sources = srcs
	}

	log.Printf("config loaded: port=%s cron=%s sources=%d", cfg.AppPort, cfg.CronSpec, len(cfg.Sources))
	return cfg
}

// LoadSources 从 JSON 文件读取源列表，顶层结构 {"sources": [...]}
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Sources []Source `json:"sources"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Sources, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
