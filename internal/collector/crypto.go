package collector

import "log"

// FetchCoinMarkets 拉取加密货币行情列表。逐项字段提取交给 market 包，
// 这里只做宽松解码，保证单个异常条目不会拖垮整个列表；
// 失败或响应不是 JSON 列表时返回 nil。
func FetchCoinMarkets(url string) []map[string]any {
	var rows []map[string]any
	if err := fetchJSON(url, &rows); err != nil {
		log.Printf("coin markets: %v", err)
		return nil
	}
	return rows
}
