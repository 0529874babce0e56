package collector

import (
	"log"
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// FetchQuoteSnapshot 一次请求拉取一批符号的行情快照原文。
// 行情源返回 GBK 编码的旧式分隔文本，每行一个符号。
// 任何失败返回空串，normalizer 按"所有符号无数据"处理。
func FetchQuoteSnapshot(baseURL string, symbols []string) string {
	if len(symbols) == 0 {
		return ""
	}
	text, err := fetchText(baseURL+strings.Join(symbols, ","), simplifiedchinese.GBK)
	if err != nil {
		log.Printf("quote snapshot: %v", err)
		return ""
	}
	return text
}
