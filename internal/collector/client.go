package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/text/encoding"
)

const (
	fetchTimeout     = 10 * time.Second
	maxResponseBytes = 2 << 20 // 2MB
	userAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// fetchBody 发起一次 GET 请求并返回响应体（上限 maxResponseBytes）。
// 所有出站请求带统一的 UA 头与 10 秒超时。
func fetchBody(rawURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return readLimit(resp.Body, maxResponseBytes)
}

func fetchJSON(rawURL string, v any) error {
	body, err := fetchBody(rawURL)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// fetchText 获取文本内容；enc 非 nil 时按对应编码解码（如行情源的 GBK）。
func fetchText(rawURL string, enc encoding.Encoding) (string, error) {
	body, err := fetchBody(rawURL)
	if err != nil {
		return "", err
	}
	if enc != nil {
		decoded, err := enc.NewDecoder().Bytes(body)
		if err != nil {
			return "", err
		}
		body = decoded
	}
	return string(body), nil
}

func readLimit(r io.Reader, n int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, n))
}
