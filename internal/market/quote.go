// Package market 把行情快照与加密货币行情规整为形状稳定的展示表：
// 无论抓取结果如何，输出行数与顺序都由配置的符号表决定。
package market

import (
	"fmt"
	"strconv"
	"strings"
)

type Direction int

const (
	Up Direction = iota
	Down
)

// QuoteState 标记一行数据的可用程度，渲染层按状态分支而不是嗅探占位文本
type QuoteState int

const (
	Available     QuoteState = iota
	ChangePending            // 有价格，涨跌幅字段无法解析
	DataPending              // 符号在快照中没有对应行
)

// SymbolSpec 配置的行情符号与展示名。输出表的行序与配置顺序保持一致。
type SymbolSpec struct {
	Code string
	Name string
}

var GlobalIndices = []SymbolSpec{
	{"sh000001", "🇨🇳 上证指数"},
	{"sz399001", "🇨🇳 深证成指"},
	{"hkHSI", "🇭🇰 恒生指数"},
	{"usDJI", "🇺🇸 道琼斯"},
	{"usIXIC", "🇺🇸 纳斯达克"},
	{"usINX", "🇺🇸 标普500"},
}

var HKStocks = []SymbolSpec{
	{"hk00700", "腾讯控股"},
	{"hk09988", "阿里巴巴"},
	{"hk03690", "美团"},
	{"hk01810", "小米集团"},
	{"hk09618", "京东集团"},
}

// PendingPrice 符号无数据时价格列的占位文案
const PendingPrice = "数据获取中..."

type QuoteRecord struct {
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Price     string     `json:"price"`
	ChangePct float64    `json:"changePct"`
	State     QuoteState `json:"state"`
	Dir       Direction  `json:"dir"`
}

const (
	fieldPrice = 3
	// 涨跌幅是纯位置约定：富快照取 32，短快照退回 5。
	// 上游协议没有文档化承诺，字段数变化时可能指向错误语义；保持原偏移不做推断。
	fieldChangeRich  = 32
	fieldChangeBasic = 5
	minFields        = 6
)

// ParseSnapshot 解析行情快照原文，返回 符号代码 -> 字段列表。
// 行形如 v_sh000001="f0~f1~...";，不含 =" 或 ~ 的行、
// 字段不足的行直接跳过，不影响其余行的解析。
func ParseSnapshot(text string) map[string][]string {
	parsed := make(map[string][]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, `="`) || !strings.Contains(line, "~") {
			continue
		}

		parts := strings.SplitN(line, `="`, 2)
		key := strings.TrimPrefix(strings.TrimSpace(parts[0]), "v_")
		if key == "" {
			continue
		}

		val := strings.TrimSuffix(parts[1], ";")
		val = strings.TrimSuffix(val, `"`)
		fields := strings.Split(val, "~")
		if len(fields) < minFields {
			continue
		}
		parsed[key] = fields
	}
	return parsed
}

// BuildQuoteTable 按配置符号顺序产出行情表：一个符号一行，与抓取到哪些行无关。
func BuildQuoteTable(symbols []SymbolSpec, parsed map[string][]string) []QuoteRecord {
	out := make([]QuoteRecord, 0, len(symbols))
	for _, s := range symbols {
		fields, ok := parsed[s.Code]
		if !ok {
			out = append(out, QuoteRecord{Code: s.Code, Name: s.Name, Price: PendingPrice, State: DataPending})
			continue
		}

		price := strings.TrimSpace(fields[fieldPrice])
		changeField := fields[fieldChangeBasic]
		if len(fields) > fieldChangeRich {
			changeField = fields[fieldChangeRich]
		}

		change, err := strconv.ParseFloat(strings.TrimSpace(changeField), 64)
		if err != nil {
			out = append(out, QuoteRecord{Code: s.Code, Name: s.Name, Price: price, State: ChangePending})
			continue
		}

		dir := Up
		if change < 0 {
			dir = Down
		}
		out = append(out, QuoteRecord{Code: s.Code, Name: s.Name, Price: price, ChangePct: change, State: Available, Dir: dir})
	}
	return out
}

// Arrow 方向图标；无方向数据时为空
func (r QuoteRecord) Arrow() string {
	if r.State != Available {
		return ""
	}
	if r.Dir == Down {
		return "▼"
	}
	return "▲"
}

// ChangeText 涨跌幅展示文本，不可用时为长破折号
func (r QuoteRecord) ChangeText() string {
	if r.State != Available {
		return "—"
	}
	return fmt.Sprintf("%+.2f%%", r.ChangePct)
}

// Codes 抽出一组符号的代码，用于拼批量请求
func Codes(symbols []SymbolSpec) []string {
	codes := make([]string, len(symbols))
	for i, s := range symbols {
		codes[i] = s.Code
	}
	return codes
}
