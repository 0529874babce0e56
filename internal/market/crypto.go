package market

import (
	"fmt"
	"strings"
)

type CoinRecord struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Symbol       string     `json:"symbol"`
	Icon         string     `json:"icon"`
	Price        float64    `json:"price"`
	ChangePct24h float64    `json:"changePct24h"`
	State        QuoteState `json:"state"`
	Dir          Direction  `json:"dir"`
}

type coinMeta struct {
	Name   string
	Symbol string
	Icon   string
}

// 已知币种的静态展示元数据；未知 id 退回通用展示
var coinCatalog = map[string]coinMeta{
	"bitcoin":  {"比特币", "BTC", "₿"},
	"ethereum": {"以太坊", "ETH", "Ξ"},
	"solana":   {"Solana", "SOL", "◎"},
	"ripple":   {"瑞波币", "XRP", "✕"},
	"dogecoin": {"狗狗币", "DOGE", "Ð"},
}

const genericCoinIcon = "🪙"

// BuildCoinTable 把行情列表规整为展示行。单项异常只跳过该项；
// 整个列表缺失或没有产出任何行时，返回一条说明行，表永远不为空。
func BuildCoinTable(rows []map[string]any) []CoinRecord {
	var out []CoinRecord
	for _, row := range rows {
		rec, ok := coinFromRow(row)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return []CoinRecord{{Name: "行情暂不可用", Symbol: "—", Icon: genericCoinIcon, State: DataPending}}
	}
	return out
}

func coinFromRow(row map[string]any) (CoinRecord, bool) {
	id, _ := row["id"].(string)
	if id == "" {
		return CoinRecord{}, false
	}
	price, ok := toFloat(row["current_price"])
	if !ok {
		return CoinRecord{}, false
	}
	change, ok := toFloat(row["price_change_percentage_24h"])
	if !ok {
		change = 0 // 缺失按 0 处理
	}

	meta, known := coinCatalog[id]
	if !known {
		meta = coinMeta{Name: id, Symbol: upperPrefix(id, 4), Icon: genericCoinIcon}
	}

	dir := Up
	if change < 0 {
		dir = Down
	}
	return CoinRecord{
		ID:           id,
		Name:         meta.Name,
		Symbol:       meta.Symbol,
		Icon:         meta.Icon,
		Price:        price,
		ChangePct24h: change,
		State:        Available,
		Dir:          dir,
	}, true
}

func toFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func upperPrefix(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}
	return strings.ToUpper(s)
}

func (r CoinRecord) Arrow() string {
	if r.State != Available {
		return ""
	}
	if r.Dir == Down {
		return "▼"
	}
	return "▲"
}

func (r CoinRecord) PriceText() string {
	if r.State != Available {
		return PendingPrice
	}
	if r.Price < 1 {
		return fmt.Sprintf("$%.4f", r.Price)
	}
	return fmt.Sprintf("$%.2f", r.Price)
}

func (r CoinRecord) ChangeText() string {
	if r.State != Available {
		return "—"
	}
	return fmt.Sprintf("%+.2f%%", r.ChangePct24h)
}
