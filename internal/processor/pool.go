// Package processor 提供新闻池的合并去重与关键词筛选两个纯函数原语。
// 二者都是全函数：空输入得到空输出，不产生错误。
package processor

import (
	"strings"

	"github.com/longxia/globalbrief/internal/collector"
)

// MergeDedupe 按参数顺序合并多个有序序列。每个标题只保留首次出现的那条，
// 无论重复发生在同一序列内还是跨序列；输出顺序对确定的输入完全确定。
// 既用于把各来源的结果拼成池，也用于合并桶的多轮筛选结果。
func MergeDedupe(pools ...[]collector.Headline) []collector.Headline {
	seen := make(map[string]struct{})
	var out []collector.Headline
	for _, pool := range pools {
		for _, h := range pool {
			if _, ok := seen[h.Title]; ok {
				continue
			}
			seen[h.Title] = struct{}{}
			out = append(out, h)
		}
	}
	return out
}

// MatchNews 顺序扫描 pool，保留标题命中任一关键词（子串包含）的条目，
// 收满 limit 条即停。关键词列表为空时全部通过，用于"可信源直取"类筛选。
// 结果内部不含重复标题，顺序与 pool 一致。
func MatchNews(pool []collector.Headline, keywords []string, limit int, caseInsensitive bool) []collector.Headline {
	if limit <= 0 {
		return nil
	}

	folded := keywords
	if caseInsensitive {
		folded = make([]string, len(keywords))
		for i, kw := range keywords {
			folded[i] = strings.ToLower(kw)
		}
	}

	seen := make(map[string]struct{})
	var out []collector.Headline
	for _, h := range pool {
		if !titleMatches(h.Title, folded, caseInsensitive) {
			continue
		}
		if _, ok := seen[h.Title]; ok {
			continue
		}
		seen[h.Title] = struct{}{}
		out = append(out, h)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func titleMatches(title string, keywords []string, caseInsensitive bool) bool {
	if len(keywords) == 0 {
		return true
	}
	if caseInsensitive {
		title = strings.ToLower(title)
	}
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}
