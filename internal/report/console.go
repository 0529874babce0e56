package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/longxia/globalbrief/internal/digest"
)

// WriteConsole 按分组把简报输出为纯文本，供命令行模式与发送前预览使用
func WriteConsole(w io.Writer, d *digest.Digest) {
	line := strings.Repeat("=", 70)
	rule := strings.Repeat("━", 70)

	fmt.Fprintf(w, "\n📰 全球要闻简报  %s · %s\n%s\n", d.Period, d.PeriodDesc, line)

	fmt.Fprintf(w, "\n%s\n  📊 全球市场 MARKETS\n%s\n", rule, rule)
	for _, r := range d.Indices {
		fmt.Fprintf(w, "  %-12s %12s  %s %s\n", r.Name, r.Price, r.Arrow(), r.ChangeText())
	}
	for _, r := range d.HKStocks {
		fmt.Fprintf(w, "  %-12s %12s  %s %s\n", r.Name, r.Price, r.Arrow(), r.ChangeText())
	}
	for _, c := range d.Coins {
		fmt.Fprintf(w, "  %s %-10s %12s  %s %s\n", c.Icon, c.Name, c.PriceText(), c.Arrow(), c.ChangeText())
	}

	for _, b := range d.Buckets {
		fmt.Fprintf(w, "\n%s\n  %s\n%s\n", rule, b.Title, rule)
		if len(b.Items) == 0 {
			fmt.Fprintln(w, "  (暂无新闻)")
			continue
		}
		for i, h := range b.Items {
			if h.URL != "" {
				fmt.Fprintf(w, "  %d. %s\n     %s\n     via %s\n", i+1, h.Title, h.URL, h.Source)
			} else {
				fmt.Fprintf(w, "  %d. %s  (via %s)\n", i+1, h.Title, h.Source)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n⏰ 更新时间: %s 北京时间  共 %d 条要闻\n", line, d.BeijingTime, d.TotalArticles)
}
