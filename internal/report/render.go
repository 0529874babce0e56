// Package report 把 Digest 渲染为报纸风格的 HTML 简报并负责投递。
package report

import (
	"html/template"
	"strings"

	"github.com/longxia/globalbrief/internal/digest"
	"github.com/longxia/globalbrief/internal/market"
)

const (
	colorUp      = "#1a7a33"
	colorDown    = "#b02a2a"
	colorPending = "#888888"
)

var briefTmpl = template.Must(template.New("brief").Funcs(template.FuncMap{
	"quoteColor": func(r market.QuoteRecord) string {
		if r.State != market.Available {
			return colorPending
		}
		if r.Dir == market.Down {
			return colorDown
		}
		return colorUp
	},
	"coinColor": func(r market.CoinRecord) string {
		if r.State != market.Available {
			return colorPending
		}
		if r.Dir == market.Down {
			return colorDown
		}
		return colorUp
	},
}).Parse(briefTemplate))

// Render 生成完整的 HTML 简报
func Render(d *digest.Digest) (string, error) {
	var sb strings.Builder
	if err := briefTmpl.Execute(&sb, d); err != nil {
		return "", err
	}
	return sb.String(), nil
}

const briefTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>全球要闻简报</title>
</head>
<body style="margin:0;padding:0;background:#faf8f3;font-family:Georgia,'Noto Serif SC','PingFang SC',serif;color:#1a1a1a;line-height:1.7;">
<table width="100%" cellpadding="0" cellspacing="0" border="0" style="background:#faf8f3;">
<tr><td align="center" style="padding:20px 10px;">
<table width="700" cellpadding="0" cellspacing="0" border="0" style="max-width:700px;width:100%;background:#faf8f3;">

<tr><td style="padding:30px 30px 0 30px;">
  <table width="100%" cellpadding="0" cellspacing="0" border="0">
    <tr><td style="border-top:3px solid #2a2a2a;border-bottom:1px solid #2a2a2a;height:4px;font-size:0;line-height:0;">&nbsp;</td></tr>
  </table>
</td></tr>

<tr><td style="padding:20px 30px 5px 30px;text-align:center;">
  <div style="font-size:38px;font-weight:700;letter-spacing:6px;line-height:1.2;">全球要闻简报</div>
  <div style="font-size:14px;color:#555;letter-spacing:4px;margin-top:4px;">GLOBAL NEWS BRIEFING</div>
</td></tr>

<tr><td style="padding:10px 30px;">
  <table width="100%" cellpadding="0" cellspacing="0" border="0" style="border-top:1px solid #c8c0b0;margin-top:8px;">
    <tr>
      <td style="font-size:12px;color:#888;text-align:left;padding-top:8px;">{{.Period}} &middot; {{.PeriodDesc}}</td>
      <td style="font-size:12px;color:#888;text-align:right;padding-top:8px;">{{.BeijingTime}} 北京时间</td>
    </tr>
    <tr>
      <td colspan="2" style="font-size:11px;color:#888;text-align:center;letter-spacing:1px;padding-top:8px;border-bottom:1px solid #c8c0b0;padding-bottom:10px;">
        共 {{.TotalArticles}} 条要闻 &middot; 综合 {{.SourceCount}} 个源
      </td>
    </tr>
  </table>
</td></tr>

<tr><td style="padding:25px 30px 0 30px;">
  <div style="font-size:18px;font-weight:700;letter-spacing:3px;border-top:2px solid #2a2a2a;padding-top:12px;">📊 全球市场 MARKETS</div>
  <table width="100%" cellpadding="0" cellspacing="0" border="0" style="margin-top:8px;">
  {{range .Indices}}
    <tr>
      <td style="padding:6px 0;border-bottom:1px solid #c8c0b0;font-size:14px;">{{.Name}}</td>
      <td style="padding:6px 0;border-bottom:1px solid #c8c0b0;font-size:14px;text-align:right;">{{.Price}}</td>
      <td style="padding:6px 0;border-bottom:1px solid #c8c0b0;font-size:14px;text-align:right;color:{{quoteColor .}};">{{.Arrow}} {{.ChangeText}}</td>
    </tr>
  {{end}}
  </table>
  <div style="font-size:13px;color:#555;letter-spacing:2px;margin-top:14px;">港股焦点 HK STOCKS</div>
  <table width="100%" cellpadding="0" cellspacing="0" border="0" style="margin-top:4px;">
  {{range .HKStocks}}
    <tr>
      <td style="padding:6px 0;border-bottom:1px solid #c8c0b0;font-size:14px;">{{.Name}}</td>
      <td style="padding:6px 0;border-bottom:1px solid #c8c0b0;font-size:14px;text-align:right;">{{.Price}}</td>
      <td style="padding:6px 0;border-bottom:1px solid #c8c0b0;font-size:14px;text-align:right;color:{{quoteColor .}};">{{.Arrow}} {{.ChangeText}}</td>
    </tr>
  {{end}}
  </table>
  <div style="font-size:13px;color:#555;letter-spacing:2px;margin-top:14px;">加密货币 CRYPTO</div>
  <table width="100%" cellpadding="0" cellspacing="0" border="0" style="margin-top:4px;">
  {{range .Coins}}
    <tr>
      <td style="padding:6px 0;border-bottom:1px solid #c8c0b0;font-size:14px;">{{.Icon}} {{.Name}} <span style="color:#888;">{{.Symbol}}</span></td>
      <td style="padding:6px 0;border-bottom:1px solid #c8c0b0;font-size:14px;text-align:right;">{{.PriceText}}</td>
      <td style="padding:6px 0;border-bottom:1px solid #c8c0b0;font-size:14px;text-align:right;color:{{coinColor .}};">{{.Arrow}} {{.ChangeText}}</td>
    </tr>
  {{end}}
  </table>
</td></tr>

{{range .Buckets}}
<tr><td style="padding:25px 30px 0 30px;">
  <div style="font-size:18px;font-weight:700;letter-spacing:3px;border-top:2px solid #2a2a2a;padding-top:12px;">{{.Title}}</div>
</td></tr>
{{if .Items}}
<tr><td style="padding:8px 30px 0 30px;">
  <table width="100%" cellpadding="0" cellspacing="0" border="0">
  {{range .Items}}
    <tr>
      <td style="padding:10px 0;border-bottom:1px solid #c8c0b0;vertical-align:top;">
        <div style="font-size:15px;line-height:1.6;">
          {{if .URL}}<a href="{{.URL}}" style="color:#1a1a1a;text-decoration:none;border-bottom:1px solid #c8c0b0;" target="_blank">{{.Title}}</a>{{else}}{{.Title}}{{end}}
        </div>
        <div style="font-size:11px;color:#8b7355;margin-top:3px;">via {{.Source}}</div>
      </td>
    </tr>
  {{end}}
  </table>
</td></tr>
{{else}}
<tr><td style="padding:12px 30px;">
  <div style="font-size:13px;color:#888;font-style:italic;text-align:center;">暂无新闻更新</div>
</td></tr>
{{end}}
{{end}}

<tr><td style="padding:30px 30px 10px 30px;">
  <table width="100%" cellpadding="0" cellspacing="0" border="0">
    <tr><td style="border-top:3px solid #2a2a2a;border-bottom:1px solid #2a2a2a;height:4px;font-size:0;line-height:0;">&nbsp;</td></tr>
  </table>
</td></tr>
<tr><td style="padding:5px 30px 30px 30px;text-align:center;">
  <div style="font-size:11px;color:#888;line-height:1.8;">
    数据来源: Economist &middot; BBC &middot; NYT &middot; CNBC &middot; Bloomberg &middot; FT &middot; SCMP &middot; 新浪 &middot; 36氪 &middot; 日经<br>
    龙虾助手 &middot; 智能新闻监控与推送系统
  </div>
</td></tr>

</table>
</td></tr>
</table>
</body>
</html>
`
