package digest

import (
	"github.com/longxia/globalbrief/internal/collector"
	"github.com/longxia/globalbrief/internal/config"
	"github.com/longxia/globalbrief/internal/processor"
)

// Pass 一轮关键词筛选：从某个池按关键词取最多 Limit 条
type Pass struct {
	Pool            string
	Keywords        []string
	Limit           int
	CaseInsensitive bool
}

// Head 可信源直取：某个来源的前 N 条无条件并入桶中。
// 这是"该源的头条必进"的显式策略，不是兜底。
type Head struct {
	Source string
	N      int
}

// BucketSpec 一个输出桶的声明式定义。调整桶只改数据，不改控制流。
type BucketSpec struct {
	Key    string
	Title  string
	Heads  []Head
	Passes []Pass
	Cap    int
}

type Bucket struct {
	Key   string               `json:"key"`
	Title string               `json:"title"`
	Items []collector.Headline `json:"items"`
}

// DefaultBuckets 13 个输出桶：3 个主题、8 个地区、经济学人、热搜趋势
var DefaultBuckets = []BucketSpec{
	{
		Key: "ai_tech", Title: "🤖 AI & 科技前沿 TECH & AI",
		Passes: []Pass{
			{Pool: config.PoolCNTech, Keywords: []string{"AI", "人工智能", "芯片", "大模型", "机器人", "半导体", "算力", "智能"}, Limit: 6},
			{Pool: config.PoolENTech, Keywords: []string{"ai", "chip", "gpu", "openai", "robot", "semiconductor", "model", "nvidia"}, Limit: 6, CaseInsensitive: true},
		},
		Cap: 8,
	},
	{
		Key: "finance", Title: "💰 全球财经 GLOBAL FINANCE",
		Passes: []Pass{
			{Pool: config.PoolCNFinance, Keywords: []string{"央行", "利率", "美联储", "股市", "IPO", "基金", "通胀", "汇率", "债券"}, Limit: 6},
			{Pool: config.PoolENBusiness, Keywords: []string{"fed", "rate", "inflation", "stock", "market", "economy", "bank", "ipo"}, Limit: 6, CaseInsensitive: true},
		},
		Cap: 8,
	},
	{
		Key: "politics", Title: "🏛 全球政治 GLOBAL POLITICS",
		Passes: []Pass{
			{Pool: config.PoolCNGeneral, Keywords: []string{"选举", "总统", "国会", "外交", "制裁", "峰会", "议会"}, Limit: 5},
			{Pool: config.PoolENWorld, Keywords: []string{"election", "president", "parliament", "sanction", "summit", "minister"}, Limit: 5, CaseInsensitive: true},
		},
		Cap: 6,
	},
	{
		Key: "china", Title: "🇨🇳 中国要闻 CHINA",
		Heads: []Head{{Source: "界面新闻", N: 3}},
		Passes: []Pass{
			{Pool: config.PoolCNGeneral, Keywords: []string{"中国", "北京", "上海", "国务院", "央企", "内地"}, Limit: 5},
		},
		Cap: 6,
	},
	{
		Key: "hk_taiwan", Title: "🇭🇰 港台聚焦 HK & TAIWAN",
		Passes: []Pass{
			{Pool: config.PoolCNGeneral, Keywords: []string{"香港", "台湾", "澳门", "港股"}, Limit: 4},
			{Pool: config.PoolENWorld, Keywords: []string{"hong kong", "taiwan", "macau"}, Limit: 4, CaseInsensitive: true},
		},
		Cap: 5,
	},
	{
		Key: "us", Title: "🇺🇸 美国 UNITED STATES",
		Passes: []Pass{
			{Pool: config.PoolENWorld, Keywords: []string{"america", "washington", "white house", "congress", "u.s."}, Limit: 4, CaseInsensitive: true},
			{Pool: config.PoolENBusiness, Keywords: []string{"wall street", "fed", "dollar", "treasury"}, Limit: 4, CaseInsensitive: true},
		},
		Cap: 5,
	},
	{
		Key: "europe", Title: "🇪🇺 欧洲 EUROPE",
		Passes: []Pass{
			{Pool: config.PoolENWorld, Keywords: []string{"europe", "eu ", "germany", "france", "ukraine", "brussels"}, Limit: 4, CaseInsensitive: true},
			{Pool: config.PoolENBusiness, Keywords: []string{"ecb", "euro", "europe"}, Limit: 3, CaseInsensitive: true},
		},
		Cap: 5,
	},
	{
		Key: "uk", Title: "🇬🇧 英国 UNITED KINGDOM",
		Passes: []Pass{
			{Pool: config.PoolENWorld, Keywords: []string{"uk ", "britain", "british", "london"}, Limit: 4, CaseInsensitive: true},
			{Pool: config.PoolENBusiness, Keywords: []string{"bank of england", "pound", "ftse"}, Limit: 3, CaseInsensitive: true},
		},
		Cap: 4,
	},
	{
		Key: "asia_pacific", Title: "🌏 亚太要闻 ASIA-PACIFIC",
		Passes: []Pass{
			{Pool: config.PoolCNGeneral, Keywords: []string{"日本", "日元", "东京", "亚太"}, Limit: 3},
			{Pool: config.PoolENWorld, Keywords: []string{"japan", "korea", "india", "singapore", "australia", "asia"}, Limit: 4, CaseInsensitive: true},
		},
		Cap: 5,
	},
	{
		Key: "canada", Title: "🇨🇦 加拿大 CANADA",
		Passes: []Pass{
			{Pool: config.PoolENBusiness, Keywords: []string{"canada", "canadian", "ottawa", "toronto", "tsx"}, Limit: 5, CaseInsensitive: true},
		},
		Cap: 4,
	},
	{
		Key: "middle_east", Title: "🌍 中东 MIDDLE EAST",
		Passes: []Pass{
			{Pool: config.PoolCNGeneral, Keywords: []string{"中东", "以色列", "伊朗"}, Limit: 3},
			{Pool: config.PoolENWorld, Keywords: []string{"israel", "iran", "gaza", "saudi", "middle east"}, Limit: 4, CaseInsensitive: true},
		},
		Cap: 4,
	},
	{
		Key: "economist", Title: "📕 经济学人 THE ECONOMIST",
		Heads: []Head{{Source: "Economist Leaders", N: 3}},
		Passes: []Pass{
			{Pool: config.PoolEconomist, Limit: 6},
		},
		Cap: 8,
	},
	{
		Key: "trending", Title: "🔥 热搜趋势 TRENDING",
		Heads: []Head{{Source: "百度热搜", N: 10}},
		Cap:   10,
	},
}

// BuildPools 按来源顺序把各来源结果合并为命名池
func BuildPools(sources []config.Source, bySource map[string][]collector.Headline) map[string][]collector.Headline {
	ordered := make(map[string][][]collector.Headline)
	for _, src := range sources {
		items := bySource[src.Name]
		if len(items) == 0 {
			continue
		}
		for _, pool := range src.Pools {
			ordered[pool] = append(ordered[pool], items)
		}
	}

	pools := make(map[string][]collector.Headline, len(ordered))
	for name, parts := range ordered {
		pools[name] = processor.MergeDedupe(parts...)
	}
	return pools
}

// BuildBucket 执行一个桶的全部直取与筛选轮次，合并去重后截断到桶上限
func BuildBucket(spec BucketSpec, pools, bySource map[string][]collector.Headline) Bucket {
	var parts [][]collector.Headline
	for _, h := range spec.Heads {
		items := bySource[h.Source]
		if h.N > 0 && len(items) > h.N {
			items = items[:h.N]
		}
		parts = append(parts, items)
	}
	for _, p := range spec.Passes {
		parts = append(parts, processor.MatchNews(pools[p.Pool], p.Keywords, p.Limit, p.CaseInsensitive))
	}

	items := processor.MergeDedupe(parts...)
	if spec.Cap > 0 && len(items) > spec.Cap {
		items = items[:spec.Cap]
	}
	return Bucket{Key: spec.Key, Title: spec.Title, Items: items}
}
