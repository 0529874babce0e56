package config

// 池名。同一来源可以进多个池，池内顺序 = 源列表顺序
const (
	PoolCNTech     = "cn_tech"
	PoolCNFinance  = "cn_finance"
	PoolCNGeneral  = "cn_general"
	PoolENTech     = "en_tech"
	PoolENBusiness = "en_business"
	PoolENWorld    = "en_world"
	PoolEconomist  = "economist"
	PoolTrending   = "trending"
)

const defaultCoinMarketsURL = "https://api.coingecko.com/api/v3/coins/markets" +
	"?vs_currency=usd&ids=bitcoin,ethereum,solana,ripple,dogecoin"

// 新闻默认只保留 72 小时内的条目，与原推送系统一致
const defaultMaxAge = 72

// DefaultSources 内置的源列表。顺序有意义：池合并时按此顺序保留首次出现的标题。
func DefaultSources() []Source {
	return []Source{
		// 新浪滚动新闻（JSON）
		roll("中国科技/AI", "https://feed.mix.sina.com.cn/api/roll/get?pageid=153&lid=2515&k=&num=30&page=1", 6, PoolCNTech),
		roll("中国财经要闻", "https://feed.mix.sina.com.cn/api/roll/get?pageid=153&lid=2516&k=&num=30&page=1", 6, PoolCNFinance),
		roll("中国股市", "https://feed.mix.sina.com.cn/api/roll/get?pageid=153&lid=2517&k=&num=30&page=1", 5, PoolCNFinance),

		// 中文科技 RSS
		rss("虎嗅", "https://rss.huxiu.com/", 5, PoolCNTech),
		rss("IT之家", "https://www.ithome.com/rss/", 5, PoolCNTech),
		rss("少数派", "https://sspai.com/feed", 4, PoolCNTech),
		rss("Solidot", "https://www.solidot.org/index.rss", 4, PoolCNTech),
		rss("钛媒体", "https://www.tmtpost.com/rss.xml", 4, PoolCNTech),
		rss("36氪", "https://36kr.com/feed", 5, PoolCNTech),

		// 中文综合 RSS
		rss("界面新闻", "https://rsshub.app/jiemian/list/4", 6, PoolCNFinance, PoolCNGeneral),
		rss("南方周末", "https://rsshub.app/infzm/2", 4, PoolCNGeneral),
		rss("纽约时报中文", "https://cn.nytimes.com/rss/", 5, PoolCNGeneral),
		rss("BBC中文", "https://feeds.bbci.co.uk/zhongwen/simp/rss.xml", 5, PoolCNGeneral),
		rss("日经中文", "https://cn.nikkei.com/rss.html", 4, PoolCNGeneral),

		// 英文科技 RSS
		rss("TechCrunch", "https://techcrunch.com/feed/", 5, PoolENTech),
		rss("Hacker News", "https://hnrss.org/frontpage", 5, PoolENTech),
		rss("Ars Technica", "https://feeds.arstechnica.com/arstechnica/index", 4, PoolENTech),
		rss("The Verge", "https://www.theverge.com/rss/index.xml", 4, PoolENTech),
		rss("BBC Technology", "https://feeds.bbci.co.uk/news/technology/rss.xml", 4, PoolENTech),
		rss("NYT Technology", "https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml", 4, PoolENTech),

		// 英文财经 RSS
		rss("CNBC", "https://www.cnbc.com/id/100003114/device/rss/rss.html", 5, PoolENBusiness),
		rss("Bloomberg", "https://feeds.bloomberg.com/markets/news.rss", 5, PoolENBusiness),
		rss("BBC Business", "https://feeds.bbci.co.uk/news/business/rss.xml", 4, PoolENBusiness),
		rss("FT", "https://www.ft.com/rss/home", 4, PoolENBusiness),
		rss("NYT Business", "https://rss.nytimes.com/services/xml/rss/nyt/Business.xml", 4, PoolENBusiness),
		rss("CBC Business", "https://www.cbc.ca/webfeed/rss/rss-business", 4, PoolENBusiness),
		rss("Globe & Mail", "https://www.theglobeandmail.com/arc/outboundfeeds/rss/category/business/", 4, PoolENBusiness),

		// 英文时政 RSS
		rss("BBC World", "https://feeds.bbci.co.uk/news/world/rss.xml", 6, PoolENWorld),
		rss("SCMP", "https://www.scmp.com/rss/91/feed", 5, PoolENWorld),
		rss("CNA", "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml", 5, PoolENWorld),

		// 经济学人
		rss("Economist Leaders", "https://www.economist.com/leaders/rss.xml", 4, PoolEconomist),
		rss("Economist Finance", "https://www.economist.com/finance-and-economics/rss.xml", 4, PoolEconomist),
		rss("Economist Business", "https://www.economist.com/business/rss.xml", 4, PoolEconomist),
		rss("Economist Science", "https://www.economist.com/science-and-technology/rss.xml", 4, PoolEconomist),

		// 热搜榜
		{Name: "百度热搜", Type: SourceTrending, URL: "https://top.baidu.com/board?tab=realtime", Limit: 10, Pools: []string{PoolTrending}},
	}
}

func roll(name, url string, limit int, pools ...string) Source {
	return Source{Name: name, Type: SourceRollNews, URL: url, Limit: limit, MaxAgeHours: defaultMaxAge, Pools: pools}
}

func rss(name, url string, limit int, pools ...string) Source {
	return Source{Name: name, Type: SourceRSS, URL: url, Limit: limit, MaxAgeHours: defaultMaxAge, Pools: pools}
}
