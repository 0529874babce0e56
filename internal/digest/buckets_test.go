package digest

import (
	"testing"

	"github.com/longxia/globalbrief/internal/collector"
	"github.com/longxia/globalbrief/internal/config"
)

func hl(source string, titles ...string) []collector.Headline {
	out := make([]collector.Headline, 0, len(titles))
	for _, s := range titles {
		out = append(out, collector.Headline{Title: s, Source: source})
	}
	return out
}

func bucketTitles(b Bucket) []string {
	out := make([]string, 0, len(b.Items))
	for _, h := range b.Items {
		out = append(out, h.Title)
	}
	return out
}

func TestBuildPoolsFollowsSourceOrder(t *testing.T) {
	sources := []config.Source{
		{Name: "甲", Pools: []string{"cn_general"}},
		{Name: "乙", Pools: []string{"cn_general", "cn_finance"}},
		{Name: "丙", Pools: []string{"cn_finance"}},
	}
	bySource := map[string][]collector.Headline{
		"甲": hl("甲", "a1", "shared"),
		"乙": hl("乙", "b1", "shared"),
		"丙": hl("丙", "c1"),
	}

	pools := BuildPools(sources, bySource)

	general := pools["cn_general"]
	if len(general) != 3 {
		t.Fatalf("cn_general should dedupe shared title, got %v", general)
	}
	if general[0].Title != "a1" || general[1].Title != "shared" || general[2].Title != "b1" {
		t.Fatalf("cn_general order wrong: %v", general)
	}
	// 首次出现的来源保留：shared 来自甲
	if general[1].Source != "甲" {
		t.Fatalf("first-seen source should win, got %q", general[1].Source)
	}

	finance := pools["cn_finance"]
	if len(finance) != 4 || finance[0].Title != "b1" || finance[3].Title != "c1" {
		t.Fatalf("cn_finance wrong: %v", finance)
	}
}

func TestBuildPoolsSkipsEmptySources(t *testing.T) {
	sources := []config.Source{
		{Name: "空源", Pools: []string{"cn_tech"}},
	}
	pools := BuildPools(sources, map[string][]collector.Headline{})
	if _, ok := pools["cn_tech"]; ok {
		t.Fatalf("pool for empty source should be absent, got %v", pools["cn_tech"])
	}
}

func TestBuildBucketHeadsThenPasses(t *testing.T) {
	spec := BucketSpec{
		Key:   "china",
		Title: "中国要闻",
		Heads: []Head{{Source: "界面新闻", N: 2}},
		Passes: []Pass{
			{Pool: "cn_general", Keywords: []string{"中国"}, Limit: 3},
		},
		Cap: 4,
	}
	bySource := map[string][]collector.Headline{
		"界面新闻": hl("界面新闻", "头条一", "头条二", "不应出现的第三条"),
	}
	pools := map[string][]collector.Headline{
		"cn_general": hl("综合", "中国经济数据发布", "无关标题", "头条一", "中国外交新动向"),
	}

	b := BuildBucket(spec, pools, bySource)
	got := bucketTitles(b)
	want := []string{"头条一", "头条二", "中国经济数据发布", "中国外交新动向"}
	if len(got) != len(want) {
		t.Fatalf("bucket = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket[%d] = %q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestBuildBucketCapTruncates(t *testing.T) {
	spec := BucketSpec{
		Key:    "trending",
		Heads:  []Head{{Source: "百度热搜", N: 10}},
		Cap:    3,
	}
	bySource := map[string][]collector.Headline{
		"百度热搜": hl("百度热搜", "t1", "t2", "t3", "t4", "t5"),
	}
	b := BuildBucket(spec, nil, bySource)
	if len(b.Items) != 3 || b.Items[2].Title != "t3" {
		t.Fatalf("cap truncation wrong: %v", bucketTitles(b))
	}
}

func TestBuildBucketKeywordlessPass(t *testing.T) {
	spec := BucketSpec{
		Key:    "economist",
		Passes: []Pass{{Pool: "economist", Limit: 2}},
		Cap:    8,
	}
	pools := map[string][]collector.Headline{
		"economist": hl("Economist", "Leader one", "Leader two", "Leader three"),
	}
	b := BuildBucket(spec, pools, nil)
	if len(b.Items) != 2 || b.Items[0].Title != "Leader one" {
		t.Fatalf("keywordless pass wrong: %v", bucketTitles(b))
	}
}

func TestDefaultBucketsShape(t *testing.T) {
	if len(DefaultBuckets) != 13 {
		t.Fatalf("expected 13 buckets, got %d", len(DefaultBuckets))
	}
	seen := map[string]bool{}
	for _, spec := range DefaultBuckets {
		if spec.Key == "" || spec.Title == "" {
			t.Fatalf("bucket missing key or title: %+v", spec)
		}
		if seen[spec.Key] {
			t.Fatalf("duplicate bucket key %q", spec.Key)
		}
		seen[spec.Key] = true
		if spec.Cap <= 0 {
			t.Fatalf("bucket %q has no cap", spec.Key)
		}
		if len(spec.Heads) == 0 && len(spec.Passes) == 0 {
			t.Fatalf("bucket %q has no heads or passes", spec.Key)
		}
	}
}
