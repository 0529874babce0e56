package processor

import (
	"testing"

	"github.com/longxia/globalbrief/internal/collector"
)

func titles(items []collector.Headline) []string {
	out := make([]string, len(items))
	for i, h := range items {
		out[i] = h.Title
	}
	return out
}

func mk(titles ...string) []collector.Headline {
	out := make([]collector.Headline, len(titles))
	for i, t := range titles {
		out[i] = collector.Headline{Title: t}
	}
	return out
}

func TestMergeDedupeCollapsesDuplicateWithinOneInput(t *testing.T) {
	got := MergeDedupe(mk("英伟达发布新GPU芯片", "英伟达发布新GPU芯片"))
	if len(got) != 1 || got[0].Title != "英伟达发布新GPU芯片" {
		t.Fatalf("expected single deduped headline, got %v", titles(got))
	}
}

func TestMergeDedupePreservesFirstSeenOrderAcrossInputs(t *testing.T) {
	a := mk("一", "二", "三")
	b := mk("二", "四")
	c := mk("四", "一", "五")

	got := MergeDedupe(a, b, c)
	want := []string{"一", "二", "三", "四", "五"}
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d (%v)", len(got), len(want), titles(got))
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Fatalf("got[%d] = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestMergeDedupeEmptyInputs(t *testing.T) {
	if got := MergeDedupe(); len(got) != 0 {
		t.Fatalf("expected empty output, got %v", titles(got))
	}
	if got := MergeDedupe(nil, mk(), nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %v", titles(got))
	}
}

// 两轮筛选各返回 3 和 4 条、重叠 1 条，合并去重后应为 6 条，轮次顺序保持
func TestMergeDedupeTwoPassOverlap(t *testing.T) {
	pass1 := mk("a1", "a2", "shared")
	pass2 := mk("b1", "shared", "b2", "b3")

	got := MergeDedupe(pass1, pass2)
	want := []string{"a1", "a2", "shared", "b1", "b2", "b3"}
	if len(got) != 6 {
		t.Fatalf("length = %d, want 6 (%v)", len(got), titles(got))
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Fatalf("got[%d] = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestMatchNewsKeywordSubstringAndLimit(t *testing.T) {
	pool := mk(
		"央行宣布降息",
		"某球队夺冠",
		"美联储主席讲话",
		"基金发行创新高",
		"股市午盘上涨",
	)
	got := MatchNews(pool, []string{"央行", "美联储", "基金", "股市"}, 3, false)
	want := []string{"央行宣布降息", "美联储主席讲话", "基金发行创新高"}
	if len(got) != 3 {
		t.Fatalf("length = %d, want 3 (%v)", len(got), titles(got))
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Fatalf("got[%d] = %q, want %q", i, got[i].Title, w)
		}
	}
}

func TestMatchNewsCaseInsensitive(t *testing.T) {
	pool := mk("OpenAI releases new model", "Markets rally on Fed news")

	if got := MatchNews(pool, []string{"openai"}, 5, false); len(got) != 0 {
		t.Fatalf("case-sensitive match should miss, got %v", titles(got))
	}
	got := MatchNews(pool, []string{"openai"}, 5, true)
	if len(got) != 1 || got[0].Title != "OpenAI releases new model" {
		t.Fatalf("case-insensitive match failed, got %v", titles(got))
	}
}

func TestMatchNewsEmptyKeywordsPassesThrough(t *testing.T) {
	pool := mk("一", "二", "三", "四")
	got := MatchNews(pool, nil, 3, false)
	if len(got) != 3 {
		t.Fatalf("empty keywords should pass through up to limit, got %v", titles(got))
	}
	if got[0].Title != "一" || got[2].Title != "三" {
		t.Fatalf("pass-through order broken: %v", titles(got))
	}
}

func TestMatchNewsResultBounds(t *testing.T) {
	pool := mk("AI 芯片大卖", "AI 模型开源")

	got := MatchNews(pool, []string{"AI"}, 10, false)
	if len(got) > len(pool) {
		t.Fatalf("result longer than pool: %d > %d", len(got), len(pool))
	}
	if got := MatchNews(pool, []string{"AI"}, 0, false); len(got) != 0 {
		t.Fatalf("limit 0 should yield empty, got %v", titles(got))
	}
	if got := MatchNews(nil, []string{"AI"}, 5, false); len(got) != 0 {
		t.Fatalf("empty pool should yield empty, got %v", titles(got))
	}
}
