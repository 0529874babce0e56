package health

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/longxia/globalbrief/internal/config"
)

func TestCheckAll(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"data":[{"title":"一条新闻"}]}}`)
	}))
	defer good.Close()
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"data":[]}}`)
	}))
	defer empty.Close()

	sources := []config.Source{
		{Name: "正常源", Type: config.SourceRollNews, URL: good.URL, Limit: 5},
		{Name: "空源", Type: config.SourceRollNews, URL: empty.URL, Limit: 5},
		{Name: "不可达源", Type: config.SourceRollNews, URL: "http://127.0.0.1:1/x", Limit: 5},
		{Name: "未知类型", Type: "carrier-pigeon", URL: "http://x/"},
	}

	results := CheckAll(sources, 2)
	if len(results) != 4 {
		t.Fatalf("expected one result per source, got %d", len(results))
	}
	// 结果顺序与源顺序一致
	if results[0].Name != "正常源" || !results[0].OK || results[0].Items != 1 {
		t.Fatalf("healthy source wrong: %+v", results[0])
	}
	if results[1].OK {
		t.Fatalf("source with no items must be unhealthy: %+v", results[1])
	}
	if results[2].OK {
		t.Fatalf("unreachable source must be unhealthy: %+v", results[2])
	}
	if results[3].OK {
		t.Fatalf("unknown type must be unhealthy: %+v", results[3])
	}
}
