package collector

import (
	"testing"
)

func TestFetchCoinMarkets(t *testing.T) {
	srv := serveBody(t, `[{"id":"bitcoin","current_price":67000.5,"price_change_percentage_24h":1.2},{"id":"ethereum"}]`)
	defer srv.Close()

	rows := FetchCoinMarkets(srv.URL)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %v", rows)
	}
	if rows[0]["id"] != "bitcoin" {
		t.Fatalf("first row wrong: %v", rows[0])
	}
	if price, ok := rows[0]["current_price"].(float64); !ok || price != 67000.5 {
		t.Fatalf("price not decoded as float64: %v", rows[0]["current_price"])
	}
}

func TestFetchCoinMarketsNilOnFailure(t *testing.T) {
	srv := serveBody(t, `{"error":"rate limited"}`)
	defer srv.Close()

	if rows := FetchCoinMarkets(srv.URL); rows != nil {
		t.Fatalf("non-list payload should yield nil, got %v", rows)
	}
	if rows := FetchCoinMarkets("http://127.0.0.1:1/x"); rows != nil {
		t.Fatalf("unreachable host should yield nil, got %v", rows)
	}
}
