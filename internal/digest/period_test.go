package digest

import (
	"testing"
	"time"
)

func beijing(hour int) time.Time {
	return time.Date(2026, 8, 29, hour, 5, 0, 0, locBeijing)
}

func TestPeriodInfoSlots(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "🌙 深夜档"},
		{1, "🌙 深夜档"},
		{8, "🌅 早间档"},
		{9, "🌅 早间档"},
		{16, "🌆 午后档"},
		{17, "🌆 午后档"},
		{2, "📰 特别播报"},
		{12, "📰 特别播报"},
		{23, "📰 特别播报"},
	}
	for _, c := range cases {
		got, desc := PeriodInfo(beijing(c.hour))
		if got != c.want {
			t.Errorf("hour %d: got %q, want %q", c.hour, got, c.want)
		}
		if desc == "" {
			t.Errorf("hour %d: empty description", c.hour)
		}
	}
}

func TestPeriodInfoUsesBeijingHour(t *testing.T) {
	// UTC 0 点 = 北京 8 点，应判为早间档
	utc := time.Date(2026, 8, 29, 0, 30, 0, 0, time.UTC)
	if got, _ := PeriodInfo(utc); got != "🌅 早间档" {
		t.Fatalf("UTC midnight should map to Beijing morning slot, got %q", got)
	}
}

func TestFormatBeijing(t *testing.T) {
	utc := time.Date(2026, 8, 29, 0, 5, 0, 0, time.UTC)
	if got := FormatBeijing(utc); got != "2026年08月29日 08:05" {
		t.Fatalf("FormatBeijing = %q", got)
	}
}
