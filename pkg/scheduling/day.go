package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// 日期比較一律用 UTC，其他時區的時間歸屬於該瞬間所在的 UTC 日

const dayLayout = "2006-01-02"

func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func DayKey(t time.Time) string { return t.UTC().Format(dayLayout) }

// DayBounds 回傳當天 [00:00:00.000, 23:59:59.999]，含兩端
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := Day(t)
	return start, start.Add(24*time.Hour - time.Millisecond)
}

func SameDay(a, b time.Time) bool { return DayKey(a) == DayKey(b) }

// ParseDate 接受 RFC 3339 與 YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", s)
}
