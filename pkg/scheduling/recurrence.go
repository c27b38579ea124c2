package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// ExpandRecurrence 從 start 展開 RFC 5545 RRULE，回傳不重複的 UTC 日期；
// 最多 limit 天，沒有 COUNT 或 UNTIL 的規則同樣在 limit 截斷
func ExpandRecurrence(rule string, start time.Time, limit int) ([]time.Time, error) {
	rule = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:"))
	if rule == "" {
		return nil, validationError("expand recurrence", "rrule is required")
	}
	if limit <= 0 {
		return nil, validationError("expand recurrence", "limit must be positive")
	}
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, validationError("expand recurrence", fmt.Sprintf("invalid rrule: %v", err))
	}
	opt.Dtstart = Day(start)
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, validationError("expand recurrence", fmt.Sprintf("invalid rrule: %v", err))
	}

	seen := make(map[string]bool)
	days := []time.Time{}
	next := r.Iterator()
	for len(days) < limit {
		occurrence, ok := next()
		if !ok {
			break
		}
		d := Day(occurrence)
		if seen[DayKey(d)] {
			continue
		}
		seen[DayKey(d)] = true
		days = append(days, d)
	}
	return days, nil
}
