package core

import "time"

// LimitPeriod 寫入配額的週期
type LimitPeriod string

const (
	LimitPeriodMinutely LimitPeriod = "minutely"
	LimitPeriodHourly   LimitPeriod = "hourly"
	LimitPeriodDaily    LimitPeriod = "daily"
	LimitPeriodNone     LimitPeriod = "none"
)

// Window 回傳週期秒數；未知或 none 回傳 0
func (p LimitPeriod) Window() time.Duration {
	switch p {
	case LimitPeriodMinutely:
		return time.Minute
	case LimitPeriodHourly:
		return time.Hour
	case LimitPeriodDaily:
		return 24 * time.Hour
	default:
		return 0
	}
}
