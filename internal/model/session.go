package model

import (
	"time"
)

// ReadingSession is one recorded stretch of reading. Sessions are
// immutable once written; the session log is append-only.
type ReadingSession struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Minutes int       `json:"minutes"`
}

// MonthlyReadingDays partitions a month's active days by whether the
// summed minutes met the daily goal. Dates are YYYY-MM-DD strings;
// days without sessions appear in neither list.
type MonthlyReadingDays struct {
	CompletedDates []string `json:"completedDates"`
	PartialDates   []string `json:"partialDates"`
}
