package repository

import (
	"context"
	"time"
)

// SubjectConfidenceStat is the average derived topic confidence for one
// subject, for the analytics summary.
type SubjectConfidenceStat struct {
	SubjectID    int64
	SubjectTitle string
	AvgPercent   float64
	TopicsRated  int
}

// DailyCompletionStat counts completed tasks per day.
type DailyCompletionStat struct {
	Day       time.Time
	Completed int
}

// StatsRepository serves aggregate analytics queries. Implementations may
// be backed by a different connection than the primary store and may be
// unavailable on some database drivers.
type StatsRepository interface {
	SubjectConfidence(ctx context.Context, userID int64) ([]SubjectConfidenceStat, error)
	DailyCompletions(ctx context.Context, userID int64, days int) ([]DailyCompletionStat, error)
}
