package usecase

import (
	"context"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
)

// AnalyticsSummary bundles the dashboard's progress numbers.
type AnalyticsSummary struct {
	Subjects    []repository.SubjectConfidenceStat
	Completions []repository.DailyCompletionStat
}

// AnalyticsUsecase exposes aggregate progress statistics. The stats store
// is optional (postgres only); without it the usecase reports
// ErrStatsUnavailable.
type AnalyticsUsecase interface {
	Summary(ctx context.Context, userID int64, days int) (*AnalyticsSummary, error)
}

// NewAnalyticsUsecase accepts a nil stats repository.
func NewAnalyticsUsecase(stats repository.StatsRepository) AnalyticsUsecase {
	return &analyticsUsecase{stats: stats}
}

type analyticsUsecase struct {
	stats repository.StatsRepository
}

func (a *analyticsUsecase) Summary(ctx context.Context, userID int64, days int) (*AnalyticsSummary, error) {
	if a.stats == nil {
		return nil, entity.ErrStatsUnavailable
	}
	if days <= 0 {
		days = 30
	}

	subjects, err := a.stats.SubjectConfidence(ctx, userID)
	if err != nil {
		return nil, err
	}
	completions, err := a.stats.DailyCompletions(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	return &AnalyticsSummary{Subjects: subjects, Completions: completions}, nil
}
