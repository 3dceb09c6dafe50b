package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
)

func TestAnalyticsSummaryWithoutStore(t *testing.T) {
	uc := NewAnalyticsUsecase(nil)
	if _, err := uc.Summary(context.Background(), 1, 30); !errors.Is(err, entity.ErrStatsUnavailable) {
		t.Fatalf("want ErrStatsUnavailable, got %v", err)
	}
}

func TestAnalyticsSummary(t *testing.T) {
	stats := &fakeStatsRepo{
		subjects: []repository.SubjectConfidenceStat{
			{SubjectID: 1, SubjectTitle: "Physics", AvgPercent: 62, TopicsRated: 4},
		},
		completions: []repository.DailyCompletionStat{
			{Day: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), Completed: 3},
		},
	}
	uc := NewAnalyticsUsecase(stats)

	summary, err := uc.Summary(context.Background(), 1, 0) // non-positive window defaults
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Subjects) != 1 || summary.Subjects[0].SubjectTitle != "Physics" {
		t.Fatalf("subjects = %+v", summary.Subjects)
	}
	if len(summary.Completions) != 1 || summary.Completions[0].Completed != 3 {
		t.Fatalf("completions = %+v", summary.Completions)
	}
}
