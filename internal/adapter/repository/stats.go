package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reviseapp/revise/internal/repository"
)

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository constructs a pgx-backed analytics repository. It is
// postgres-only; callers must pass a nil StatsRepository to the analytics
// usecase when no pool is available.
func NewStatsRepository(pool *pgxpool.Pool) repository.StatsRepository {
	if pool == nil {
		return nil
	}
	return &statsRepository{pool: pool}
}

const subjectConfidenceQuery = `
SELECT s.id, s.title, AVG(tc.percent)::float8, COUNT(tc.topic_id)
FROM topic_confidences tc
JOIN topics t ON t.id = tc.topic_id
JOIN subjects s ON s.id = t.subject_id
WHERE tc.user_id = $1
GROUP BY s.id, s.title
ORDER BY s.id`

func (r *statsRepository) SubjectConfidence(ctx context.Context, userID int64) ([]repository.SubjectConfidenceStat, error) {
	rows, err := r.pool.Query(ctx, subjectConfidenceQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("query subject confidence: %w", err)
	}
	defer rows.Close()

	var stats []repository.SubjectConfidenceStat
	for rows.Next() {
		var stat repository.SubjectConfidenceStat
		if err := rows.Scan(&stat.SubjectID, &stat.SubjectTitle, &stat.AvgPercent, &stat.TopicsRated); err != nil {
			return nil, fmt.Errorf("scan subject confidence: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subject confidence: %w", err)
	}
	return stats, nil
}

const dailyCompletionsQuery = `
SELECT date_trunc('day', completed_at) AS day, COUNT(*)
FROM tasks
WHERE user_id = $1
  AND completed_at IS NOT NULL
  AND completed_at >= now() - ($2 || ' days')::interval
GROUP BY day
ORDER BY day`

func (r *statsRepository) DailyCompletions(ctx context.Context, userID int64, days int) ([]repository.DailyCompletionStat, error) {
	rows, err := r.pool.Query(ctx, dailyCompletionsQuery, userID, days)
	if err != nil {
		return nil, fmt.Errorf("query daily completions: %w", err)
	}
	defer rows.Close()

	var stats []repository.DailyCompletionStat
	for rows.Next() {
		var stat repository.DailyCompletionStat
		if err := rows.Scan(&stat.Day, &stat.Completed); err != nil {
			return nil, fmt.Errorf("scan daily completions: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily completions: %w", err)
	}
	return stats, nil
}
