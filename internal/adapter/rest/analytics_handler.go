package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/reviseapp/revise/internal/repository"
	"github.com/reviseapp/revise/internal/usecase"
)

// AnalyticsHandler serves the progress dashboard numbers.
type AnalyticsHandler struct {
	analytics usecase.AnalyticsUsecase
}

// NewAnalyticsHandler wires the handler.
func NewAnalyticsHandler(analytics usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

type subjectStatResponse struct {
	SubjectID    int64   `json:"subject_id"`
	SubjectTitle string  `json:"subject_title"`
	AvgPercent   float64 `json:"avg_percent"`
	TopicsRated  int     `json:"topics_rated"`
}

type completionStatResponse struct {
	Day       time.Time `json:"day"`
	Completed int       `json:"completed"`
}

// Summary returns per-subject confidence averages plus the completion
// history of the requested trailing window (default 30 days).
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	summary, err := h.analytics.Summary(c.Request.Context(), authedUserID(c), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"subjects": lo.Map(summary.Subjects, func(s repository.SubjectConfidenceStat, _ int) subjectStatResponse {
			return subjectStatResponse{
				SubjectID:    s.SubjectID,
				SubjectTitle: s.SubjectTitle,
				AvgPercent:   s.AvgPercent,
				TopicsRated:  s.TopicsRated,
			}
		}),
		"completions": lo.Map(summary.Completions, func(s repository.DailyCompletionStat, _ int) completionStatResponse {
			return completionStatResponse{Day: s.Day, Completed: s.Completed}
		}),
	})
}
