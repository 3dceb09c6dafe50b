package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/usecase"
)

// PlannerHandler serves the daily task lifecycle.
type PlannerHandler struct {
	planner usecase.PlannerUsecase
}

// NewPlannerHandler wires the handler.
func NewPlannerHandler(planner usecase.PlannerUsecase) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

type taskSubtopicResponse struct {
	SubtopicID int64 `json:"subtopic_id"`
	Duration   int   `json:"duration"`
}

type taskResponse struct {
	ID            int64                  `json:"id"`
	SubjectID     int64                  `json:"subject_id"`
	TopicID       int64                  `json:"topic_id"`
	TaskTypeID    int64                  `json:"task_type_id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	DueDate       string                 `json:"due_date"`
	CompletedAt   *time.Time             `json:"completed_at,omitempty"`
	SkippedAt     *time.Time             `json:"skipped_at,omitempty"`
	TotalDuration int                    `json:"total_duration"`
	Subtopics     []taskSubtopicResponse `json:"subtopics"`
}

type dailyPlanResponse struct {
	Active    []taskResponse `json:"active"`
	Completed []taskResponse `json:"completed"`
}

// Today returns the day's plan, generating it on first request.
func (h *PlannerHandler) Today(c *gin.Context) {
	plan, err := h.planner.EnsureTodaysTasks(c.Request.Context(), authedUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dailyPlanResponse{
		Active:    mapTasks(plan.Active),
		Completed: mapTasks(plan.Completed),
	})
}

// Complete marks a task done.
func (h *PlannerHandler) Complete(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	task, err := h.planner.CompleteTask(c.Request.Context(), authedUserID(c), taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": mapTask(*task)})
}

// Skip marks a task skipped and returns the generated replacement, when one
// could be generated.
func (h *PlannerHandler) Skip(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	skipped, replacement, err := h.planner.SkipTask(c.Request.Context(), authedUserID(c), taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{"task": mapTask(*skipped)}
	if replacement != nil {
		resp["replacement"] = mapTask(*replacement)
	}
	c.JSON(http.StatusOK, resp)
}

func mapTask(task entity.Task) taskResponse {
	return taskResponse{
		ID:            task.ID,
		SubjectID:     task.SubjectID,
		TopicID:       task.TopicID,
		TaskTypeID:    task.TaskTypeID,
		Title:         task.Title,
		Description:   task.Description,
		DueDate:       task.DueDate.Format("2006-01-02"),
		CompletedAt:   task.CompletedAt,
		SkippedAt:     task.SkippedAt,
		TotalDuration: task.TotalDuration,
		Subtopics: lo.Map(task.Subtopics, func(ts entity.TaskSubtopic, _ int) taskSubtopicResponse {
			return taskSubtopicResponse{SubtopicID: ts.SubtopicID, Duration: ts.Duration}
		}),
	}
}

func mapTasks(tasks []entity.Task) []taskResponse {
	return lo.Map(tasks, func(t entity.Task, _ int) taskResponse { return mapTask(t) })
}

// pathID parses a positive int64 path parameter, responding 400 itself on
// failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondErrorStatus(c, http.StatusBadRequest, "invalid_argument", errInvalidID)
		return 0, false
	}
	return id, true
}
