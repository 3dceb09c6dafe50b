package entity

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MinSubtopicMinutes is the smallest packable unit; packing stops once
	// the remaining budget falls below it.
	MinSubtopicMinutes = 15
	// MaxTaskMinutes caps the time budget of a single task.
	MaxTaskMinutes = 120
)

// TaskType categorises tasks ("revision", "practice", "uplearn", ...).
// Reference data.
type TaskType struct {
	ID          int64
	Name        string
	Description string
}

// TaskSubtopic joins a task to a subtopic, carrying a snapshot of the
// subtopic's estimated duration at packing time. The snapshot is immutable
// even if the curriculum's canonical duration later changes.
type TaskSubtopic struct {
	TaskID     int64
	SubtopicID int64
	Duration   int
}

// Task is one generated study assignment for a user.
type Task struct {
	ID            int64
	UserID        int64
	SubjectID     int64
	TopicID       int64
	TaskTypeID    int64
	Title         string
	Description   string
	DueDate       time.Time
	CreatedAt     time.Time
	CompletedAt   *time.Time
	SkippedAt     *time.Time
	TotalDuration int
	Subtopics     []TaskSubtopic
}

// IsActive reports whether the task is neither completed nor skipped.
func (t Task) IsActive() bool { return t.CompletedAt == nil && t.SkippedAt == nil }

// Complete marks the task as done.
func (t *Task) Complete(now time.Time) {
	ts := now
	t.CompletedAt = &ts
}

// Skip marks the task as skipped.
func (t *Task) Skip(now time.Time) {
	ts := now
	t.SkippedAt = &ts
}

// AttachSubtopic adds a subtopic to the task with a duration snapshot and
// keeps TotalDuration consistent.
func (t *Task) AttachSubtopic(st Subtopic) {
	t.Subtopics = append(t.Subtopics, TaskSubtopic{
		TaskID:     t.ID,
		SubtopicID: st.ID,
		Duration:   st.EstimatedDuration,
	})
	t.TotalDuration += st.EstimatedDuration
}

// HasSubtopic reports whether the subtopic is already packed into the task.
func (t Task) HasSubtopic(subtopicID int64) bool {
	for _, ts := range t.Subtopics {
		if ts.SubtopicID == subtopicID {
			return true
		}
	}
	return false
}

// AppendSubtopicSummary appends a human-readable list of packed subtopic
// titles to the task description. Prioritised subtopics are listed
// separately so they stand out on the dashboard.
func (t *Task) AppendSubtopicSummary(titles, prioritized []string) {
	if len(titles) == 0 && len(prioritized) == 0 {
		return
	}
	var b strings.Builder
	b.WriteString(t.Description)
	if len(prioritized) > 0 {
		fmt.Fprintf(&b, "\n\nPriority focus: %s", strings.Join(prioritized, ", "))
	}
	if len(titles) > 0 {
		fmt.Fprintf(&b, "\n\nSubtopics: %s", strings.Join(titles, ", "))
	}
	t.Description = b.String()
}
