package entity

import (
	"strings"
	"testing"
	"time"
)

func TestTaskAttachSubtopic(t *testing.T) {
	task := Task{ID: 7}
	task.AttachSubtopic(Subtopic{ID: 1, EstimatedDuration: 20})
	task.AttachSubtopic(Subtopic{ID: 2, EstimatedDuration: 15})

	if task.TotalDuration != 35 {
		t.Errorf("TotalDuration = %d, want 35", task.TotalDuration)
	}
	if !task.HasSubtopic(1) || !task.HasSubtopic(2) || task.HasSubtopic(3) {
		t.Error("HasSubtopic lookup wrong")
	}
	for _, ts := range task.Subtopics {
		if ts.TaskID != 7 {
			t.Errorf("join row task id = %d, want 7", ts.TaskID)
		}
	}
}

func TestTaskLifecycle(t *testing.T) {
	now := time.Now()
	task := Task{}
	if !task.IsActive() {
		t.Fatal("fresh task should be active")
	}
	task.Complete(now)
	if task.IsActive() || task.CompletedAt == nil {
		t.Fatal("completed task still active")
	}

	skipped := Task{}
	skipped.Skip(now)
	if skipped.IsActive() || skipped.SkippedAt == nil {
		t.Fatal("skipped task still active")
	}
}

func TestAppendSubtopicSummary(t *testing.T) {
	task := Task{Description: "Cell structure"}
	task.AppendSubtopicSummary([]string{"Mitosis", "Meiosis"}, []string{"Organelles"})

	if !strings.Contains(task.Description, "Priority focus: Organelles") {
		t.Errorf("missing priority summary: %q", task.Description)
	}
	if !strings.Contains(task.Description, "Subtopics: Mitosis, Meiosis") {
		t.Errorf("missing subtopic summary: %q", task.Description)
	}

	unchanged := Task{Description: "desc"}
	unchanged.AppendSubtopicSummary(nil, nil)
	if unchanged.Description != "desc" {
		t.Error("empty summary should not touch description")
	}
}

func TestDailyTaskCount(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{2.0, 4},
		{0.25, 1},
		{0, 1},
		{2.75, 6}, // round half up at .5 boundaries
		{12, 24},
	}
	for _, tc := range cases {
		if got := DailyTaskCount(tc.hours); got != tc.want {
			t.Errorf("DailyTaskCount(%v) = %d, want %d", tc.hours, got, tc.want)
		}
	}
}
