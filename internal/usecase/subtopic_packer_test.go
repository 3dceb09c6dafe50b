package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/reviseapp/revise/internal/entity"
)

func newPackerFixture(subtopics []entity.Subtopic, conf *fakeConfidenceRepo) *subtopicPacker {
	if conf == nil {
		conf = newFakeConfidenceRepo()
	}
	p := NewSubtopicPacker(&fakeSubtopicRepo{subtopics: subtopics}, conf, 14*24*time.Hour, testLogger()).(*subtopicPacker)
	p.clock = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return p
}

func packedIDs(task *entity.Task) []int64 {
	ids := make([]int64, 0, len(task.Subtopics))
	for _, ts := range task.Subtopics {
		ids = append(ids, ts.SubtopicID)
	}
	return ids
}

func TestPackRespectsBudget(t *testing.T) {
	subtopics := []entity.Subtopic{
		{ID: 1, TopicID: 10, Title: "A", EstimatedDuration: 20},
		{ID: 2, TopicID: 10, Title: "B", EstimatedDuration: 15},
		{ID: 3, TopicID: 10, Title: "C", EstimatedDuration: 10},
		{ID: 4, TopicID: 10, Title: "D", EstimatedDuration: 25},
	}
	p := newPackerFixture(subtopics, nil)

	task := &entity.Task{UserID: 1, TopicID: 10}
	if err := p.Pack(context.Background(), task, 40); err != nil {
		t.Fatal(err)
	}

	// Equal confidence everywhere keeps store order: 20 fits, 15 fits,
	// then 5 minutes remain, below the minimum packable unit.
	got := packedIDs(task)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("packed %v, want [1 2]", got)
	}
	if task.TotalDuration != 35 {
		t.Errorf("total duration = %d, want 35", task.TotalDuration)
	}
	if !strings.Contains(task.Description, "Subtopics: A, B") {
		t.Errorf("description = %q, want a subtopic summary", task.Description)
	}
}

func TestPackEmptyTopic(t *testing.T) {
	p := newPackerFixture(nil, nil)
	task := &entity.Task{UserID: 1, TopicID: 10, Description: "untouched"}
	if err := p.Pack(context.Background(), task, 60); err != nil {
		t.Fatal(err)
	}
	if len(task.Subtopics) != 0 || task.Description != "untouched" {
		t.Fatalf("task should be left unmodified, got %+v", task)
	}
}

func TestPackPrefersLowConfidence(t *testing.T) {
	subtopics := []entity.Subtopic{
		{ID: 1, TopicID: 10, Title: "Confident", EstimatedDuration: 30},
		{ID: 2, TopicID: 10, Title: "Shaky", EstimatedDuration: 30},
	}
	conf := newFakeConfidenceRepo()
	conf.subs[subKey{1, 1}] = entity.SubtopicConfidence{UserID: 1, SubtopicID: 1, Level: 5}
	conf.subs[subKey{1, 2}] = entity.SubtopicConfidence{UserID: 1, SubtopicID: 2, Level: 1}
	p := newPackerFixture(subtopics, conf)

	task := &entity.Task{UserID: 1, TopicID: 10}
	if err := p.Pack(context.Background(), task, 30); err != nil {
		t.Fatal(err)
	}
	got := packedIDs(task)
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("packed %v, want the low-confidence subtopic only", got)
	}
}

func TestPackFlaggedStaleJumpsQueue(t *testing.T) {
	subtopics := []entity.Subtopic{
		{ID: 1, TopicID: 10, Title: "Shaky", EstimatedDuration: 30},
		{ID: 2, TopicID: 10, Title: "Flagged", EstimatedDuration: 30},
	}
	conf := newFakeConfidenceRepo()
	conf.subs[subKey{1, 1}] = entity.SubtopicConfidence{UserID: 1, SubtopicID: 1, Level: 1}
	// Flagged, never addressed: needs attention despite the high level.
	conf.subs[subKey{1, 2}] = entity.SubtopicConfidence{UserID: 1, SubtopicID: 2, Level: 5, Priority: true}
	p := newPackerFixture(subtopics, conf)

	task := &entity.Task{UserID: 1, TopicID: 10}
	if err := p.Pack(context.Background(), task, 30); err != nil {
		t.Fatal(err)
	}
	got := packedIDs(task)
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("packed %v, want the flagged subtopic to jump the queue", got)
	}
	if !strings.Contains(task.Description, "Priority focus: Flagged") {
		t.Errorf("description = %q, want a priority summary", task.Description)
	}
}

func TestPackBoostsFlaggedRecentlyAddressed(t *testing.T) {
	subtopics := []entity.Subtopic{
		{ID: 1, TopicID: 10, Title: "Plain", EstimatedDuration: 30},
		{ID: 2, TopicID: 10, Title: "Flagged", EstimatedDuration: 30},
	}
	addressed := time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)
	conf := newFakeConfidenceRepo()
	conf.subs[subKey{1, 1}] = entity.SubtopicConfidence{UserID: 1, SubtopicID: 1, Level: 3}
	// Addressed yesterday, so it sorts with the normal pool but boosted.
	conf.subs[subKey{1, 2}] = entity.SubtopicConfidence{UserID: 1, SubtopicID: 2, Level: 3, Priority: true, LastAddressed: &addressed}
	p := newPackerFixture(subtopics, conf)

	task := &entity.Task{UserID: 1, TopicID: 10}
	if err := p.Pack(context.Background(), task, 30); err != nil {
		t.Fatal(err)
	}
	got := packedIDs(task)
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("packed %v, want the boosted subtopic first", got)
	}
}

func TestPackSurvivesConfidenceLookupFailure(t *testing.T) {
	subtopics := []entity.Subtopic{
		{ID: 1, TopicID: 10, Title: "A", EstimatedDuration: 20},
	}
	conf := newFakeConfidenceRepo()
	conf.listSubsErr = context.DeadlineExceeded
	p := newPackerFixture(subtopics, conf)

	task := &entity.Task{UserID: 1, TopicID: 10}
	if err := p.Pack(context.Background(), task, 60); err != nil {
		t.Fatal(err)
	}
	if len(task.Subtopics) != 1 {
		t.Fatalf("packing should proceed with defaults, got %v", packedIDs(task))
	}
}

func TestPackNeverAttachesDuplicates(t *testing.T) {
	subtopics := []entity.Subtopic{
		{ID: 1, TopicID: 10, Title: "A", EstimatedDuration: 15},
	}
	p := newPackerFixture(subtopics, nil)

	task := &entity.Task{UserID: 1, TopicID: 10}
	task.AttachSubtopic(subtopics[0])
	if err := p.Pack(context.Background(), task, 120); err != nil {
		t.Fatal(err)
	}
	if len(task.Subtopics) != 1 {
		t.Fatalf("subtopic attached twice: %v", packedIDs(task))
	}
}
