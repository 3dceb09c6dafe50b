package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reviseapp/revise/internal/entity"
)

func newConfidenceFixture() (*confidenceUsecase, *fakeConfidenceRepo) {
	conf := newFakeConfidenceRepo()
	topics := &fakeTopicRepo{topics: []entity.Topic{
		{ID: 10, SubjectID: 1, Title: "Mechanics"},
		{ID: 11, SubjectID: 1, Title: "Waves"},
	}}
	subtopics := &fakeSubtopicRepo{subtopics: []entity.Subtopic{
		{ID: 101, TopicID: 10, Title: "Forces", EstimatedDuration: 20},
		{ID: 102, TopicID: 10, Title: "Momentum", EstimatedDuration: 25},
		{ID: 103, TopicID: 10, Title: "Circular motion", EstimatedDuration: 30},
	}}
	uc := NewConfidenceUsecase(conf, topics, subtopics, 14*24*time.Hour).(*confidenceUsecase)
	uc.clock = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return uc, conf
}

func TestUpdateSubtopicConfidenceRejectsOutOfRange(t *testing.T) {
	uc, conf := newConfidenceFixture()
	for _, level := range []int{0, 6, -1, 42} {
		if _, err := uc.UpdateSubtopicConfidence(context.Background(), 1, 101, level); !errors.Is(err, entity.ErrInvalidConfidenceLevel) {
			t.Errorf("level %d: want ErrInvalidConfidenceLevel, got %v", level, err)
		}
	}
	if len(conf.subs) != 0 || len(conf.tops) != 0 {
		t.Fatalf("rejected updates must not persist anything, got %d/%d records", len(conf.subs), len(conf.tops))
	}
}

func TestUpdateSubtopicConfidenceUnknownSubtopic(t *testing.T) {
	uc, _ := newConfidenceFixture()
	if _, err := uc.UpdateSubtopicConfidence(context.Background(), 1, 999, 4); !errors.Is(err, entity.ErrSubtopicNotFound) {
		t.Fatalf("want ErrSubtopicNotFound, got %v", err)
	}
}

func TestUpdateSubtopicConfidenceCascadesTopicAggregate(t *testing.T) {
	uc, conf := newConfidenceFixture()
	ctx := context.Background()

	for _, step := range []struct {
		subtopicID  int64
		level       int
		wantPercent int
	}{
		{101, 2, 40}, // mean 2.0
		{102, 4, 60}, // mean 3.0
		{103, 4, 67}, // mean 3.333 rounds up
	} {
		update, err := uc.UpdateSubtopicConfidence(ctx, 1, step.subtopicID, step.level)
		if err != nil {
			t.Fatalf("update subtopic %d: %v", step.subtopicID, err)
		}
		if update.Subtopic.Level != step.level {
			t.Errorf("subtopic %d: level = %d, want %d", step.subtopicID, update.Subtopic.Level, step.level)
		}
		if update.Topic == nil || update.Topic.Percent != step.wantPercent {
			t.Errorf("subtopic %d: topic percent = %+v, want %d", step.subtopicID, update.Topic, step.wantPercent)
		}
	}

	if conf.cascades != 3 {
		t.Errorf("cascades = %d, want 3 (each update persists both records in one step)", conf.cascades)
	}
	stored, _ := conf.GetTopic(ctx, 1, 10)
	if stored == nil || stored.Percent != 67 {
		t.Fatalf("stored topic aggregate = %+v, want percent 67", stored)
	}
}

func TestSubtopicConfidenceReadsNeverPersist(t *testing.T) {
	uc, conf := newConfidenceFixture()
	rec, err := uc.SubtopicConfidence(context.Background(), 1, 101)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Level != entity.DefaultConfidenceLevel {
		t.Errorf("default level = %d, want %d", rec.Level, entity.DefaultConfidenceLevel)
	}
	if len(conf.subs) != 0 {
		t.Fatal("reading an unrated subtopic must not create a record")
	}
}

func TestComputeTopicConfidenceUnrated(t *testing.T) {
	uc, _ := newConfidenceFixture()
	got, err := uc.ComputeTopicConfidence(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("unrated topic: want nil aggregate, got %+v", got)
	}

	// Topic without subtopics is likewise not calculable.
	got, err = uc.ComputeTopicConfidence(context.Background(), 1, 11)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("topic without subtopics: want nil aggregate, got %+v", got)
	}
}

func TestComputeTopicConfidenceUnknownTopic(t *testing.T) {
	uc, _ := newConfidenceFixture()
	if _, err := uc.ComputeTopicConfidence(context.Background(), 1, 999); !errors.Is(err, entity.ErrTopicNotFound) {
		t.Fatalf("want ErrTopicNotFound, got %v", err)
	}
}

func TestToggleTopicPriorityUnrated(t *testing.T) {
	uc, _ := newConfidenceFixture()
	if _, err := uc.ToggleTopicPriority(context.Background(), 1, 10); !errors.Is(err, entity.ErrTopicNotRated) {
		t.Fatalf("want ErrTopicNotRated, got %v", err)
	}
}

func TestToggleTopicPrioritySeedsAggregate(t *testing.T) {
	uc, conf := newConfidenceFixture()
	ctx := context.Background()
	if _, err := uc.UpdateSubtopicConfidence(ctx, 1, 101, 5); err != nil {
		t.Fatal(err)
	}
	// Drop the persisted aggregate so the toggle has to re-derive it.
	delete(conf.tops, topKey{1, 10})

	on, err := uc.ToggleTopicPriority(ctx, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !on {
		t.Fatal("first toggle should enable priority")
	}
	stored, _ := conf.GetTopic(ctx, 1, 10)
	if stored == nil || stored.Percent != 100 || !stored.Priority {
		t.Fatalf("stored = %+v, want percent 100 with priority on", stored)
	}

	off, err := uc.ToggleTopicPriority(ctx, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if off {
		t.Fatal("second toggle should disable priority")
	}
}

func TestTogglePriorityDoesNotTouchAggregate(t *testing.T) {
	uc, conf := newConfidenceFixture()
	ctx := context.Background()
	on, err := uc.ToggleSubtopicPriority(ctx, 1, 101)
	if err != nil {
		t.Fatal(err)
	}
	if !on {
		t.Fatal("first toggle should enable priority")
	}
	if conf.cascades != 0 || len(conf.tops) != 0 {
		t.Fatal("a priority toggle must not write the topic aggregate")
	}

	rec, _ := conf.GetSubtopic(ctx, 1, 101)
	if rec == nil || rec.Level != entity.DefaultConfidenceLevel {
		t.Fatalf("toggle on an unrated subtopic should persist the default level, got %+v", rec)
	}
}

func TestNeedsAttentionLifecycle(t *testing.T) {
	uc, _ := newConfidenceFixture()
	ctx := context.Background()

	need, err := uc.NeedsAttention(ctx, 1, 101)
	if err != nil {
		t.Fatal(err)
	}
	if need {
		t.Fatal("unflagged subtopic never needs attention")
	}

	if _, err := uc.SetSubtopicPriority(ctx, 1, 101, true); err != nil {
		t.Fatal(err)
	}
	need, _ = uc.NeedsAttention(ctx, 1, 101)
	if !need {
		t.Fatal("flagged and never addressed should need attention")
	}

	if err := uc.MarkAddressed(ctx, 1, 101); err != nil {
		t.Fatal(err)
	}
	need, _ = uc.NeedsAttention(ctx, 1, 101)
	if need {
		t.Fatal("just-addressed subtopic should not need attention")
	}

	// Advance past the staleness window.
	uc.clock = func() time.Time { return time.Date(2025, 3, 25, 9, 0, 0, 0, time.UTC) }
	need, _ = uc.NeedsAttention(ctx, 1, 101)
	if !need {
		t.Fatal("stale flagged subtopic should need attention again")
	}
}
