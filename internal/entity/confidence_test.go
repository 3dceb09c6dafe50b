package entity

import (
	"errors"
	"testing"
	"time"
)

func TestSelectionWeight(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{1, 36},
		{2, 25},
		{3, 16},
		{4, 9},
		{5, 4},
	}
	prev := 100.0
	for _, tc := range cases {
		got := SelectionWeight(float64(tc.level))
		if got != tc.want {
			t.Errorf("SelectionWeight(%d) = %v, want %v", tc.level, got, tc.want)
		}
		if got >= prev {
			t.Errorf("weight not strictly decreasing at level %d", tc.level)
		}
		prev = got
	}
}

func TestTopicPercentFromMean(t *testing.T) {
	cases := []struct {
		mean float64
		want int
	}{
		{10.0 / 3, 67}, // levels [2,4,4]
		{3, 60},
		{1, 20},
		{5, 100},
		{0.01, 1},  // clamped to floor
		{5.5, 100}, // clamped to ceiling
	}
	for _, tc := range cases {
		if got := TopicPercentFromMean(tc.mean); got != tc.want {
			t.Errorf("TopicPercentFromMean(%v) = %d, want %d", tc.mean, got, tc.want)
		}
	}
}

func TestUpdateLevelRejectsOutOfRange(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	conf := DefaultSubtopicConfidence(1, 42)

	for _, level := range []int{0, 6, -1, 100} {
		if err := conf.UpdateLevel(level, now); !errors.Is(err, ErrInvalidConfidenceLevel) {
			t.Fatalf("UpdateLevel(%d) error = %v, want ErrInvalidConfidenceLevel", level, err)
		}
		if conf.Level != DefaultConfidenceLevel {
			t.Fatalf("level mutated to %d after rejected update", conf.Level)
		}
	}

	if err := conf.UpdateLevel(5, now); err != nil {
		t.Fatalf("UpdateLevel(5) returned %v", err)
	}
	if conf.Level != 5 || !conf.LastUpdated.Equal(now) {
		t.Fatalf("accepted update not applied: %+v", conf)
	}
}

func TestNeedsAttention(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	staleness := 14 * 24 * time.Hour

	conf := DefaultSubtopicConfidence(1, 42)
	if conf.NeedsAttention(now, staleness) {
		t.Error("unflagged subtopic should never need attention")
	}

	conf.SetPriority(true, now)
	if !conf.NeedsAttention(now, staleness) {
		t.Error("flagged subtopic never addressed should need attention")
	}

	conf.MarkAddressed(now.AddDate(0, 0, -7))
	if conf.NeedsAttention(now, staleness) {
		t.Error("recently addressed subtopic should not need attention")
	}

	conf.MarkAddressed(now.AddDate(0, 0, -15))
	if !conf.NeedsAttention(now, staleness) {
		t.Error("stale subtopic should need attention")
	}
}

func TestTopicConfidenceLevel(t *testing.T) {
	tc := TopicConfidence{Percent: 67}
	if got := tc.Level(); got != 3.35 {
		t.Errorf("Level() = %v, want 3.35", got)
	}
}
