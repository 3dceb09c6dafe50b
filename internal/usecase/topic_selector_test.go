package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/reviseapp/revise/internal/entity"
)

func ptrInt64(v int64) *int64 { return &v }

func newSelectorFixture(topics []entity.Topic, conf *fakeConfidenceRepo) *topicSelector {
	if conf == nil {
		conf = newFakeConfidenceRepo()
	}
	return NewTopicSelector(&fakeTopicRepo{topics: topics}, conf, testRand(7), testLogger()).(*topicSelector)
}

func TestSelectTopicEmptySubject(t *testing.T) {
	s := newSelectorFixture(nil, nil)
	topic, err := s.SelectTopic(context.Background(), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if topic != nil {
		t.Fatalf("want nil for empty subject, got %+v", topic)
	}
}

func TestSelectTopicFlatSubject(t *testing.T) {
	// A single paper without categories is itself the study topic.
	s := newSelectorFixture([]entity.Topic{{ID: 10, SubjectID: 1, Title: "Paper 1"}}, nil)
	topic, err := s.SelectTopic(context.Background(), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if topic == nil || topic.ID != 10 {
		t.Fatalf("got %+v, want the lone paper", topic)
	}
}

func TestSelectTopicTwoStage(t *testing.T) {
	topics := []entity.Topic{
		{ID: 10, SubjectID: 1, Title: "Paper 1"},
		{ID: 11, SubjectID: 1, ParentTopicID: ptrInt64(10), Title: "Mechanics"},
		{ID: 12, SubjectID: 1, ParentTopicID: ptrInt64(10), Title: "Waves"},
	}
	s := newSelectorFixture(topics, nil)

	for i := 0; i < 20; i++ {
		topic, err := s.SelectTopic(context.Background(), 1, 1)
		if err != nil {
			t.Fatal(err)
		}
		if topic == nil || topic.ID == 10 {
			t.Fatalf("nested subject must resolve to a category, got %+v", topic)
		}
	}
}

func TestSelectTopicBiasesTowardLowConfidence(t *testing.T) {
	topics := []entity.Topic{
		{ID: 10, SubjectID: 1, Title: "Weak"},
		{ID: 11, SubjectID: 1, Title: "Strong"},
	}
	conf := newFakeConfidenceRepo()
	conf.tops[topKey{1, 10}] = entity.TopicConfidence{UserID: 1, TopicID: 10, Percent: 20}  // level 1, weight 36
	conf.tops[topKey{1, 11}] = entity.TopicConfidence{UserID: 1, TopicID: 11, Percent: 100} // level 5, weight 4
	s := newSelectorFixture(topics, conf)

	weak := 0
	const draws = 2000
	for i := 0; i < draws; i++ {
		topic, err := s.SelectTopic(context.Background(), 1, 1)
		if err != nil {
			t.Fatal(err)
		}
		if topic.ID == 10 {
			weak++
		}
	}
	// Expected share 36/40 = 0.9.
	share := float64(weak) / draws
	if share < 0.85 || share > 0.95 {
		t.Fatalf("weak topic share = %v, want ~0.9", share)
	}
}

func TestSelectTopicUniformOnConfidenceError(t *testing.T) {
	topics := []entity.Topic{
		{ID: 10, SubjectID: 1, Title: "A"},
		{ID: 11, SubjectID: 1, Title: "B"},
	}
	conf := newFakeConfidenceRepo()
	conf.listTopsErr = errors.New("db down")
	s := newSelectorFixture(topics, conf)

	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		topic, err := s.SelectTopic(context.Background(), 1, 1)
		if err != nil {
			t.Fatal(err)
		}
		if topic == nil {
			t.Fatal("fallback draw should still return a topic")
		}
		seen[topic.ID] = true
	}
	if !seen[10] || !seen[11] {
		t.Fatalf("fallback should reach every topic, saw %v", seen)
	}
}

func TestSelectTopicNeverPersistsDefaults(t *testing.T) {
	topics := []entity.Topic{{ID: 10, SubjectID: 1, Title: "A"}}
	conf := newFakeConfidenceRepo()
	s := newSelectorFixture(topics, conf)

	if _, err := s.SelectTopic(context.Background(), 1, 1); err != nil {
		t.Fatal(err)
	}
	if len(conf.tops) != 0 || len(conf.subs) != 0 {
		t.Fatal("selection must not create confidence records")
	}
}
