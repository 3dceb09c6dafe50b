package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
)

func newCurriculumFixture() (*curriculumUsecase, *fakeConfidenceRepo, *fakeCurriculumRepo) {
	subjects := &fakeSubjectRepo{subjects: []entity.Subject{
		{ID: 1, Title: "Physics"},
	}}
	topics := &fakeTopicRepo{topics: []entity.Topic{
		{ID: 10, SubjectID: 1, Title: "Mechanics"},
		{ID: 11, SubjectID: 1, Title: "Waves"},
	}}
	subtopics := &fakeSubtopicRepo{subtopics: []entity.Subtopic{
		{ID: 101, TopicID: 10, Title: "Forces", EstimatedDuration: 20},
		{ID: 102, TopicID: 10, Title: "Momentum", EstimatedDuration: 25},
	}}
	conf := newFakeConfidenceRepo()
	importer := &fakeCurriculumRepo{}

	confidence := NewConfidenceUsecase(conf, topics, subtopics, 14*24*time.Hour).(*confidenceUsecase)
	confidence.clock = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

	uc := NewCurriculumUsecase(subjects, topics, subtopics, conf, importer, confidence).(*curriculumUsecase)
	return uc, conf, importer
}

func TestListTopicsUnknownSubject(t *testing.T) {
	uc, _, _ := newCurriculumFixture()

	_, err := uc.ListTopics(context.Background(), 1, 99)
	if !errors.Is(err, entity.ErrSubjectNotFound) {
		t.Fatalf("err = %v, want ErrSubjectNotFound", err)
	}
}

func TestListTopicsOverlaysRatedTopicsOnly(t *testing.T) {
	uc, conf, _ := newCurriculumFixture()
	conf.tops[topKey{1, 10}] = entity.TopicConfidence{UserID: 1, TopicID: 10, Percent: 60}

	overviews, err := uc.ListTopics(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("ListTopics: %v", err)
	}
	if len(overviews) != 2 {
		t.Fatalf("got %d topics, want 2", len(overviews))
	}

	byID := map[int64]TopicOverview{}
	for _, o := range overviews {
		byID[o.Topic.ID] = o
	}
	if byID[10].Confidence == nil || byID[10].Confidence.Percent != 60 {
		t.Fatalf("topic 10 confidence = %+v, want percent 60", byID[10].Confidence)
	}
	if byID[11].Confidence != nil {
		t.Fatalf("topic 11 confidence = %+v, want nil for unrated topic", byID[11].Confidence)
	}
}

func TestListSubtopicsUnknownTopic(t *testing.T) {
	uc, _, _ := newCurriculumFixture()

	_, err := uc.ListSubtopics(context.Background(), 1, 99)
	if !errors.Is(err, entity.ErrTopicNotFound) {
		t.Fatalf("err = %v, want ErrTopicNotFound", err)
	}
}

func TestListSubtopicsDefaultsUnratedRecords(t *testing.T) {
	uc, conf, _ := newCurriculumFixture()
	conf.subs[subKey{1, 101}] = entity.SubtopicConfidence{
		UserID: 1, SubtopicID: 101, Level: 5, Priority: true,
	}

	overviews, err := uc.ListSubtopics(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ListSubtopics: %v", err)
	}
	if len(overviews) != 2 {
		t.Fatalf("got %d subtopics, want 2", len(overviews))
	}

	byID := map[int64]SubtopicOverview{}
	for _, o := range overviews {
		byID[o.Subtopic.ID] = o
	}
	if byID[101].Confidence.Level != 5 {
		t.Fatalf("subtopic 101 level = %d, want stored 5", byID[101].Confidence.Level)
	}
	// Flagged and never addressed.
	if !byID[101].NeedsAttention {
		t.Fatal("subtopic 101 should need attention")
	}
	if byID[102].Confidence.Level != entity.DefaultConfidenceLevel {
		t.Fatalf("subtopic 102 level = %d, want default %d",
			byID[102].Confidence.Level, entity.DefaultConfidenceLevel)
	}
	if byID[102].NeedsAttention {
		t.Fatal("unflagged subtopic 102 should not need attention")
	}

	// Browsing must not create confidence records.
	if len(conf.subs) != 1 {
		t.Fatalf("stored %d subtopic records after browse, want 1", len(conf.subs))
	}
}

func TestImportCurriculumDelegates(t *testing.T) {
	uc, _, importer := newCurriculumFixture()

	stats, err := uc.ImportCurriculum(context.Background(), []repository.SubjectImport{
		{
			Subject: entity.Subject{Title: "Chemistry"},
			Topics: []repository.TopicImport{
				{
					Topic: entity.Topic{Title: "Paper 1"},
					Categories: []repository.TopicImport{
						{
							Topic: entity.Topic{Title: "Bonding"},
							Subtopics: []entity.Subtopic{
								{Title: "Ionic bonding", EstimatedDuration: 30},
							},
						},
					},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("ImportCurriculum: %v", err)
	}
	if stats.Subjects != 1 || stats.Topics != 2 || stats.Subtopics != 1 {
		t.Fatalf("stats = %+v, want 1 subject, 2 topics, 1 subtopic", stats)
	}
	if len(importer.imported) != 1 {
		t.Fatalf("repository received %d subjects, want 1", len(importer.imported))
	}
}
