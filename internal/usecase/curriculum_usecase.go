package usecase

import (
	"context"

	"github.com/samber/lo"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
)

// TopicOverview is a topic with the user's derived confidence overlaid;
// Confidence is nil when the topic has no rated subtopics.
type TopicOverview struct {
	Topic      entity.Topic
	Confidence *entity.TopicConfidence
}

// SubtopicOverview is a subtopic with the user's confidence overlaid. The
// record is the ephemeral default when the user never rated the subtopic.
type SubtopicOverview struct {
	Subtopic       entity.Subtopic
	Confidence     entity.SubtopicConfidence
	NeedsAttention bool
}

// CurriculumUsecase serves the browse views: subjects, their topics and
// subtopics, each with the user's confidence state overlaid.
type CurriculumUsecase interface {
	ListSubjects(ctx context.Context) ([]entity.Subject, error)
	ListTopics(ctx context.Context, userID, subjectID int64) ([]TopicOverview, error)
	ListSubtopics(ctx context.Context, userID, topicID int64) ([]SubtopicOverview, error)
	ImportCurriculum(ctx context.Context, subjects []repository.SubjectImport) (repository.ImportStats, error)
}

// NewCurriculumUsecase wires the repositories.
func NewCurriculumUsecase(
	subjects repository.SubjectRepository,
	topics repository.TopicRepository,
	subtopics repository.SubtopicRepository,
	conf repository.ConfidenceRepository,
	importer repository.CurriculumRepository,
	confidence ConfidenceUsecase,
) CurriculumUsecase {
	return &curriculumUsecase{
		subjects:   subjects,
		topics:     topics,
		subtopics:  subtopics,
		conf:       conf,
		importer:   importer,
		confidence: confidence,
	}
}

type curriculumUsecase struct {
	subjects   repository.SubjectRepository
	topics     repository.TopicRepository
	subtopics  repository.SubtopicRepository
	conf       repository.ConfidenceRepository
	importer   repository.CurriculumRepository
	confidence ConfidenceUsecase
}

func (u *curriculumUsecase) ListSubjects(ctx context.Context) ([]entity.Subject, error) {
	return u.subjects.List(ctx)
}

func (u *curriculumUsecase) ListTopics(ctx context.Context, userID, subjectID int64) ([]TopicOverview, error) {
	subject, err := u.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, entity.ErrSubjectNotFound
	}

	topics, err := u.topics.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, nil
	}

	ids := lo.Map(topics, func(t entity.Topic, _ int) int64 { return t.ID })
	records, err := u.conf.ListTopics(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	byTopic := lo.KeyBy(records, func(r entity.TopicConfidence) int64 { return r.TopicID })

	return lo.Map(topics, func(t entity.Topic, _ int) TopicOverview {
		overview := TopicOverview{Topic: t}
		if rec, ok := byTopic[t.ID]; ok {
			conf := rec
			overview.Confidence = &conf
		}
		return overview
	}), nil
}

func (u *curriculumUsecase) ListSubtopics(ctx context.Context, userID, topicID int64) ([]SubtopicOverview, error) {
	topic, err := u.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, entity.ErrTopicNotFound
	}

	subtopics, err := u.subtopics.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if len(subtopics) == 0 {
		return nil, nil
	}

	ids := lo.Map(subtopics, func(s entity.Subtopic, _ int) int64 { return s.ID })
	records, err := u.conf.ListSubtopics(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	bySubtopic := lo.KeyBy(records, func(r entity.SubtopicConfidence) int64 { return r.SubtopicID })

	out := make([]SubtopicOverview, 0, len(subtopics))
	for _, st := range subtopics {
		rec, ok := bySubtopic[st.ID]
		if !ok {
			rec = entity.DefaultSubtopicConfidence(userID, st.ID)
		}
		need, err := u.confidence.NeedsAttention(ctx, userID, st.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, SubtopicOverview{Subtopic: st, Confidence: rec, NeedsAttention: need})
	}
	return out, nil
}

func (u *curriculumUsecase) ImportCurriculum(ctx context.Context, subjects []repository.SubjectImport) (repository.ImportStats, error) {
	return u.importer.Import(ctx, subjects)
}
