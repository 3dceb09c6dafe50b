package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
)

// ConfidenceUpdate is the result of a subtopic confidence write: the saved
// record plus the freshly derived topic aggregate.
type ConfidenceUpdate struct {
	Subtopic entity.SubtopicConfidence
	Topic    *entity.TopicConfidence
}

// ConfidenceUsecase manages per-user confidence records and keeps topic
// aggregates consistent with their subtopics.
type ConfidenceUsecase interface {
	// SubtopicConfidence returns the stored record, or the ephemeral
	// default (level 3, no priority) when the user never rated the
	// subtopic. Reads never create records.
	SubtopicConfidence(ctx context.Context, userID, subtopicID int64) (*entity.SubtopicConfidence, error)
	// UpdateSubtopicConfidence validates the level, persists the record
	// and the recomputed parent topic aggregate as one atomic step.
	UpdateSubtopicConfidence(ctx context.Context, userID, subtopicID int64, level int) (*ConfidenceUpdate, error)
	ToggleSubtopicPriority(ctx context.Context, userID, subtopicID int64) (bool, error)
	SetSubtopicPriority(ctx context.Context, userID, subtopicID int64, priority bool) (bool, error)
	ToggleTopicPriority(ctx context.Context, userID, topicID int64) (bool, error)
	MarkAddressed(ctx context.Context, userID, subtopicID int64) error
	NeedsAttention(ctx context.Context, userID, subtopicID int64) (bool, error)
	// ComputeTopicConfidence derives the topic aggregate without
	// persisting it. Returns nil when the topic has no rated subtopics:
	// "not yet started" is distinct from any confidence value.
	ComputeTopicConfidence(ctx context.Context, userID, topicID int64) (*entity.TopicConfidence, error)
}

// NewConfidenceUsecase wires the repositories with default behaviour.
// staleness controls how long a priority subtopic may go unaddressed before
// it needs attention again.
func NewConfidenceUsecase(
	conf repository.ConfidenceRepository,
	topics repository.TopicRepository,
	subtopics repository.SubtopicRepository,
	staleness time.Duration,
) ConfidenceUsecase {
	return &confidenceUsecase{
		conf:      conf,
		topics:    topics,
		subtopics: subtopics,
		staleness: staleness,
		clock:     time.Now,
	}
}

type confidenceUsecase struct {
	conf      repository.ConfidenceRepository
	topics    repository.TopicRepository
	subtopics repository.SubtopicRepository
	staleness time.Duration
	clock     func() time.Time
}

func (u *confidenceUsecase) SubtopicConfidence(ctx context.Context, userID, subtopicID int64) (*entity.SubtopicConfidence, error) {
	if _, err := u.requireSubtopic(ctx, subtopicID); err != nil {
		return nil, err
	}
	existing, err := u.conf.GetSubtopic(ctx, userID, subtopicID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	def := entity.DefaultSubtopicConfidence(userID, subtopicID)
	return &def, nil
}

func (u *confidenceUsecase) UpdateSubtopicConfidence(ctx context.Context, userID, subtopicID int64, level int) (*ConfidenceUpdate, error) {
	if !entity.ValidConfidenceLevel(level) {
		return nil, entity.ErrInvalidConfidenceLevel
	}
	subtopic, err := u.requireSubtopic(ctx, subtopicID)
	if err != nil {
		return nil, err
	}

	record, err := u.conf.GetSubtopic(ctx, userID, subtopicID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		def := entity.DefaultSubtopicConfidence(userID, subtopicID)
		record = &def
	}

	now := u.clock()
	if err := record.UpdateLevel(level, now); err != nil {
		return nil, err
	}

	topicConf, err := u.deriveTopicConfidence(ctx, userID, subtopic.TopicID, record)
	if err != nil {
		return nil, fmt.Errorf("derive topic confidence: %w", err)
	}
	// A write always makes the topic calculable, so topicConf is non-nil
	// here and the cascade persists both records atomically.
	if err := u.conf.SaveSubtopicCascade(ctx, record, topicConf); err != nil {
		return nil, err
	}

	return &ConfidenceUpdate{Subtopic: *record, Topic: topicConf}, nil
}

func (u *confidenceUsecase) ToggleSubtopicPriority(ctx context.Context, userID, subtopicID int64) (bool, error) {
	record, err := u.SubtopicConfidence(ctx, userID, subtopicID)
	if err != nil {
		return false, err
	}
	record.TogglePriority(u.clock())
	if err := u.conf.SaveSubtopic(ctx, record); err != nil {
		return false, err
	}
	return record.Priority, nil
}

func (u *confidenceUsecase) SetSubtopicPriority(ctx context.Context, userID, subtopicID int64, priority bool) (bool, error) {
	record, err := u.SubtopicConfidence(ctx, userID, subtopicID)
	if err != nil {
		return false, err
	}
	record.SetPriority(priority, u.clock())
	if err := u.conf.SaveSubtopic(ctx, record); err != nil {
		return false, err
	}
	return record.Priority, nil
}

func (u *confidenceUsecase) ToggleTopicPriority(ctx context.Context, userID, topicID int64) (bool, error) {
	record, err := u.conf.GetTopic(ctx, userID, topicID)
	if err != nil {
		return false, err
	}
	if record == nil {
		// Topic aggregates exist only once derivable; seed one from the
		// current subtopic state before flagging it.
		record, err = u.ComputeTopicConfidence(ctx, userID, topicID)
		if err != nil {
			return false, err
		}
		if record == nil {
			return false, entity.ErrTopicNotRated
		}
	}
	record.TogglePriority(u.clock())
	if err := u.conf.SaveTopic(ctx, record); err != nil {
		return false, err
	}
	return record.Priority, nil
}

func (u *confidenceUsecase) MarkAddressed(ctx context.Context, userID, subtopicID int64) error {
	record, err := u.SubtopicConfidence(ctx, userID, subtopicID)
	if err != nil {
		return err
	}
	record.MarkAddressed(u.clock())
	return u.conf.SaveSubtopic(ctx, record)
}

func (u *confidenceUsecase) NeedsAttention(ctx context.Context, userID, subtopicID int64) (bool, error) {
	record, err := u.SubtopicConfidence(ctx, userID, subtopicID)
	if err != nil {
		return false, err
	}
	return record.NeedsAttention(u.clock(), u.staleness), nil
}

func (u *confidenceUsecase) ComputeTopicConfidence(ctx context.Context, userID, topicID int64) (*entity.TopicConfidence, error) {
	if topic, err := u.topics.GetByID(ctx, topicID); err != nil {
		return nil, err
	} else if topic == nil {
		return nil, entity.ErrTopicNotFound
	}
	return u.deriveTopicConfidence(ctx, userID, topicID, nil)
}

// deriveTopicConfidence averages the rated subtopics of the topic. When
// override is non-nil its level replaces (or adds to) the stored record for
// the same subtopic, so the aggregate reflects an in-flight write. Returns
// nil when nothing is rated.
func (u *confidenceUsecase) deriveTopicConfidence(ctx context.Context, userID, topicID int64, override *entity.SubtopicConfidence) (*entity.TopicConfidence, error) {
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

	levels := make(map[int64]int, len(records)+1)
	for _, rec := range records {
		levels[rec.SubtopicID] = rec.Level
	}
	if override != nil {
		levels[override.SubtopicID] = override.Level
	}
	if len(levels) == 0 {
		return nil, nil
	}

	sum := 0
	for _, level := range levels {
		sum += level
	}
	mean := float64(sum) / float64(len(levels))

	existing, err := u.conf.GetTopic(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}
	result := entity.TopicConfidence{UserID: userID, TopicID: topicID}
	if existing != nil {
		result = *existing
	}
	result.Percent = entity.TopicPercentFromMean(mean)
	result.LastUpdated = u.clock()
	return &result, nil
}

func (u *confidenceUsecase) requireSubtopic(ctx context.Context, subtopicID int64) (*entity.Subtopic, error) {
	subtopic, err := u.subtopics.GetByID(ctx, subtopicID)
	if err != nil {
		return nil, err
	}
	if subtopic == nil {
		return nil, entity.ErrSubtopicNotFound
	}
	return subtopic, nil
}
