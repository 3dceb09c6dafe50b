package usecase

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
	"github.com/reviseapp/revise/pkg/roulette"
)

// TopicSelector picks a topic within a subject using confidence-weighted
// sampling, handling subjects whose curriculum nests category topics under
// paper topics (two-stage selection).
type TopicSelector interface {
	// SelectTopic returns nil when the subject has no topics; that is an
	// empty result, not an error.
	SelectTopic(ctx context.Context, userID, subjectID int64) (*entity.Topic, error)
}

// NewTopicSelector wires the selector; rng is injected for deterministic
// draws under test.
func NewTopicSelector(
	topics repository.TopicRepository,
	conf repository.ConfidenceRepository,
	rng roulette.Rand,
	logger logrus.FieldLogger,
) TopicSelector {
	return &topicSelector{topics: topics, conf: conf, rng: rng, logger: logger}
}

type topicSelector struct {
	topics repository.TopicRepository
	conf   repository.ConfidenceRepository
	rng    roulette.Rand
	logger logrus.FieldLogger
}

func (s *topicSelector) SelectTopic(ctx context.Context, userID, subjectID int64) (*entity.Topic, error) {
	papers, err := s.topics.ListPapers(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	if len(papers) == 0 {
		// Legacy flat layout without parent-less topics.
		all, err := s.topics.ListBySubject(ctx, subjectID)
		if err != nil {
			return nil, fmt.Errorf("list topics: %w", err)
		}
		return s.selectWeighted(ctx, userID, all)
	}

	paper, err := s.selectWeighted(ctx, userID, papers)
	if err != nil || paper == nil {
		return paper, err
	}

	categories, err := s.topics.ListChildren(ctx, paper.ID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		// Flat subject: the paper itself is the study topic.
		return paper, nil
	}
	// Nested subject: second independent weighted stage over the paper's
	// categories.
	return s.selectWeighted(ctx, userID, categories)
}

// selectWeighted performs one roulette draw over topics, weighting each by
// (7 - level)^2 with level derived from the stored topic percentage
// (default level 3 when unrated). Selection never persists defaults.
func (s *topicSelector) selectWeighted(ctx context.Context, userID int64, topics []entity.Topic) (*entity.Topic, error) {
	if len(topics) == 0 {
		return nil, nil
	}

	levels := s.topicLevels(ctx, userID, topics)
	picked, ok := roulette.Pick(s.rng, topics, func(t entity.Topic) float64 {
		return entity.SelectionWeight(levels[t.ID])
	})
	if !ok {
		return nil, nil
	}
	return &picked, nil
}

// topicLevels resolves each topic's confidence level on the 1-5 scale. A
// fetch failure is recovered locally: everything defaults to level 3, which
// collapses the draw to uniform.
func (s *topicSelector) topicLevels(ctx context.Context, userID int64, topics []entity.Topic) map[int64]float64 {
	levels := make(map[int64]float64, len(topics))
	for _, t := range topics {
		levels[t.ID] = entity.DefaultConfidenceLevel
	}

	ids := lo.Map(topics, func(t entity.Topic, _ int) int64 { return t.ID })
	records, err := s.conf.ListTopics(ctx, userID, ids)
	if err != nil {
		s.logger.WithError(err).Warn("topic confidence lookup failed, selecting uniformly")
		return levels
	}
	for _, rec := range records {
		levels[rec.TopicID] = rec.Level()
	}
	return levels
}
