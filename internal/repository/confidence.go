package repository

import (
	"context"

	"github.com/reviseapp/revise/internal/entity"
)

// ConfidenceRepository persists per-user confidence records. Reads return
// (nil, nil) when no record exists; defaults are the caller's concern so
// that storage is only touched on first write.
type ConfidenceRepository interface {
	GetSubtopic(ctx context.Context, userID, subtopicID int64) (*entity.SubtopicConfidence, error)
	ListSubtopics(ctx context.Context, userID int64, subtopicIDs []int64) ([]entity.SubtopicConfidence, error)
	SaveSubtopic(ctx context.Context, conf *entity.SubtopicConfidence) error

	GetTopic(ctx context.Context, userID, topicID int64) (*entity.TopicConfidence, error)
	ListTopics(ctx context.Context, userID int64, topicIDs []int64) ([]entity.TopicConfidence, error)
	SaveTopic(ctx context.Context, conf *entity.TopicConfidence) error

	// SaveSubtopicCascade upserts a subtopic confidence together with the
	// recomputed aggregate of its parent topic in a single transaction, so
	// readers never observe the intermediate state.
	SaveSubtopicCascade(ctx context.Context, sub *entity.SubtopicConfidence, topic *entity.TopicConfidence) error
}
