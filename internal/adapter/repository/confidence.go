package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/reviseapp/revise/internal/entity"
	entdb "github.com/reviseapp/revise/internal/infrastructure/database/ent"
	entsubconf "github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopicconfidence"
	enttopconf "github.com/reviseapp/revise/internal/infrastructure/database/ent/topicconfidence"
	"github.com/reviseapp/revise/internal/repository"
)

type confidenceRepository struct {
	client *entdb.Client
}

// NewConfidenceRepository constructs an ent-backed repository.
func NewConfidenceRepository(client *entdb.Client) repository.ConfidenceRepository {
	return &confidenceRepository{client: client}
}

func (r *confidenceRepository) GetSubtopic(ctx context.Context, userID, subtopicID int64) (*entity.SubtopicConfidence, error) {
	row, err := r.client.SubtopicConfidence.Query().
		Where(
			entsubconf.UserIDEQ(userID),
			entsubconf.SubtopicIDEQ(subtopicID),
		).
		Only(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subtopic confidence: %w", err)
	}
	conf := mapEntSubtopicConfidence(row)
	return &conf, nil
}

func (r *confidenceRepository) ListSubtopics(ctx context.Context, userID int64, subtopicIDs []int64) ([]entity.SubtopicConfidence, error) {
	if len(subtopicIDs) == 0 {
		return nil, nil
	}
	rows, err := r.client.SubtopicConfidence.Query().
		Where(
			entsubconf.UserIDEQ(userID),
			entsubconf.SubtopicIDIn(subtopicIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subtopic confidences: %w", err)
	}
	return lo.Map(rows, func(row *entdb.SubtopicConfidence, _ int) entity.SubtopicConfidence {
		return mapEntSubtopicConfidence(row)
	}), nil
}

func (r *confidenceRepository) SaveSubtopic(ctx context.Context, conf *entity.SubtopicConfidence) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin confidence tx: %w", err)
	}
	if err := saveSubtopicConfidence(ctx, tx, conf); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit confidence tx: %w", err)
	}
	return nil
}

func (r *confidenceRepository) GetTopic(ctx context.Context, userID, topicID int64) (*entity.TopicConfidence, error) {
	row, err := r.client.TopicConfidence.Query().
		Where(
			enttopconf.UserIDEQ(userID),
			enttopconf.TopicIDEQ(topicID),
		).
		Only(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get topic confidence: %w", err)
	}
	conf := mapEntTopicConfidence(row)
	return &conf, nil
}

func (r *confidenceRepository) ListTopics(ctx context.Context, userID int64, topicIDs []int64) ([]entity.TopicConfidence, error) {
	if len(topicIDs) == 0 {
		return nil, nil
	}
	rows, err := r.client.TopicConfidence.Query().
		Where(
			enttopconf.UserIDEQ(userID),
			enttopconf.TopicIDIn(topicIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topic confidences: %w", err)
	}
	return lo.Map(rows, func(row *entdb.TopicConfidence, _ int) entity.TopicConfidence {
		return mapEntTopicConfidence(row)
	}), nil
}

func (r *confidenceRepository) SaveTopic(ctx context.Context, conf *entity.TopicConfidence) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin confidence tx: %w", err)
	}
	if err := saveTopicConfidence(ctx, tx, conf); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit confidence tx: %w", err)
	}
	return nil
}

func (r *confidenceRepository) SaveSubtopicCascade(ctx context.Context, sub *entity.SubtopicConfidence, topic *entity.TopicConfidence) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin cascade tx: %w", err)
	}
	if err := saveSubtopicConfidence(ctx, tx, sub); err != nil {
		return rollback(tx, err)
	}
	if err := saveTopicConfidence(ctx, tx, topic); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cascade tx: %w", err)
	}
	return nil
}

// saveSubtopicConfidence upserts by the (user_id, subtopic_id) natural key.
func saveSubtopicConfidence(ctx context.Context, tx *entdb.Tx, conf *entity.SubtopicConfidence) error {
	existing, err := tx.SubtopicConfidence.Query().
		Where(
			entsubconf.UserIDEQ(conf.UserID),
			entsubconf.SubtopicIDEQ(conf.SubtopicID),
		).
		Only(ctx)
	if err != nil && !entdb.IsNotFound(err) {
		return fmt.Errorf("lookup subtopic confidence: %w", err)
	}

	if existing == nil {
		_, err = tx.SubtopicConfidence.Create().
			SetUserID(conf.UserID).
			SetSubtopicID(conf.SubtopicID).
			SetLevel(conf.Level).
			SetPriority(conf.Priority).
			SetLastUpdated(conf.LastUpdated).
			SetNillableLastAddressed(conf.LastAddressed).
			Save(ctx)
	} else {
		mutation := tx.SubtopicConfidence.UpdateOne(existing).
			SetLevel(conf.Level).
			SetPriority(conf.Priority).
			SetLastUpdated(conf.LastUpdated)
		if conf.LastAddressed != nil {
			mutation.SetLastAddressed(*conf.LastAddressed)
		} else {
			mutation.ClearLastAddressed()
		}
		_, err = mutation.Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save subtopic confidence: %w", err)
	}
	return nil
}

func saveTopicConfidence(ctx context.Context, tx *entdb.Tx, conf *entity.TopicConfidence) error {
	existing, err := tx.TopicConfidence.Query().
		Where(
			enttopconf.UserIDEQ(conf.UserID),
			enttopconf.TopicIDEQ(conf.TopicID),
		).
		Only(ctx)
	if err != nil && !entdb.IsNotFound(err) {
		return fmt.Errorf("lookup topic confidence: %w", err)
	}

	if existing == nil {
		_, err = tx.TopicConfidence.Create().
			SetUserID(conf.UserID).
			SetTopicID(conf.TopicID).
			SetPercent(conf.Percent).
			SetPriority(conf.Priority).
			SetLastUpdated(conf.LastUpdated).
			Save(ctx)
	} else {
		_, err = tx.TopicConfidence.UpdateOne(existing).
			SetPercent(conf.Percent).
			SetPriority(conf.Priority).
			SetLastUpdated(conf.LastUpdated).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save topic confidence: %w", err)
	}
	return nil
}

func mapEntSubtopicConfidence(row *entdb.SubtopicConfidence) entity.SubtopicConfidence {
	return entity.SubtopicConfidence{
		UserID:        row.UserID,
		SubtopicID:    row.SubtopicID,
		Level:         row.Level,
		Priority:      row.Priority,
		LastUpdated:   row.LastUpdated,
		LastAddressed: row.LastAddressed,
	}
}

func mapEntTopicConfidence(row *entdb.TopicConfidence) entity.TopicConfidence {
	return entity.TopicConfidence{
		UserID:      row.UserID,
		TopicID:     row.TopicID,
		Percent:     row.Percent,
		Priority:    row.Priority,
		LastUpdated: row.LastUpdated,
	}
}
