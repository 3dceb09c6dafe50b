package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/reviseapp/revise/internal/entity"
	entdb "github.com/reviseapp/revise/internal/infrastructure/database/ent"
	entsubject "github.com/reviseapp/revise/internal/infrastructure/database/ent/subject"
	entsubtopic "github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopic"
	enttopic "github.com/reviseapp/revise/internal/infrastructure/database/ent/topic"
	"github.com/reviseapp/revise/internal/repository"
)

type subjectRepository struct {
	client *entdb.Client
}

// NewSubjectRepository constructs an ent-backed repository.
func NewSubjectRepository(client *entdb.Client) repository.SubjectRepository {
	return &subjectRepository{client: client}
}

func (r *subjectRepository) List(ctx context.Context) ([]entity.Subject, error) {
	rows, err := r.client.Subject.Query().
		Order(entdb.Asc(entsubject.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return lo.Map(rows, func(row *entdb.Subject, _ int) entity.Subject {
		return mapEntSubject(row)
	}), nil
}

func (r *subjectRepository) GetByID(ctx context.Context, id int64) (*entity.Subject, error) {
	row, err := r.client.Subject.Query().
		Where(entsubject.IDEQ(int(id))).
		Only(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subject: %w", err)
	}
	subject := mapEntSubject(row)
	return &subject, nil
}

type topicRepository struct {
	client *entdb.Client
}

// NewTopicRepository constructs an ent-backed repository.
func NewTopicRepository(client *entdb.Client) repository.TopicRepository {
	return &topicRepository{client: client}
}

func (r *topicRepository) GetByID(ctx context.Context, id int64) (*entity.Topic, error) {
	row, err := r.client.Topic.Query().
		Where(enttopic.IDEQ(int(id))).
		Only(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}
	topic := mapEntTopic(row)
	return &topic, nil
}

func (r *topicRepository) ListBySubject(ctx context.Context, subjectID int64) ([]entity.Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(enttopic.SubjectIDEQ(subjectID)).
		Order(entdb.Asc(enttopic.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return mapEntTopics(rows), nil
}

func (r *topicRepository) ListPapers(ctx context.Context, subjectID int64) ([]entity.Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(
			enttopic.SubjectIDEQ(subjectID),
			enttopic.ParentTopicIDIsNil(),
		).
		Order(entdb.Asc(enttopic.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	return mapEntTopics(rows), nil
}

func (r *topicRepository) ListChildren(ctx context.Context, parentTopicID int64) ([]entity.Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(enttopic.ParentTopicIDEQ(parentTopicID)).
		Order(entdb.Asc(enttopic.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list child topics: %w", err)
	}
	return mapEntTopics(rows), nil
}

func (r *topicRepository) CountBySubject(ctx context.Context, subjectIDs []int64) (map[int64]int, error) {
	var rows []struct {
		SubjectID int64 `json:"subject_id"`
		Count     int   `json:"count"`
	}
	err := r.client.Topic.Query().
		Where(enttopic.SubjectIDIn(subjectIDs...)).
		GroupBy(enttopic.FieldSubjectID).
		Aggregate(entdb.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("count topics by subject: %w", err)
	}
	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.SubjectID] = row.Count
	}
	return counts, nil
}

type subtopicRepository struct {
	client *entdb.Client
}

// NewSubtopicRepository constructs an ent-backed repository.
func NewSubtopicRepository(client *entdb.Client) repository.SubtopicRepository {
	return &subtopicRepository{client: client}
}

func (r *subtopicRepository) GetByID(ctx context.Context, id int64) (*entity.Subtopic, error) {
	row, err := r.client.Subtopic.Query().
		Where(entsubtopic.IDEQ(int(id))).
		Only(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subtopic: %w", err)
	}
	subtopic := mapEntSubtopic(row)
	return &subtopic, nil
}

func (r *subtopicRepository) ListByTopic(ctx context.Context, topicID int64) ([]entity.Subtopic, error) {
	rows, err := r.client.Subtopic.Query().
		Where(entsubtopic.TopicIDEQ(topicID)).
		Order(entdb.Asc(entsubtopic.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subtopics: %w", err)
	}
	return lo.Map(rows, func(row *entdb.Subtopic, _ int) entity.Subtopic {
		return mapEntSubtopic(row)
	}), nil
}

type curriculumRepository struct {
	client *entdb.Client
}

// NewCurriculumRepository constructs an ent-backed bulk importer.
func NewCurriculumRepository(client *entdb.Client) repository.CurriculumRepository {
	return &curriculumRepository{client: client}
}

func (r *curriculumRepository) Import(ctx context.Context, subjects []repository.SubjectImport) (repository.ImportStats, error) {
	var stats repository.ImportStats
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return stats, fmt.Errorf("begin import tx: %w", err)
	}

	for _, si := range subjects {
		subjectRow, err := tx.Subject.Create().
			SetTitle(si.Subject.Title).
			SetDescription(si.Subject.Description).
			SetGroupName(si.Subject.Group).
			Save(ctx)
		if err != nil {
			return stats, rollback(tx, fmt.Errorf("import subject %q: %w", si.Subject.Title, err))
		}
		stats.Subjects++

		for _, ti := range si.Topics {
			if err := r.importTopic(ctx, tx, int64(subjectRow.ID), nil, ti, &stats); err != nil {
				return stats, rollback(tx, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("commit import tx: %w", err)
	}
	return stats, nil
}

func (r *curriculumRepository) importTopic(
	ctx context.Context,
	tx *entdb.Tx,
	subjectID int64,
	parentTopicID *int64,
	ti repository.TopicImport,
	stats *repository.ImportStats,
) error {
	topicRow, err := tx.Topic.Create().
		SetSubjectID(subjectID).
		SetNillableParentTopicID(parentTopicID).
		SetTitle(ti.Topic.Title).
		SetDescription(ti.Topic.Description).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("import topic %q: %w", ti.Topic.Title, err)
	}
	stats.Topics++
	topicID := int64(topicRow.ID)

	for _, st := range ti.Subtopics {
		_, err := tx.Subtopic.Create().
			SetTopicID(topicID).
			SetTitle(st.Title).
			SetDescription(st.Description).
			SetEstimatedDuration(st.EstimatedDuration).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("import subtopic %q: %w", st.Title, err)
		}
		stats.Subtopics++
	}

	for _, child := range ti.Categories {
		if err := r.importTopic(ctx, tx, subjectID, &topicID, child, stats); err != nil {
			return err
		}
	}
	return nil
}

func rollback(tx *entdb.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}

func mapEntSubject(row *entdb.Subject) entity.Subject {
	return entity.Subject{
		ID:          int64(row.ID),
		Title:       row.Title,
		Description: row.Description,
		Group:       row.GroupName,
	}
}

func mapEntTopic(row *entdb.Topic) entity.Topic {
	return entity.Topic{
		ID:            int64(row.ID),
		SubjectID:     row.SubjectID,
		ParentTopicID: row.ParentTopicID,
		Title:         row.Title,
		Description:   row.Description,
	}
}

func mapEntTopics(rows []*entdb.Topic) []entity.Topic {
	return lo.Map(rows, func(row *entdb.Topic, _ int) entity.Topic {
		return mapEntTopic(row)
	})
}

func mapEntSubtopic(row *entdb.Subtopic) entity.Subtopic {
	return entity.Subtopic{
		ID:                int64(row.ID),
		TopicID:           row.TopicID,
		Title:             row.Title,
		Description:       row.Description,
		EstimatedDuration: row.EstimatedDuration,
	}
}
