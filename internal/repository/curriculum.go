package repository

import (
	"context"

	"github.com/reviseapp/revise/internal/entity"
)

// SubjectRepository provides read access to imported subjects.
type SubjectRepository interface {
	List(ctx context.Context) ([]entity.Subject, error)
	GetByID(ctx context.Context, id int64) (*entity.Subject, error)
}

// TopicRepository provides read access to topics, including the two-level
// paper/category layout some subjects use.
type TopicRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Topic, error)
	ListBySubject(ctx context.Context, subjectID int64) ([]entity.Topic, error)
	// ListPapers returns only parent-less topics of the subject.
	ListPapers(ctx context.Context, subjectID int64) ([]entity.Topic, error)
	ListChildren(ctx context.Context, parentTopicID int64) ([]entity.Topic, error)
	// CountBySubject returns topic counts keyed by subject id.
	CountBySubject(ctx context.Context, subjectIDs []int64) (map[int64]int, error)
}

// SubtopicRepository provides read access to subtopics.
type SubtopicRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Subtopic, error)
	ListByTopic(ctx context.Context, topicID int64) ([]entity.Subtopic, error)
}

// TopicImport is one topic with its nested categories and subtopics as laid
// out in a curriculum file.
type TopicImport struct {
	Topic      entity.Topic
	Subtopics  []entity.Subtopic
	Categories []TopicImport
}

// SubjectImport is one subject tree from a curriculum file.
type SubjectImport struct {
	Subject entity.Subject
	Topics  []TopicImport
}

// ImportStats summarises a bulk import run.
type ImportStats struct {
	Subjects  int
	Topics    int
	Subtopics int
}

// CurriculumRepository performs the one-time bulk load of reference data.
// Import must be atomic: a failed run leaves nothing behind.
type CurriculumRepository interface {
	Import(ctx context.Context, subjects []SubjectImport) (ImportStats, error)
}
