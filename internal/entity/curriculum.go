package entity

// Subject is a curriculum subject (e.g. "Chemistry"). Reference data,
// imported once and read-only afterwards.
type Subject struct {
	ID          int64
	Title       string
	Description string
	// Group pools curriculum entries that represent year-stages of one
	// real-world subject (e.g. the Y12 and Y13 halves of Biology). Empty
	// for standalone subjects. Assigned at import time.
	Group string
}

// Topic is a unit of study within a subject. A topic may act as a "paper"
// that contains category topics; categories reference their paper through
// ParentTopicID.
type Topic struct {
	ID            int64
	SubjectID     int64
	ParentTopicID *int64
	Title         string
	Description   string
}

// IsPaper reports whether the topic is a top-level paper (no parent).
func (t Topic) IsPaper() bool { return t.ParentTopicID == nil }

// Subtopic is the smallest schedulable unit of the curriculum.
type Subtopic struct {
	ID          int64
	TopicID     int64
	Title       string
	Description string
	// EstimatedDuration is the study time in minutes, always >= MinSubtopicMinutes.
	EstimatedDuration int
}
