// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)

// SubjectPreference is the predicate function for subjectpreference builders.
type SubjectPreference func(*sql.Selector)

// Subtopic is the predicate function for subtopic builders.
type Subtopic func(*sql.Selector)

// SubtopicConfidence is the predicate function for subtopicconfidence builders.
type SubtopicConfidence func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskSubtopic is the predicate function for tasksubtopic builders.
type TaskSubtopic func(*sql.Selector)

// TaskType is the predicate function for tasktype builders.
type TaskType func(*sql.Selector)

// TaskTypePreference is the predicate function for tasktypepreference builders.
type TaskTypePreference func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// TopicConfidence is the predicate function for topicconfidence builders.
type TopicConfidence func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
