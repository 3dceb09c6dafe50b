package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskSubtopic holds the schema definition for the task_subtopics join
// table. duration snapshots the subtopic's estimated minutes at packing
// time.
type TaskSubtopic struct {
	ent.Schema
}

// Fields of the TaskSubtopic.
func (TaskSubtopic) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("task_id"),
		field.Int64("subtopic_id"),
		field.Int("duration").Default(0),
	}
}

// Indexes of the TaskSubtopic.
func (TaskSubtopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "subtopic_id").Unique(),
	}
}

// Annotations of the TaskSubtopic.
func (TaskSubtopic) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "task_subtopics",
		},
	}
}
