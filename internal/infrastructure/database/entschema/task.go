package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the tasks table.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Int64("subject_id"),
		field.Int64("topic_id"),
		field.Int64("task_type_id"),
		field.String("title").NotEmpty(),
		field.Text("description").Default(""),
		field.Time("due_date"),
		field.Time("completed_at").Optional().Nillable(),
		field.Time("skipped_at").Optional().Nillable(),
		field.Int("total_duration").Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "due_date"),
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "subject_id", "created_at"),
	}
}

// Annotations of the Task.
func (Task) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "tasks",
		},
	}
}
