package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskTypePreference holds the schema definition for the
// task_type_preferences table.
type TaskTypePreference struct {
	ent.Schema
}

// Fields of the TaskTypePreference.
func (TaskTypePreference) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Int64("task_type_id"),
		field.Bool("enabled").Default(true),
	}
}

// Indexes of the TaskTypePreference.
func (TaskTypePreference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "task_type_id").Unique(),
	}
}

// Annotations of the TaskTypePreference.
func (TaskTypePreference) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "task_type_preferences",
		},
	}
}
