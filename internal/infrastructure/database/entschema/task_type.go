package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskType holds the schema definition for the task_types table.
type TaskType struct {
	ent.Schema
}

// Fields of the TaskType.
func (TaskType) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").NotEmpty(),
		field.String("description").Default(""),
	}
}

// Indexes of the TaskType.
func (TaskType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}

// Annotations of the TaskType.
func (TaskType) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "task_types",
		},
	}
}
