package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subtopic holds the schema definition for the subtopics table.
type Subtopic struct {
	ent.Schema
}

// Fields of the Subtopic. estimated_duration is in minutes.
func (Subtopic) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("topic_id"),
		field.String("title").NotEmpty(),
		field.String("description").Default(""),
		field.Int("estimated_duration").Default(30),
	}
}

// Indexes of the Subtopic.
func (Subtopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}

// Annotations of the Subtopic.
func (Subtopic) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "subtopics",
		},
	}
}
