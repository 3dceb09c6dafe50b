package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic holds the schema definition for the topics table. Topics without a
// parent are papers; topics with a parent are the categories studied under
// them.
type Topic struct {
	ent.Schema
}

// Fields of the Topic.
func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("subject_id"),
		field.Int64("parent_topic_id").Optional().Nillable(),
		field.String("title").NotEmpty(),
		field.String("description").Default(""),
	}
}

// Indexes of the Topic.
func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("parent_topic_id"),
	}
}

// Annotations of the Topic.
func (Topic) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "topics",
		},
	}
}
