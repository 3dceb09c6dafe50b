package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubtopicConfidence holds the schema definition for the
// subtopic_confidences table. Rows exist only for subtopics the user has
// rated or flagged; unrated subtopics have an implicit default.
type SubtopicConfidence struct {
	ent.Schema
}

// Fields of the SubtopicConfidence.
func (SubtopicConfidence) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Int64("subtopic_id"),
		field.Int("level").Default(3),
		field.Bool("priority").Default(false),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("last_addressed").Optional().Nillable(),
	}
}

// Indexes of the SubtopicConfidence.
func (SubtopicConfidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subtopic_id").Unique(),
	}
}

// Annotations of the SubtopicConfidence.
func (SubtopicConfidence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "subtopic_confidences",
		},
	}
}
