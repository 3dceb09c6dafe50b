package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicConfidence holds the schema definition for the topic_confidences
// table: the derived 1-100 aggregate of a topic's subtopic ratings.
type TopicConfidence struct {
	ent.Schema
}

// Fields of the TopicConfidence.
func (TopicConfidence) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Int64("topic_id"),
		field.Int("percent").Default(1),
		field.Bool("priority").Default(false),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the TopicConfidence.
func (TopicConfidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").Unique(),
	}
}

// Annotations of the TopicConfidence.
func (TopicConfidence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "topic_confidences",
		},
	}
}
