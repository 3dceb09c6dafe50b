package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subject holds the schema definition for the subjects table.
type Subject struct {
	ent.Schema
}

// Fields of the Subject. group_name pools split curriculum entries of one
// real subject for scheduling fairness.
func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").NotEmpty(),
		field.String("description").Default(""),
		field.String("group_name").Default(""),
	}
}

// Indexes of the Subject.
func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("title").Unique(),
		index.Fields("group_name"),
	}
}

// Annotations of the Subject.
func (Subject) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "subjects",
		},
	}
}
