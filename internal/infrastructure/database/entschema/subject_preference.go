package entschema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubjectPreference holds the schema definition for the subject_preferences
// table. A set exclusive_task_type_id restricts generation for the subject
// to exactly that type.
type SubjectPreference struct {
	ent.Schema
}

// Fields of the SubjectPreference.
func (SubjectPreference) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Int64("subject_id"),
		field.Int64("exclusive_task_type_id").Optional().Nillable(),
	}
}

// Indexes of the SubjectPreference.
func (SubjectPreference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject_id").Unique(),
	}
}

// Annotations of the SubjectPreference.
func (SubjectPreference) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "subject_preferences",
		},
	}
}
