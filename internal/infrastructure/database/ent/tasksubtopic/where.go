// Code generated by ent, DO NOT EDIT.

package tasksubtopic

import (
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldEQ(FieldTaskID, v))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldEQ(FieldSubtopicID, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldEQ(FieldDuration, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldLTE(FieldTaskID, v))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDGT applies the GT predicate on the "subtopic_id" field.
func SubtopicIDGT(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldGT(FieldSubtopicID, v))
}

// SubtopicIDGTE applies the GTE predicate on the "subtopic_id" field.
func SubtopicIDGTE(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldGTE(FieldSubtopicID, v))
}

// SubtopicIDLT applies the LT predicate on the "subtopic_id" field.
func SubtopicIDLT(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldLT(FieldSubtopicID, v))
}

// SubtopicIDLTE applies the LTE predicate on the "subtopic_id" field.
func SubtopicIDLTE(v int64) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldLTE(FieldSubtopicID, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldEQ(FieldDuration, v))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldNEQ(FieldDuration, v))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldIn(FieldDuration, vs...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldNotIn(FieldDuration, vs...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldGT(FieldDuration, v))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldGTE(FieldDuration, v))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldLT(FieldDuration, v))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v int) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.FieldLTE(FieldDuration, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskSubtopic) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskSubtopic) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskSubtopic) predicate.TaskSubtopic {
	return predicate.TaskSubtopic(sql.NotPredicates(p))
}
