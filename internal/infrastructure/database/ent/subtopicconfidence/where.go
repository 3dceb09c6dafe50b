// Code generated by ent, DO NOT EDIT.

package subtopicconfidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldUserID, v))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldSubtopicID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldLevel, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v bool) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldPriority, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldLastUpdated, v))
}

// LastAddressed applies equality check predicate on the "last_addressed" field. It's identical to LastAddressedEQ.
func LastAddressed(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldLastAddressed, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLTE(FieldUserID, v))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDGT applies the GT predicate on the "subtopic_id" field.
func SubtopicIDGT(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGT(FieldSubtopicID, v))
}

// SubtopicIDGTE applies the GTE predicate on the "subtopic_id" field.
func SubtopicIDGTE(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGTE(FieldSubtopicID, v))
}

// SubtopicIDLT applies the LT predicate on the "subtopic_id" field.
func SubtopicIDLT(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLT(FieldSubtopicID, v))
}

// SubtopicIDLTE applies the LTE predicate on the "subtopic_id" field.
func SubtopicIDLTE(v int64) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLTE(FieldSubtopicID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLTE(FieldLevel, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v bool) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v bool) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNEQ(FieldPriority, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLTE(FieldLastUpdated, v))
}

// LastAddressedEQ applies the EQ predicate on the "last_addressed" field.
func LastAddressedEQ(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldEQ(FieldLastAddressed, v))
}

// LastAddressedNEQ applies the NEQ predicate on the "last_addressed" field.
func LastAddressedNEQ(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNEQ(FieldLastAddressed, v))
}

// LastAddressedIn applies the In predicate on the "last_addressed" field.
func LastAddressedIn(vs ...time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldIn(FieldLastAddressed, vs...))
}

// LastAddressedNotIn applies the NotIn predicate on the "last_addressed" field.
func LastAddressedNotIn(vs ...time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNotIn(FieldLastAddressed, vs...))
}

// LastAddressedGT applies the GT predicate on the "last_addressed" field.
func LastAddressedGT(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGT(FieldLastAddressed, v))
}

// LastAddressedGTE applies the GTE predicate on the "last_addressed" field.
func LastAddressedGTE(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldGTE(FieldLastAddressed, v))
}

// LastAddressedLT applies the LT predicate on the "last_addressed" field.
func LastAddressedLT(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLT(FieldLastAddressed, v))
}

// LastAddressedLTE applies the LTE predicate on the "last_addressed" field.
func LastAddressedLTE(v time.Time) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldLTE(FieldLastAddressed, v))
}

// LastAddressedIsNil applies the IsNil predicate on the "last_addressed" field.
func LastAddressedIsNil() predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldIsNull(FieldLastAddressed))
}

// LastAddressedNotNil applies the NotNil predicate on the "last_addressed" field.
func LastAddressedNotNil() predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.FieldNotNull(FieldLastAddressed))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubtopicConfidence) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubtopicConfidence) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubtopicConfidence) predicate.SubtopicConfidence {
	return predicate.SubtopicConfidence(sql.NotPredicates(p))
}
