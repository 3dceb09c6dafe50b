// Code generated by ent, DO NOT EDIT.

package topicconfidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldTopicID, v))
}

// Percent applies equality check predicate on the "percent" field. It's identical to PercentEQ.
func Percent(v int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldPercent, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v bool) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldPriority, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldLastUpdated, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldLTE(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v int64) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldLTE(FieldTopicID, v))
}

// PercentEQ applies the EQ predicate on the "percent" field.
func PercentEQ(v int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldPercent, v))
}

// PercentNEQ applies the NEQ predicate on the "percent" field.
func PercentNEQ(v int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNEQ(FieldPercent, v))
}

// PercentIn applies the In predicate on the "percent" field.
func PercentIn(vs ...int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldIn(FieldPercent, vs...))
}

// PercentNotIn applies the NotIn predicate on the "percent" field.
func PercentNotIn(vs ...int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNotIn(FieldPercent, vs...))
}

// PercentGT applies the GT predicate on the "percent" field.
func PercentGT(v int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldGT(FieldPercent, v))
}

// PercentGTE applies the GTE predicate on the "percent" field.
func PercentGTE(v int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldGTE(FieldPercent, v))
}

// PercentLT applies the LT predicate on the "percent" field.
func PercentLT(v int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldLT(FieldPercent, v))
}

// PercentLTE applies the LTE predicate on the "percent" field.
func PercentLTE(v int) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldLTE(FieldPercent, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v bool) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v bool) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNEQ(FieldPriority, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicConfidence) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicConfidence) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicConfidence) predicate.TopicConfidence {
	return predicate.TopicConfidence(sql.NotPredicates(p))
}
