// Code generated by ent, DO NOT EDIT.

package subtopic

import (
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int64) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldTopicID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldDescription, v))
}

// EstimatedDuration applies equality check predicate on the "estimated_duration" field. It's identical to EstimatedDurationEQ.
func EstimatedDuration(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldEstimatedDuration, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int64) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int64) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int64) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int64) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v int64) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v int64) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v int64) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v int64) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldTopicID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldContainsFold(FieldDescription, v))
}

// EstimatedDurationEQ applies the EQ predicate on the "estimated_duration" field.
func EstimatedDurationEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldEQ(FieldEstimatedDuration, v))
}

// EstimatedDurationNEQ applies the NEQ predicate on the "estimated_duration" field.
func EstimatedDurationNEQ(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNEQ(FieldEstimatedDuration, v))
}

// EstimatedDurationIn applies the In predicate on the "estimated_duration" field.
func EstimatedDurationIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldIn(FieldEstimatedDuration, vs...))
}

// EstimatedDurationNotIn applies the NotIn predicate on the "estimated_duration" field.
func EstimatedDurationNotIn(vs ...int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldNotIn(FieldEstimatedDuration, vs...))
}

// EstimatedDurationGT applies the GT predicate on the "estimated_duration" field.
func EstimatedDurationGT(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGT(FieldEstimatedDuration, v))
}

// EstimatedDurationGTE applies the GTE predicate on the "estimated_duration" field.
func EstimatedDurationGTE(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldGTE(FieldEstimatedDuration, v))
}

// EstimatedDurationLT applies the LT predicate on the "estimated_duration" field.
func EstimatedDurationLT(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLT(FieldEstimatedDuration, v))
}

// EstimatedDurationLTE applies the LTE predicate on the "estimated_duration" field.
func EstimatedDurationLTE(v int) predicate.Subtopic {
	return predicate.Subtopic(sql.FieldLTE(FieldEstimatedDuration, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subtopic) predicate.Subtopic {
	return predicate.Subtopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subtopic) predicate.Subtopic {
	return predicate.Subtopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subtopic) predicate.Subtopic {
	return predicate.Subtopic(sql.NotPredicates(p))
}
