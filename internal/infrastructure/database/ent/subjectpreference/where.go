// Code generated by ent, DO NOT EDIT.

package subjectpreference

import (
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldEQ(FieldUserID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldEQ(FieldSubjectID, v))
}

// ExclusiveTaskTypeID applies equality check predicate on the "exclusive_task_type_id" field. It's identical to ExclusiveTaskTypeIDEQ.
func ExclusiveTaskTypeID(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldEQ(FieldExclusiveTaskTypeID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldLTE(FieldUserID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldLTE(FieldSubjectID, v))
}

// ExclusiveTaskTypeIDEQ applies the EQ predicate on the "exclusive_task_type_id" field.
func ExclusiveTaskTypeIDEQ(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldEQ(FieldExclusiveTaskTypeID, v))
}

// ExclusiveTaskTypeIDNEQ applies the NEQ predicate on the "exclusive_task_type_id" field.
func ExclusiveTaskTypeIDNEQ(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldNEQ(FieldExclusiveTaskTypeID, v))
}

// ExclusiveTaskTypeIDIn applies the In predicate on the "exclusive_task_type_id" field.
func ExclusiveTaskTypeIDIn(vs ...int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldIn(FieldExclusiveTaskTypeID, vs...))
}

// ExclusiveTaskTypeIDNotIn applies the NotIn predicate on the "exclusive_task_type_id" field.
func ExclusiveTaskTypeIDNotIn(vs ...int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldNotIn(FieldExclusiveTaskTypeID, vs...))
}

// ExclusiveTaskTypeIDGT applies the GT predicate on the "exclusive_task_type_id" field.
func ExclusiveTaskTypeIDGT(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldGT(FieldExclusiveTaskTypeID, v))
}

// ExclusiveTaskTypeIDGTE applies the GTE predicate on the "exclusive_task_type_id" field.
func ExclusiveTaskTypeIDGTE(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldGTE(FieldExclusiveTaskTypeID, v))
}

// ExclusiveTaskTypeIDLT applies the LT predicate on the "exclusive_task_type_id" field.
func ExclusiveTaskTypeIDLT(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldLT(FieldExclusiveTaskTypeID, v))
}

// ExclusiveTaskTypeIDLTE applies the LTE predicate on the "exclusive_task_type_id" field.
func ExclusiveTaskTypeIDLTE(v int64) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldLTE(FieldExclusiveTaskTypeID, v))
}

// ExclusiveTaskTypeIDIsNil applies the IsNil predicate on the "exclusive_task_type_id" field.
func ExclusiveTaskTypeIDIsNil() predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldIsNull(FieldExclusiveTaskTypeID))
}

// ExclusiveTaskTypeIDNotNil applies the NotNil predicate on the "exclusive_task_type_id" field.
func ExclusiveTaskTypeIDNotNil() predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.FieldNotNull(FieldExclusiveTaskTypeID))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubjectPreference) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubjectPreference) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubjectPreference) predicate.SubjectPreference {
	return predicate.SubjectPreference(sql.NotPredicates(p))
}
