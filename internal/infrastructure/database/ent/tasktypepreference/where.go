// Code generated by ent, DO NOT EDIT.

package tasktypepreference

import (
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldEQ(FieldUserID, v))
}

// TaskTypeID applies equality check predicate on the "task_type_id" field. It's identical to TaskTypeIDEQ.
func TaskTypeID(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldEQ(FieldTaskTypeID, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldEQ(FieldEnabled, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldLTE(FieldUserID, v))
}

// TaskTypeIDEQ applies the EQ predicate on the "task_type_id" field.
func TaskTypeIDEQ(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldEQ(FieldTaskTypeID, v))
}

// TaskTypeIDNEQ applies the NEQ predicate on the "task_type_id" field.
func TaskTypeIDNEQ(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldNEQ(FieldTaskTypeID, v))
}

// TaskTypeIDIn applies the In predicate on the "task_type_id" field.
func TaskTypeIDIn(vs ...int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldIn(FieldTaskTypeID, vs...))
}

// TaskTypeIDNotIn applies the NotIn predicate on the "task_type_id" field.
func TaskTypeIDNotIn(vs ...int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldNotIn(FieldTaskTypeID, vs...))
}

// TaskTypeIDGT applies the GT predicate on the "task_type_id" field.
func TaskTypeIDGT(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldGT(FieldTaskTypeID, v))
}

// TaskTypeIDGTE applies the GTE predicate on the "task_type_id" field.
func TaskTypeIDGTE(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldGTE(FieldTaskTypeID, v))
}

// TaskTypeIDLT applies the LT predicate on the "task_type_id" field.
func TaskTypeIDLT(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldLT(FieldTaskTypeID, v))
}

// TaskTypeIDLTE applies the LTE predicate on the "task_type_id" field.
func TaskTypeIDLTE(v int64) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldLTE(FieldTaskTypeID, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.FieldNEQ(FieldEnabled, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskTypePreference) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskTypePreference) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskTypePreference) predicate.TaskTypePreference {
	return predicate.TaskTypePreference(sql.NotPredicates(p))
}
