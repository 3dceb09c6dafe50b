// Code generated by ent, DO NOT EDIT.

package subjectpreference

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subjectpreference type in the database.
	Label = "subject_preference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldExclusiveTaskTypeID holds the string denoting the exclusive_task_type_id field in the database.
	FieldExclusiveTaskTypeID = "exclusive_task_type_id"
	// Table holds the table name of the subjectpreference in the database.
	Table = "subject_preferences"
)

// Columns holds all SQL columns for subjectpreference fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubjectID,
	FieldExclusiveTaskTypeID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the SubjectPreference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByExclusiveTaskTypeID orders the results by the exclusive_task_type_id field.
func ByExclusiveTaskTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExclusiveTaskTypeID, opts...).ToFunc()
}
