// Code generated by ent, DO NOT EDIT.

package tasktypepreference

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tasktypepreference type in the database.
	Label = "task_type_preference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTaskTypeID holds the string denoting the task_type_id field in the database.
	FieldTaskTypeID = "task_type_id"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// Table holds the table name of the tasktypepreference in the database.
	Table = "task_type_preferences"
)

// Columns holds all SQL columns for tasktypepreference fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTaskTypeID,
	FieldEnabled,
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

var (
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
)

// OrderOption defines the ordering options for the TaskTypePreference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTaskTypeID orders the results by the task_type_id field.
func ByTaskTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskTypeID, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}
