// Code generated by ent, DO NOT EDIT.

package subtopicconfidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subtopicconfidence type in the database.
	Label = "subtopic_confidence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubtopicID holds the string denoting the subtopic_id field in the database.
	FieldSubtopicID = "subtopic_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// FieldLastAddressed holds the string denoting the last_addressed field in the database.
	FieldLastAddressed = "last_addressed"
	// Table holds the table name of the subtopicconfidence in the database.
	Table = "subtopic_confidences"
)

// Columns holds all SQL columns for subtopicconfidence fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubtopicID,
	FieldLevel,
	FieldPriority,
	FieldLastUpdated,
	FieldLastAddressed,
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
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority bool
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the SubtopicConfidence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySubtopicID orders the results by the subtopic_id field.
func BySubtopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}

// ByLastAddressed orders the results by the last_addressed field.
func ByLastAddressed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAddressed, opts...).ToFunc()
}
