// Code generated by ent, DO NOT EDIT.

package subtopic

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subtopic type in the database.
	Label = "subtopic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldEstimatedDuration holds the string denoting the estimated_duration field in the database.
	FieldEstimatedDuration = "estimated_duration"
	// Table holds the table name of the subtopic in the database.
	Table = "subtopics"
)

// Columns holds all SQL columns for subtopic fields.
var Columns = []string{
	FieldID,
	FieldTopicID,
	FieldTitle,
	FieldDescription,
	FieldEstimatedDuration,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultEstimatedDuration holds the default value on creation for the "estimated_duration" field.
	DefaultEstimatedDuration int
)

// OrderOption defines the ordering options for the Subtopic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByEstimatedDuration orders the results by the estimated_duration field.
func ByEstimatedDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedDuration, opts...).ToFunc()
}
