// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopic"
)

// Subtopic is the model entity for the Subtopic schema.
type Subtopic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID int64 `json:"topic_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// EstimatedDuration holds the value of the "estimated_duration" field.
	EstimatedDuration int `json:"estimated_duration,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subtopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subtopic.FieldID, subtopic.FieldTopicID, subtopic.FieldEstimatedDuration:
			values[i] = new(sql.NullInt64)
		case subtopic.FieldTitle, subtopic.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subtopic fields.
func (s *Subtopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subtopic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			s.ID = int(value.Int64)
		case subtopic.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				s.TopicID = value.Int64
			}
		case subtopic.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				s.Title = value.String
			}
		case subtopic.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				s.Description = value.String
			}
		case subtopic.FieldEstimatedDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_duration", values[i])
			} else if value.Valid {
				s.EstimatedDuration = int(value.Int64)
			}
		default:
			s.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Subtopic.
// This includes values selected through modifiers, order, etc.
func (s *Subtopic) Value(name string) (ent.Value, error) {
	return s.selectValues.Get(name)
}

// Update returns a builder for updating this Subtopic.
// Note that you need to call Subtopic.Unwrap() before calling this method if this Subtopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (s *Subtopic) Update() *SubtopicUpdateOne {
	return NewSubtopicClient(s.config).UpdateOne(s)
}

// Unwrap unwraps the Subtopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (s *Subtopic) Unwrap() *Subtopic {
	_tx, ok := s.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subtopic is not a transactional entity")
	}
	s.config.driver = _tx.drv
	return s
}

// String implements the fmt.Stringer.
func (s *Subtopic) String() string {
	var builder strings.Builder
	builder.WriteString("Subtopic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", s.ID))
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", s.TopicID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(s.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(s.Description)
	builder.WriteString(", ")
	builder.WriteString("estimated_duration=")
	builder.WriteString(fmt.Sprintf("%v", s.EstimatedDuration))
	builder.WriteByte(')')
	return builder.String()
}

// Subtopics is a parsable slice of Subtopic.
type Subtopics []*Subtopic
