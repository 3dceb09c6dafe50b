// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/topicconfidence"
)

// TopicConfidence is the model entity for the TopicConfidence schema.
type TopicConfidence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID int64 `json:"topic_id,omitempty"`
	// Percent holds the value of the "percent" field.
	Percent int `json:"percent,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority bool `json:"priority,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicConfidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicconfidence.FieldPriority:
			values[i] = new(sql.NullBool)
		case topicconfidence.FieldID, topicconfidence.FieldUserID, topicconfidence.FieldTopicID, topicconfidence.FieldPercent:
			values[i] = new(sql.NullInt64)
		case topicconfidence.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicConfidence fields.
func (tc *TopicConfidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicconfidence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			tc.ID = int(value.Int64)
		case topicconfidence.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				tc.UserID = value.Int64
			}
		case topicconfidence.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				tc.TopicID = value.Int64
			}
		case topicconfidence.FieldPercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field percent", values[i])
			} else if value.Valid {
				tc.Percent = int(value.Int64)
			}
		case topicconfidence.FieldPriority:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				tc.Priority = value.Bool
			}
		case topicconfidence.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				tc.LastUpdated = value.Time
			}
		default:
			tc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicConfidence.
// This includes values selected through modifiers, order, etc.
func (tc *TopicConfidence) Value(name string) (ent.Value, error) {
	return tc.selectValues.Get(name)
}

// Update returns a builder for updating this TopicConfidence.
// Note that you need to call TopicConfidence.Unwrap() before calling this method if this TopicConfidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (tc *TopicConfidence) Update() *TopicConfidenceUpdateOne {
	return NewTopicConfidenceClient(tc.config).UpdateOne(tc)
}

// Unwrap unwraps the TopicConfidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (tc *TopicConfidence) Unwrap() *TopicConfidence {
	_tx, ok := tc.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicConfidence is not a transactional entity")
	}
	tc.config.driver = _tx.drv
	return tc
}

// String implements the fmt.Stringer.
func (tc *TopicConfidence) String() string {
	var builder strings.Builder
	builder.WriteString("TopicConfidence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", tc.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", tc.UserID))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", tc.TopicID))
	builder.WriteString(", ")
	builder.WriteString("percent=")
	builder.WriteString(fmt.Sprintf("%v", tc.Percent))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", tc.Priority))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(tc.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicConfidences is a parsable slice of TopicConfidence.
type TopicConfidences []*TopicConfidence
