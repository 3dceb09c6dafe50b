// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasksubtopic"
)

// TaskSubtopic is the model entity for the TaskSubtopic schema.
type TaskSubtopic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID int64 `json:"task_id,omitempty"`
	// SubtopicID holds the value of the "subtopic_id" field.
	SubtopicID int64 `json:"subtopic_id,omitempty"`
	// Duration holds the value of the "duration" field.
	Duration     int `json:"duration,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskSubtopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tasksubtopic.FieldID, tasksubtopic.FieldTaskID, tasksubtopic.FieldSubtopicID, tasksubtopic.FieldDuration:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskSubtopic fields.
func (ts *TaskSubtopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tasksubtopic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ts.ID = int(value.Int64)
		case tasksubtopic.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				ts.TaskID = value.Int64
			}
		case tasksubtopic.FieldSubtopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_id", values[i])
			} else if value.Valid {
				ts.SubtopicID = value.Int64
			}
		case tasksubtopic.FieldDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				ts.Duration = int(value.Int64)
			}
		default:
			ts.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskSubtopic.
// This includes values selected through modifiers, order, etc.
func (ts *TaskSubtopic) Value(name string) (ent.Value, error) {
	return ts.selectValues.Get(name)
}

// Update returns a builder for updating this TaskSubtopic.
// Note that you need to call TaskSubtopic.Unwrap() before calling this method if this TaskSubtopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (ts *TaskSubtopic) Update() *TaskSubtopicUpdateOne {
	return NewTaskSubtopicClient(ts.config).UpdateOne(ts)
}

// Unwrap unwraps the TaskSubtopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ts *TaskSubtopic) Unwrap() *TaskSubtopic {
	_tx, ok := ts.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskSubtopic is not a transactional entity")
	}
	ts.config.driver = _tx.drv
	return ts
}

// String implements the fmt.Stringer.
func (ts *TaskSubtopic) String() string {
	var builder strings.Builder
	builder.WriteString("TaskSubtopic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ts.ID))
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", ts.TaskID))
	builder.WriteString(", ")
	builder.WriteString("subtopic_id=")
	builder.WriteString(fmt.Sprintf("%v", ts.SubtopicID))
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", ts.Duration))
	builder.WriteByte(')')
	return builder.String()
}

// TaskSubtopics is a parsable slice of TaskSubtopic.
type TaskSubtopics []*TaskSubtopic
