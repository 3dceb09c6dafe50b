// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/tasktypepreference"
)

// TaskTypePreference is the model entity for the TaskTypePreference schema.
type TaskTypePreference struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// TaskTypeID holds the value of the "task_type_id" field.
	TaskTypeID int64 `json:"task_type_id,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled      bool `json:"enabled,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskTypePreference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tasktypepreference.FieldEnabled:
			values[i] = new(sql.NullBool)
		case tasktypepreference.FieldID, tasktypepreference.FieldUserID, tasktypepreference.FieldTaskTypeID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskTypePreference fields.
func (ttp *TaskTypePreference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tasktypepreference.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ttp.ID = int(value.Int64)
		case tasktypepreference.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ttp.UserID = value.Int64
			}
		case tasktypepreference.FieldTaskTypeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_type_id", values[i])
			} else if value.Valid {
				ttp.TaskTypeID = value.Int64
			}
		case tasktypepreference.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				ttp.Enabled = value.Bool
			}
		default:
			ttp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskTypePreference.
// This includes values selected through modifiers, order, etc.
func (ttp *TaskTypePreference) Value(name string) (ent.Value, error) {
	return ttp.selectValues.Get(name)
}

// Update returns a builder for updating this TaskTypePreference.
// Note that you need to call TaskTypePreference.Unwrap() before calling this method if this TaskTypePreference
// was returned from a transaction, and the transaction was committed or rolled back.
func (ttp *TaskTypePreference) Update() *TaskTypePreferenceUpdateOne {
	return NewTaskTypePreferenceClient(ttp.config).UpdateOne(ttp)
}

// Unwrap unwraps the TaskTypePreference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ttp *TaskTypePreference) Unwrap() *TaskTypePreference {
	_tx, ok := ttp.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskTypePreference is not a transactional entity")
	}
	ttp.config.driver = _tx.drv
	return ttp
}

// String implements the fmt.Stringer.
func (ttp *TaskTypePreference) String() string {
	var builder strings.Builder
	builder.WriteString("TaskTypePreference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ttp.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", ttp.UserID))
	builder.WriteString(", ")
	builder.WriteString("task_type_id=")
	builder.WriteString(fmt.Sprintf("%v", ttp.TaskTypeID))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", ttp.Enabled))
	builder.WriteByte(')')
	return builder.String()
}

// TaskTypePreferences is a parsable slice of TaskTypePreference.
type TaskTypePreferences []*TaskTypePreference
