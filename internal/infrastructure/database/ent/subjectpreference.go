// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subjectpreference"
)

// SubjectPreference is the model entity for the SubjectPreference schema.
type SubjectPreference struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID int64 `json:"subject_id,omitempty"`
	// ExclusiveTaskTypeID holds the value of the "exclusive_task_type_id" field.
	ExclusiveTaskTypeID *int64 `json:"exclusive_task_type_id,omitempty"`
	selectValues        sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubjectPreference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subjectpreference.FieldID, subjectpreference.FieldUserID, subjectpreference.FieldSubjectID, subjectpreference.FieldExclusiveTaskTypeID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubjectPreference fields.
func (sp *SubjectPreference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subjectpreference.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sp.ID = int(value.Int64)
		case subjectpreference.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				sp.UserID = value.Int64
			}
		case subjectpreference.FieldSubjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				sp.SubjectID = value.Int64
			}
		case subjectpreference.FieldExclusiveTaskTypeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exclusive_task_type_id", values[i])
			} else if value.Valid {
				sp.ExclusiveTaskTypeID = new(int64)
				*sp.ExclusiveTaskTypeID = value.Int64
			}
		default:
			sp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubjectPreference.
// This includes values selected through modifiers, order, etc.
func (sp *SubjectPreference) Value(name string) (ent.Value, error) {
	return sp.selectValues.Get(name)
}

// Update returns a builder for updating this SubjectPreference.
// Note that you need to call SubjectPreference.Unwrap() before calling this method if this SubjectPreference
// was returned from a transaction, and the transaction was committed or rolled back.
func (sp *SubjectPreference) Update() *SubjectPreferenceUpdateOne {
	return NewSubjectPreferenceClient(sp.config).UpdateOne(sp)
}

// Unwrap unwraps the SubjectPreference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sp *SubjectPreference) Unwrap() *SubjectPreference {
	_tx, ok := sp.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubjectPreference is not a transactional entity")
	}
	sp.config.driver = _tx.drv
	return sp
}

// String implements the fmt.Stringer.
func (sp *SubjectPreference) String() string {
	var builder strings.Builder
	builder.WriteString("SubjectPreference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sp.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", sp.UserID))
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(fmt.Sprintf("%v", sp.SubjectID))
	builder.WriteString(", ")
	if v := sp.ExclusiveTaskTypeID; v != nil {
		builder.WriteString("exclusive_task_type_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SubjectPreferences is a parsable slice of SubjectPreference.
type SubjectPreferences []*SubjectPreference
