// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reviseapp/revise/internal/infrastructure/database/ent/subtopicconfidence"
)

// SubtopicConfidence is the model entity for the SubtopicConfidence schema.
type SubtopicConfidence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// SubtopicID holds the value of the "subtopic_id" field.
	SubtopicID int64 `json:"subtopic_id,omitempty"`
	// Level holds the value of the "level" field.
	Level int `json:"level,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority bool `json:"priority,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated time.Time `json:"last_updated,omitempty"`
	// LastAddressed holds the value of the "last_addressed" field.
	LastAddressed *time.Time `json:"last_addressed,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubtopicConfidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subtopicconfidence.FieldPriority:
			values[i] = new(sql.NullBool)
		case subtopicconfidence.FieldID, subtopicconfidence.FieldUserID, subtopicconfidence.FieldSubtopicID, subtopicconfidence.FieldLevel:
			values[i] = new(sql.NullInt64)
		case subtopicconfidence.FieldLastUpdated, subtopicconfidence.FieldLastAddressed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubtopicConfidence fields.
func (sc *SubtopicConfidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subtopicconfidence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sc.ID = int(value.Int64)
		case subtopicconfidence.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				sc.UserID = value.Int64
			}
		case subtopicconfidence.FieldSubtopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_id", values[i])
			} else if value.Valid {
				sc.SubtopicID = value.Int64
			}
		case subtopicconfidence.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				sc.Level = int(value.Int64)
			}
		case subtopicconfidence.FieldPriority:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				sc.Priority = value.Bool
			}
		case subtopicconfidence.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				sc.LastUpdated = value.Time
			}
		case subtopicconfidence.FieldLastAddressed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_addressed", values[i])
			} else if value.Valid {
				sc.LastAddressed = new(time.Time)
				*sc.LastAddressed = value.Time
			}
		default:
			sc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubtopicConfidence.
// This includes values selected through modifiers, order, etc.
func (sc *SubtopicConfidence) Value(name string) (ent.Value, error) {
	return sc.selectValues.Get(name)
}

// Update returns a builder for updating this SubtopicConfidence.
// Note that you need to call SubtopicConfidence.Unwrap() before calling this method if this SubtopicConfidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (sc *SubtopicConfidence) Update() *SubtopicConfidenceUpdateOne {
	return NewSubtopicConfidenceClient(sc.config).UpdateOne(sc)
}

// Unwrap unwraps the SubtopicConfidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sc *SubtopicConfidence) Unwrap() *SubtopicConfidence {
	_tx, ok := sc.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubtopicConfidence is not a transactional entity")
	}
	sc.config.driver = _tx.drv
	return sc
}

// String implements the fmt.Stringer.
func (sc *SubtopicConfidence) String() string {
	var builder strings.Builder
	builder.WriteString("SubtopicConfidence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sc.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", sc.UserID))
	builder.WriteString(", ")
	builder.WriteString("subtopic_id=")
	builder.WriteString(fmt.Sprintf("%v", sc.SubtopicID))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", sc.Level))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", sc.Priority))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(sc.LastUpdated.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := sc.LastAddressed; v != nil {
		builder.WriteString("last_addressed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SubtopicConfidences is a parsable slice of SubtopicConfidence.
type SubtopicConfidences []*SubtopicConfidence
