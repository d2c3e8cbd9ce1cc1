// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activityassignment"
	"github.com/google/uuid"
)

// ActivityAssignment is the model entity for the ActivityAssignment schema.
type ActivityAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → activities.id
	ActivityID uuid.UUID `json:"activity_id,omitempty"`
	// FK → physiotherapists.id
	PhysiotherapistID uuid.UUID `json:"physiotherapist_id,omitempty"`
	// FK → users.id; who made the assignment
	AssignedBy *uuid.UUID `json:"assigned_by,omitempty"`
	// AssignedAt holds the value of the "assigned_at" field.
	AssignedAt time.Time `json:"assigned_at,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActivityAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activityassignment.FieldAssignedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case activityassignment.FieldIsActive:
			values[i] = new(sql.NullBool)
		case activityassignment.FieldCreatedAt, activityassignment.FieldAssignedAt:
			values[i] = new(sql.NullTime)
		case activityassignment.FieldID, activityassignment.FieldActivityID, activityassignment.FieldPhysiotherapistID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActivityAssignment fields.
func (_m *ActivityAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activityassignment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case activityassignment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case activityassignment.FieldActivityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field activity_id", values[i])
			} else if value != nil {
				_m.ActivityID = *value
			}
		case activityassignment.FieldPhysiotherapistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field physiotherapist_id", values[i])
			} else if value != nil {
				_m.PhysiotherapistID = *value
			}
		case activityassignment.FieldAssignedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_by", values[i])
			} else if value.Valid {
				_m.AssignedBy = new(uuid.UUID)
				*_m.AssignedBy = *value.S.(*uuid.UUID)
			}
		case activityassignment.FieldAssignedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_at", values[i])
			} else if value.Valid {
				_m.AssignedAt = value.Time
			}
		case activityassignment.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActivityAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *ActivityAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActivityAssignment.
// Note that you need to call ActivityAssignment.Unwrap() before calling this method if this ActivityAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActivityAssignment) Update() *ActivityAssignmentUpdateOne {
	return NewActivityAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActivityAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActivityAssignment) Unwrap() *ActivityAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ActivityAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActivityAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("ActivityAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("activity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActivityID))
	builder.WriteString(", ")
	builder.WriteString("physiotherapist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhysiotherapistID))
	builder.WriteString(", ")
	if v := _m.AssignedBy; v != nil {
		builder.WriteString("assigned_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("assigned_at=")
	builder.WriteString(_m.AssignedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// ActivityAssignments is a parsable slice of ActivityAssignment.
type ActivityAssignments []*ActivityAssignment
