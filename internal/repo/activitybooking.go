// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activitybooking"
	"github.com/google/uuid"
)

// ActivityBooking is the model entity for the ActivityBooking schema.
type ActivityBooking struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → activities.id
	ActivityID uuid.UUID `json:"activity_id,omitempty"`
	// FK → activity_schedules.id; the occurrence booked
	ScheduleID uuid.UUID `json:"schedule_id,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Calendar day of the occurrence; time-of-day comes from the schedule
	SessionDate time.Time `json:"session_date,omitempty"`
	// Status holds the value of the "status" field.
	Status activitybooking.Status `json:"status,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	// FK → users.id; who cancelled the booking
	CancelledBy *uuid.UUID `json:"cancelled_by,omitempty"`
	// CancellationReason holds the value of the "cancellation_reason" field.
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes        *string `json:"notes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActivityBooking) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activitybooking.FieldCancelledBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case activitybooking.FieldStatus, activitybooking.FieldCancellationReason, activitybooking.FieldNotes:
			values[i] = new(sql.NullString)
		case activitybooking.FieldCreatedAt, activitybooking.FieldUpdatedAt, activitybooking.FieldSessionDate, activitybooking.FieldCancelledAt:
			values[i] = new(sql.NullTime)
		case activitybooking.FieldID, activitybooking.FieldActivityID, activitybooking.FieldScheduleID, activitybooking.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActivityBooking fields.
func (_m *ActivityBooking) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activitybooking.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case activitybooking.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case activitybooking.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case activitybooking.FieldActivityID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field activity_id", values[i])
			} else if value != nil {
				_m.ActivityID = *value
			}
		case activitybooking.FieldScheduleID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_id", values[i])
			} else if value != nil {
				_m.ScheduleID = *value
			}
		case activitybooking.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case activitybooking.FieldSessionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_date", values[i])
			} else if value.Valid {
				_m.SessionDate = value.Time
			}
		case activitybooking.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = activitybooking.Status(value.String)
			}
		case activitybooking.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				_m.CancelledAt = new(time.Time)
				*_m.CancelledAt = value.Time
			}
		case activitybooking.FieldCancelledBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_by", values[i])
			} else if value.Valid {
				_m.CancelledBy = new(uuid.UUID)
				*_m.CancelledBy = *value.S.(*uuid.UUID)
			}
		case activitybooking.FieldCancellationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cancellation_reason", values[i])
			} else if value.Valid {
				_m.CancellationReason = new(string)
				*_m.CancellationReason = value.String
			}
		case activitybooking.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActivityBooking.
// This includes values selected through modifiers, order, etc.
func (_m *ActivityBooking) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActivityBooking.
// Note that you need to call ActivityBooking.Unwrap() before calling this method if this ActivityBooking
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActivityBooking) Update() *ActivityBookingUpdateOne {
	return NewActivityBookingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActivityBooking entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActivityBooking) Unwrap() *ActivityBooking {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ActivityBooking is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActivityBooking) String() string {
	var builder strings.Builder
	builder.WriteString("ActivityBooking(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("activity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActivityID))
	builder.WriteString(", ")
	builder.WriteString("schedule_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduleID))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("session_date=")
	builder.WriteString(_m.SessionDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CancelledBy; v != nil {
		builder.WriteString("cancelled_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CancellationReason; v != nil {
		builder.WriteString("cancellation_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ActivityBookings is a parsable slice of ActivityBooking.
type ActivityBookings []*ActivityBooking
