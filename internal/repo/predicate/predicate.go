// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// ActivityAssignment is the predicate function for activityassignment builders.
type ActivityAssignment func(*sql.Selector)

// ActivityBooking is the predicate function for activitybooking builders.
type ActivityBooking func(*sql.Selector)

// ActivitySchedule is the predicate function for activityschedule builders.
type ActivitySchedule func(*sql.Selector)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Availability is the predicate function for availability builders.
type Availability func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Physiotherapist is the predicate function for physiotherapist builders.
type Physiotherapist func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
