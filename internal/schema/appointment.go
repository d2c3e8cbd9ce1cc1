package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a validated one-on-one session between a physiotherapist and
// a patient. Rows are only inserted after the conflict validator passes.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("physiotherapist_id", uuid.UUID{}).
			Comment("FK → physiotherapists.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Enum("status").
			Values("pending", "confirmed", "completed", "cancelled").
			Default("pending"),

		field.Text("reason").
			Optional().
			Nillable().
			Comment("Reason for the visit, given at booking time"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.UUID("cancelled_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id; who cancelled the appointment"),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "physiotherapist_id", "start_time"),
		index.Fields("clinic_id", "patient_id"),
		index.Fields("physiotherapist_id", "status", "start_time"),
		index.Fields("patient_id", "status"),
	}
}
