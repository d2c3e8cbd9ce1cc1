package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Availability is one weekday entry of a physiotherapist's recurring weekly
// template. Times are zero-padded "HH:MM" wall-clock strings; at most one
// entry exists per (physiotherapist, weekday).
type Availability struct {
	ent.Schema
}

func (Availability) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Availability) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("physiotherapist_id", uuid.UUID{}).
			Comment("FK → physiotherapists.id"),

		field.Enum("day_of_week").
			Values("sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"),

		field.String("start_time").
			MaxLen(5).
			NotEmpty().
			Comment(`"HH:MM", zero-padded 24-hour`),

		field.String("end_time").
			MaxLen(5).
			NotEmpty(),

		field.Bool("is_active").Default(true),
	}
}

func (Availability) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("physiotherapist_id", "day_of_week").
			Unique(),
		index.Fields("clinic_id"),
	}
}
