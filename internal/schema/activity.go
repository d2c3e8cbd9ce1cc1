package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Activity is a group session type (hydrotherapy, pilates, back school) with
// a participant cap. Its weekly occurrences live in ActivitySchedule.
type Activity struct {
	ent.Schema
}

func (Activity) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("physiotherapist_id", uuid.UUID{}).
			Comment("FK → physiotherapists.id; the physiotherapist responsible for the activity"),

		field.String("name").
			MaxLen(150).
			NotEmpty(),

		field.Text("description").
			Optional().
			Nillable(),

		field.Enum("type").
			Values("pilates", "yoga", "rehabilitation", "functional_training", "other").
			Default("other"),

		field.Enum("difficulty").
			Values("beginner", "intermediate", "advanced").
			Default("beginner"),

		field.Int("max_participants").
			Positive(),

		field.Int("duration_minutes").
			Min(15).
			Max(240),

		field.Int64("price_cents").
			Optional().
			Nillable().
			Comment("Price per session in euro cents"),

		field.String("location").
			Optional().
			Nillable().
			MaxLen(150),

		field.Bool("is_active").Default(true),
	}
}

func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "is_active"),
		index.Fields("physiotherapist_id"),
	}
}

// ActivitySchedule is one recurring weekly occurrence of an activity. Times
// are "HH:MM" strings compared lexicographically. Deleting a schedule is a
// soft operation so historical bookings keep their reference.
type ActivitySchedule struct {
	ent.Schema
}

func (ActivitySchedule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ActivitySchedule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("activity_id", uuid.UUID{}).
			Comment("FK → activities.id"),

		field.Enum("day_of_week").
			Values("sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"),

		field.String("start_time").
			MaxLen(5).
			NotEmpty(),

		field.String("end_time").
			MaxLen(5).
			NotEmpty(),

		field.Time("start_date").
			Optional().
			Nillable().
			Comment("First calendar day the schedule applies; open-ended when unset"),

		field.Time("end_date").
			Optional().
			Nillable().
			Comment("Last calendar day the schedule applies; open-ended when unset"),

		field.Bool("is_active").Default(true),
	}
}

func (ActivitySchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activity_id", "day_of_week"),
	}
}

// ActivityAssignment links a physiotherapist to an activity they run. The
// conflict validator treats active assignments' occurrences as busy time.
// Unassigning deactivates the row so the assignment history survives.
type ActivityAssignment struct {
	ent.Schema
}

func (ActivityAssignment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ActivityAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("activity_id", uuid.UUID{}).
			Comment("FK → activities.id"),

		field.UUID("physiotherapist_id", uuid.UUID{}).
			Comment("FK → physiotherapists.id"),

		field.UUID("assigned_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id; who made the assignment"),

		field.Time("assigned_at"),

		field.Bool("is_active").Default(true),
	}
}

func (ActivityAssignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activity_id", "physiotherapist_id").
			Unique(),
		index.Fields("physiotherapist_id", "is_active"),
	}
}

// ActivityBooking reserves one patient seat in an activity on a calendar day.
// Capacity counts rows with status != cancelled for (activity, session day).
type ActivityBooking struct {
	ent.Schema
}

func (ActivityBooking) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ActivityBooking) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("activity_id", uuid.UUID{}).
			Comment("FK → activities.id"),

		field.UUID("schedule_id", uuid.UUID{}).
			Comment("FK → activity_schedules.id; the occurrence booked"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Time("session_date").
			Comment("Calendar day of the occurrence; time-of-day comes from the schedule"),

		field.Enum("status").
			Values("pending", "confirmed", "attended", "cancelled", "no_show").
			Default("confirmed"),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.UUID("cancelled_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id; who cancelled the booking"),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (ActivityBooking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activity_id", "session_date"),
		index.Fields("patient_id", "status"),
		index.Fields("schedule_id"),
	}
}
