package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification is an in-app message for one user, produced by the event
// workers on appointment and booking lifecycle changes.
type Notification struct {
	ent.Schema
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("type").
			MaxLen(60).
			NotEmpty().
			Comment(`e.g. "appointment_created", "booking_created"`),

		field.String("title").
			MaxLen(255).
			NotEmpty(),

		field.Text("body").
			Optional().
			Nillable(),

		field.JSON("data", map[string]any{}).
			Optional(),

		field.Bool("is_read").Default(false),

		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "is_read"),
		index.Fields("user_id", "created_at"),
	}
}
