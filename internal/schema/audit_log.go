package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of every mutating operation: who did
// what to which entity. Written best-effort; a failed write never fails the
// mutation it describes.
type AuditLog struct {
	ent.Schema
}

func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → clinics.id; nil for platform-level actions"),

		field.UUID("actor_user_id", uuid.UUID{}).
			Comment("FK → users.id of the caller"),

		field.String("actor_kind").
			MaxLen(30).
			NotEmpty(),

		field.String("action").
			MaxLen(60).
			NotEmpty().
			Comment(`verb, e.g. "appointment.create"`),

		field.String("entity").
			MaxLen(60).
			NotEmpty(),

		field.UUID("entity_id", uuid.UUID{}),

		field.JSON("metadata", map[string]any{}).
			Optional(),
	}
}

func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "created_at"),
		index.Fields("entity", "entity_id"),
	}
}
