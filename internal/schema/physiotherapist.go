package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Physiotherapist is a practitioner profile within a clinic.
type Physiotherapist struct {
	ent.Schema
}

func (Physiotherapist) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Physiotherapist) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("specialty").
			Optional().
			Nillable().
			MaxLen(150),

		field.String("license_number").
			Optional().
			Nillable().
			MaxLen(50),

		field.Text("bio").
			Optional().
			Nillable(),

		field.Bool("is_active").Default(true),
	}
}

func (Physiotherapist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "is_active"),
	}
}
