package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a clinic's patient record.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id; nil for patients without an account"),

		field.String("first_name").
			MaxLen(100).
			NotEmpty(),

		field.String("last_name").
			MaxLen(100).
			NotEmpty(),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable().
			Comment("Clinical notes, staff-visible only"),

		field.Bool("is_active").Default(true),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
		index.Fields("user_id"),
	}
}
