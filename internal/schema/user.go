package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// User is a login identity. Patients and physiotherapists link back to their
// user row; the role enum drives actor resolution in the auth middleware.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			MaxLen(255).
			NotEmpty().
			Unique(),

		field.String("password_hash").
			Sensitive().
			NotEmpty(),

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

		field.Enum("role").
			Values("patient", "practitioner", "clinic_admin", "super_admin"),

		field.UUID("clinic_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → clinics.id; nil for super admins"),

		field.Bool("is_active").Default(true),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("clinic_id", "role"),
	}
}
