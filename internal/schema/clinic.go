package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Clinic is the tenant root. Every domain row below carries a clinic_id and
// every query is scoped by it.
type Clinic struct {
	ent.Schema
}

func (Clinic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Comment("URL-friendly identifier for the clinic"),

		field.String("description").
			Optional().
			Nillable(),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("address").
			Optional().
			Nillable(),

		field.String("city").
			Optional().
			Nillable().
			MaxLen(100),

		field.Bool("is_active").Default(true),
	}
}

func (Clinic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug"),
	}
}
