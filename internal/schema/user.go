package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is the identity the case board sees. Credentials live with the
// identity service that issues tokens.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			MaxLen(255).
			Unique(),

		field.String("name").
			MaxLen(255).
			Default(""),

		field.Bool("is_superuser").
			Default(false).
			Comment("Platform operator, bypasses organization roles"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assigned_cases", SupportCase.Type).
			Ref("assignees"),
	}
}
