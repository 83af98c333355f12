package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Organization
// ---------------------------------------------------------------------------

type Organization struct {
	ent.Schema
}

func (Organization) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.Bool("is_active").Default(true),
	}
}

// ---------------------------------------------------------------------------
// Membership: user ↔ organization with role
// ---------------------------------------------------------------------------

type Membership struct {
	ent.Schema
}

func (Membership) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		OrgScopedMixin{},
		TimeStampedMixin{},
	}
}

func (Membership) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Enum("role").
			Values("ADMIN", "USER").
			Default("USER"),

		field.Bool("is_active").Default(true),
	}
}

func (Membership) Indexes() []ent.Index {
	return []ent.Index{
		// One membership per user and organization
		index.Fields("organization_id", "user_id").Unique(),
		index.Fields("user_id"),
	}
}

// ---------------------------------------------------------------------------
// Account, Tag: referenced by case filters
// ---------------------------------------------------------------------------

type Account struct {
	ent.Schema
}

func (Account) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		OrgScopedMixin{},
		TimeStampedMixin{},
	}
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255).
			NotEmpty(),
	}
}

func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
	}
}

type Tag struct {
	ent.Schema
}

func (Tag) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		OrgScopedMixin{},
		CreatedAtMixin{},
	}
}

func (Tag) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100).
			NotEmpty(),
	}
}

func (Tag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "name").Unique(),
	}
}

func (Tag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cases", SupportCase.Type).
			Ref("tags"),
	}
}
