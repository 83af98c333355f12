package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/Alijeyrad/crm_backend/internal/model"
)

// ---------------------------------------------------------------------------
// CasePipeline
// ---------------------------------------------------------------------------

type CasePipeline struct {
	ent.Schema
}

func (CasePipeline) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "case_pipelines"},
	}
}

func (CasePipeline) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		OrgScopedMixin{},
		TimeStampedMixin{},
	}
}

func (CasePipeline) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100).
			NotEmpty(),

		field.Bool("is_active").
			Default(true).
			Comment("Cleared by soft delete"),

		field.UUID("created_by", uuid.UUID{}),
	}
}

func (CasePipeline) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "is_active"),
	}
}

func (CasePipeline) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", CaseStage.Type),
	}
}

// ---------------------------------------------------------------------------
// CaseStage: one column of a pipeline
// ---------------------------------------------------------------------------

type CaseStage struct {
	ent.Schema
}

func (CaseStage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "case_stages"},
	}
}

func (CaseStage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		OrgScopedMixin{},
		TimeStampedMixin{},
	}
}

func (CaseStage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("pipeline_id", uuid.UUID{}).
			Comment("FK → case_pipelines.id"),

		field.String("name").
			MaxLen(100).
			NotEmpty(),

		field.Int("position").
			StorageKey("order").
			Default(0).
			NonNegative(),

		field.String("color").
			MaxLen(7).
			Match(model.ColorPattern).
			Default(model.DefaultStageColor),

		field.Enum("stage_type").
			Values(model.StageTypes...).
			Default(model.StageTypeOpen),

		field.String("maps_to_status").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("Case status set when a case enters the stage"),

		field.Int("wip_limit").
			Optional().
			Nillable().
			Positive().
			Comment("Maximum cases in the stage, null for unlimited"),

		field.UUID("created_by", uuid.UUID{}),
	}
}

func (CaseStage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pipeline_id", "name").Unique(),
		index.Fields("pipeline_id", "position"),
	}
}

func (CaseStage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pipeline", CasePipeline.Type).
			Ref("stages").
			Unique().
			Required().
			Field("pipeline_id"),
		edge.To("cases", SupportCase.Type),
	}
}
