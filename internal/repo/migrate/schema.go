// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_organization_id",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
		},
	}
	// CasePipelinesColumns holds the columns for the "case_pipelines" table.
	CasePipelinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeUUID},
	}
	// CasePipelinesTable holds the schema information for the "case_pipelines" table.
	CasePipelinesTable = &schema.Table{
		Name:       "case_pipelines",
		Columns:    CasePipelinesColumns,
		PrimaryKey: []*schema.Column{CasePipelinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "casepipeline_organization_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{CasePipelinesColumns[1], CasePipelinesColumns[5]},
			},
		},
	}
	// CaseStagesColumns holds the columns for the "case_stages" table.
	CaseStagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "order", Type: field.TypeInt, Default: 0},
		{Name: "color", Type: field.TypeString, Size: 7, Default: "#6B7280"},
		{Name: "stage_type", Type: field.TypeEnum, Enums: []string{"open", "in_progress", "completed", "rejected"}, Default: "open"},
		{Name: "maps_to_status", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "wip_limit", Type: field.TypeInt, Nullable: true},
		{Name: "created_by", Type: field.TypeUUID},
		{Name: "pipeline_id", Type: field.TypeUUID},
	}
	// CaseStagesTable holds the schema information for the "case_stages" table.
	CaseStagesTable = &schema.Table{
		Name:       "case_stages",
		Columns:    CaseStagesColumns,
		PrimaryKey: []*schema.Column{CaseStagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_stages_case_pipelines_stages",
				Columns:    []*schema.Column{CaseStagesColumns[11]},
				RefColumns: []*schema.Column{CasePipelinesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "casestage_pipeline_id_name",
				Unique:  true,
				Columns: []*schema.Column{CaseStagesColumns[11], CaseStagesColumns[4]},
			},
			{
				Name:    "casestage_pipeline_id_order",
				Unique:  false,
				Columns: []*schema.Column{CaseStagesColumns[11], CaseStagesColumns[5]},
			},
		},
	}
	// MembershipsColumns holds the columns for the "memberships" table.
	MembershipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"ADMIN", "USER"}, Default: "USER"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// MembershipsTable holds the schema information for the "memberships" table.
	MembershipsTable = &schema.Table{
		Name:       "memberships",
		Columns:    MembershipsColumns,
		PrimaryKey: []*schema.Column{MembershipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "membership_organization_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{MembershipsColumns[1], MembershipsColumns[4]},
			},
			{
				Name:    "membership_user_id",
				Unique:  false,
				Columns: []*schema.Column{MembershipsColumns[4]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// CasesColumns holds the columns for the "cases" table.
	CasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"New", "Assigned", "Pending", "Closed", "Rejected", "Duplicate"}, Default: "New"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"Low", "Normal", "High", "Urgent"}, Default: "Normal"},
		{Name: "case_type", Type: field.TypeEnum, Enums: []string{"Question", "Incident", "Problem"}, Default: "Question"},
		{Name: "account_id", Type: field.TypeUUID, Nullable: true},
		{Name: "kanban_order", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric"}},
		{Name: "created_by", Type: field.TypeUUID},
		{Name: "stage_id", Type: field.TypeUUID, Nullable: true},
	}
	// CasesTable holds the schema information for the "cases" table.
	CasesTable = &schema.Table{
		Name:       "cases",
		Columns:    CasesColumns,
		PrimaryKey: []*schema.Column{CasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cases_case_stages_cases",
				Columns:    []*schema.Column{CasesColumns[12]},
				RefColumns: []*schema.Column{CaseStagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "supportcase_organization_id_status_kanban_order",
				Unique:  false,
				Columns: []*schema.Column{CasesColumns[1], CasesColumns[6], CasesColumns[10]},
			},
			{
				Name:    "supportcase_stage_id_kanban_order",
				Unique:  false,
				Columns: []*schema.Column{CasesColumns[12], CasesColumns[10]},
			},
			{
				Name:    "supportcase_created_by",
				Unique:  false,
				Columns: []*schema.Column{CasesColumns[11]},
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 100},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tag_organization_id_name",
				Unique:  true,
				Columns: []*schema.Column{TagsColumns[1], TagsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "name", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "is_superuser", Type: field.TypeBool, Default: false},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// CaseAssigneesColumns holds the columns for the "case_assignees" table.
	CaseAssigneesColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// CaseAssigneesTable holds the schema information for the "case_assignees" table.
	CaseAssigneesTable = &schema.Table{
		Name:       "case_assignees",
		Columns:    CaseAssigneesColumns,
		PrimaryKey: []*schema.Column{CaseAssigneesColumns[0], CaseAssigneesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_assignees_case_id",
				Columns:    []*schema.Column{CaseAssigneesColumns[0]},
				RefColumns: []*schema.Column{CasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "case_assignees_user_id",
				Columns:    []*schema.Column{CaseAssigneesColumns[1]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// CaseTagsColumns holds the columns for the "case_tags" table.
	CaseTagsColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeUUID},
		{Name: "tag_id", Type: field.TypeUUID},
	}
	// CaseTagsTable holds the schema information for the "case_tags" table.
	CaseTagsTable = &schema.Table{
		Name:       "case_tags",
		Columns:    CaseTagsColumns,
		PrimaryKey: []*schema.Column{CaseTagsColumns[0], CaseTagsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_tags_case_id",
				Columns:    []*schema.Column{CaseTagsColumns[0]},
				RefColumns: []*schema.Column{CasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "case_tags_tag_id",
				Columns:    []*schema.Column{CaseTagsColumns[1]},
				RefColumns: []*schema.Column{TagsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		CasePipelinesTable,
		CaseStagesTable,
		MembershipsTable,
		OrganizationsTable,
		CasesTable,
		TagsTable,
		UsersTable,
		CaseAssigneesTable,
		CaseTagsTable,
	}
)

func init() {
	CasePipelinesTable.Annotation = &entsql.Annotation{
		Table: "case_pipelines",
	}
	CaseStagesTable.ForeignKeys[0].RefTable = CasePipelinesTable
	CaseStagesTable.Annotation = &entsql.Annotation{
		Table: "case_stages",
	}
	CasesTable.ForeignKeys[0].RefTable = CaseStagesTable
	CasesTable.Annotation = &entsql.Annotation{
		Table: "cases",
	}
	CaseAssigneesTable.ForeignKeys[0].RefTable = CasesTable
	CaseAssigneesTable.ForeignKeys[1].RefTable = UsersTable
	CaseTagsTable.ForeignKeys[0].RefTable = CasesTable
	CaseTagsTable.ForeignKeys[1].RefTable = TagsTable
}
