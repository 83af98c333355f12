package schema_test

import (
	"testing"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadGraph(t *testing.T) *gen.Graph {
	t.Helper()
	g, err := entc.LoadGraph("./", &gen.Config{
		Package:  "github.com/Alijeyrad/crm_backend/internal/repo",
		Features: []gen.Feature{gen.FeatureLock},
	})
	require.NoError(t, err)
	return g
}

func edgeOf(t *testing.T, g *gen.Graph, node, name string) *gen.Edge {
	t.Helper()
	for _, n := range g.Nodes {
		if n.Name != node {
			continue
		}
		for _, e := range n.Edges {
			if e.Name == name {
				return e
			}
		}
	}
	t.Fatalf("edge %s.%s not found", node, name)
	return nil
}

func TestCaseSetsAreManyToMany(t *testing.T) {
	g := loadGraph(t)

	tests := []struct {
		node, edge string
		table      string
		columns    []string
	}{
		{"SupportCase", "assignees", "case_assignees", []string{"case_id", "user_id"}},
		{"User", "assigned_cases", "case_assignees", []string{"case_id", "user_id"}},
		{"SupportCase", "tags", "case_tags", []string{"case_id", "tag_id"}},
		{"Tag", "cases", "case_tags", []string{"case_id", "tag_id"}},
	}
	for _, tt := range tests {
		t.Run(tt.node+"."+tt.edge, func(t *testing.T) {
			e := edgeOf(t, g, tt.node, tt.edge)
			assert.True(t, e.M2M(), "got %s", e.Rel.Type)
			assert.Equal(t, tt.table, e.Rel.Table)
			assert.Equal(t, tt.columns, e.Rel.Columns)
		})
	}
}

func TestCaseStageEdge(t *testing.T) {
	g := loadGraph(t)

	e := edgeOf(t, g, "SupportCase", "stage")
	assert.True(t, e.M2O(), "got %s", e.Rel.Type)
	assert.Equal(t, "stage_id", e.Field().Name)

	e = edgeOf(t, g, "CaseStage", "pipeline")
	assert.True(t, e.M2O(), "got %s", e.Rel.Type)
}

func TestOrgScopedTables(t *testing.T) {
	g := loadGraph(t)

	scoped := map[string]bool{
		"SupportCase": true, "CasePipeline": true, "CaseStage": true,
		"Membership": true, "Account": true, "Tag": true,
	}
	for _, n := range g.Nodes {
		if !scoped[n.Name] {
			continue
		}
		f, ok := n.FieldBy(func(f *gen.Field) bool { return f.Name == "organization_id" })
		if assert.True(t, ok, n.Name) {
			assert.True(t, f.Immutable, n.Name)
		}
	}
}
