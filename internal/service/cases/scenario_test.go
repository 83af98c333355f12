package cases

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/internal/model"
)

func TestBoardScenario(t *testing.T) {
	f := newFixture(t)

	p := f.pipeline("Support", true)
	require.Len(t, p.Stages, 5)

	c1 := f.newCase(f.admin, "case 1", nil)
	c2 := f.newCase(f.admin, "case 2", nil)
	c3 := f.newCase(f.admin, "case 3", nil)

	b, err := f.svc.Board(f.ctx, f.admin, BoardRequest{})
	require.NoError(t, err)
	col := column(b, model.StatusNew)
	require.Equal(t, 3, col.CaseCount)
	for _, card := range col.Cases {
		assert.True(t, card.KanbanOrder.IsZero())
	}

	// Give #1 and #3 distinct positions, then drop #2 between them.
	f.mustMove(c1.ID, MoveRequest{Status: ptr(model.StatusNew)})
	f.mustMove(c3.ID, MoveRequest{Status: ptr(model.StatusNew)})
	moved := f.mustMove(c2.ID, MoveRequest{AboveCaseID: &c1.ID, BelowCaseID: &c3.ID})

	want := midpoint(f.order(c1.ID), f.order(c3.ID))
	assert.True(t, moved.KanbanOrder.Equal(want), "got %s, want %s", moved.KanbanOrder, want)

	b, err = f.svc.Board(f.ctx, f.admin, BoardRequest{})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{c1.ID, c2.ID, c3.ID}, cardIDs(column(b, model.StatusNew)))
}
