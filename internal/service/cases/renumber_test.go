package cases

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/internal/model"
)

func TestRenumberPipeline(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)
	st := f.stage(p.ID, "Todo", nil)
	ids := f.seedColumn(st.ID, 2)

	// Refine the gap between the two cards a few times.
	below := ids[1]
	for range 3 {
		c := f.newCase(f.admin, "wedge", nil)
		f.mustMove(c.ID, MoveRequest{StageID: model.Some(st.ID), AboveCaseID: &ids[0], BelowCaseID: &below})
		below = c.ID
	}

	before, err := f.svc.Board(f.ctx, f.admin, BoardRequest{PipelineID: &p.ID})
	require.NoError(t, err)
	wantOrder := cardIDs(&before.Columns[0])
	require.Len(t, wantOrder, 5)

	n, err := f.svc.RenumberPipeline(f.ctx, f.admin, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	after, err := f.svc.Board(f.ctx, f.admin, BoardRequest{PipelineID: &p.ID})
	require.NoError(t, err)
	assert.Equal(t, wantOrder, cardIDs(&after.Columns[0]))
	for i, card := range after.Columns[0].Cases {
		want := decimal.NewFromInt(int64(i+1) * 1000)
		assert.Truef(t, card.KanbanOrder.Equal(want), "card %d order = %s, want %s", i, card.KanbanOrder, want)
	}

	n, err = f.svc.RenumberPipeline(f.ctx, f.admin, p.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = f.svc.RenumberPipeline(f.ctx, f.user, p.ID)
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = f.svc.RenumberPipeline(f.ctx, f.admin, uuid.New())
	assert.ErrorIs(t, err, ErrPipelineNotFound)
}

func TestRenumberStatusColumn(t *testing.T) {
	f := newFixture(t)
	older := f.newCase(f.admin, "older", nil)
	newer := f.newCase(f.admin, "newer", nil)

	n, err := f.svc.RenumberColumn(f.ctx, f.org, model.StatusColumn(model.StatusNew))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Ties were shown newest first, and that order is now explicit.
	assert.True(t, f.order(newer.ID).Equal(dec("1000")))
	assert.True(t, f.order(older.ID).Equal(dec("2000")))
}
