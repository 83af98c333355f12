package cases

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/crm_backend/internal/model"
)

func TestMidpoint(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"1000", "2000", "1500"},
		{"1", "2", "1.5"},
		{"-1000", "0", "-500"},
		{"1500", "1500.000001", "1500.0000005"},
	}
	for _, tt := range tests {
		got := midpoint(dec(tt.a), dec(tt.b))
		assert.Truef(t, got.Equal(dec(tt.want)), "midpoint(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
	}
}

func TestFractionDigits(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want int32
	}{
		{dec("1500"), 0},
		{decimal.New(15000, -1), 0},
		{dec("1.5"), 1},
		{dec("0.125"), 3},
		{dec("-0.25"), 2},
		{dec("1000.1000"), 1},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, fractionDigits(tt.in), "fractionDigits(%s)", tt.in)
	}
}

func TestNeedsCompaction(t *testing.T) {
	assert.False(t, NeedsCompaction(dec("1500.5"), 3))
	assert.False(t, NeedsCompaction(dec("1500.125"), 3))
	assert.True(t, NeedsCompaction(dec("1500.0625"), 3))
	assert.False(t, NeedsCompaction(dec("1500.0625"), 0))
}

func TestMoveAppendSpacing(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)
	st := f.stage(p.ID, "Todo", nil)

	ids := f.seedColumn(st.ID, 4)

	for i, id := range ids {
		want := decimal.NewFromInt(int64(i+1) * 1000)
		assert.Truef(t, f.order(id).Equal(want), "case %d order = %s, want %s", i, f.order(id), want)
	}
}

func TestMoveBetweenNeighbours(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)
	st := f.stage(p.ID, "Todo", nil)
	ids := f.seedColumn(st.ID, 2)
	a, b := ids[0], ids[1]

	c := f.newCase(f.admin, "between", nil)
	moved := f.mustMove(c.ID, MoveRequest{
		StageID:     model.Some(st.ID),
		AboveCaseID: &a,
		BelowCaseID: &b,
	})

	assert.True(t, moved.KanbanOrder.Equal(dec("1500")))
	assert.True(t, f.order(a).LessThan(moved.KanbanOrder))
	assert.True(t, moved.KanbanOrder.LessThan(f.order(b)))

	// Repeated insertion into the same gap keeps refining.
	again := f.newCase(f.admin, "again", nil)
	moved2 := f.mustMove(again.ID, MoveRequest{
		StageID:     model.Some(st.ID),
		AboveCaseID: &a,
		BelowCaseID: &c.ID,
	})
	assert.True(t, moved2.KanbanOrder.Equal(dec("1250")))
}

func TestMoveAboveOnly(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)
	st := f.stage(p.ID, "Todo", nil)
	ids := f.seedColumn(st.ID, 2)

	t.Run("midpoint with the next case", func(t *testing.T) {
		c := f.newCase(f.admin, "x", nil)
		moved := f.mustMove(c.ID, MoveRequest{StageID: model.Some(st.ID), AboveCaseID: &ids[0]})
		assert.True(t, moved.KanbanOrder.Equal(dec("1500")), "got %s", moved.KanbanOrder)
	})

	t.Run("step after the last case", func(t *testing.T) {
		c := f.newCase(f.admin, "y", nil)
		moved := f.mustMove(c.ID, MoveRequest{StageID: model.Some(st.ID), AboveCaseID: &ids[1]})
		assert.True(t, moved.KanbanOrder.Equal(dec("3000")), "got %s", moved.KanbanOrder)
	})
}

func TestMoveBelowOnly(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)
	st := f.stage(p.ID, "Todo", nil)
	ids := f.seedColumn(st.ID, 2)

	t.Run("step before the first case", func(t *testing.T) {
		c := f.newCase(f.admin, "x", nil)
		moved := f.mustMove(c.ID, MoveRequest{StageID: model.Some(st.ID), BelowCaseID: &ids[0]})
		assert.True(t, moved.KanbanOrder.Equal(dec("0")), "got %s", moved.KanbanOrder)
	})

	// below is not first: the result must stay between below and the case
	// before it instead of colliding with earlier cards.
	t.Run("midpoint with the previous case", func(t *testing.T) {
		c := f.newCase(f.admin, "y", nil)
		moved := f.mustMove(c.ID, MoveRequest{StageID: model.Some(st.ID), BelowCaseID: &ids[1]})
		assert.True(t, moved.KanbanOrder.Equal(dec("1500")), "got %s", moved.KanbanOrder)
		assert.True(t, f.order(ids[0]).LessThan(moved.KanbanOrder))
		assert.True(t, moved.KanbanOrder.LessThan(f.order(ids[1])))
	})
}

func TestMoveExplicitOrder(t *testing.T) {
	f := newFixture(t)
	c := f.newCase(f.admin, "x", nil)

	moved := f.mustMove(c.ID, MoveRequest{KanbanOrder: ptr(dec("42.125"))})

	assert.True(t, moved.KanbanOrder.Equal(dec("42.125")))
	assert.Equal(t, model.StatusNew, moved.Status)
	assert.Nil(t, moved.StageID)
}

func TestMoveNeighbourLookupSkipsMovedCase(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline("Support", false)
	st := f.stage(p.ID, "Todo", nil)
	ids := f.seedColumn(st.ID, 3)

	// Moving the first card under the last one must not see its own old
	// position as a neighbour.
	moved := f.mustMove(ids[0], MoveRequest{AboveCaseID: &ids[2]})
	assert.True(t, moved.KanbanOrder.Equal(dec("4000")), "got %s", moved.KanbanOrder)

	// Re-appending the last card of a column keeps it last.
	moved = f.mustMove(ids[0], MoveRequest{StageID: model.Some(st.ID)})
	assert.True(t, moved.KanbanOrder.Equal(dec("4000")), "got %s", moved.KanbanOrder)
}

func TestMoveStatusColumnOrdering(t *testing.T) {
	f := newFixture(t)
	a := f.newCase(f.admin, "a", nil)
	b := f.newCase(f.admin, "b", nil)

	first := f.mustMove(a.ID, MoveRequest{Status: ptr(model.StatusPending)})
	second := f.mustMove(b.ID, MoveRequest{Status: ptr(model.StatusPending)})

	require.True(t, first.KanbanOrder.Equal(dec("1000")))
	require.True(t, second.KanbanOrder.Equal(dec("2000")))

	// A staged case with the same status is another column.
	p := f.pipeline("Support", false)
	st := f.stage(p.ID, "Todo", nil)
	c := f.newCase(f.admin, "c", &st.ID)
	f.mustMove(c.ID, MoveRequest{Status: ptr(model.StatusPending), KanbanOrder: ptr(dec("9000"))})

	d := f.newCase(f.admin, "d", nil)
	third := f.mustMove(d.ID, MoveRequest{Status: ptr(model.StatusPending)})
	assert.True(t, third.KanbanOrder.Equal(dec("3000")), "got %s", third.KanbanOrder)
}
