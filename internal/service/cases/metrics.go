package cases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/Alijeyrad/crm_backend/internal/service/cases"

// Move rejection reasons.
const (
	rejectWIPLimit  = "wip_limit"
	rejectForbidden = "forbidden"
	rejectNotFound  = "not_found"
	rejectInvalid   = "invalid"
)

type boardMetrics struct {
	moves      metric.Int64Counter
	rejections metric.Int64Counter
	queries    metric.Int64Counter
}

// newBoardMetrics registers the counters on the global meter provider.
func newBoardMetrics() *boardMetrics {
	meter := otel.Meter(meterName)

	moves, _ := meter.Int64Counter(
		"crm_case_moves_total",
		metric.WithDescription("Cases moved on a board"),
		metric.WithUnit("{move}"),
	)
	rejections, _ := meter.Int64Counter(
		"crm_case_move_rejections_total",
		metric.WithDescription("Moves refused, by reason"),
		metric.WithUnit("{move}"),
	)
	queries, _ := meter.Int64Counter(
		"crm_kanban_board_queries_total",
		metric.WithDescription("Board read model queries, by mode"),
		metric.WithUnit("{query}"),
	)
	return &boardMetrics{moves: moves, rejections: rejections, queries: queries}
}

func (m *boardMetrics) moved(ctx context.Context, mode string) {
	if m.moves != nil {
		m.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", mode)))
	}
}

func (m *boardMetrics) rejected(ctx context.Context, reason string) {
	if m.rejections != nil {
		m.rejections.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	}
}

func (m *boardMetrics) queried(ctx context.Context, mode string) {
	if m.queries != nil {
		m.queries.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", mode)))
	}
}
