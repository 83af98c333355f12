package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/service/cases"
	"github.com/Alijeyrad/crm_backend/pkg/events"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc      fx.Lifecycle
	NC      *nats.Conn
	Cfg     *config.Config
	CaseSvc cases.Service
}

func RegisterWorkers(p WorkerParams) {
	if p.NC == nil {
		slog.Info("workers: nats disabled, not subscribing")
		return
	}

	// Handlers outlive OnStart's ctx, so they run under one that OnStop cancels.
	runCtx, cancel := context.WithCancel(context.Background())

	var subs []*nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sub, err := startMoveWorker(runCtx, p.NC, p.Cfg, p.CaseSvc)
			if err != nil {
				return err
			}
			subs = append(subs, sub)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			for _, s := range subs {
				_ = s.Unsubscribe()
			}
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// move_worker: audit log and column compaction
// ---------------------------------------------------------------------------

func startMoveWorker(ctx context.Context, nc *nats.Conn, cfg *config.Config, svc cases.Service) (*nats.Subscription, error) {
	subject := events.Subject(cfg.Nats.SubjectPrefix, cases.SubjectCaseMoved, "*")
	w := moveWorker{svc: svc, scale: cfg.Kanban.CompactScale}

	sub, err := events.Subscribe(ctx, nc, subject, w.handle)
	if err != nil {
		slog.Error("move_worker: subscribe failed", "subject", subject, "err", err)
		return nil, err
	}

	slog.Info("move_worker: started", "subject", subject)
	return sub, nil
}

type moveWorker struct {
	svc   cases.Service
	scale int32
}

func (w moveWorker) handle(ctx context.Context, subject string, ev cases.CaseMoved) {
	slog.Info("move_worker: case moved",
		"case_id", ev.CaseID,
		"org_id", ev.OrgID,
		"from_status", ev.FromStatus,
		"to_status", ev.ToStatus,
		"kanban_order", ev.KanbanOrder.String(),
		"moved_by", ev.MovedBy,
	)

	if !cases.NeedsCompaction(ev.KanbanOrder, w.scale) {
		return
	}

	col := model.StatusColumn(ev.ToStatus)
	if ev.ToStageID != nil {
		col = model.StageColumn(*ev.ToStageID)
	}

	if ctx.Err() != nil {
		slog.Info("move_worker: shutting down, compaction skipped", "column", col.String())
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := w.svc.RenumberColumn(ctx, ev.OrgID, col)
	if err != nil {
		slog.Warn("move_worker: renumber failed", "column", col.String(), "err", err)
		return
	}
	slog.Info("move_worker: column renumbered", "column", col.String(), "changed", n)
}
