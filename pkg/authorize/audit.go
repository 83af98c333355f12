package authorize

import (
	"context"
	"log/slog"
	"time"

	casbin "github.com/casbin/casbin/v2"

	"github.com/Alijeyrad/crm_backend/pkg/reqctx"
)

// AuditedAuthorization logs every decision and policy change of inner.
// Denials are warnings, allows are debug.
type AuditedAuthorization struct {
	inner  IAuthorization
	logger *slog.Logger
}

func NewAuditedAuthorization(inner IAuthorization, logger *slog.Logger) IAuthorization {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditedAuthorization{inner: inner, logger: logger.With("component", "authz")}
}

func (a *AuditedAuthorization) Enforce(ctx context.Context, subject PolicySubject, domain Domain, object Resource, action Action) (bool, error) {
	start := time.Now()
	allowed, err := a.inner.Enforce(ctx, subject, domain, object, action)

	attrs := append(requestAttrs(ctx),
		slog.String("subject", string(subject)),
		slog.String("domain", string(domain)),
		slog.String("resource", string(object)),
		slog.String("action", string(action)),
		slog.Bool("allowed", allowed),
		slog.Duration("took", time.Since(start)),
	)

	switch {
	case err != nil:
		a.logger.LogAttrs(ctx, slog.LevelError, "authz decision failed", append(attrs, slog.Any("error", err))...)
	case allowed:
		a.logger.LogAttrs(ctx, slog.LevelDebug, "authz decision", attrs...)
	default:
		a.logger.LogAttrs(ctx, slog.LevelWarn, "authz denied", attrs...)
	}
	return allowed, err
}

func (a *AuditedAuthorization) MustEnforce(ctx context.Context, subject PolicySubject, domain Domain, object Resource, action Action) error {
	return mustEnforce(ctx, a, subject, domain, object, action)
}

func (a *AuditedAuthorization) AddPermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error) {
	added, err := a.inner.AddPermission(ctx, role, domain, object, action, effect)

	attrs := []slog.Attr{
		slog.String("role", string(role)),
		slog.String("domain", string(domain)),
		slog.String("resource", string(object)),
		slog.String("action", string(action)),
		slog.String("effect", string(effect)),
		slog.Bool("added", added),
	}
	if err != nil {
		a.logger.LogAttrs(ctx, slog.LevelError, "authz policy change failed", append(attrs, slog.Any("error", err))...)
	} else {
		a.logger.LogAttrs(ctx, slog.LevelInfo, "authz policy changed", attrs...)
	}
	return added, err
}

func (a *AuditedAuthorization) Raw() *casbin.DistributedEnforcer {
	return a.inner.Raw()
}

func requestAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if rid := reqctx.RequestIDFromContext(ctx); rid != "" {
		attrs = append(attrs, slog.String("request_id", rid))
	}
	if org, ok := reqctx.OrgIDFromContext(ctx); ok {
		attrs = append(attrs, slog.String("org_id", org.String()))
	}
	if uid, ok := reqctx.UserIDFromContext(ctx); ok {
		attrs = append(attrs, slog.String("user_id", uid.String()))
	}
	return attrs
}
