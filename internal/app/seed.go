package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store/memstore"
)

// SeedDemo fills an empty memory store with one active organization, an
// admin member and a pipeline with the default stages.
func SeedDemo(ctx context.Context, ms *memstore.Store, cfg config.DemoConfig) error {
	orgID, err := demoID(cfg.OrgID)
	if err != nil {
		return fmt.Errorf("demo.org_id: %w", err)
	}
	userID, err := demoID(cfg.UserID)
	if err != nil {
		return fmt.Errorf("demo.user_id: %w", err)
	}

	ms.PutOrganization(&model.Organization{ID: orgID, Name: "Demo", IsActive: true})
	ms.PutUser(&model.User{ID: userID, Email: "admin@demo.local", Name: "Demo Admin"})
	ms.PutMember(&model.Member{OrgID: orgID, UserID: userID, Role: model.RoleAdmin, IsActive: true})

	p := &model.Pipeline{OrgID: orgID, Name: "Support Pipeline", IsActive: true, CreatedBy: userID}
	if _, err := ms.CreatePipeline(ctx, p, model.DefaultStages(p)); err != nil {
		return fmt.Errorf("create demo pipeline: %w", err)
	}

	slog.Info("demo data seeded", "org_id", orgID, "user_id", userID)
	return nil
}

func demoID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.NewV7()
	}
	return uuid.Parse(s)
}
