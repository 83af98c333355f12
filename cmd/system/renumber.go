package system

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/service/cases"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/internal/store/entstore"
	"github.com/Alijeyrad/crm_backend/pkg/database"
)

func NewRenumberCommand() *cobra.Command {
	var orgFlag, pipelineFlag string

	cmd := &cobra.Command{
		Use:   "renumber",
		Short: "Rewrite kanban orders to evenly spaced values",
		Long: `Rewrite the kanban_order of every case in a column to step, 2*step, ...
keeping the current board order.

Without --pipeline the six status columns of the organization are renumbered,
with it every stage column of that pipeline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, err := uuid.Parse(orgFlag)
			if err != nil {
				return fmt.Errorf("--org: %w", err)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Kanban.Store != config.StorePostgres {
				return fmt.Errorf("renumber needs the postgres store, kanban.store is %q", cfg.Kanban.Store)
			}

			client, _, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			st := entstore.New(client)
			svc := cases.New(st, nil, nil, cfg.Kanban)

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
			defer cancel()

			cols, err := columnsToRenumber(ctx, st, orgID, pipelineFlag)
			if err != nil {
				return err
			}

			total := 0
			for _, col := range cols {
				n, err := svc.RenumberColumn(ctx, orgID, col)
				if err != nil {
					return fmt.Errorf("renumber %s: %w", col, err)
				}
				fmt.Printf("%s: %d case(s) renumbered\n", col, n)
				total += n
			}
			fmt.Printf("Done, %d case(s) renumbered.\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&orgFlag, "org", "", "organization id (required)")
	cmd.Flags().StringVar(&pipelineFlag, "pipeline", "", "pipeline id, renumbers its stage columns")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}

func columnsToRenumber(ctx context.Context, st store.Store, orgID uuid.UUID, pipeline string) ([]model.Column, error) {
	if pipeline == "" {
		cols := make([]model.Column, 0, len(model.Statuses))
		for _, s := range model.Statuses {
			cols = append(cols, model.StatusColumn(s))
		}
		return cols, nil
	}

	pipelineID, err := uuid.Parse(pipeline)
	if err != nil {
		return nil, fmt.Errorf("--pipeline: %w", err)
	}
	stages, err := st.ListStages(ctx, orgID, pipelineID)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	cols := make([]model.Column, 0, len(stages))
	for _, s := range stages {
		cols = append(cols, model.StageColumn(s.ID))
	}
	return cols, nil
}
