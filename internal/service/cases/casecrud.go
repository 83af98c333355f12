package cases

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
)

func (s *caseService) CreateCase(ctx context.Context, a model.Actor, req CreateCaseRequest) (*Card, error) {
	if err := s.policy.Require(ctx, a, authorize.ResourceCase, authorize.ActionCreate, ErrPermissionDenied); err != nil {
		return nil, err
	}

	c := &model.Case{
		OrgID:       a.OrgID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      cmp.Or(req.Status, model.StatusNew),
		Priority:    cmp.Or(req.Priority, model.PriorityNormal),
		CaseType:    cmp.Or(req.CaseType, model.CaseTypeQuestion),
		AccountID:   req.AccountID,
		CreatedBy:   a.UserID,
		Assignees:   uniqueIDs(req.Assignees),
		Tags:        uniqueIDs(req.Tags),
	}

	var created *model.Case
	err := s.st.InTx(ctx, func(ctx context.Context, tx store.Store) error {
		if err := validateCase(ctx, tx, c); err != nil {
			return err
		}
		if req.StageID != nil {
			if err := s.enterStage(ctx, tx, c, *req.StageID); err != nil {
				if errors.Is(err, ErrStageNotFound) {
					return invalid("stage_id", "stage does not exist in this organization")
				}
				return err
			}
		}

		var err error
		created, err = tx.CreateCase(ctx, c)
		if err != nil {
			return fmt.Errorf("create case: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	card := toCard(created)
	return &card, nil
}

func validateCase(ctx context.Context, tx store.Store, c *model.Case) error {
	errs := fieldErrors{}
	switch {
	case c.Name == "":
		errs.add("name", "this field is required")
	case len(c.Name) > 255:
		errs.add("name", "must be at most 255 characters")
	}
	if !model.IsStatus(c.Status) {
		errs.add("status", fmt.Sprintf("%q is not a valid status", c.Status))
	}
	if !model.IsPriority(c.Priority) {
		errs.add("priority", fmt.Sprintf("%q is not a valid priority", c.Priority))
	}
	if !model.IsCaseType(c.CaseType) {
		errs.add("case_type", fmt.Sprintf("%q is not a valid case type", c.CaseType))
	}

	if c.AccountID != nil {
		ok, err := tx.AccountExists(ctx, c.OrgID, *c.AccountID)
		if err != nil {
			return fmt.Errorf("check account: %w", err)
		}
		if !ok {
			errs.add("account_id", "account does not exist in this organization")
		}
	}
	if len(c.Tags) > 0 {
		n, err := tx.CountTags(ctx, c.OrgID, c.Tags)
		if err != nil {
			return fmt.Errorf("count tags: %w", err)
		}
		if n != len(c.Tags) {
			errs.add("tags", "one or more tags do not exist in this organization")
		}
	}
	if len(c.Assignees) > 0 {
		n, err := tx.CountMembers(ctx, c.OrgID, c.Assignees)
		if err != nil {
			return fmt.Errorf("count members: %w", err)
		}
		if n != len(c.Assignees) {
			errs.add("assigned_to", "every assignee must be an active member of this organization")
		}
	}
	return errs.err()
}

func (s *caseService) GetCase(ctx context.Context, a model.Actor, caseID uuid.UUID) (*Card, error) {
	c, err := s.st.GetCase(ctx, a.OrgID, caseID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}
	if err := s.policy.AuthorizeCase(ctx, a, c, authorize.ActionRead); err != nil {
		return nil, err
	}
	card := toCard(c)
	return &card, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
