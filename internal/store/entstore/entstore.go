// Package entstore implements store.Store on the generated ent client.
package entstore

import (
	"context"
	"fmt"

	"github.com/Alijeyrad/crm_backend/internal/model"
	"github.com/Alijeyrad/crm_backend/internal/repo"
	entaccount "github.com/Alijeyrad/crm_backend/internal/repo/account"
	entmember "github.com/Alijeyrad/crm_backend/internal/repo/membership"
	enttag "github.com/Alijeyrad/crm_backend/internal/repo/tag"
	"github.com/Alijeyrad/crm_backend/internal/store"

	"github.com/google/uuid"
)

type Store struct {
	client *repo.Client
	inTx   bool
}

func New(client *repo.Client) *Store {
	return &Store{client: client}
}

var _ store.Store = (*Store)(nil)

func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx store.Store) error) (err error) {
	if s.inTx {
		return fn(ctx, s)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(ctx, &Store{client: tx.Client(), inTx: true}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// wrap maps ent errors onto the store sentinels.
func wrap(op string, err error) error {
	switch {
	case repo.IsNotFound(err):
		return store.ErrNotFound
	case repo.IsConstraintError(err):
		return fmt.Errorf("%s: %w", op, store.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ---------------------------------------------------------------------------
// Tenancy
// ---------------------------------------------------------------------------

func (s *Store) GetOrganization(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	o, err := s.client.Organization.Get(ctx, id)
	if err != nil {
		return nil, wrap("get organization", err)
	}
	return &model.Organization{
		ID:        o.ID,
		Name:      o.Name,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
	}, nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		return nil, wrap("get user", err)
	}
	return &model.User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		IsSuperuser: u.IsSuperuser,
	}, nil
}

func (s *Store) GetMember(ctx context.Context, orgID, userID uuid.UUID) (*model.Member, error) {
	m, err := s.client.Membership.Query().
		Where(entmember.OrganizationID(orgID), entmember.UserID(userID)).
		Only(ctx)
	if err != nil {
		return nil, wrap("get membership", err)
	}
	return &model.Member{
		OrgID:    m.OrganizationID,
		UserID:   m.UserID,
		Role:     string(m.Role),
		IsActive: m.IsActive,
	}, nil
}

func (s *Store) CountMembers(ctx context.Context, orgID uuid.UUID, userIDs []uuid.UUID) (int, error) {
	n, err := s.client.Membership.Query().
		Where(
			entmember.OrganizationID(orgID),
			entmember.UserIDIn(userIDs...),
			entmember.IsActive(true),
		).
		Count(ctx)
	if err != nil {
		return 0, wrap("count members", err)
	}
	return n, nil
}

func (s *Store) AccountExists(ctx context.Context, orgID, id uuid.UUID) (bool, error) {
	ok, err := s.client.Account.Query().
		Where(entaccount.ID(id), entaccount.OrganizationID(orgID)).
		Exist(ctx)
	if err != nil {
		return false, wrap("check account", err)
	}
	return ok, nil
}

func (s *Store) CountTags(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) (int, error) {
	n, err := s.client.Tag.Query().
		Where(enttag.IDIn(ids...), enttag.OrganizationID(orgID)).
		Count(ctx)
	if err != nil {
		return 0, wrap("count tags", err)
	}
	return n, nil
}
