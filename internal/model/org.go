package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Membership roles.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type Organization struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

type User struct {
	ID          uuid.UUID
	Email       string
	Name        string
	IsSuperuser bool
}

type Member struct {
	OrgID    uuid.UUID
	UserID   uuid.UUID
	Role     string
	IsActive bool
}

type Account struct {
	ID    uuid.UUID
	OrgID uuid.UUID
	Name  string
}

type Tag struct {
	ID    uuid.UUID
	OrgID uuid.UUID
	Name  string
}

// Actor is the caller of an operation inside one organization.
type Actor struct {
	UserID      uuid.UUID
	OrgID       uuid.UUID
	Role        string
	IsSuperuser bool
}

// Nullable tells an absent JSON field apart from an explicit null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func Null[T any]() Nullable[T] { return Nullable[T]{Set: true} }

func Some[T any](v T) Nullable[T] { return Nullable[T]{Set: true, Value: &v} }
