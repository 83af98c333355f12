// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// CasePipeline is the predicate function for casepipeline builders.
type CasePipeline func(*sql.Selector)

// CaseStage is the predicate function for casestage builders.
type CaseStage func(*sql.Selector)

// Membership is the predicate function for membership builders.
type Membership func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// SupportCase is the predicate function for supportcase builders.
type SupportCase func(*sql.Selector)

// Tag is the predicate function for tag builders.
type Tag func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
