package cases

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrPipelineNotFound = errors.New("pipeline not found")
	ErrStageNotFound    = errors.New("stage not found")
	ErrCaseNotFound     = errors.New("case not found")
	ErrAdminRequired    = errors.New("organization admin role required")
	ErrCaseAccessDenied = errors.New("you do not have permission to access this case")
	ErrPermissionDenied = errors.New("permission denied")
)

// ValidationError carries per-field messages for a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// fieldErrors collects validation failures across several fields.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// RuleError is a business rule refusal the caller can fix, such as a full
// stage or a delete blocked by linked cases. Count is the number of cases
// involved.
type RuleError struct {
	Msg   string
	Count int
}

func (e *RuleError) Error() string { return e.Msg }

func wipLimitReached(stage string, limit, count int) *RuleError {
	return &RuleError{
		Msg:   fmt.Sprintf("stage %q has reached its WIP limit of %d", stage, limit),
		Count: count,
	}
}

func linkedCases(what string, count int) *RuleError {
	return &RuleError{
		Msg:   fmt.Sprintf("cannot delete %s: %d case(s) are linked to it", what, count),
		Count: count,
	}
}
