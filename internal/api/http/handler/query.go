package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Alijeyrad/crm_backend/internal/service/cases"
)

const dateLayout = "2006-01-02"

// boardQuery parses the kanban query string. Bad ids and timestamps are
// reported per parameter.
func boardQuery(c fiber.Ctx) (cases.BoardRequest, map[string]string) {
	var (
		req  cases.BoardRequest
		errs = map[string]string{}
	)

	req.PipelineID = queryUUID(c, "pipeline_id", errs)
	req.Filter.AssignedTo = queryUUID(c, "assigned_to", errs)
	req.Filter.AccountID = queryUUID(c, "account", errs)
	req.Filter.TagID = queryUUID(c, "tags", errs)
	req.Filter.Priority = queryString(c, "priority")
	req.Filter.CaseType = queryString(c, "case_type")
	req.Filter.Search = strings.TrimSpace(c.Query("search"))
	req.Filter.CreatedFrom = queryTime(c, "created_at__gte", false, errs)
	req.Filter.CreatedTo = queryTime(c, "created_at__lte", true, errs)

	if len(errs) > 0 {
		return req, errs
	}
	return req, nil
}

func queryString(c fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

func queryUUID(c fiber.Ctx, key string, errs map[string]string) *uuid.UUID {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		errs[key] = "must be a valid UUID"
		return nil
	}
	return &id
}

// queryTime accepts RFC 3339 timestamps and plain dates. A plain date used as
// an upper bound covers the whole day.
func queryTime(c fiber.Ctx, key string, upper bool, errs map[string]string) *time.Time {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return &t
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		errs[key] = "must be an RFC 3339 timestamp or a YYYY-MM-DD date"
		return nil
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}

func paramUUID(c fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}
