package cases

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alijeyrad/crm_backend/pkg/events"
)

// SubjectCaseMoved is published, suffixed with the case id, after every
// committed move.
const SubjectCaseMoved = "case.moved"

type CaseMoved struct {
	CaseID      uuid.UUID       `json:"case_id"`
	OrgID       uuid.UUID       `json:"org_id"`
	FromStageID *uuid.UUID      `json:"from_stage_id"`
	ToStageID   *uuid.UUID      `json:"to_stage_id"`
	FromStatus  string          `json:"from_status"`
	ToStatus    string          `json:"to_status"`
	KanbanOrder decimal.Decimal `json:"kanban_order"`
	MovedBy     uuid.UUID       `json:"moved_by"`
	MovedAt     time.Time       `json:"moved_at"`
}

func caseMovedSubject(id uuid.UUID) string {
	return events.Subject("", SubjectCaseMoved, id.String())
}
