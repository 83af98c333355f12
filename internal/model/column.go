package model

import "github.com/google/uuid"

// Column identifies where a case sits on a board: either a pipeline stage or,
// for cases without a stage, a status. The zero value is not a valid column.
type Column struct {
	stage  uuid.UUID
	status string
}

func StageColumn(id uuid.UUID) Column { return Column{stage: id} }

func StatusColumn(status string) Column { return Column{status: status} }

// ColumnOf returns the column a case currently belongs to.
func ColumnOf(c *Case) Column {
	if c.StageID != nil {
		return StageColumn(*c.StageID)
	}
	return StatusColumn(c.Status)
}

// Stage reports the stage id for stage columns.
func (c Column) Stage() (uuid.UUID, bool) {
	return c.stage, c.stage != uuid.Nil
}

// Status reports the status for status columns.
func (c Column) Status() (string, bool) {
	if c.stage != uuid.Nil {
		return "", false
	}
	return c.status, true
}

// Contains reports whether the case is a member of the column.
func (c Column) Contains(cs *Case) bool {
	if id, ok := c.Stage(); ok {
		return cs.StageID != nil && *cs.StageID == id
	}
	return cs.StageID == nil && cs.Status == c.status
}

func (c Column) String() string {
	if id, ok := c.Stage(); ok {
		return "stage:" + id.String()
	}
	return "status:" + c.status
}
