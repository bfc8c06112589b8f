package db_models

import "github.com/google/uuid"

type ChoreStatus int

const (
	ChoreStatusNotStarted      ChoreStatus = 0
	ChoreStatusInProgress      ChoreStatus = 1
	ChoreStatusWaitingApproval ChoreStatus = 2
	ChoreStatusCompleted       ChoreStatus = 3
)

func (s ChoreStatus) Valid() bool {
	return s >= ChoreStatusNotStarted && s <= ChoreStatusCompleted
}

func (s ChoreStatus) String() string {
	switch s {
	case ChoreStatusNotStarted:
		return "not_started"
	case ChoreStatusInProgress:
		return "in_progress"
	case ChoreStatusWaitingApproval:
		return "waiting_approval"
	case ChoreStatusCompleted:
		return "completed"
	}
	return "unknown"
}

// Legal lifecycle edges. Completed is terminal; a waiting chore may be
// sent back to in_progress when the parent rejects it.
var choreTransitions = map[ChoreStatus][]ChoreStatus{
	ChoreStatusNotStarted:      {ChoreStatusInProgress},
	ChoreStatusInProgress:      {ChoreStatusWaitingApproval},
	ChoreStatusWaitingApproval: {ChoreStatusCompleted, ChoreStatusInProgress},
	ChoreStatusCompleted:       {},
}

func (s ChoreStatus) CanTransitionTo(next ChoreStatus) bool {
	for _, allowed := range choreTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Chore struct {
	BaseModel
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Gems        int         `json:"gems"`
	Location    string      `json:"location"`
	ChildID     uuid.UUID   `gorm:"type:uuid;index" json:"childId"`
	ParentID    uuid.UUID   `gorm:"type:uuid;index" json:"parentId"`
	Status      ChoreStatus `gorm:"index;default:0" json:"status"`
}
