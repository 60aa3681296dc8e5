package domain

import "time"

type EventKind string

const (
	EventWeeklyTraining EventKind = "weekly_training"
	EventCamp           EventKind = "camp"
	EventKeeperDay      EventKind = "keeper_day"
)

func (k EventKind) Valid() bool {
	switch k {
	case EventWeeklyTraining, EventCamp, EventKeeperDay:
		return true
	}
	return false
}

// Event is read-only for this subsystem; rows are maintained by the admin
// content tooling.
type Event struct {
	ID                  uint      `json:"id"`
	Kind                EventKind `json:"kind"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	Price               string    `json:"price"`
	Location            string    `json:"location"`
	OpenForRegistration bool      `json:"open_for_registration"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
