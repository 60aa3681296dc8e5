package domain

import "time"

// Status is the participation lifecycle. Guardians may only ever request
// submitted, re-affirm accepted, or withdraw to cancelled; accepted and
// confirmed are granted by administrators.
type Status string

const (
	StatusNone      Status = ""
	StatusSubmitted Status = "submitted"
	StatusAccepted  Status = "accepted"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus maps a persisted string to a Status. Anything outside the
// closed set is treated as StatusNone, never an error.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusSubmitted, StatusAccepted, StatusConfirmed, StatusCancelled:
		return Status(s)
	}
	return StatusNone
}

// Selected reports whether a status counts as a checked cell when seeding
// the selection matrix.
func (s Status) Selected() bool {
	return s == StatusSubmitted || s == StatusAccepted || s == StatusConfirmed
}

// NextDesiredStatus is the single place the toggle contract lives.
// Confirmed participation is locked against guardian edits. Checking keeps
// an already-granted accepted, otherwise requests submitted. Unchecking
// withdraws to cancelled.
func NextDesiredStatus(current Status, checked bool) Status {
	if current == StatusConfirmed {
		return StatusConfirmed
	}
	if checked {
		if current == StatusAccepted {
			return StatusAccepted
		}
		return StatusSubmitted
	}
	return StatusCancelled
}

// RegistrationHeader is one guardian's registration envelope for one event.
// At most one exists per (guardian, event).
type RegistrationHeader struct {
	ID        uint            `json:"id"`
	EventID   uint            `json:"event_id"`
	CreatorID uint            `json:"creator_id"`
	Contact   ContactSnapshot `json:"contact"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ParticipationRecord is one keeper's attendance status within a header.
// At most one exists per (header, keeper).
type ParticipationRecord struct {
	ID        uint      `json:"id"`
	HeaderID  uint      `json:"header_id"`
	KeeperID  uint      `json:"keeper_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegistrationState is the loader's derived view of persisted registrations
// for one guardian across a set of events.
type RegistrationState struct {
	// HeaderByEvent holds the existing header per event id, if any.
	HeaderByEvent map[uint]RegistrationHeader
	// Records holds the existing participation record per event id then
	// keeper id, if any.
	Records map[uint]map[uint]ParticipationRecord
}

func NewRegistrationState() RegistrationState {
	return RegistrationState{
		HeaderByEvent: make(map[uint]RegistrationHeader),
		Records:       make(map[uint]map[uint]ParticipationRecord),
	}
}

// Record returns the participation record for (event, keeper) if one exists.
func (s RegistrationState) Record(eventID, keeperID uint) (ParticipationRecord, bool) {
	byKeeper, ok := s.Records[eventID]
	if !ok {
		return ParticipationRecord{}, false
	}
	rec, ok := byKeeper[keeperID]
	return rec, ok
}

// StatusOf returns the persisted status for (event, keeper), or StatusNone.
func (s RegistrationState) StatusOf(eventID, keeperID uint) Status {
	rec, ok := s.Record(eventID, keeperID)
	if !ok {
		return StatusNone
	}
	return rec.Status
}

func (s RegistrationState) setRecord(rec ParticipationRecord, eventID uint) {
	byKeeper, ok := s.Records[eventID]
	if !ok {
		byKeeper = make(map[uint]ParticipationRecord)
		s.Records[eventID] = byKeeper
	}
	byKeeper[rec.KeeperID] = rec
}

// AddRecord indexes a participation record under the event its header
// belongs to. Records whose header is not part of the state are dropped.
func (s RegistrationState) AddRecord(rec ParticipationRecord) {
	for eventID, header := range s.HeaderByEvent {
		if header.ID == rec.HeaderID {
			s.setRecord(rec, eventID)
			return
		}
	}
}
