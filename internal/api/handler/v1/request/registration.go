package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/keeperschule/booking-api/internal/domain"
)

// EventSelectionInput carries the checkbox row for one event. Keepers
// missing from KeeperIDs count as unchecked.
type EventSelectionInput struct {
	EventID   uint   `json:"event_id"`
	KeeperIDs []uint `json:"keeper_ids"`
}

// SaveSelectionsRequest is the full selection matrix for one event kind.
type SaveSelectionsRequest struct {
	Selections []EventSelectionInput `json:"selections"`
}

func (req *SaveSelectionsRequest) Validate() error {
	for _, sel := range req.Selections {
		if sel.EventID == 0 {
			return validation.NewError("validation_event_id", "event_id is required")
		}
	}
	return nil
}

// Matrix converts the wire format into the engine's selection map.
func (req *SaveSelectionsRequest) Matrix() map[uint]map[uint]bool {
	matrix := make(map[uint]map[uint]bool, len(req.Selections))
	for _, sel := range req.Selections {
		row := make(map[uint]bool, len(sel.KeeperIDs))
		for _, keeperID := range sel.KeeperIDs {
			row[keeperID] = true
		}
		matrix[sel.EventID] = row
	}
	return matrix
}

type AdminSetStatusRequest struct {
	Status string `json:"status"`
}

func (req *AdminSetStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			string(domain.StatusSubmitted),
			string(domain.StatusAccepted),
			string(domain.StatusConfirmed),
			string(domain.StatusCancelled),
		)),
	)
}
