package response

import (
	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/service"
)

// Cell is one checkbox of the selection matrix as the client sees it: the
// derived checked flag, the persisted status, and whether the cell is locked
// against guardian edits.
type Cell struct {
	KeeperID uint   `json:"keeper_id"`
	Checked  bool   `json:"checked"`
	Status   string `json:"status,omitempty"`
	Locked   bool   `json:"locked"`
}

type EventSelection struct {
	Event domain.Event `json:"event"`
	Cells []Cell       `json:"cells"`
}

// RegistrationPageResponse is the full state of one registration table.
type RegistrationPageResponse struct {
	Keepers []domain.Keeper  `json:"keepers"`
	Events  []EventSelection `json:"events"`
}

func NewRegistrationPageResponse(overview service.Overview) RegistrationPageResponse {
	resp := RegistrationPageResponse{
		Keepers: overview.Keepers,
		Events:  make([]EventSelection, len(overview.Events)),
	}

	for i, event := range overview.Events {
		cells := make([]Cell, len(overview.Keepers))
		for j, keeper := range overview.Keepers {
			status := overview.State.StatusOf(event.ID, keeper.ID)
			cells[j] = Cell{
				KeeperID: keeper.ID,
				Checked:  status.Selected(),
				Status:   string(status),
				Locked:   status == domain.StatusConfirmed,
			}
		}
		resp.Events[i] = EventSelection{
			Event: event,
			Cells: cells,
		}
	}

	return resp
}
