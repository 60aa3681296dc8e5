package domain

// SelectionMatrix holds the per-event, per-keeper checked flag together with
// the desired status the interaction intends to request. The two are kept
// separate so a checkbox can never forge an administrator-granted state.
type SelectionMatrix struct {
	checked map[uint]map[uint]bool
	desired map[uint]map[uint]Status
}

func NewSelectionMatrix() *SelectionMatrix {
	return &SelectionMatrix{
		checked: make(map[uint]map[uint]bool),
		desired: make(map[uint]map[uint]Status),
	}
}

// Seed initializes one cell from a persisted status. The box is checked for
// submitted, accepted and confirmed; the desired status starts out as the
// persisted status so later toggles know what was granted.
func (m *SelectionMatrix) Seed(eventID, keeperID uint, status Status) {
	m.setChecked(eventID, keeperID, status.Selected())
	m.setDesired(eventID, keeperID, status)
}

// Set drives one cell to the wanted checked state, applying the toggle
// contract. Setting a confirmed cell is a no-op.
func (m *SelectionMatrix) Set(eventID, keeperID uint, checked bool) {
	current := m.Desired(eventID, keeperID)
	if current == StatusConfirmed {
		return
	}
	m.setChecked(eventID, keeperID, checked)
	m.setDesired(eventID, keeperID, NextDesiredStatus(current, checked))
}

// Toggle flips one cell.
func (m *SelectionMatrix) Toggle(eventID, keeperID uint) {
	m.Set(eventID, keeperID, !m.Checked(eventID, keeperID))
}

func (m *SelectionMatrix) Checked(eventID, keeperID uint) bool {
	return m.checked[eventID][keeperID]
}

// Desired returns the desired status for a cell, StatusNone if untouched.
func (m *SelectionMatrix) Desired(eventID, keeperID uint) Status {
	return m.desired[eventID][keeperID]
}

func (m *SelectionMatrix) setChecked(eventID, keeperID uint, v bool) {
	row, ok := m.checked[eventID]
	if !ok {
		row = make(map[uint]bool)
		m.checked[eventID] = row
	}
	row[keeperID] = v
}

func (m *SelectionMatrix) setDesired(eventID, keeperID uint, s Status) {
	row, ok := m.desired[eventID]
	if !ok {
		row = make(map[uint]Status)
		m.desired[eventID] = row
	}
	row[keeperID] = s
}
