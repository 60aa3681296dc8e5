package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionMatrix_SeedFromPersistedStatus(t *testing.T) {
	m := NewSelectionMatrix()

	m.Seed(1, 1, StatusSubmitted)
	m.Seed(1, 2, StatusAccepted)
	m.Seed(1, 3, StatusConfirmed)
	m.Seed(1, 4, StatusCancelled)
	m.Seed(1, 5, StatusNone)

	assert.True(t, m.Checked(1, 1))
	assert.True(t, m.Checked(1, 2))
	assert.True(t, m.Checked(1, 3))
	assert.False(t, m.Checked(1, 4))
	assert.False(t, m.Checked(1, 5))

	assert.Equal(t, StatusSubmitted, m.Desired(1, 1))
	assert.Equal(t, StatusAccepted, m.Desired(1, 2))
	assert.Equal(t, StatusConfirmed, m.Desired(1, 3))
	assert.Equal(t, StatusCancelled, m.Desired(1, 4))
	assert.Equal(t, StatusNone, m.Desired(1, 5))
}

func TestSelectionMatrix_ConfirmedCellIsLocked(t *testing.T) {
	m := NewSelectionMatrix()
	m.Seed(1, 1, StatusConfirmed)

	m.Set(1, 1, false)

	assert.True(t, m.Checked(1, 1))
	assert.Equal(t, StatusConfirmed, m.Desired(1, 1))

	m.Toggle(1, 1)

	assert.True(t, m.Checked(1, 1))
	assert.Equal(t, StatusConfirmed, m.Desired(1, 1))
}

func TestSelectionMatrix_UncheckWithdraws(t *testing.T) {
	m := NewSelectionMatrix()
	m.Seed(1, 1, StatusAccepted)

	m.Set(1, 1, false)

	assert.False(t, m.Checked(1, 1))
	assert.Equal(t, StatusCancelled, m.Desired(1, 1))
}

func TestSelectionMatrix_RecheckAfterCancelRequestsSubmitted(t *testing.T) {
	m := NewSelectionMatrix()
	m.Seed(1, 1, StatusCancelled)

	m.Set(1, 1, true)

	assert.True(t, m.Checked(1, 1))
	assert.Equal(t, StatusSubmitted, m.Desired(1, 1))
}

func TestSelectionMatrix_CheckingKeepsAccepted(t *testing.T) {
	m := NewSelectionMatrix()
	m.Seed(1, 1, StatusAccepted)

	m.Set(1, 1, true)

	assert.Equal(t, StatusAccepted, m.Desired(1, 1))
}

func TestSelectionMatrix_ToggleFlips(t *testing.T) {
	m := NewSelectionMatrix()
	m.Seed(1, 1, StatusNone)

	m.Toggle(1, 1)
	assert.True(t, m.Checked(1, 1))
	assert.Equal(t, StatusSubmitted, m.Desired(1, 1))

	m.Toggle(1, 1)
	assert.False(t, m.Checked(1, 1))
	assert.Equal(t, StatusCancelled, m.Desired(1, 1))
}

func TestSelectionMatrix_UntouchedCellDefaults(t *testing.T) {
	m := NewSelectionMatrix()

	assert.False(t, m.Checked(7, 7))
	assert.Equal(t, StatusNone, m.Desired(7, 7))
}
