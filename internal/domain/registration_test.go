package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Status
	}{
		{"submitted", "submitted", StatusSubmitted},
		{"accepted", "accepted", StatusAccepted},
		{"confirmed", "confirmed", StatusConfirmed},
		{"cancelled", "cancelled", StatusCancelled},
		{"empty string", "", StatusNone},
		{"unknown string", "pending", StatusNone},
		{"case sensitive", "Submitted", StatusNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.in))
		})
	}
}

func TestStatus_Selected(t *testing.T) {
	assert.True(t, StatusSubmitted.Selected())
	assert.True(t, StatusAccepted.Selected())
	assert.True(t, StatusConfirmed.Selected())
	assert.False(t, StatusCancelled.Selected())
	assert.False(t, StatusNone.Selected())
}

func TestNextDesiredStatus(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		checked bool
		want    Status
	}{
		{"fresh cell checked requests submitted", StatusNone, true, StatusSubmitted},
		{"fresh cell unchecked withdraws", StatusNone, false, StatusCancelled},
		{"submitted stays submitted while checked", StatusSubmitted, true, StatusSubmitted},
		{"submitted unchecked withdraws", StatusSubmitted, false, StatusCancelled},
		{"accepted is kept while checked", StatusAccepted, true, StatusAccepted},
		{"accepted unchecked withdraws", StatusAccepted, false, StatusCancelled},
		{"confirmed ignores checking", StatusConfirmed, true, StatusConfirmed},
		{"confirmed ignores unchecking", StatusConfirmed, false, StatusConfirmed},
		{"cancelled re-checked requests submitted again", StatusCancelled, true, StatusSubmitted},
		{"cancelled unchecked stays cancelled", StatusCancelled, false, StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextDesiredStatus(tt.current, tt.checked))
		})
	}
}

func TestRegistrationState_AddRecord(t *testing.T) {
	state := NewRegistrationState()
	state.HeaderByEvent[10] = RegistrationHeader{ID: 1, EventID: 10}

	state.AddRecord(ParticipationRecord{ID: 100, HeaderID: 1, KeeperID: 5, Status: StatusSubmitted})

	rec, ok := state.Record(10, 5)
	assert.True(t, ok)
	assert.Equal(t, uint(100), rec.ID)
	assert.Equal(t, StatusSubmitted, state.StatusOf(10, 5))

	// A record pointing at an unknown header is dropped.
	state.AddRecord(ParticipationRecord{ID: 101, HeaderID: 99, KeeperID: 5})
	_, ok = state.Record(99, 5)
	assert.False(t, ok)
}

func TestRegistrationState_StatusOfMissing(t *testing.T) {
	state := NewRegistrationState()

	assert.Equal(t, StatusNone, state.StatusOf(1, 1))
}
