package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveSelectionsRequest_Matrix(t *testing.T) {
	req := SaveSelectionsRequest{
		Selections: []EventSelectionInput{
			{EventID: 10, KeeperIDs: []uint{1, 2}},
			{EventID: 11, KeeperIDs: nil},
		},
	}

	matrix := req.Matrix()

	assert.True(t, matrix[10][1])
	assert.True(t, matrix[10][2])
	assert.False(t, matrix[10][3], "listed keepers only")
	assert.Empty(t, matrix[11], "an event with no keepers is an all-unchecked row")
	assert.False(t, matrix[12][1], "absent events read as unchecked")
}

func TestSaveSelectionsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SaveSelectionsRequest{}).Validate())
	assert.NoError(t, (&SaveSelectionsRequest{
		Selections: []EventSelectionInput{{EventID: 10}},
	}).Validate())
	assert.Error(t, (&SaveSelectionsRequest{
		Selections: []EventSelectionInput{{EventID: 0, KeeperIDs: []uint{1}}},
	}).Validate())
}

func TestAdminSetStatusRequest_Validate(t *testing.T) {
	for _, status := range []string{"submitted", "accepted", "confirmed", "cancelled"} {
		assert.NoError(t, (&AdminSetStatusRequest{Status: status}).Validate(), status)
	}
	assert.Error(t, (&AdminSetStatusRequest{Status: ""}).Validate())
	assert.Error(t, (&AdminSetStatusRequest{Status: "pending"}).Validate())
}
