package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAssignmentSnapshots(t *testing.T) {
	snapshots, err := decodeAssignmentSnapshots([]byte(`{
		"employee": {"LastName": "Alba", "FirstName": "Maria"},
		"shift": {"ID": "shift-day", "Name": "Day Shift"}
	}`))
	require.NoError(t, err)
	require.NotNil(t, snapshots.Employee)
	assert.Equal(t, "Alba", snapshots.Employee.LastName)
	require.NotNil(t, snapshots.Shift)
	assert.Equal(t, "Day Shift", snapshots.Shift.Name)
	assert.Nil(t, snapshots.Leave)
}

func TestDecodeAssignmentSnapshotsNilColumn(t *testing.T) {
	snapshots, err := decodeAssignmentSnapshots(nil)
	require.NoError(t, err)
	assert.Nil(t, snapshots.Employee)
	assert.Nil(t, snapshots.Shift)
	assert.Nil(t, snapshots.Leave)
}

func TestDecodeAssignmentSnapshotsCorruptBlob(t *testing.T) {
	_, err := decodeAssignmentSnapshots([]byte(`{"shift": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assignment snapshots")
}
