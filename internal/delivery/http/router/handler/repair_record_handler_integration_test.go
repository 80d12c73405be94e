package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"freightdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchVehicle(t *testing.T, s *testServer, id uint) entity.Vehicle {
	t.Helper()

	rec := s.request(http.MethodGet, "/vehicles", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var vehicles []entity.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicles))
	for _, vehicle := range vehicles {
		if vehicle.VehicleID == id {
			return vehicle
		}
	}

	t.Fatalf("vehicle %d not found", id)

	return entity.Vehicle{}
}

func TestRepairRecords_CounterFollowsRecordLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(http.MethodPost, "/vehicles",
		`{"Brand":"Vasquez Ltd","Load":6872,"Capacity":20319,"Year":2004}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(http.MethodPost, "/repairrecords",
		`{"Vehicle":{"VehicleID":1},"EstimatedTime":6,"ActualCostTime":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.RepairRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotNil(t, created.Vehicle)

	assert.Equal(t, 1, fetchVehicle(t, s, 1).NumberOfRepairs)

	rec = s.request(http.MethodDelete, "/repairrecords/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, 0, fetchVehicle(t, s, 1).NumberOfRepairs)
}

func TestRepairRecords_UpdateLeavesCounterAlone(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(http.MethodPost, "/vehicles",
		`{"Brand":"Scott Ltd","Load":8641,"Capacity":24792,"Year":2018}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(http.MethodPost, "/repairrecords",
		`{"Vehicle":{"VehicleID":1},"EstimatedTime":7,"ActualCostTime":17}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, fetchVehicle(t, s, 1).NumberOfRepairs)

	rec = s.request(http.MethodPut, "/repairrecords",
		`{"RepairRecordID":1,"Vehicle":{"VehicleID":1},"EstimatedTime":9,"ActualCostTime":12}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, 1, fetchVehicle(t, s, 1).NumberOfRepairs)
}

func TestRepairRecords_CreateWithoutVehicle(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(http.MethodPost, "/repairrecords",
		`{"EstimatedTime":8,"ActualCostTime":9}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.RepairRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Nil(t, created.Vehicle)
}
