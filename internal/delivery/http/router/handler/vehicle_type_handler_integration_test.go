package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"freightdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVehicleTypes(t *testing.T, s *testServer) {
	t.Helper()

	for _, name := range []string{"Cargo Planes", "In-city trucks", "long haul trucks"} {
		rec := s.request(http.MethodPost, "/vehicletypes", `{"VehicleTypeName":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
}

func TestVehicleTypes_CRUDFlow(t *testing.T) {
	s := newTestServer(t)
	seedVehicleTypes(t, s)

	rec := s.request(http.MethodGet, "/vehicletypes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []entity.VehicleType
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 3)

	rec = s.request(http.MethodPost, "/vehicletypes", `{"VehicleTypeName":"Motorcycle"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.VehicleType
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, uint(4), created.VehicleTypeID)
	assert.Equal(t, "Motorcycle", created.VehicleTypeName)

	rec = s.request(http.MethodPut, "/vehicletypes", `{"VehicleTypeID":4,"VehicleTypeName":"Scooter"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var updated entity.VehicleType
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Scooter", updated.VehicleTypeName)

	rec = s.request(http.MethodDelete, "/vehicletypes/4", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = s.request(http.MethodDelete, "/vehicletypes/4", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"VehicleType not found"}`, rec.Body.String())
}

func TestVehicleTypes_CreateValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(http.MethodPost, "/vehicletypes", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Validation failed: VehicleTypeName should not be empty"}`, rec.Body.String())
}

func TestVehicleTypes_CreateDuplicateID(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(http.MethodPost, "/vehicletypes", `{"VehicleTypeID":1,"VehicleTypeName":"Cargo Planes"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(http.MethodPost, "/vehicletypes", `{"VehicleTypeID":1,"VehicleTypeName":"In-city trucks"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"VehicleTypeID already exists"}`, rec.Body.String())
}

func TestVehicleTypes_UpdateMissingID(t *testing.T) {
	s := newTestServer(t)
	seedVehicleTypes(t, s)

	rec := s.request(http.MethodPut, "/vehicletypes", `{"VehicleTypeName":"Renamed"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"VehicleTypeID is required for update"}`, rec.Body.String())
}

func TestVehicleTypes_DeleteGuardedByVehicles(t *testing.T) {
	s := newTestServer(t)
	seedVehicleTypes(t, s)

	rec := s.request(http.MethodPost, "/vehicles",
		`{"VehicleType":{"VehicleTypeID":1},"Brand":"Harris, Tran and Roberson","Load":6082,"Capacity":14773,"Year":2000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(http.MethodDelete, "/vehicletypes/1", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Cannot delete VehicleType with associated Vehicles"}`, rec.Body.String())

	// Type 2 has no vehicles and deletes cleanly.
	rec = s.request(http.MethodDelete, "/vehicletypes/2", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestVehicleTypes_DeleteNonNumericID(t *testing.T) {
	s := newTestServer(t)
	seedVehicleTypes(t, s)

	rec := s.request(http.MethodDelete, "/vehicletypes/abc", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"VehicleType not found"}`, rec.Body.String())
}
