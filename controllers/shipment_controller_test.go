package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
)

func TestShipmentLifecycle(t *testing.T) {
	router, _ := newShipmentRouter()

	// Create
	w := doJSON(t, router, http.MethodPost, "/api/shipments", map[string]interface{}{
		"description": "Office Supplies",
		"status":      "pending",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Shipment
	decodeBody(t, w, &created)
	require.False(t, created.ID.IsZero())
	assert.Equal(t, "Office Supplies", created.Description)
	assert.Equal(t, "pending", created.Status)
	assert.True(t, strings.HasPrefix(created.Reference, "LTK-"))
	assert.False(t, created.CreatedAt.IsZero())

	// List contains it
	w = doJSON(t, router, http.MethodGet, "/api/shipments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Shipment
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "Office Supplies", listed[0].Description)

	// Update returns the updated document
	w = doJSON(t, router, http.MethodPut, "/api/shipments", map[string]interface{}{
		"id":          created.ID.Hex(),
		"description": "Office Supplies",
		"status":      "delivered",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Shipment
	decodeBody(t, w, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "delivered", updated.Status)

	// Delete, then delete again
	w = doJSON(t, router, http.MethodDelete, "/api/shipments", map[string]interface{}{"id": created.ID.Hex()})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Shipment deleted successfully"}`, w.Body.String())

	w = doJSON(t, router, http.MethodDelete, "/api/shipments", map[string]interface{}{"id": created.ID.Hex()})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/shipments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateShipmentDefaults(t *testing.T) {
	router, _ := newShipmentRouter()

	w := doJSON(t, router, http.MethodPost, "/api/shipments", map[string]interface{}{
		"description": "Farm produce",
		"origin":      "Nakuru",
		"destination": "Nairobi",
		"weightKg":    120.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Shipment
	decodeBody(t, w, &created)
	assert.Equal(t, models.ShipmentStatusPending, created.Status)
	assert.Equal(t, "Nakuru", created.Origin)
	assert.Equal(t, "Nairobi", created.Destination)
	assert.Equal(t, 120.5, created.WeightKg)
}

func TestCreateShipmentValidation(t *testing.T) {
	router, _ := newShipmentRouter()

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing description", body: map[string]interface{}{"status": "pending"}},
		{name: "non-positive weight", body: map[string]interface{}{"description": "x", "weightKg": -1}},
		{name: "empty body", body: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/shipments", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUpdateShipmentErrors(t *testing.T) {
	router, _ := newShipmentRouter()

	tests := []struct {
		name         string
		body         map[string]interface{}
		expectedCode int
	}{
		{
			name:         "unknown id",
			body:         map[string]interface{}{"id": primitive.NewObjectID().Hex(), "status": "delivered"},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			body:         map[string]interface{}{"id": "not-an-object-id", "status": "delivered"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing id",
			body:         map[string]interface{}{"status": "delivered"},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no fields to update",
			body:         map[string]interface{}{"id": primitive.NewObjectID().Hex()},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPut, "/api/shipments", tc.body)
			assert.Equal(t, tc.expectedCode, w.Code)

			var body map[string]string
			decodeBody(t, w, &body)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestDeleteShipmentMalformedID(t *testing.T) {
	router, _ := newShipmentRouter()

	w := doJSON(t, router, http.MethodDelete, "/api/shipments", map[string]interface{}{"id": "zzz"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
