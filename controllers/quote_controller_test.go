package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
)

func TestQuoteLifecycle(t *testing.T) {
	router := newQuoteRouter()

	w := doJSON(t, router, http.MethodPost, "/api/quotes", map[string]interface{}{
		"description": "Nairobi to Mombasa, 2 pallets",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Quote
	decodeBody(t, w, &created)
	require.False(t, created.ID.IsZero())
	assert.Equal(t, float64(0), created.Price)
	assert.Equal(t, models.QuoteStatusPending, created.Status)

	w = doJSON(t, router, http.MethodPut, "/api/quotes", map[string]interface{}{
		"id":     created.ID.Hex(),
		"price":  14500.0,
		"status": "accepted",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Quote updated successfully"}`, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/quotes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Quote
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, 14500.0, listed[0].Price)
	assert.Equal(t, "accepted", listed[0].Status)

	w = doJSON(t, router, http.MethodDelete, "/api/quotes", map[string]interface{}{"id": created.ID.Hex()})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodDelete, "/api/quotes", map[string]interface{}{"id": created.ID.Hex()})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuoteErrors(t *testing.T) {
	router := newQuoteRouter()

	w := doJSON(t, router, http.MethodPost, "/api/quotes", map[string]interface{}{"price": 100})
	assert.Equal(t, http.StatusBadRequest, w.Code, "description is required")

	w = doJSON(t, router, http.MethodPut, "/api/quotes", map[string]interface{}{
		"id":    primitive.NewObjectID().Hex(),
		"price": 100,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/quotes", map[string]interface{}{
		"id":    "bogus",
		"price": 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
