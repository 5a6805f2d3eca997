package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/logitrustkenya/logistics-enhanced-sub000/events"
	"github.com/logitrustkenya/logistics-enhanced-sub000/metrics"
	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
	"github.com/logitrustkenya/logistics-enhanced-sub000/store"
)

type ShipmentController struct {
	shipments store.ShipmentStore
	producer  *events.Producer
}

// NewShipmentController wires the shipment handlers. producer may be nil
// when no broker is configured.
func NewShipmentController(shipments store.ShipmentStore, producer *events.Producer) *ShipmentController {
	return &ShipmentController{shipments: shipments, producer: producer}
}

// GetShipments godoc
// @Summary List all shipments
// @Description Get every shipment, unfiltered.
// @Tags Shipments
// @Produce json
// @Success 200 {array} models.Shipment
// @Failure 500 {object} models.ErrorResponse
// @Router /api/shipments [get]
func (sc *ShipmentController) GetShipments(c *gin.Context) {
	shipments, err := sc.shipments.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to fetch shipments", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("shipment_list").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipments"})
		return
	}
	if shipments == nil {
		shipments = []models.Shipment{}
	}
	c.JSON(http.StatusOK, shipments)
}

// CreateShipment godoc
// @Summary Create a shipment
// @Description Create a shipment with a generated reference number. Status defaults to "pending".
// @Tags Shipments
// @Accept json
// @Produce json
// @Param shipment body models.CreateShipmentRequest true "Shipment data"
// @Success 201 {object} models.Shipment
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/shipments [post]
func (sc *ShipmentController) CreateShipment(c *gin.Context) {
	var req models.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Status == "" {
		req.Status = models.ShipmentStatusPending
	}

	shipment := models.Shipment{
		Reference:   newShipmentReference(),
		Description: req.Description,
		Origin:      req.Origin,
		Destination: req.Destination,
		WeightKg:    req.WeightKg,
		Status:      req.Status,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := sc.shipments.Create(c.Request.Context(), shipment)
	if err != nil {
		zap.L().Error("failed to insert shipment", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("shipment_create").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shipment"})
		return
	}

	metrics.ShipmentsCreatedTotal.Inc()
	_ = sc.producer.Publish(c.Request.Context(), events.ShipmentEvent{
		Type:       events.TypeShipmentCreated,
		ShipmentID: created.ID.Hex(),
		Reference:  created.Reference,
		Status:     created.Status,
		OccurredAt: time.Now().UTC(),
	})

	c.JSON(http.StatusCreated, created)
}

// UpdateShipment godoc
// @Summary Update a shipment
// @Description Apply a partial update by id and return the updated shipment.
// @Tags Shipments
// @Accept json
// @Produce json
// @Param shipment body models.UpdateShipmentRequest true "Fields to update"
// @Success 200 {object} models.Shipment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/shipments [put]
func (sc *ShipmentController) UpdateShipment(c *gin.Context) {
	var req models.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipment id"})
		return
	}

	upd := models.ShipmentUpdate{
		Description: req.Description,
		Origin:      req.Origin,
		Destination: req.Destination,
		WeightKg:    req.WeightKg,
		Status:      req.Status,
	}
	if upd == (models.ShipmentUpdate{}) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	updated, err := sc.shipments.Update(c.Request.Context(), id, upd)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
		return
	}
	if err != nil {
		zap.L().Error("failed to update shipment", zap.String("id", req.ID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("shipment_update").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shipment"})
		return
	}

	_ = sc.producer.Publish(c.Request.Context(), events.ShipmentEvent{
		Type:       events.TypeShipmentUpdated,
		ShipmentID: updated.ID.Hex(),
		Reference:  updated.Reference,
		Status:     updated.Status,
		OccurredAt: time.Now().UTC(),
	})

	c.JSON(http.StatusOK, updated)
}

// DeleteShipment godoc
// @Summary Delete a shipment
// @Description Remove a shipment by id.
// @Tags Shipments
// @Accept json
// @Produce json
// @Param shipment body models.DeleteRequest true "Shipment id"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/shipments [delete]
func (sc *ShipmentController) DeleteShipment(c *gin.Context) {
	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipment id"})
		return
	}

	err = sc.shipments.Delete(c.Request.Context(), id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
		return
	}
	if err != nil {
		zap.L().Error("failed to delete shipment", zap.String("id", req.ID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("shipment_delete").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shipment"})
		return
	}

	_ = sc.producer.Publish(c.Request.Context(), events.ShipmentEvent{
		Type:       events.TypeShipmentDeleted,
		ShipmentID: req.ID,
		OccurredAt: time.Now().UTC(),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Shipment deleted successfully"})
}

// newShipmentReference returns a short human-facing reference like
// "LTK-1A2B3C4D".
func newShipmentReference() string {
	return "LTK-" + strings.ToUpper(uuid.NewString()[:8])
}
