package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/logitrustkenya/logistics-enhanced-sub000/metrics"
	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
	"github.com/logitrustkenya/logistics-enhanced-sub000/store"
)

type TrackingController struct {
	tracking store.TrackingStore
}

func NewTrackingController(tracking store.TrackingStore) *TrackingController {
	return &TrackingController{tracking: tracking}
}

// GetTrackingRecords godoc
// @Summary List all tracking records
// @Tags Tracking
// @Produce json
// @Success 200 {array} models.TrackingRecord
// @Failure 500 {object} models.ErrorResponse
// @Router /api/tracking [get]
func (tc *TrackingController) GetTrackingRecords(c *gin.Context) {
	records, err := tc.tracking.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to fetch tracking records", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("tracking_list").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tracking records"})
		return
	}
	if records == nil {
		records = []models.TrackingRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// CreateTrackingRecord godoc
// @Summary Record a tracking update
// @Description Status defaults to "in transit" when omitted; recordedAt is set server-side.
// @Tags Tracking
// @Accept json
// @Produce json
// @Param record body models.CreateTrackingRequest true "Tracking data"
// @Success 201 {object} models.TrackingRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/tracking [post]
func (tc *TrackingController) CreateTrackingRecord(c *gin.Context) {
	var req models.CreateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Status == "" {
		req.Status = models.TrackingStatusInTransit
	}

	record := models.TrackingRecord{
		ShipmentID: req.ShipmentID,
		Location:   req.Location,
		Status:     req.Status,
		RecordedAt: time.Now().UTC(),
	}

	created, err := tc.tracking.Create(c.Request.Context(), record)
	if err != nil {
		zap.L().Error("failed to insert tracking record", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("tracking_create").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tracking record"})
		return
	}

	metrics.TrackingRecordsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, created)
}

// UpdateTrackingRecord godoc
// @Summary Update a tracking record
// @Tags Tracking
// @Accept json
// @Produce json
// @Param record body models.UpdateTrackingRequest true "Fields to update"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/tracking [put]
func (tc *TrackingController) UpdateTrackingRecord(c *gin.Context) {
	var req models.UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tracking record id"})
		return
	}

	upd := models.TrackingUpdate{
		Location: req.Location,
		Status:   req.Status,
	}
	if upd == (models.TrackingUpdate{}) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	err = tc.tracking.Update(c.Request.Context(), id, upd)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tracking record not found"})
		return
	}
	if err != nil {
		zap.L().Error("failed to update tracking record", zap.String("id", req.ID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("tracking_update").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tracking record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tracking record updated successfully"})
}

// DeleteTrackingRecord godoc
// @Summary Delete a tracking record
// @Tags Tracking
// @Accept json
// @Produce json
// @Param record body models.DeleteRequest true "Tracking record id"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/tracking [delete]
func (tc *TrackingController) DeleteTrackingRecord(c *gin.Context) {
	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tracking record id"})
		return
	}

	err = tc.tracking.Delete(c.Request.Context(), id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tracking record not found"})
		return
	}
	if err != nil {
		zap.L().Error("failed to delete tracking record", zap.String("id", req.ID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("tracking_delete").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tracking record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tracking record deleted successfully"})
}
