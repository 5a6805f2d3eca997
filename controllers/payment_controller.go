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

type PaymentController struct {
	payments store.PaymentStore
}

func NewPaymentController(payments store.PaymentStore) *PaymentController {
	return &PaymentController{payments: payments}
}

// GetPayments godoc
// @Summary List all payments
// @Tags Payments
// @Produce json
// @Success 200 {array} models.Payment
// @Failure 500 {object} models.ErrorResponse
// @Router /api/payments [get]
func (pc *PaymentController) GetPayments(c *gin.Context) {
	payments, err := pc.payments.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("payment_list").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

// CreatePayment godoc
// @Summary Create a payment
// @Description Amount defaults to 0 and status to "pending" when omitted.
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment body models.CreatePaymentRequest true "Payment data"
// @Success 201 {object} models.Payment
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/payments [post]
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Status == "" {
		req.Status = models.PaymentStatusPending
	}

	payment := models.Payment{
		ShipmentID: req.ShipmentID,
		Amount:     req.Amount,
		Status:     req.Status,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := pc.payments.Create(c.Request.Context(), payment)
	if err != nil {
		zap.L().Error("failed to insert payment", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("payment_create").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	metrics.PaymentsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, created)
}

// UpdatePayment godoc
// @Summary Update a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment body models.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/payments [put]
func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	var req models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	upd := models.PaymentUpdate{
		Amount: req.Amount,
		Status: req.Status,
	}
	if upd == (models.PaymentUpdate{}) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	err = pc.payments.Update(c.Request.Context(), id, upd)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	if err != nil {
		zap.L().Error("failed to update payment", zap.String("id", req.ID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("payment_update").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment updated successfully"})
}

// DeletePayment godoc
// @Summary Delete a payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment body models.DeleteRequest true "Payment id"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/payments [delete]
func (pc *PaymentController) DeletePayment(c *gin.Context) {
	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id"})
		return
	}

	err = pc.payments.Delete(c.Request.Context(), id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	if err != nil {
		zap.L().Error("failed to delete payment", zap.String("id", req.ID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("payment_delete").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}
