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

type QuoteController struct {
	quotes store.QuoteStore
}

func NewQuoteController(quotes store.QuoteStore) *QuoteController {
	return &QuoteController{quotes: quotes}
}

// GetQuotes godoc
// @Summary List all quotes
// @Tags Quotes
// @Produce json
// @Success 200 {array} models.Quote
// @Failure 500 {object} models.ErrorResponse
// @Router /api/quotes [get]
func (qc *QuoteController) GetQuotes(c *gin.Context) {
	quotes, err := qc.quotes.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to fetch quotes", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("quote_list").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quotes"})
		return
	}
	if quotes == nil {
		quotes = []models.Quote{}
	}
	c.JSON(http.StatusOK, quotes)
}

// CreateQuote godoc
// @Summary Create a quote
// @Description Price defaults to 0 and status to "pending" when omitted.
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body models.CreateQuoteRequest true "Quote data"
// @Success 201 {object} models.Quote
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/quotes [post]
func (qc *QuoteController) CreateQuote(c *gin.Context) {
	var req models.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Status == "" {
		req.Status = models.QuoteStatusPending
	}

	quote := models.Quote{
		ShipmentID:  req.ShipmentID,
		Description: req.Description,
		Price:       req.Price,
		Status:      req.Status,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := qc.quotes.Create(c.Request.Context(), quote)
	if err != nil {
		zap.L().Error("failed to insert quote", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("quote_create").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quote"})
		return
	}

	metrics.QuotesCreatedTotal.Inc()
	c.JSON(http.StatusCreated, created)
}

// UpdateQuote godoc
// @Summary Update a quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body models.UpdateQuoteRequest true "Fields to update"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/quotes [put]
func (qc *QuoteController) UpdateQuote(c *gin.Context) {
	var req models.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote id"})
		return
	}

	upd := models.QuoteUpdate{
		Description: req.Description,
		Price:       req.Price,
		Status:      req.Status,
	}
	if upd == (models.QuoteUpdate{}) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	err = qc.quotes.Update(c.Request.Context(), id, upd)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}
	if err != nil {
		zap.L().Error("failed to update quote", zap.String("id", req.ID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("quote_update").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quote updated successfully"})
}

// DeleteQuote godoc
// @Summary Delete a quote
// @Tags Quotes
// @Accept json
// @Produce json
// @Param quote body models.DeleteRequest true "Quote id"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/quotes [delete]
func (qc *QuoteController) DeleteQuote(c *gin.Context) {
	var req models.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote id"})
		return
	}

	err = qc.quotes.Delete(c.Request.Context(), id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}
	if err != nil {
		zap.L().Error("failed to delete quote", zap.String("id", req.ID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("quote_delete").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quote deleted successfully"})
}
