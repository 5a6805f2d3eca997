package models

// DeleteRequest identifies the document to remove for every resource.
type DeleteRequest struct {
	ID string `json:"id" binding:"required"`
}

type SuccessResponse struct {
	Message string `json:"message" example:"Shipment deleted successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request body"`
}
