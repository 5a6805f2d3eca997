package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	QuoteStatusPending  = "pending"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
)

type Quote struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShipmentID  string             `bson:"shipmentId,omitempty" json:"shipmentId,omitempty"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateQuoteRequest struct {
	ShipmentID  string  `json:"shipmentId"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"omitempty,gte=0"`
	Status      string  `json:"status"`
}

type UpdateQuoteRequest struct {
	ID          string  `json:"id" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"omitempty,gte=0"`
	Status      string  `json:"status"`
}

type QuoteUpdate struct {
	Description string  `bson:"description,omitempty"`
	Price       float64 `bson:"price,omitempty"`
	Status      string  `bson:"status,omitempty"`
}
