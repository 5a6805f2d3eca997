package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

type Payment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShipmentID string             `bson:"shipmentId,omitempty" json:"shipmentId,omitempty"`
	Amount     float64            `bson:"amount" json:"amount"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreatePaymentRequest struct {
	ShipmentID string  `json:"shipmentId"`
	Amount     float64 `json:"amount" binding:"omitempty,gte=0"`
	Status     string  `json:"status"`
}

type UpdatePaymentRequest struct {
	ID     string  `json:"id" binding:"required"`
	Amount float64 `json:"amount" binding:"omitempty,gte=0"`
	Status string  `json:"status"`
}

type PaymentUpdate struct {
	Amount float64 `bson:"amount,omitempty"`
	Status string  `bson:"status,omitempty"`
}
