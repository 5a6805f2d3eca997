package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Well-known shipment statuses. The status field stays an opaque string on
// the wire; these are the values the dashboards render.
const (
	ShipmentStatusPending   = "pending"
	ShipmentStatusInTransit = "in-transit"
	ShipmentStatusDelivered = "delivered"
)

type Shipment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference   string             `bson:"reference" json:"reference"`
	Description string             `bson:"description" json:"description"`
	Origin      string             `bson:"origin,omitempty" json:"origin,omitempty"`
	Destination string             `bson:"destination,omitempty" json:"destination,omitempty"`
	WeightKg    float64            `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateShipmentRequest struct {
	Description string  `json:"description" binding:"required"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weightKg" binding:"omitempty,gt=0"`
	Status      string  `json:"status"`
}

type UpdateShipmentRequest struct {
	ID          string  `json:"id" binding:"required"`
	Description string  `json:"description"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weightKg" binding:"omitempty,gt=0"`
	Status      string  `json:"status"`
}

// ShipmentUpdate carries only the fields being changed; zero values are
// dropped from the $set document via omitempty.
type ShipmentUpdate struct {
	Description string  `bson:"description,omitempty"`
	Origin      string  `bson:"origin,omitempty"`
	Destination string  `bson:"destination,omitempty"`
	WeightKg    float64 `bson:"weightKg,omitempty"`
	Status      string  `bson:"status,omitempty"`
}
