package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TrackingStatusInTransit = "in transit"
	TrackingStatusDelivered = "delivered"
)

// TrackingRecord is one location update for a shipment. RecordedAt is set by
// the server at insert time, never taken from the caller.
type TrackingRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShipmentID string             `bson:"shipmentId" json:"shipmentId"`
	Location   string             `bson:"location" json:"location"`
	Status     string             `bson:"status" json:"status"`
	RecordedAt time.Time          `bson:"recordedAt" json:"recordedAt"`
}

type CreateTrackingRequest struct {
	ShipmentID string `json:"shipmentId" binding:"required"`
	Location   string `json:"location"`
	Status     string `json:"status"`
}

type UpdateTrackingRequest struct {
	ID       string `json:"id" binding:"required"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

type TrackingUpdate struct {
	Location string `bson:"location,omitempty"`
	Status   string `bson:"status,omitempty"`
}
