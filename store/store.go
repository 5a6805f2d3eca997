package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
)

// ErrNotFound is returned when a targeted update or delete matched no
// document. Handlers map it to 404.
var ErrNotFound = errors.New("store: document not found")

type ShipmentStore interface {
	List(ctx context.Context) ([]models.Shipment, error)
	Create(ctx context.Context, shipment models.Shipment) (models.Shipment, error)
	// Update applies the set fields and returns the updated document.
	Update(ctx context.Context, id primitive.ObjectID, upd models.ShipmentUpdate) (models.Shipment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type QuoteStore interface {
	List(ctx context.Context) ([]models.Quote, error)
	Create(ctx context.Context, quote models.Quote) (models.Quote, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.QuoteUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PaymentStore interface {
	List(ctx context.Context) ([]models.Payment, error)
	Create(ctx context.Context, payment models.Payment) (models.Payment, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.PaymentUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TrackingStore interface {
	List(ctx context.Context) ([]models.TrackingRecord, error)
	Create(ctx context.Context, record models.TrackingRecord) (models.TrackingRecord, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.TrackingUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type UserStore interface {
	// FindByEmail returns every account under an email; there may be one
	// per user type.
	FindByEmail(ctx context.Context, email string) ([]models.User, error)
	CountByEmailAndType(ctx context.Context, email, userType string) (int64, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	// PromoteByEmail marks every account under an email as admin and
	// returns the number of accounts matched.
	PromoteByEmail(ctx context.Context, email string) (int64, error)
}

// Stores bundles one store per collection for wiring.
type Stores struct {
	Shipments ShipmentStore
	Quotes    QuoteStore
	Payments  PaymentStore
	Tracking  TrackingStore
	Users     UserStore
}
