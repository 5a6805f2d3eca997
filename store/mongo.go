package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
)

// Collection names.
const (
	colShipments = "shipments"
	colQuotes    = "quotes"
	colPayments  = "payments"
	colTracking  = "tracking"
	colUsers     = "users"
)

// NewMongoStores wires one store per collection onto the injected database
// handle.
func NewMongoStores(db *mongo.Database) Stores {
	return Stores{
		Shipments: &mongoShipmentStore{col: db.Collection(colShipments)},
		Quotes:    &mongoQuoteStore{col: db.Collection(colQuotes)},
		Payments:  &mongoPaymentStore{col: db.Collection(colPayments)},
		Tracking:  &mongoTrackingStore{col: db.Collection(colTracking)},
		Users:     &mongoUserStore{col: db.Collection(colUsers)},
	}
}

type mongoShipmentStore struct {
	col *mongo.Collection
}

func (s *mongoShipmentStore) List(ctx context.Context) ([]models.Shipment, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shipments []models.Shipment
	if err := cursor.All(ctx, &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

func (s *mongoShipmentStore) Create(ctx context.Context, shipment models.Shipment) (models.Shipment, error) {
	shipment.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, shipment); err != nil {
		return models.Shipment{}, err
	}
	return shipment, nil
}

func (s *mongoShipmentStore) Update(ctx context.Context, id primitive.ObjectID, upd models.ShipmentUpdate) (models.Shipment, error) {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": upd})
	if err != nil {
		return models.Shipment{}, err
	}
	if result.MatchedCount == 0 {
		return models.Shipment{}, ErrNotFound
	}

	var updated models.Shipment
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		return models.Shipment{}, err
	}
	return updated, nil
}

func (s *mongoShipmentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoQuoteStore struct {
	col *mongo.Collection
}

func (s *mongoQuoteStore) List(ctx context.Context) ([]models.Quote, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quotes []models.Quote
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (s *mongoQuoteStore) Create(ctx context.Context, quote models.Quote) (models.Quote, error) {
	quote.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, quote); err != nil {
		return models.Quote{}, err
	}
	return quote, nil
}

func (s *mongoQuoteStore) Update(ctx context.Context, id primitive.ObjectID, upd models.QuoteUpdate) error {
	return updateByID(ctx, s.col, id, upd)
}

func (s *mongoQuoteStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.col, id)
}

type mongoPaymentStore struct {
	col *mongo.Collection
}

func (s *mongoPaymentStore) List(ctx context.Context) ([]models.Payment, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *mongoPaymentStore) Create(ctx context.Context, payment models.Payment) (models.Payment, error) {
	payment.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, payment); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (s *mongoPaymentStore) Update(ctx context.Context, id primitive.ObjectID, upd models.PaymentUpdate) error {
	return updateByID(ctx, s.col, id, upd)
}

func (s *mongoPaymentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.col, id)
}

type mongoTrackingStore struct {
	col *mongo.Collection
}

func (s *mongoTrackingStore) List(ctx context.Context) ([]models.TrackingRecord, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.TrackingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *mongoTrackingStore) Create(ctx context.Context, record models.TrackingRecord) (models.TrackingRecord, error) {
	record.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, record); err != nil {
		return models.TrackingRecord{}, err
	}
	return record, nil
}

func (s *mongoTrackingStore) Update(ctx context.Context, id primitive.ObjectID, upd models.TrackingUpdate) error {
	return updateByID(ctx, s.col, id, upd)
}

func (s *mongoTrackingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.col, id)
}

type mongoUserStore struct {
	col *mongo.Collection
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUserStore) CountByEmailAndType(ctx context.Context, email, userType string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"email": email, "userType": userType})
}

func (s *mongoUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *mongoUserStore) PromoteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := s.col.UpdateMany(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"userType": models.UserTypeAdmin}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func updateByID(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, upd interface{}) error {
	result, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": upd})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id primitive.ObjectID) error {
	result, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
