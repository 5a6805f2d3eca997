package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
)

// NewMemoryStores returns map-backed stores with the same semantics as the
// Mongo ones. Used by handler tests and local development without a
// database.
func NewMemoryStores() Stores {
	return Stores{
		Shipments: &memoryShipmentStore{shipments: make(map[primitive.ObjectID]models.Shipment)},
		Quotes:    &memoryQuoteStore{quotes: make(map[primitive.ObjectID]models.Quote)},
		Payments:  &memoryPaymentStore{payments: make(map[primitive.ObjectID]models.Payment)},
		Tracking:  &memoryTrackingStore{records: make(map[primitive.ObjectID]models.TrackingRecord)},
		Users:     &memoryUserStore{users: make(map[primitive.ObjectID]models.User)},
	}
}

type memoryShipmentStore struct {
	mu        sync.RWMutex
	shipments map[primitive.ObjectID]models.Shipment
}

func (s *memoryShipmentStore) List(ctx context.Context) ([]models.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Shipment, 0, len(s.shipments))
	for _, shipment := range s.shipments {
		result = append(result, shipment)
	}
	return result, nil
}

func (s *memoryShipmentStore) Create(ctx context.Context, shipment models.Shipment) (models.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return models.Shipment{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	shipment.ID = primitive.NewObjectID()
	s.shipments[shipment.ID] = shipment
	return shipment, nil
}

func (s *memoryShipmentStore) Update(ctx context.Context, id primitive.ObjectID, upd models.ShipmentUpdate) (models.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return models.Shipment{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	shipment, ok := s.shipments[id]
	if !ok {
		return models.Shipment{}, ErrNotFound
	}
	if upd.Description != "" {
		shipment.Description = upd.Description
	}
	if upd.Origin != "" {
		shipment.Origin = upd.Origin
	}
	if upd.Destination != "" {
		shipment.Destination = upd.Destination
	}
	if upd.WeightKg != 0 {
		shipment.WeightKg = upd.WeightKg
	}
	if upd.Status != "" {
		shipment.Status = upd.Status
	}
	s.shipments[id] = shipment
	return shipment, nil
}

func (s *memoryShipmentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shipments[id]; !ok {
		return ErrNotFound
	}
	delete(s.shipments, id)
	return nil
}

type memoryQuoteStore struct {
	mu     sync.RWMutex
	quotes map[primitive.ObjectID]models.Quote
}

func (s *memoryQuoteStore) List(ctx context.Context) ([]models.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Quote, 0, len(s.quotes))
	for _, quote := range s.quotes {
		result = append(result, quote)
	}
	return result, nil
}

func (s *memoryQuoteStore) Create(ctx context.Context, quote models.Quote) (models.Quote, error) {
	if err := ctx.Err(); err != nil {
		return models.Quote{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	quote.ID = primitive.NewObjectID()
	s.quotes[quote.ID] = quote
	return quote, nil
}

func (s *memoryQuoteStore) Update(ctx context.Context, id primitive.ObjectID, upd models.QuoteUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	quote, ok := s.quotes[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Description != "" {
		quote.Description = upd.Description
	}
	if upd.Price != 0 {
		quote.Price = upd.Price
	}
	if upd.Status != "" {
		quote.Status = upd.Status
	}
	s.quotes[id] = quote
	return nil
}

func (s *memoryQuoteStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[id]; !ok {
		return ErrNotFound
	}
	delete(s.quotes, id)
	return nil
}

type memoryPaymentStore struct {
	mu       sync.RWMutex
	payments map[primitive.ObjectID]models.Payment
}

func (s *memoryPaymentStore) List(ctx context.Context) ([]models.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Payment, 0, len(s.payments))
	for _, payment := range s.payments {
		result = append(result, payment)
	}
	return result, nil
}

func (s *memoryPaymentStore) Create(ctx context.Context, payment models.Payment) (models.Payment, error) {
	if err := ctx.Err(); err != nil {
		return models.Payment{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	payment.ID = primitive.NewObjectID()
	s.payments[payment.ID] = payment
	return payment, nil
}

func (s *memoryPaymentStore) Update(ctx context.Context, id primitive.ObjectID, upd models.PaymentUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Amount != 0 {
		payment.Amount = upd.Amount
	}
	if upd.Status != "" {
		payment.Status = upd.Status
	}
	s.payments[id] = payment
	return nil
}

func (s *memoryPaymentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[id]; !ok {
		return ErrNotFound
	}
	delete(s.payments, id)
	return nil
}

type memoryTrackingStore struct {
	mu      sync.RWMutex
	records map[primitive.ObjectID]models.TrackingRecord
}

func (s *memoryTrackingStore) List(ctx context.Context) ([]models.TrackingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.TrackingRecord, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	return result, nil
}

func (s *memoryTrackingStore) Create(ctx context.Context, record models.TrackingRecord) (models.TrackingRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.TrackingRecord{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record.ID = primitive.NewObjectID()
	s.records[record.ID] = record
	return record, nil
}

func (s *memoryTrackingStore) Update(ctx context.Context, id primitive.ObjectID, upd models.TrackingUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Location != "" {
		record.Location = upd.Location
	}
	if upd.Status != "" {
		record.Status = upd.Status
	}
	s.records[id] = record
	return nil
}

func (s *memoryTrackingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

type memoryUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func (s *memoryUserStore) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.User
	for _, user := range s.users {
		if user.Email == email {
			result = append(result, user)
		}
	}
	return result, nil
}

func (s *memoryUserStore) CountByEmailAndType(ctx context.Context, email, userType string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, user := range s.users {
		if user.Email == email && user.UserType == userType {
			count++
		}
	}
	return count, nil
}

func (s *memoryUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	s.users[user.ID] = user
	return user, nil
}

func (s *memoryUserStore) PromoteByEmail(ctx context.Context, email string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched int64
	for id, user := range s.users {
		if user.Email == email {
			user.UserType = models.UserTypeAdmin
			s.users[id] = user
			matched++
		}
	}
	return matched, nil
}
