package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
)

func TestMemoryShipmentStore(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	created, err := stores.Shipments.Create(ctx, models.Shipment{Description: "crates", Status: "pending"})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	// Partial update leaves other fields alone.
	updated, err := stores.Shipments.Update(ctx, created.ID, models.ShipmentUpdate{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, "crates", updated.Description)
	assert.Equal(t, "delivered", updated.Status)

	_, err = stores.Shipments.Update(ctx, primitive.NewObjectID(), models.ShipmentUpdate{Status: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, stores.Shipments.Delete(ctx, created.ID))
	assert.ErrorIs(t, stores.Shipments.Delete(ctx, created.ID), ErrNotFound)

	list, err := stores.Shipments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryUserStore(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	_, err := stores.Users.Create(ctx, models.User{Email: "jane@example.com", UserType: models.UserTypeSME})
	require.NoError(t, err)
	_, err = stores.Users.Create(ctx, models.User{Email: "jane@example.com", UserType: models.UserTypeProvider})
	require.NoError(t, err)

	count, err := stores.Users.CountByEmailAndType(ctx, "jane@example.com", models.UserTypeSME)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	found, err := stores.Users.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	matched, err := stores.Users.PromoteByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), matched)

	found, err = stores.Users.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	for _, u := range found {
		assert.Equal(t, models.UserTypeAdmin, u.UserType)
	}

	matched, err = stores.Users.PromoteByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Zero(t, matched)
}

func TestCanceledContext(t *testing.T) {
	stores := NewMemoryStores()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stores.Shipments.List(ctx)
	assert.Error(t, err)
	_, err = stores.Quotes.Create(ctx, models.Quote{})
	assert.Error(t, err)
}
