// Package repotest holds behaviour checks shared by every session repository backend.
package repotest

import (
	"context"
	"testing"
	"time"

	"efood/internal/domain/entity"
	"efood/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SampleCartState returns a state with two store carts.
func SampleCartState() entity.CartState {
	return entity.CartState{Stores: []entity.StoreCart{
		{
			StoreID: 10,
			Lines: []entity.CartLine{
				{ProductID: 1, Name: "Souvlaki", Quantity: 2, UnitPrice: 350, Note: "no onions"},
				{ProductID: 2, Name: "Fries", Quantity: 1, UnitPrice: 999},
			},
			ShippingMethod: entity.ShippingMethodDelivery,
			PaymentMethod:  entity.PaymentMethodCard,
			CouponCode:     "WELCOME",
		},
		{
			StoreID:        20,
			Lines:          []entity.CartLine{{ProductID: 5, Quantity: 3, UnitPrice: 120}},
			ShippingMethod: entity.ShippingMethodTakeaway,
		},
	}}
}

// CartSessionRepository checks the behaviour every CartSessionRepository must have.
func CartSessionRepository(t *testing.T, newRepo func(t *testing.T) repository.CartSessionRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing session", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Load(ctx, "unknown")

		assert.ErrorIs(t, err, repository.ErrCartSessionNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		repo := newRepo(t)
		state := SampleCartState()

		require.NoError(t, repo.Save(ctx, "s1", state))
		loaded, err := repo.Load(ctx, "s1")

		require.NoError(t, err)
		assert.Equal(t, state, loaded)
	})

	t.Run("save replaces", func(t *testing.T) {
		repo := newRepo(t)
		state := SampleCartState()

		require.NoError(t, repo.Save(ctx, "s1", state))
		state.Stores = state.Stores[:1]
		require.NoError(t, repo.Save(ctx, "s1", state))
		loaded, err := repo.Load(ctx, "s1")

		require.NoError(t, err)
		assert.Len(t, loaded.Stores, 1)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.Save(ctx, "s1", SampleCartState()))
		_, err := repo.Load(ctx, "s2")

		assert.ErrorIs(t, err, repository.ErrCartSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.Save(ctx, "s1", SampleCartState()))
		require.NoError(t, repo.Delete(ctx, "s1"))
		require.NoError(t, repo.Delete(ctx, "s1"))
		_, err := repo.Load(ctx, "s1")

		assert.ErrorIs(t, err, repository.ErrCartSessionNotFound)
	})
}

// DeviceRepository checks the behaviour every DeviceRepository must have.
func DeviceRepository(t *testing.T, newRepo func(t *testing.T) repository.DeviceRepository) {
	t.Helper()
	ctx := context.Background()

	device := &entity.Device{
		SessionID:    "s1",
		FCMToken:     "fcm-token",
		Platform:     "android",
		Language:     "el",
		RegisteredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("missing device", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.FindDevice(ctx, "s1")

		assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
	})

	t.Run("save then find", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.SaveDevice(ctx, device))
		found, err := repo.FindDevice(ctx, "s1")

		require.NoError(t, err)
		assert.Equal(t, device, found)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.SaveDevice(ctx, device))
		require.NoError(t, repo.DeleteDevice(ctx, "s1"))

		assert.ErrorIs(t, repo.DeleteDevice(ctx, "s1"), repository.ErrDeviceNotFound)
		_, err := repo.FindDevice(ctx, "s1")
		assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
	})
}
