package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	"efood/internal/domain/repository"
	"efood/internal/infra/persistence/memory"
	mockRepo "efood/internal/mocks/repository"
	"efood/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionID = "session-1"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service  usecase.CartUsecase
	cartRepo *mockRepo.MockCartSessionRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartSessionRepository(t)
	service := NewCartService(NewCartSessions(cartRepo, newTestLogger()))

	return cartServiceFixtures{
		service:  service,
		cartRepo: cartRepo,
	}
}

func storedState() entity.CartState {
	return entity.CartState{Stores: []entity.StoreCart{
		{
			StoreID:        10,
			Lines:          []entity.CartLine{{ProductID: 1, Name: "Gyros", Quantity: 2, UnitPrice: 350}},
			ShippingMethod: entity.ShippingMethodDelivery,
			PaymentMethod:  entity.PaymentMethodCard,
		},
		{
			StoreID:        20,
			Lines:          []entity.CartLine{{ProductID: 9, Quantity: 1, UnitPrice: 999}},
			ShippingMethod: entity.ShippingMethodTakeaway,
		},
	}}
}

func TestCartService_AddItem_NewSession(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Load(ctx, sessionID).
		Return(entity.CartState{}, repository.ErrCartSessionNotFound)
	fx.cartRepo.EXPECT().
		Save(ctx, sessionID, mock.MatchedBy(func(state entity.CartState) bool {
			return len(state.Stores) == 1 && state.Stores[0].StoreID == 10 && state.Stores[0].Lines[0].Quantity == 2
		})).
		Return(nil)

	view, err := fx.service.AddItem(ctx, sessionID, 10, &usecase.AddItemInput{
		ProductID: 1, Name: "Gyros", Price: 350, Quantity: 2, Note: "no onions",
	})

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, 2, view.TotalProducts)
	assert.Equal(t, entity.Money(700), view.TotalPrice)
	assert.Equal(t, entity.ShippingMethodDelivery, view.ShippingMethod)
	assert.Equal(t, "no onions", view.Lines[0].Note)
}

func TestCartService_AddItem_MergesStoredLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(storedState(), nil)
	fx.cartRepo.EXPECT().
		Save(ctx, sessionID, mock.AnythingOfType("entity.CartState")).
		Return(nil)

	view, err := fx.service.AddItem(ctx, sessionID, 10, &usecase.AddItemInput{ProductID: 1, Price: 400, Quantity: 1})

	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)
	assert.Equal(t, entity.Money(350), view.Lines[0].UnitPrice)
	assert.Equal(t, entity.Money(1050), view.TotalPrice)
}

func TestCartService_RemoveLastItem_DeletesSession(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	state := storedState()
	state.Stores = state.Stores[:1]

	fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(state, nil)
	fx.cartRepo.EXPECT().Delete(ctx, sessionID).Return(nil)

	view, err := fx.service.RemoveItem(ctx, sessionID, 10, 1)

	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestCartService_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("updates quantity", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(storedState(), nil)
		fx.cartRepo.EXPECT().Save(ctx, sessionID, mock.AnythingOfType("entity.CartState")).Return(nil)

		view, err := fx.service.SetQuantity(ctx, sessionID, 10, 1, 5)

		require.NoError(t, err)
		assert.Equal(t, 5, view.TotalProducts)
	})

	t.Run("unknown product is not persisted", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(storedState(), nil)

		view, err := fx.service.SetQuantity(ctx, sessionID, 10, 404, 5)

		require.NoError(t, err)
		assert.Equal(t, 2, view.TotalProducts)
	})

	t.Run("negative quantity is not persisted", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(storedState(), nil)

		view, err := fx.service.SetQuantity(ctx, sessionID, 10, 1, -1)

		require.NoError(t, err)
		assert.Equal(t, 2, view.TotalProducts)
	})
}

func TestCartService_SetMethods(t *testing.T) {
	ctx := context.Background()

	t.Run("payment method on a new store creates an empty cart", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(storedState(), nil)
		fx.cartRepo.EXPECT().
			Save(ctx, sessionID, mock.MatchedBy(func(state entity.CartState) bool { return len(state.Stores) == 3 })).
			Return(nil)

		view, err := fx.service.SetPaymentMethod(ctx, sessionID, 30, entity.PaymentMethodCashOnDelivery)

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentMethodCashOnDelivery, view.PaymentMethod)
		assert.Empty(t, view.Lines)
		assert.Equal(t, 0, view.TotalProducts)
	})

	t.Run("invalid shipping method is rejected before loading", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.SetShippingMethod(ctx, sessionID, 10, entity.ShippingMethod("drone"))

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("invalid payment method is rejected before loading", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.SetPaymentMethod(ctx, sessionID, 10, entity.PaymentMethod("crypto"))

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("coupon is trimmed", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(storedState(), nil)
		fx.cartRepo.EXPECT().Save(ctx, sessionID, mock.AnythingOfType("entity.CartState")).Return(nil)

		view, err := fx.service.SetCouponCode(ctx, sessionID, 20, "  SUMMER  ")

		require.NoError(t, err)
		assert.Equal(t, "SUMMER", view.CouponCode)
	})
}

func TestCartService_ClearStore_KeepsOtherStores(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(storedState(), nil)
	fx.cartRepo.EXPECT().
		Save(ctx, sessionID, mock.MatchedBy(func(state entity.CartState) bool {
			return len(state.Stores) == 1 && state.Stores[0].StoreID == 20
		})).
		Return(nil)

	require.NoError(t, fx.service.ClearStore(ctx, sessionID, 10))
}

func TestCartService_GetCarts(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(storedState(), nil)

	view, err := fx.service.GetCarts(ctx, sessionID)

	require.NoError(t, err)
	require.Len(t, view.Stores, 2)
	assert.Equal(t, int64(10), view.Stores[0].StoreID)
	assert.Equal(t, entity.Money(700), view.Stores[0].TotalPrice)
	assert.Equal(t, int64(20), view.Stores[1].StoreID)
	assert.Equal(t, 3, view.TotalProducts)
}

func TestCartService_GetCarts_EmptySession(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(entity.CartState{}, repository.ErrCartSessionNotFound)

	view, err := fx.service.GetCarts(ctx, sessionID)

	require.NoError(t, err)
	assert.Empty(t, view.Stores)
	assert.NotNil(t, view.Stores)
}

func TestCartService_GetStoreCart_NotFound(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(storedState(), nil)

	_, err := fx.service.GetStoreCart(ctx, sessionID, 99)

	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestCartService_StorageErrors(t *testing.T) {
	ctx := context.Background()
	storageErr := domainerrors.NewStorageError(errors.New("connection refused"), "failed to save cart session")

	t.Run("load failure", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(entity.CartState{}, storageErr)

		_, err := fx.service.AddItem(ctx, sessionID, 10, &usecase.AddItemInput{ProductID: 1, Quantity: 1})

		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("save failure", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().Load(ctx, sessionID).Return(storedState(), nil)
		fx.cartRepo.EXPECT().Save(ctx, sessionID, mock.AnythingOfType("entity.CartState")).Return(storageErr)

		view, err := fx.service.AddItem(ctx, sessionID, 10, &usecase.AddItemInput{ProductID: 1, Quantity: 1})

		assert.Nil(t, view)
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "SESSION_STORAGE_FAILED", appErr.ErrorCode())
	})
}

func TestCartService_ConcurrentRequestsOfOneSession(t *testing.T) {
	repo := memory.NewCartSessionRepository(memory.NewStore(time.Hour))
	sessions := NewCartSessions(repo, newTestLogger())
	service := NewCartService(sessions)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.AddItem(ctx, sessionID, 10, &usecase.AddItemInput{ProductID: 1, Price: 100, Quantity: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	view, err := service.GetStoreCart(ctx, sessionID, 10)
	require.NoError(t, err)
	assert.Equal(t, 50, view.TotalProducts)
	assert.Equal(t, entity.Money(5000), view.TotalPrice)
	assert.Equal(t, 0, sessions.locks.size())
}
