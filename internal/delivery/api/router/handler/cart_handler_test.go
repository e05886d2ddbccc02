package handler

import (
	"net/http"
	"testing"

	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	mockUsecase "efood/internal/mocks/usecase"
	"efood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartHandlerFixtures holds all test dependencies for cart handler tests.
type cartHandlerFixtures struct {
	handler *CartHandler
	cartUC  *mockUsecase.MockCartUsecase
}

func createTestCartHandler(t *testing.T) cartHandlerFixtures {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	handler := NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: newTestLogger()})

	return cartHandlerFixtures{
		handler: handler,
		cartUC:  cartUC,
	}
}

func testStoreCartView() *usecase.StoreCartView {
	cart := entity.NewStoreCart(10)
	cart.Lines = []entity.CartLine{{ProductID: 7, Name: "Gyros", Quantity: 2, UnitPrice: 350}}

	return &usecase.StoreCartView{StoreCart: cart, TotalProducts: 2, TotalPrice: 700}
}

func TestCartHandler_GetCarts(t *testing.T) {
	fx := createTestCartHandler(t)
	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/carts", session: testSessionID})

	fx.cartUC.EXPECT().
		GetCarts(mock.Anything, testSessionID).
		Return(&usecase.CartsView{Stores: []usecase.StoreCartView{*testStoreCartView()}, TotalProducts: 2}, nil)

	require.NoError(t, fx.handler.GetCarts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	carts := decodeSuccess[usecase.CartsView](t, rec)
	assert.Equal(t, 2, carts.TotalProducts)
	require.Len(t, carts.Stores, 1)
	assert.Equal(t, entity.Money(700), carts.Stores[0].TotalPrice)
}

func TestCartHandler_AddItem(t *testing.T) {
	fx := createTestCartHandler(t)
	c, rec := newTestContext(testRequest{
		method:  http.MethodPost,
		target:  "/api/v1/carts/10/items",
		body:    `{"product_id":7,"name":"Gyros","price":"3.50","quantity":2,"note":"no onions"}`,
		params:  map[string]string{"storeId": "10"},
		session: testSessionID,
	})

	want := &usecase.AddItemInput{ProductID: 7, Name: "Gyros", Price: 350, Quantity: 2, Note: "no onions"}
	fx.cartUC.EXPECT().AddItem(mock.Anything, testSessionID, int64(10), want).Return(testStoreCartView(), nil)

	require.NoError(t, fx.handler.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	view := decodeSuccess[usecase.StoreCartView](t, rec)
	assert.Equal(t, int64(10), view.StoreID)
	assert.Equal(t, 2, view.TotalProducts)
}

func TestCartHandler_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		request    testRequest
		wantStatus int
		wantCode   string
	}{
		{
			name: "missing quantity",
			request: testRequest{
				method: http.MethodPost, body: `{"product_id":7}`,
				params: map[string]string{"storeId": "10"}, session: testSessionID,
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "store id is not a number",
			request: testRequest{
				method: http.MethodPost, body: `{"product_id":7,"quantity":1}`,
				params: map[string]string{"storeId": "abc"}, session: testSessionID,
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "malformed body",
			request: testRequest{
				method: http.MethodPost, body: `{"product_id":`,
				params: map[string]string{"storeId": "10"}, session: testSessionID,
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "price beyond the money range",
			request: testRequest{
				method: http.MethodPost, body: `{"product_id":7,"quantity":1,"price":"184467440737095516.17"}`,
				params: map[string]string{"storeId": "10"}, session: testSessionID,
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "no session",
			request: testRequest{
				method: http.MethodPost, body: `{"product_id":7,"quantity":1}`,
				params: map[string]string{"storeId": "10"},
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "SESSION_INVALID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartHandler(t)
			tt.request.target = "/api/v1/carts/x/items"
			c, rec := newTestContext(tt.request)

			require.NoError(t, fx.handler.AddItem(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestCartHandler_SetQuantityZeroRemovesLine(t *testing.T) {
	fx := createTestCartHandler(t)
	c, rec := newTestContext(testRequest{
		method:  http.MethodPut,
		target:  "/api/v1/carts/10/items/7",
		body:    `{"quantity":0}`,
		params:  map[string]string{"storeId": "10", "productId": "7"},
		session: testSessionID,
	})

	fx.cartUC.EXPECT().SetQuantity(mock.Anything, testSessionID, int64(10), int64(7), 0).Return(nil, nil)

	require.NoError(t, fx.handler.SetQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `null`, string(mustData(t, rec)))
}

func TestCartHandler_SetPaymentMethod_Invalid(t *testing.T) {
	fx := createTestCartHandler(t)
	c, rec := newTestContext(testRequest{
		method:  http.MethodPut,
		target:  "/api/v1/carts/10/payment-method",
		body:    `{"payment_method":"bitcoin"}`,
		params:  map[string]string{"storeId": "10"},
		session: testSessionID,
	})

	fx.cartUC.EXPECT().
		SetPaymentMethod(mock.Anything, testSessionID, int64(10), entity.PaymentMethod("bitcoin")).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment method"))

	require.NoError(t, fx.handler.SetPaymentMethod(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
	assert.Equal(t, "unknown payment method", info.Details)
}

func TestCartHandler_GetStoreCart_NotFound(t *testing.T) {
	fx := createTestCartHandler(t)
	c, rec := newTestContext(testRequest{
		method:  http.MethodGet,
		target:  "/api/v1/carts/99",
		params:  map[string]string{"storeId": "99"},
		session: testSessionID,
	})

	fx.cartUC.EXPECT().GetStoreCart(mock.Anything, testSessionID, int64(99)).Return(nil, domainerrors.ErrCartNotFound)

	require.NoError(t, fx.handler.GetStoreCart(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CART_NOT_FOUND", decodeError(t, rec).Code)
}

func TestCartHandler_StorageFailureIsReturned(t *testing.T) {
	fx := createTestCartHandler(t)
	c, _ := newTestContext(testRequest{
		method:  http.MethodDelete,
		target:  "/api/v1/carts/10",
		params:  map[string]string{"storeId": "10"},
		session: testSessionID,
	})

	fx.cartUC.EXPECT().ClearStore(mock.Anything, testSessionID, int64(10)).Return(assert.AnError)

	err := fx.handler.ClearStore(c)
	assert.ErrorIs(t, err, assert.AnError)
}
