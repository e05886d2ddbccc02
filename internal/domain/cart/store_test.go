package cart

import (
	"sync"
	"testing"

	"efood/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storeA int64 = 10
	storeB int64 = 20
)

var (
	burger = entity.Product{ID: 1, Name: "Burger", Price: 350}
	pizza  = entity.Product{ID: 2, Name: "Pizza", Price: 999}
)

func TestStore_AddItem_MergesSameProduct(t *testing.T) {
	s := New()

	s.AddItem(storeA, burger, 2, "x")
	s.AddItem(storeA, burger, 3, "y")

	cart, ok := s.SelectStore(storeA)
	require.True(t, ok)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, "y", cart.Lines[0].Note)
	assert.Equal(t, entity.Money(350), cart.Lines[0].UnitPrice)
}

func TestStore_AddItem_PreservesInsertionOrder(t *testing.T) {
	s := New()

	s.AddItem(storeA, pizza, 1, "")
	s.AddItem(storeA, burger, 1, "")
	s.AddItem(storeA, pizza, 1, "")

	cart, ok := s.SelectStore(storeA)
	require.True(t, ok)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, pizza.ID, cart.Lines[0].ProductID)
	assert.Equal(t, burger.ID, cart.Lines[1].ProductID)
}

func TestStore_AddItem_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		product  entity.Product
		quantity int
	}{
		{name: "zero quantity", product: burger, quantity: 0},
		{name: "negative quantity", product: burger, quantity: -2},
		{name: "negative price", product: entity.Product{ID: 3, Price: -1}, quantity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()

			s.AddItem(storeA, tt.product, tt.quantity, "")

			_, ok := s.SelectStore(storeA)
			assert.False(t, ok)
			assert.Zero(t, s.StoreTotalProducts(storeA))
		})
	}
}

func TestStore_RemoveItem_PrunesEmptyCart(t *testing.T) {
	s := New()

	s.AddItem(storeA, burger, 1, "")
	s.RemoveItem(storeA, burger.ID)

	_, ok := s.SelectStore(storeA)
	assert.False(t, ok)
	assert.Empty(t, s.Stores())
}

func TestStore_RemoveItem_UnknownIsNoop(t *testing.T) {
	s := New()
	s.AddItem(storeA, burger, 1, "")
	before := s.State()

	s.RemoveItem(storeA, pizza.ID)
	s.RemoveItem(storeB, burger.ID)

	assert.Equal(t, before, s.State())
}

func TestStore_StoreTotals(t *testing.T) {
	s := New()

	s.AddItem(storeA, burger, 2, "")
	s.AddItem(storeA, pizza, 1, "")

	assert.Equal(t, entity.Money(1699), s.StoreTotalPrice(storeA))
	assert.Equal(t, "16.99", s.StoreTotalPrice(storeA).String())
	assert.Equal(t, 3, s.StoreTotalProducts(storeA))

	assert.Zero(t, s.StoreTotalPrice(storeB))
	assert.Zero(t, s.StoreTotalProducts(storeB))
}

func TestStore_StoreTotalPrice_NoDrift(t *testing.T) {
	s := New()
	dime := entity.Product{ID: 7, Price: 10}

	for range 1000 {
		s.AddItem(storeA, dime, 1, "")
	}

	assert.Equal(t, "100.00", s.StoreTotalPrice(storeA).String())
}

func TestStore_StoreIsolation(t *testing.T) {
	s := New()
	s.AddItem(storeB, pizza, 2, "no onions")
	s.SetPaymentMethod(storeB, entity.PaymentMethodCard)
	before, ok := s.SelectStore(storeB)
	require.True(t, ok)

	s.AddItem(storeA, pizza, 1, "")
	s.SetQuantity(storeA, pizza.ID, 4)
	s.SetShippingMethod(storeA, entity.ShippingMethodTakeaway)
	s.SetPaymentMethod(storeA, entity.PaymentMethodCashOnDelivery)
	s.SetCouponCode(storeA, "SAVE10")
	s.RemoveItem(storeA, pizza.ID)
	s.ClearStore(storeA)

	after, ok := s.SelectStore(storeB)
	require.True(t, ok)
	assert.Equal(t, before, after)
}

func TestStore_SetQuantity(t *testing.T) {
	t.Run("zero removes the line", func(t *testing.T) {
		viaSet := New()
		viaSet.AddItem(storeA, burger, 2, "")
		viaSet.AddItem(storeA, pizza, 1, "")
		viaRemove := New()
		viaRemove.AddItem(storeA, burger, 2, "")
		viaRemove.AddItem(storeA, pizza, 1, "")

		viaSet.SetQuantity(storeA, burger.ID, 0)
		viaRemove.RemoveItem(storeA, burger.ID)

		assert.Equal(t, viaRemove.State(), viaSet.State())
	})

	t.Run("zero on last line prunes the cart", func(t *testing.T) {
		s := New()
		s.AddItem(storeA, burger, 2, "")

		s.SetQuantity(storeA, burger.ID, 0)

		_, ok := s.SelectStore(storeA)
		assert.False(t, ok)
	})

	t.Run("negative is a no-op", func(t *testing.T) {
		s := New()
		s.AddItem(storeA, burger, 2, "")
		before := s.State()

		s.SetQuantity(storeA, burger.ID, -1)

		assert.Equal(t, before, s.State())
	})

	t.Run("positive replaces quantity", func(t *testing.T) {
		s := New()
		s.AddItem(storeA, burger, 2, "")

		s.SetQuantity(storeA, burger.ID, 7)

		line, ok := s.SelectProduct(storeA, burger.ID)
		require.True(t, ok)
		assert.Equal(t, 7, line.Quantity)
	})

	t.Run("unknown product does not create a line", func(t *testing.T) {
		s := New()

		s.SetQuantity(storeA, burger.ID, 3)

		_, ok := s.SelectStore(storeA)
		assert.False(t, ok)
	})
}

func TestStore_FieldSettersCreateCart(t *testing.T) {
	s := New()

	s.SetPaymentMethod(storeA, entity.PaymentMethodCard)

	cart, ok := s.SelectStore(storeA)
	require.True(t, ok)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, entity.ShippingMethodDelivery, cart.ShippingMethod)
	assert.Equal(t, entity.PaymentMethodCard, cart.PaymentMethod)

	s.SetShippingMethod(storeB, entity.ShippingMethodTakeaway)
	s.SetCouponCode(storeB, "  WELCOME ")

	cart, ok = s.SelectStore(storeB)
	require.True(t, ok)
	assert.Equal(t, entity.ShippingMethodTakeaway, cart.ShippingMethod)
	assert.Equal(t, "WELCOME", cart.CouponCode)
}

func TestStore_FieldSettersRejectUnknownValues(t *testing.T) {
	s := New()

	s.SetShippingMethod(storeA, entity.ShippingMethod("drone"))
	s.SetPaymentMethod(storeA, entity.PaymentMethod("crypto"))

	_, ok := s.SelectStore(storeA)
	assert.False(t, ok)
}

func TestStore_SetCouponCode_EmptyClears(t *testing.T) {
	s := New()
	s.AddItem(storeA, burger, 1, "")
	s.SetCouponCode(storeA, "SAVE10")

	s.SetCouponCode(storeA, "")

	cart, ok := s.SelectStore(storeA)
	require.True(t, ok)
	assert.Empty(t, cart.CouponCode)
}

func TestStore_ClearStore(t *testing.T) {
	s := New()
	s.AddItem(storeA, burger, 1, "")
	s.AddItem(storeB, pizza, 1, "")

	s.ClearStore(storeA)

	_, ok := s.SelectStore(storeA)
	assert.False(t, ok)
	_, ok = s.SelectStore(storeB)
	assert.True(t, ok)
	assert.Equal(t, 1, s.TotalProducts())
}

func TestStore_SelectStore_ReturnsCopy(t *testing.T) {
	s := New()
	s.AddItem(storeA, burger, 1, "")

	cart, ok := s.SelectStore(storeA)
	require.True(t, ok)
	cart.Lines[0].Quantity = 99

	line, ok := s.SelectProduct(storeA, burger.ID)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
}

func TestStore_Stores_CreationOrder(t *testing.T) {
	s := New()
	s.AddItem(storeB, pizza, 1, "")
	s.AddItem(storeA, burger, 1, "")
	s.AddItem(storeB, burger, 1, "")

	stores := s.Stores()
	require.Len(t, stores, 2)
	assert.Equal(t, storeB, stores[0].StoreID)
	assert.Equal(t, storeA, stores[1].StoreID)
}

func TestStore_OnChange(t *testing.T) {
	s := New()
	var states []entity.CartState
	s.OnChange(func(state entity.CartState) {
		states = append(states, state)
	})

	s.AddItem(storeA, burger, 1, "")
	s.SetQuantity(storeA, burger.ID, 1) // unchanged
	s.SetQuantity(storeA, burger.ID, -1)
	s.RemoveItem(storeB, burger.ID)
	s.SetShippingMethod(storeA, entity.ShippingMethodDelivery) // already the default
	s.RemoveItem(storeA, burger.ID)

	require.Len(t, states, 2)
	assert.Len(t, states[0].Stores, 1)
	assert.Empty(t, states[1].Stores)
}

func TestRestore(t *testing.T) {
	state := entity.CartState{Stores: []entity.StoreCart{
		{
			StoreID:        storeA,
			ShippingMethod: entity.ShippingMethodTakeaway,
			PaymentMethod:  entity.PaymentMethod("bitcoin"),
			CouponCode:     " SAVE10 ",
			Lines: []entity.CartLine{
				{ProductID: 1, Quantity: 2, UnitPrice: 350},
				{ProductID: 2, Quantity: 0, UnitPrice: 999},
				{ProductID: 1, Quantity: 1, UnitPrice: 350},
			},
		},
		{StoreID: storeA, Lines: []entity.CartLine{{ProductID: 9, Quantity: 1}}},
		{StoreID: storeB, Lines: []entity.CartLine{{ProductID: 1, Quantity: -1}}},
		{StoreID: 30, ShippingMethod: entity.ShippingMethod("drone"), PaymentMethod: entity.PaymentMethodCard},
	}}

	s := Restore(state)

	stores := s.Stores()
	require.Len(t, stores, 2)

	assert.Equal(t, storeA, stores[0].StoreID)
	assert.Equal(t, entity.ShippingMethodTakeaway, stores[0].ShippingMethod)
	assert.Empty(t, stores[0].PaymentMethod)
	assert.Equal(t, "SAVE10", stores[0].CouponCode)
	require.Len(t, stores[0].Lines, 1)
	assert.Equal(t, 3, stores[0].Lines[0].Quantity)

	assert.Equal(t, int64(30), stores[1].StoreID)
	assert.Equal(t, entity.ShippingMethodDelivery, stores[1].ShippingMethod)
	assert.Equal(t, entity.PaymentMethodCard, stores[1].PaymentMethod)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := New()
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddItem(storeA, burger, 1, "")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.StoreTotalProducts(storeA))
}
