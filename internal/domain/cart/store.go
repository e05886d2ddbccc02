// Package cart implements the multi-vendor cart engine.
//
// A Store keeps one entity.StoreCart per vendor. All operations are total:
// invalid input (non-positive quantities, unknown stores or products, unknown
// enum values) is refused as a no-op instead of an error, because updates come
// straight from user input.
package cart

import (
	"slices"
	"strings"
	"sync"

	"efood/internal/domain/entity"
)

type outcome int

const (
	unchanged outcome = iota
	replaced
	deleted
)

// Store is a session's cart state container, keyed by store id.
// It is safe for concurrent use; each operation is applied atomically.
type Store struct {
	mu       sync.RWMutex
	carts    map[int64]entity.StoreCart
	order    []int64 // store ids in creation order
	listener func(entity.CartState)
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		carts: make(map[int64]entity.StoreCart),
	}
}

// Restore rebuilds a Store from persisted state. Invalid lines are dropped and
// a cart that loses all of its lines that way is dropped with them.
func Restore(state entity.CartState) *Store {
	s := New()
	for _, persisted := range state.Stores {
		if _, dup := s.carts[persisted.StoreID]; dup {
			continue
		}

		restored, ok := sanitize(persisted)
		if !ok {
			continue
		}

		s.carts[restored.StoreID] = restored
		s.order = append(s.order, restored.StoreID)
	}

	return s
}

func sanitize(persisted entity.StoreCart) (entity.StoreCart, bool) {
	restored := entity.NewStoreCart(persisted.StoreID)
	if persisted.ShippingMethod.IsValid() {
		restored.ShippingMethod = persisted.ShippingMethod
	}
	if persisted.PaymentMethod.IsValid() {
		restored.PaymentMethod = persisted.PaymentMethod
	}
	restored.CouponCode = strings.TrimSpace(persisted.CouponCode)

	for _, line := range persisted.Lines {
		if line.Quantity <= 0 || line.UnitPrice < 0 {
			continue
		}
		if idx := restored.LineIndex(line.ProductID); idx >= 0 {
			restored.Lines[idx].Quantity += line.Quantity

			continue
		}
		restored.Lines = append(restored.Lines, line)
	}

	// A cart that only carried invalid lines must not come back empty.
	if len(persisted.Lines) > 0 && len(restored.Lines) == 0 {
		return entity.StoreCart{}, false
	}

	return restored, true
}

// OnChange registers fn to be called with the new state after every mutation
// that changed something. It replaces any previously registered listener.
func (s *Store) OnChange(fn func(entity.CartState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listener = fn
}

// AddItem adds quantity of product to the store's cart, creating the cart on demand.
// An existing line gets the quantity added and its note replaced.
func (s *Store) AddItem(storeID int64, product entity.Product, quantity int, note string) {
	if quantity <= 0 || product.Price < 0 {
		return
	}

	s.apply(storeID, true, func(cart *entity.StoreCart, _ bool) outcome {
		if idx := cart.LineIndex(product.ID); idx >= 0 {
			cart.Lines[idx].Quantity += quantity
			cart.Lines[idx].Note = note

			return replaced
		}

		cart.Lines = append(cart.Lines, entity.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  quantity,
			UnitPrice: product.Price,
			Note:      note,
		})

		return replaced
	})
}

// RemoveItem removes the product's line. Removing the last line deletes the cart.
func (s *Store) RemoveItem(storeID, productID int64) {
	s.apply(storeID, false, func(cart *entity.StoreCart, _ bool) outcome {
		idx := cart.LineIndex(productID)
		if idx < 0 {
			return unchanged
		}

		cart.Lines = slices.Delete(cart.Lines, idx, idx+1)
		if len(cart.Lines) == 0 {
			return deleted
		}

		return replaced
	})
}

// SetQuantity sets a line's quantity. Zero removes the line; negative values are ignored.
func (s *Store) SetQuantity(storeID, productID int64, quantity int) {
	if quantity < 0 {
		return
	}
	if quantity == 0 {
		s.RemoveItem(storeID, productID)

		return
	}

	s.apply(storeID, false, func(cart *entity.StoreCart, _ bool) outcome {
		idx := cart.LineIndex(productID)
		if idx < 0 || cart.Lines[idx].Quantity == quantity {
			return unchanged
		}

		cart.Lines[idx].Quantity = quantity

		return replaced
	})
}

// SetShippingMethod selects the shipping method, creating the cart if absent.
func (s *Store) SetShippingMethod(storeID int64, method entity.ShippingMethod) {
	if !method.IsValid() {
		return
	}

	s.apply(storeID, true, func(cart *entity.StoreCart, exists bool) outcome {
		if exists && cart.ShippingMethod == method {
			return unchanged
		}
		cart.ShippingMethod = method

		return replaced
	})
}

// SetPaymentMethod selects the payment method, creating the cart if absent.
func (s *Store) SetPaymentMethod(storeID int64, method entity.PaymentMethod) {
	if !method.IsValid() {
		return
	}

	s.apply(storeID, true, func(cart *entity.StoreCart, exists bool) outcome {
		if exists && cart.PaymentMethod == method {
			return unchanged
		}
		cart.PaymentMethod = method

		return replaced
	})
}

// SetCouponCode stores the coupon code, creating the cart if absent.
// An empty code clears the coupon.
func (s *Store) SetCouponCode(storeID int64, code string) {
	code = strings.TrimSpace(code)

	s.apply(storeID, true, func(cart *entity.StoreCart, exists bool) outcome {
		if exists && cart.CouponCode == code {
			return unchanged
		}
		cart.CouponCode = code

		return replaced
	})
}

// ClearStore deletes the store's cart entirely.
func (s *Store) ClearStore(storeID int64) {
	s.apply(storeID, false, func(*entity.StoreCart, bool) outcome {
		return deleted
	})
}

// SelectStore returns a copy of the store's cart. ok is false when there is none.
func (s *Store) SelectStore(storeID int64) (cart entity.StoreCart, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current, ok := s.carts[storeID]
	if !ok {
		return entity.StoreCart{}, false
	}

	return current.Clone(), true
}

// SelectProduct returns the line for productID in the store's cart.
func (s *Store) SelectProduct(storeID, productID int64) (entity.CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current, ok := s.carts[storeID]
	if !ok {
		return entity.CartLine{}, false
	}

	idx := current.LineIndex(productID)
	if idx < 0 {
		return entity.CartLine{}, false
	}

	return current.Lines[idx], true
}

// StoreTotalProducts returns the sum of quantities in the store's cart, 0 without a cart.
func (s *Store) StoreTotalProducts(storeID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.carts[storeID].TotalProducts()
}

// StoreTotalPrice returns the store's cart total in minor units, 0 without a cart.
func (s *Store) StoreTotalPrice(storeID int64) entity.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.carts[storeID].TotalPrice()
}

// TotalProducts returns the sum of quantities across every store's cart.
func (s *Store) TotalProducts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, cart := range s.carts {
		total += cart.TotalProducts()
	}

	return total
}

// Stores returns copies of all carts in creation order.
func (s *Store) Stores() []entity.StoreCart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stateLocked().Stores
}

// State returns the serialisable image of the store.
func (s *Store) State() entity.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stateLocked()
}

func (s *Store) stateLocked() entity.CartState {
	stores := make([]entity.StoreCart, 0, len(s.order))
	for _, storeID := range s.order {
		stores = append(stores, s.carts[storeID].Clone())
	}

	return entity.CartState{Stores: stores}
}

// apply runs fn against a private copy of the store's cart and swaps the result
// in as a single state replacement. fn never sees shared slices.
func (s *Store) apply(storeID int64, createIfMissing bool, fn func(cart *entity.StoreCart, exists bool) outcome) {
	s.mu.Lock()

	current, exists := s.carts[storeID]
	if !exists && !createIfMissing {
		s.mu.Unlock()

		return
	}

	next := entity.NewStoreCart(storeID)
	if exists {
		next = current.Clone()
	}

	switch fn(&next, exists) {
	case replaced:
		if !exists {
			s.order = append(s.order, storeID)
		}
		s.carts[storeID] = next
	case deleted:
		if !exists {
			s.mu.Unlock()

			return
		}
		delete(s.carts, storeID)
		s.order = slices.DeleteFunc(s.order, func(id int64) bool { return id == storeID })
	default:
		s.mu.Unlock()

		return
	}

	listener := s.listener
	var state entity.CartState
	if listener != nil {
		state = s.stateLocked()
	}
	s.mu.Unlock()

	if listener != nil {
		listener(state)
	}
}
