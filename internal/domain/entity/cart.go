// Package entity contains the core business objects of the project.
package entity

import "slices"

// ShippingMethod is how an order reaches the customer.
type ShippingMethod string

const (
	// ShippingMethodDelivery sends a driver to the customer's address.
	ShippingMethodDelivery ShippingMethod = "delivery"
	// ShippingMethodTakeaway means the customer collects the order at the store.
	ShippingMethodTakeaway ShippingMethod = "takeaway"
)

// String returns the string representation of the ShippingMethod.
func (m ShippingMethod) String() string {
	return string(m)
}

// IsValid checks if the ShippingMethod is a valid value.
func (m ShippingMethod) IsValid() bool {
	switch m {
	case ShippingMethodDelivery, ShippingMethodTakeaway:
		return true
	default:
		return false
	}
}

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	// PaymentMethodCashOnDelivery pays the driver (or the counter for takeaway).
	PaymentMethodCashOnDelivery PaymentMethod = "cod"
	// PaymentMethodCard pays by card.
	PaymentMethodCard PaymentMethod = "card"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCashOnDelivery, PaymentMethodCard:
		return true
	default:
		return false
	}
}

// Product is the part of a store product the cart needs when adding it.
type Product struct {
	ID    int64  `json:"id"`    // The product identifier, unique within the store.
	Name  string `json:"name"`  // Display name captured at add time.
	Price Money  `json:"price"` // Unit price at add time.
}

// CartLine is one product's quantity and note within one store's cart.
type CartLine struct {
	ProductID int64  `json:"product_id"`     // The product this line refers to.
	Name      string `json:"name,omitempty"` // Display name snapshot.
	Quantity  int    `json:"quantity"`       // Always >= 1 while the line exists.
	UnitPrice Money  `json:"unit_price"`     // Price snapshot at add time.
	Note      string `json:"note,omitempty"` // Free-text note for the kitchen.
}

// Subtotal returns quantity x unit price.
func (l CartLine) Subtotal() Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// StoreCart is one vendor's basket.
type StoreCart struct {
	StoreID        int64          `json:"store_id"`
	Lines          []CartLine     `json:"lines"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	PaymentMethod  PaymentMethod  `json:"payment_method,omitempty"` // Empty until the user selects one.
	CouponCode     string         `json:"coupon_code,omitempty"`
}

// NewStoreCart returns an empty cart with the default shipping method.
func NewStoreCart(storeID int64) StoreCart {
	return StoreCart{
		StoreID:        storeID,
		ShippingMethod: ShippingMethodDelivery,
	}
}

// Clone returns a deep copy of the cart.
func (c StoreCart) Clone() StoreCart {
	c.Lines = slices.Clone(c.Lines)

	return c
}

// LineIndex returns the index of the line holding productID, or -1.
func (c StoreCart) LineIndex(productID int64) int {
	return slices.IndexFunc(c.Lines, func(l CartLine) bool {
		return l.ProductID == productID
	})
}

// TotalProducts returns the sum of quantities across all lines.
func (c StoreCart) TotalProducts() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}

	return total
}

// TotalPrice returns the sum of line subtotals in minor units, clamped at MaxMoney.
func (c StoreCart) TotalPrice() Money {
	var total Money
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal())
	}

	return total
}

// CartState is the serialisable image of all of a session's store carts,
// in the order the carts were first created.
type CartState struct {
	Stores []StoreCart `json:"stores"`
}
