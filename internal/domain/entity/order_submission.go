// Package entity contains the core business objects of the project.
package entity

// OrderSubmission is the payload the checkout assembler sends for one store's cart.
type OrderSubmission struct {
	StoreID        int64            `json:"store_id"`
	PaymentMethod  PaymentMethod    `json:"payment_method"`
	ShippingMethod ShippingMethod   `json:"shipping_method"`
	CouponCode     string           `json:"coupon_code,omitempty"`
	Lines          []SubmissionLine `json:"products"`
}

// SubmissionLine is one product of an order submission.
type SubmissionLine struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

// OrderReceipt is what the order API returns for an accepted submission.
type OrderReceipt struct {
	OrderID    int64       `json:"order_id"`
	Status     OrderStatus `json:"status"`
	TotalPrice Money       `json:"total_price"`
}
