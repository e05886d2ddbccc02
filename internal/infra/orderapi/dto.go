package orderapi

import (
	"time"

	"efood/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type orderEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Order *orderDTO `json:"order"`
	} `json:"data"`
}

func (e orderEnvelope) failureMessage() string {
	if e.Message != "" {
		return e.Message
	}

	return "upstream reported failure"
}

// locationDTO accepts coordinates sent either as numbers or as decimal strings.
type locationDTO struct {
	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`
}

func (l locationDTO) coordinate() entity.Coordinate {
	return entity.Coordinate{
		Latitude:  l.Latitude.InexactFloat64(),
		Longitude: l.Longitude.InexactFloat64(),
	}
}

type orderDTO struct {
	ID         int64              `json:"id"`
	Status     entity.OrderStatus `json:"status"`
	TotalPrice entity.Money       `json:"total_price"`
	Address    *locationDTO       `json:"address"`
	Store      *locationDTO       `json:"store"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (o *orderDTO) toSnapshot() (*entity.OrderSnapshot, error) {
	if !o.Status.IsValid() {
		return nil, errors.Errorf("unknown order status %q", o.Status)
	}
	if o.Address == nil {
		return nil, errors.New("order without delivery address")
	}

	snapshot := &entity.OrderSnapshot{
		OrderID:     o.ID,
		Status:      o.Status,
		Destination: o.Address.coordinate(),
		UpdatedAt:   o.UpdatedAt,
	}
	if o.Store != nil {
		store := o.Store.coordinate()
		snapshot.Store = &store
	}

	return snapshot, nil
}

func (o *orderDTO) toReceipt() *entity.OrderReceipt {
	return &entity.OrderReceipt{
		OrderID:    o.ID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
	}
}
