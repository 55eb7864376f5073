package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCanceled   Status = "canceled"
)

// Statuses lists every status in display order.
var Statuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCanceled,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

type ShippingInfo struct {
	Address string
	City    string
	State   string
	ZipCode string
	Country string

	// заполняются только через обновление заказа
	TrackingCompany string
	TrackingNumber  string
}

type Order struct {
	ID          string
	UserID      string
	Status      Status
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items        []OrderItem
	ShippingInfo ShippingInfo
}

// CreateOrder is the input of the create operation.
type CreateOrder struct {
	UserID       string
	Items        []OrderItem
	ShippingInfo *ShippingInfo
}

func (c CreateOrder) Validate() error {
	if c.UserID == "" {
		return ErrMissingUserID
	}
	if len(c.Items) == 0 {
		return ErrMissingItems
	}
	if c.ShippingInfo == nil {
		return ErrMissingShippingInfo
	}
	return nil
}

// TotalAmount sums price * quantity over the items.
func (c CreateOrder) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

type Tracking struct {
	Company string
	Number  string
}

// UpdateOrder holds the optional parts of an update. Nil parts are left untouched.
type UpdateOrder struct {
	Status   *Status
	Tracking *Tracking
}

func (u UpdateOrder) Empty() bool {
	return u.Status == nil && u.Tracking == nil
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order")

	ErrMissingUserID       = fmt.Errorf("%w: userId is required", ErrInvalidOrder)
	ErrMissingItems        = fmt.Errorf("%w: items are required", ErrInvalidOrder)
	ErrMissingShippingInfo = fmt.Errorf("%w: shippingInfo is required", ErrInvalidOrder)
	ErrInvalidStatus       = fmt.Errorf("%w: unknown status", ErrInvalidOrder)
)
