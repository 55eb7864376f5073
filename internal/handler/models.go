package handler

import (
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/microcart/internal/entities"
	"github.com/shopspring/decimal"
)

// Order представляет заказ
type Order struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	Items        []OrderItem  `json:"items"`
	Status       string       `json:"status" enums:"pending,processing,shipped,delivered,canceled"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	TotalAmount  float64      `json:"totalAmount"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// OrderItem товар в заказе
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ShippingInfo информация о доставке
type ShippingInfo struct {
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	ZipCode         string `json:"zipCode"`
	Country         string `json:"country"`
	TrackingCompany string `json:"trackingCompany,omitempty"`
	TrackingNumber  string `json:"trackingNumber,omitempty"`
}

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	UserID       string        `json:"userId" validate:"required"`
	Items        []OrderItem   `json:"items" validate:"required,min=1"`
	ShippingInfo *ShippingInfo `json:"shippingInfo" validate:"required"`
}

// UpdateOrderRequest тело запроса на обновление заказа. Трекинг применяется только если переданы оба поля.
// Ветка выбирается по наличию ключа: null у статуса даёт ошибку валидации, null у трекинга очищает его.
type UpdateOrderRequest struct {
	Status          *string `json:"status,omitempty" enums:"pending,processing,shipped,delivered,canceled"`
	TrackingCompany *string `json:"trackingCompany,omitempty"`
	TrackingNumber  *string `json:"trackingNumber,omitempty"`

	hasStatus   bool
	hasTracking bool
}

func (r *UpdateOrderRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateOrderRequest
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = UpdateOrderRequest(f)
	_, r.hasStatus = keys["status"]
	_, hasCompany := keys["trackingCompany"]
	_, hasNumber := keys["trackingNumber"]
	r.hasTracking = hasCompany && hasNumber
	return nil
}

// MessageResponse подтверждение операции
type MessageResponse struct {
	Message string `json:"message"`
}

func ItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Price:     i.Price.InexactFloat64(),
	}
}

func ItemJSONToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Price:     decimal.NewFromFloat(i.Price),
	}
}

func ShippingInfoEntityToJSON(s entities.ShippingInfo) ShippingInfo {
	return ShippingInfo{
		Address:         s.Address,
		City:            s.City,
		State:           s.State,
		ZipCode:         s.ZipCode,
		Country:         s.Country,
		TrackingCompany: s.TrackingCompany,
		TrackingNumber:  s.TrackingNumber,
	}
}

// Поля трекинга при создании игнорируются
func ShippingInfoJSONToEntity(s ShippingInfo) entities.ShippingInfo {
	return entities.ShippingInfo{
		Address: s.Address,
		City:    s.City,
		State:   s.State,
		ZipCode: s.ZipCode,
		Country: s.Country,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		ID:           o.ID,
		UserID:       o.UserID,
		Items:        items,
		Status:       string(o.Status),
		ShippingInfo: ShippingInfoEntityToJSON(o.ShippingInfo),
		TotalAmount:  o.TotalAmount.InexactFloat64(),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func (r CreateOrderRequest) ToEntity() entities.CreateOrder {
	var items []entities.OrderItem
	if r.Items != nil {
		items = make([]entities.OrderItem, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, ItemJSONToEntity(it))
		}
	}

	in := entities.CreateOrder{
		UserID: r.UserID,
		Items:  items,
	}
	if r.ShippingInfo != nil {
		s := ShippingInfoJSONToEntity(*r.ShippingInfo)
		in.ShippingInfo = &s
	}
	return in
}

func (r UpdateOrderRequest) ToEntity() entities.UpdateOrder {
	var in entities.UpdateOrder
	if r.hasStatus || r.Status != nil {
		status := entities.Status(deref(r.Status))
		in.Status = &status
	}
	if r.hasTracking || (r.TrackingCompany != nil && r.TrackingNumber != nil) {
		in.Tracking = &entities.Tracking{
			Company: deref(r.TrackingCompany),
			Number:  deref(r.TrackingNumber),
		}
	}
	return in
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
