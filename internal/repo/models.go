package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/microcart/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Status      string          `db:"status"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type Item struct {
	OrderID   string          `db:"order_id"`
	Position  int             `db:"position"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

type ShippingInfo struct {
	OrderID         string         `db:"order_id"`
	Address         string         `db:"address"`
	City            string         `db:"city"`
	State           string         `db:"state"`
	ZipCode         string         `db:"zip_code"`
	Country         string         `db:"country"`
	TrackingCompany sql.NullString `db:"tracking_company"`
	TrackingNumber  sql.NullString `db:"tracking_number"`
}

var (
	orderColumns    = []string{"id", "user_id", "status", "total_amount", "created_at", "updated_at"}
	itemColumns     = []string{"order_id", "position", "product_id", "quantity", "price"}
	shippingColumns = []string{"order_id", "address", "city", "state", "zip_code", "country", "tracking_company", "tracking_number"}
)

func ItemToEntity(i Item) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func ShippingInfoToEntity(s ShippingInfo) entities.ShippingInfo {
	return entities.ShippingInfo{
		Address:         s.Address,
		City:            s.City,
		State:           s.State,
		ZipCode:         s.ZipCode,
		Country:         s.Country,
		TrackingCompany: nullStringToString(s.TrackingCompany),
		TrackingNumber:  nullStringToString(s.TrackingNumber),
	}
}

func OrderToEntity(o Order, s ShippingInfo, items []Item) entities.Order {
	order := entities.Order{
		ID:           o.ID,
		UserID:       o.UserID,
		Status:       entities.Status(o.Status),
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		ShippingInfo: ShippingInfoToEntity(s),
		Items:        make([]entities.OrderItem, 0, len(items)),
	}

	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
