package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/microcart/internal/entities"
	"github.com/SergeyBogomolovv/microcart/internal/handler"
	"github.com/shopspring/decimal"
)

type pageData struct {
	Orders    []orderView
	Statuses  []string
	Form      formView
	Error     string
	ListError string
}

type orderView struct {
	ID          string
	ShortID     string
	Status      string
	Total       string
	Items       []itemView
	Shipping    handler.ShippingInfo
	HasTracking bool
}

type itemView struct {
	ProductID string
	Quantity  int
	LineTotal string
}

type formView struct {
	Rows     []formRow
	Shipping handler.ShippingInfo
	Error    string
}

type formRow struct {
	Index     int
	ProductID string
	Quantity  string
	Price     string
}

func (f formView) CanRemove() bool {
	return len(f.Rows) > 1
}

func blankRow() formRow {
	return formRow{Quantity: "1", Price: "0"}
}

func emptyForm() formView {
	return formView{Rows: reindex([]formRow{blankRow()})}
}

func reindex(rows []formRow) []formRow {
	for i := range rows {
		rows[i].Index = i
	}
	return rows
}

func statusNames() []string {
	names := make([]string, 0, len(entities.Statuses))
	for _, s := range entities.Statuses {
		names = append(names, string(s))
	}
	return names
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func newOrderViews(orders []handler.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		items := make([]itemView, 0, len(o.Items))
		for _, it := range o.Items {
			line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
			items = append(items, itemView{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				LineTotal: line.StringFixed(2),
			})
		}

		views = append(views, orderView{
			ID:          o.ID,
			ShortID:     shortID(o.ID),
			Status:      o.Status,
			Total:       money(o.TotalAmount),
			Items:       items,
			Shipping:    o.ShippingInfo,
			HasTracking: o.ShippingInfo.TrackingCompany != "" && o.ShippingInfo.TrackingNumber != "",
		})
	}
	return views
}

// parseForm restores the create form from submitted values, rows are matched by position.
func parseForm(form url.Values) formView {
	productIDs := form["productId"]
	quantities := form["quantity"]
	prices := form["price"]

	rows := make([]formRow, 0, len(productIDs))
	for i, pid := range productIDs {
		row := formRow{ProductID: pid}
		if i < len(quantities) {
			row.Quantity = quantities[i]
		}
		if i < len(prices) {
			row.Price = prices[i]
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		rows = append(rows, blankRow())
	}

	return formView{
		Rows: reindex(rows),
		Shipping: handler.ShippingInfo{
			Address: form.Get("address"),
			City:    form.Get("city"),
			State:   form.Get("state"),
			ZipCode: form.Get("zipCode"),
			Country: form.Get("country"),
		},
	}
}

// applyRowAction handles "add" and "remove-N" buttons. It reports whether the action was a row action.
func (f *formView) applyRowAction(action string) bool {
	switch {
	case action == "add":
		f.Rows = reindex(append(f.Rows, blankRow()))
		return true
	case strings.HasPrefix(action, "remove-"):
		i, err := strconv.Atoi(strings.TrimPrefix(action, "remove-"))
		if err == nil && i >= 0 && i < len(f.Rows) && len(f.Rows) > 1 {
			f.Rows = reindex(append(f.Rows[:i], f.Rows[i+1:]...))
		}
		return true
	}
	return false
}

// Некорректные числа передаются как нули, проверку делают атрибуты формы
// request builds the API body. Numbers that do not parse are reported per row
// instead of being sent as zero.
func (f formView) request(userID string) (handler.CreateOrderRequest, error) {
	items := make([]handler.OrderItem, 0, len(f.Rows))
	for _, row := range f.Rows {
		qty, err := strconv.Atoi(strings.TrimSpace(row.Quantity))
		if err != nil {
			return handler.CreateOrderRequest{}, fmt.Errorf("item %d: quantity must be a whole number", row.Index+1)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(row.Price))
		if err != nil {
			return handler.CreateOrderRequest{}, fmt.Errorf("item %d: price must be a number", row.Index+1)
		}
		items = append(items, handler.OrderItem{
			ProductID: row.ProductID,
			Quantity:  qty,
			Price:     price.InexactFloat64(),
		})
	}

	shipping := f.Shipping
	return handler.CreateOrderRequest{
		UserID:       userID,
		Items:        items,
		ShippingInfo: &shipping,
	}, nil
}
