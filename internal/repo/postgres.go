package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/microcart/internal/entities"
	"github.com/SergeyBogomolovv/microcart/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Каждая строка order_items занимает 5 параметров, postgres допускает не больше 65535 на запрос
const itemsPerInsert = 1000

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at", "id").
		MustSql()

	var orders []Order
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Получаем данные о доставке для этих заказов
	query, args = r.qb.Select(shippingColumns...).
		From("shipping_info").
		Where("order_id = ANY(?::uuid[])", pq.Array(ids)).
		MustSql()

	var shipping []ShippingInfo
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &shipping, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shipping info: %w", err)
	}
	shippingMap := make(map[string]ShippingInfo, len(shipping))
	for _, s := range shipping {
		shippingMap[s.OrderID] = s
	}

	// Получаем товары для этих заказов
	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where("order_id = ANY(?::uuid[])", pq.Array(ids)).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, shippingMap[order.ID], itemsMap[order.ID]))
	}

	return result, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := trm.Conn(ctx, r.db).GetContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(shippingColumns...).
		From("shipping_info").
		Where(sq.Eq{"order_id": id}).
		MustSql()

	var shipping ShippingInfo
	if err := trm.Conn(ctx, r.db).GetContext(ctx, &shipping, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get shipping info: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": id}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := trm.Conn(ctx, r.db).SelectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, shipping, items), nil
}

// LockOrder takes a row lock on the order for the rest of the transaction.
func (r *postgresRepo) LockOrder(ctx context.Context, id string) error {
	query, args := r.qb.Select("id").
		From("orders").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		MustSql()

	var lockedID string
	err := trm.Conn(ctx, r.db).GetContext(ctx, &lockedID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("id", "user_id", "status", "total_amount").
		Values(o.ID, o.UserID, string(o.Status), o.TotalAmount).
		Suffix("RETURNING created_at, updated_at").
		MustSql()

	var row Order
	if err := trm.Conn(ctx, r.db).GetContext(ctx, &row, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	o.CreatedAt = row.CreatedAt
	o.UpdatedAt = row.UpdatedAt
	return o, nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	for start := 0; start < len(items); start += itemsPerInsert {
		end := min(start+itemsPerInsert, len(items))

		q := r.qb.Insert("order_items").Columns(itemColumns...)
		for i := start; i < end; i++ {
			it := items[i]
			q = q.Values(orderID, i, it.ProductID, it.Quantity, it.Price)
		}

		query, args := q.MustSql()
		if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save items %d-%d: %w", start, end-1, err)
		}
	}
	return nil
}

func (r *postgresRepo) SaveShippingInfo(ctx context.Context, orderID string, s entities.ShippingInfo) error {
	query, args := r.qb.Insert("shipping_info").
		Columns(shippingColumns...).
		Values(
			orderID, s.Address, s.City, s.State, s.ZipCode, s.Country,
			nullString(s.TrackingCompany), nullString(s.TrackingNumber),
		).
		MustSql()

	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save shipping info: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status entities.Status) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return expectAffected(res)
}

func (r *postgresRepo) UpdateTracking(ctx context.Context, id string, t entities.Tracking) error {
	query, args := r.qb.Update("shipping_info").
		Set("tracking_company", nullString(t.Company)).
		Set("tracking_number", nullString(t.Number)).
		Where(sq.Eq{"order_id": id}).
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update tracking: %w", err)
	}
	if err := expectAffected(res); err != nil {
		return err
	}

	query, args = r.qb.Update("orders").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		MustSql()

	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to touch order: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteItems(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteShippingInfo(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("shipping_info").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete shipping info: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteOrder(ctx context.Context, id string) error {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := trm.Conn(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
