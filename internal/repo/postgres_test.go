package repo

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/microcart/internal/config"
	"github.com/SergeyBogomolovv/microcart/internal/entities"
	"github.com/SergeyBogomolovv/microcart/internal/postgres"
	"github.com/SergeyBogomolovv/microcart/pkg/trm"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := postgres.New(ctx, config.Postgres{
		Host:     host,
		Port:     port.Int(),
		DBName:   "testdb",
		User:     "testuser",
		Password: "testpass",
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db))
	return db
}

func newOrder() entities.Order {
	return entities.Order{
		ID:          uuid.NewString(),
		UserID:      "user123",
		Status:      entities.StatusPending,
		TotalAmount: decimal.RequireFromString("25.5"),
		Items: []entities.OrderItem{
			{ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(10)},
			{ProductID: "p2", Quantity: 1, Price: decimal.RequireFromString("5.5")},
		},
		ShippingInfo: entities.ShippingInfo{
			Address: "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
			Country: "US",
		},
	}
}

func saveAggregate(t *testing.T, ctx context.Context, tx trm.Manager, r *postgresRepo, o entities.Order) entities.Order {
	t.Helper()
	err := tx.Do(ctx, func(ctx context.Context) error {
		saved, err := r.SaveOrder(ctx, o)
		if err != nil {
			return err
		}
		o = saved
		if err := r.SaveItems(ctx, o.ID, o.Items); err != nil {
			return err
		}
		return r.SaveShippingInfo(ctx, o.ID, o.ShippingInfo)
	})
	require.NoError(t, err)
	return o
}

func countRows(t *testing.T, db *sqlx.DB, table, column, id string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT count(*) FROM "+table+" WHERE "+column+" = $1", id))
	return n
}

func TestPostgresRepo(t *testing.T) {
	db := setupTestDB(t)
	r := NewPostgresRepo(db)
	tx := trm.NewManager(db)
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		o := saveAggregate(t, ctx, tx, r, newOrder())
		assert.False(t, o.CreatedAt.IsZero())

		got, err := r.GetOrderByID(ctx, o.ID)
		require.NoError(t, err)

		assert.Equal(t, o.ID, got.ID)
		assert.Equal(t, entities.StatusPending, got.Status)
		assert.True(t, o.TotalAmount.Equal(got.TotalAmount))
		assert.Equal(t, o.ShippingInfo, got.ShippingInfo)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "p1", got.Items[0].ProductID)
		assert.Equal(t, "p2", got.Items[1].ProductID)
		assert.True(t, got.Items[1].Price.Equal(decimal.RequireFromString("5.5")))
	})

	t.Run("get missing order", func(t *testing.T) {
		_, err := r.GetOrderByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("list contains saved order once", func(t *testing.T) {
		o := saveAggregate(t, ctx, tx, r, newOrder())

		var orders []entities.Order
		err := tx.DoReadOnly(ctx, func(ctx context.Context) error {
			var err error
			orders, err = r.ListOrders(ctx)
			return err
		})
		require.NoError(t, err)

		found := 0
		for _, got := range orders {
			if got.ID == o.ID {
				found++
				assert.Len(t, got.Items, 2)
				assert.Equal(t, "Springfield", got.ShippingInfo.City)
			}
		}
		assert.Equal(t, 1, found)
	})

	t.Run("update status and tracking", func(t *testing.T) {
		o := saveAggregate(t, ctx, tx, r, newOrder())

		require.NoError(t, r.UpdateStatus(ctx, o.ID, entities.StatusShipped))

		got, err := r.GetOrderByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusShipped, got.Status)
		assert.Equal(t, o.UserID, got.UserID)
		assert.True(t, o.TotalAmount.Equal(got.TotalAmount))
		assert.Equal(t, o.ShippingInfo, got.ShippingInfo)
		require.Len(t, got.Items, len(o.Items))
		for i, it := range o.Items {
			assert.Equal(t, it.ProductID, got.Items[i].ProductID)
			assert.Equal(t, it.Quantity, got.Items[i].Quantity)
			assert.True(t, it.Price.Equal(got.Items[i].Price))
		}

		require.NoError(t, r.UpdateTracking(ctx, o.ID, entities.Tracking{Company: "UPS", Number: "1Z999"}))

		got, err = r.GetOrderByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusShipped, got.Status)
		assert.Equal(t, "UPS", got.ShippingInfo.TrackingCompany)
		assert.Equal(t, "1Z999", got.ShippingInfo.TrackingNumber)
		assert.Equal(t, o.ShippingInfo.Address, got.ShippingInfo.Address)
		assert.Equal(t, o.ShippingInfo.ZipCode, got.ShippingInfo.ZipCode)
		assert.Len(t, got.Items, len(o.Items))
		assert.False(t, got.UpdatedAt.Before(o.UpdatedAt))

		require.NoError(t, r.UpdateTracking(ctx, o.ID, entities.Tracking{}))
		var company sql.NullString
		require.NoError(t, db.Get(&company, "SELECT tracking_company FROM shipping_info WHERE order_id = $1", o.ID))
		assert.False(t, company.Valid)
	})

	t.Run("update missing order", func(t *testing.T) {
		err := r.UpdateStatus(ctx, uuid.NewString(), entities.StatusShipped)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("lock missing order", func(t *testing.T) {
		err := tx.Do(ctx, func(ctx context.Context) error {
			return r.LockOrder(ctx, uuid.NewString())
		})
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("delete removes children", func(t *testing.T) {
		o := saveAggregate(t, ctx, tx, r, newOrder())

		err := tx.Do(ctx, func(ctx context.Context) error {
			if err := r.LockOrder(ctx, o.ID); err != nil {
				return err
			}
			if err := r.DeleteItems(ctx, o.ID); err != nil {
				return err
			}
			if err := r.DeleteShippingInfo(ctx, o.ID); err != nil {
				return err
			}
			return r.DeleteOrder(ctx, o.ID)
		})
		require.NoError(t, err)

		_, err = r.GetOrderByID(ctx, o.ID)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
		assert.Zero(t, countRows(t, db, "order_items", "order_id", o.ID))
		assert.Zero(t, countRows(t, db, "shipping_info", "order_id", o.ID))
	})

	t.Run("order row cannot be deleted before children", func(t *testing.T) {
		o := saveAggregate(t, ctx, tx, r, newOrder())

		err := r.DeleteOrder(ctx, o.ID)
		assert.Error(t, err)

		_, err = r.GetOrderByID(ctx, o.ID)
		assert.NoError(t, err)
	})

	t.Run("failed create leaves no rows", func(t *testing.T) {
		o := newOrder()
		err := tx.Do(ctx, func(ctx context.Context) error {
			if _, err := r.SaveOrder(ctx, o); err != nil {
				return err
			}
			if err := r.SaveItems(ctx, o.ID, o.Items); err != nil {
				return err
			}
			// повторная вставка нарушает уникальность shipping_info.order_id
			if err := r.SaveShippingInfo(ctx, o.ID, o.ShippingInfo); err != nil {
				return err
			}
			return r.SaveShippingInfo(ctx, o.ID, o.ShippingInfo)
		})
		require.Error(t, err)

		assert.Zero(t, countRows(t, db, "orders", "id", o.ID))
		assert.Zero(t, countRows(t, db, "order_items", "order_id", o.ID))
	})

	t.Run("items beyond one insert batch", func(t *testing.T) {
		o := newOrder()
		o.Items = make([]entities.OrderItem, 14000)
		for i := range o.Items {
			o.Items[i] = entities.OrderItem{ProductID: fmt.Sprintf("p%d", i), Quantity: 1, Price: decimal.NewFromInt(1)}
		}
		o = saveAggregate(t, ctx, tx, r, o)

		got, err := r.GetOrderByID(ctx, o.ID)
		require.NoError(t, err)
		require.Len(t, got.Items, 14000)
		assert.Equal(t, "p0", got.Items[0].ProductID)
		assert.Equal(t, "p13999", got.Items[13999].ProductID)
	})

	// выполняется последним: остальные подтесты не рассчитаны на такую таблицу
	t.Run("list more orders than bind parameters allow", func(t *testing.T) {
		o := saveAggregate(t, ctx, tx, r, newOrder())
		_, err := db.Exec(`INSERT INTO orders (id, user_id, total_amount)
			SELECT gen_random_uuid(), 'bulk', 0 FROM generate_series(1, 70000)`)
		require.NoError(t, err)

		var orders []entities.Order
		err = tx.DoReadOnly(ctx, func(ctx context.Context) error {
			var err error
			orders, err = r.ListOrders(ctx)
			return err
		})
		require.NoError(t, err)
		assert.Greater(t, len(orders), 70000)

		for _, got := range orders {
			if got.ID == o.ID {
				assert.Len(t, got.Items, 2)
				assert.Equal(t, "Springfield", got.ShippingInfo.City)
			}
		}
	})
}
