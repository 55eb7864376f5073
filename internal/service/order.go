package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/microcart/internal/entities"
	"github.com/SergeyBogomolovv/microcart/pkg/trm"

	"github.com/google/uuid"
)

type OrderRepo interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	LockOrder(ctx context.Context, id string) error

	SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	SaveShippingInfo(ctx context.Context, orderID string, s entities.ShippingInfo) error

	UpdateStatus(ctx context.Context, id string, status entities.Status) error
	UpdateTracking(ctx context.Context, id string, t entities.Tracking) error

	// Порядок удаления важен из-за внешних ключей: товары, доставка, заказ
	DeleteItems(ctx context.Context, orderID string) error
	DeleteShippingInfo(ctx context.Context, orderID string) error
	DeleteOrder(ctx context.Context, id string) error
}

type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	newID     func() string
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		newID:     uuid.NewString,
	}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		orders, err = s.repo.ListOrders(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, rawID string) (entities.Order, error) {
	id, ok := canonicalID(rawID)
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	var order entities.Order
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, in entities.CreateOrder) (entities.Order, error) {
	if err := in.Validate(); err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:           s.newID(),
		UserID:       in.UserID,
		Status:       entities.StatusPending,
		TotalAmount:  in.TotalAmount(),
		Items:        in.Items,
		ShippingInfo: *in.ShippingInfo,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		saved, err := s.repo.SaveOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.repo.SaveItems(ctx, saved.ID, saved.Items); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}
		if err := s.repo.SaveShippingInfo(ctx, saved.ID, saved.ShippingInfo); err != nil {
			return fmt.Errorf("failed to save shipping info: %w", err)
		}
		order = saved
		return nil
	})
	if err != nil {
		ordersTotal.WithLabelValues(opCreate, resultError).Inc()
		return entities.Order{}, err
	}

	ordersTotal.WithLabelValues(opCreate, resultOK).Inc()
	s.logger.Debug("order created", slog.String("order_id", order.ID), slog.String("total", order.TotalAmount.String()))
	return order, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, rawID string, in entities.UpdateOrder) (entities.Order, error) {
	id, ok := canonicalID(rawID)
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if in.Status != nil && !in.Status.Valid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.LockOrder(ctx, id); err != nil {
			return err
		}

		if in.Status != nil {
			if err := s.repo.UpdateStatus(ctx, id, *in.Status); err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}
		}

		if in.Tracking != nil {
			if err := s.repo.UpdateTracking(ctx, id, *in.Tracking); err != nil {
				return fmt.Errorf("failed to update tracking: %w", err)
			}
		}

		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	})
	if err != nil {
		ordersTotal.WithLabelValues(opUpdate, resultOf(err)).Inc()
		return entities.Order{}, err
	}

	ordersTotal.WithLabelValues(opUpdate, resultOK).Inc()
	if !in.Empty() {
		s.logger.Debug("order updated", slog.String("order_id", id), slog.String("status", string(order.Status)))
	}
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, rawID string) error {
	id, ok := canonicalID(rawID)
	if !ok {
		return entities.ErrOrderNotFound
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.LockOrder(ctx, id); err != nil {
			return err
		}
		if err := s.repo.DeleteItems(ctx, id); err != nil {
			return fmt.Errorf("failed to delete items: %w", err)
		}
		if err := s.repo.DeleteShippingInfo(ctx, id); err != nil {
			return fmt.Errorf("failed to delete shipping info: %w", err)
		}
		if err := s.repo.DeleteOrder(ctx, id); err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
	if err != nil {
		ordersTotal.WithLabelValues(opDelete, resultOf(err)).Inc()
		return err
	}

	ordersTotal.WithLabelValues(opDelete, resultOK).Inc()
	s.logger.Debug("order deleted", slog.String("order_id", id))
	return nil
}

// canonicalID accepts only the hyphenated 36-char form and returns it lowercased,
// so urn, braced and bare-hex spellings are treated as unknown ids.
func canonicalID(id string) (string, bool) {
	if len(id) != 36 {
		return "", false
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func resultOf(err error) string {
	if errors.Is(err, entities.ErrOrderNotFound) {
		return resultNotFound
	}
	return resultError
}
