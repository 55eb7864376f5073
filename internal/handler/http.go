package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/microcart/internal/entities"
	"github.com/SergeyBogomolovv/microcart/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	CreateOrder(ctx context.Context, in entities.CreateOrder) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, in entities.UpdateOrder) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/{id}", h.GetOrderByID)
		r.Put("/{id}", h.UpdateOrder)
		r.Delete("/{id}", h.DeleteOrder)
	})
}

// ListOrders возвращает все заказы.
// @Summary      Список заказов
// @Description  Возвращает все заказы вместе с товарами и информацией о доставке
// @Tags         orders
// @Produce      json
// @Success      200  {array}   Order
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "Failed to fetch orders", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Description  Возвращает информацию о заказе по его идентификатору
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	order, err := h.svc.GetOrderByID(ctx, id)
	if err != nil {
		h.writeServiceError(ctx, w, err, "Failed to fetch order", slog.String("order_id", id))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CreateOrder создает заказ.
// @Summary      Создать заказ
// @Description  Создает заказ с товарами и информацией о доставке, сумма заказа считается на сервере
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Заказ"
// @Success      201    {object}  Order
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, "Missing required fields", err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, req.ToEntity())
	if err != nil {
		h.writeServiceError(ctx, w, err, "Failed to create order", slog.String("user_id", req.UserID))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// UpdateOrder обновляет статус и/или трекинг заказа.
// @Summary      Обновить заказ
// @Description  Меняет статус заказа и/или данные трекинга. Трекинг применяется только если переданы оба поля
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id     path      string              true  "Идентификатор заказа"
// @Param        order  body      UpdateOrderRequest  true  "Изменения"
// @Success      200    {object}  Order
// @Failure      400    {object}  utils.ErrorResponse "Некорректный запрос"
// @Failure      404    {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [put]
func (h *HTTPHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.svc.UpdateOrder(ctx, id, req.ToEntity())
	if err != nil {
		h.writeServiceError(ctx, w, err, "Failed to update order", slog.String("order_id", id))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder удаляет заказ.
// @Summary      Удалить заказ
// @Description  Удаляет заказ вместе с товарами и информацией о доставке
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.svc.DeleteOrder(ctx, id); err != nil {
		h.writeServiceError(ctx, w, err, "Failed to delete order", slog.String("order_id", id))
		return
	}

	utils.WriteJSON(w, MessageResponse{Message: "Order deleted successfully"}, http.StatusOK)
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, message string, attrs ...any) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidOrder):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, message, append(attrs, slog.Any("error", err))...)
		utils.WriteError(w, message, http.StatusInternalServerError)
	}
}
