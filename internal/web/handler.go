package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/microcart/internal/handler"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/index.html"))

// OrderAPI is the part of the orders HTTP API the UI talks to.
type OrderAPI interface {
	ListOrders(ctx context.Context) ([]handler.Order, error)
	CreateOrder(ctx context.Context, req handler.CreateOrderRequest) error
	UpdateOrder(ctx context.Context, id string, req handler.UpdateOrderRequest) error
	DeleteOrder(ctx context.Context, id string) error
}

type Handler struct {
	logger *slog.Logger
	api    OrderAPI
	userID string
}

func NewHandler(logger *slog.Logger, api OrderAPI, userID string) *Handler {
	return &Handler{
		logger: logger.With(slog.String("handler", "web")),
		api:    api,
		userID: userID,
	}
}

func (h *Handler) Init(r chi.Router) {
	r.Get("/", h.Index)
	r.Route("/ui/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Post("/{id}/status", h.UpdateStatus)
		r.Post("/{id}/tracking", h.UpdateTracking)
		r.Post("/{id}/delete", h.DeleteOrder)
	})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, emptyForm(), "", http.StatusOK)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, emptyForm(), "Invalid form", http.StatusBadRequest)
		return
	}

	form := parseForm(r.PostForm)
	if form.applyRowAction(r.PostForm.Get("action")) {
		h.render(w, r, form, "", http.StatusOK)
		return
	}

	req, err := form.request(h.userID)
	if err != nil {
		form.Error = "Failed to create order: " + err.Error()
		h.render(w, r, form, "", http.StatusBadRequest)
		return
	}

	if err := h.api.CreateOrder(r.Context(), req); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to create order", slog.Any("error", err))
		form.Error = userMessage(err, "Failed to create order")
		h.render(w, r, form, "", statusFor(err))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	status := r.PostFormValue("status")

	err := h.api.UpdateOrder(r.Context(), id, handler.UpdateOrderRequest{Status: &status})
	h.afterAction(w, r, err, "Failed to update order status", slog.String("order_id", id))
}

func (h *Handler) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	company := r.PostFormValue("trackingCompany")
	number := r.PostFormValue("trackingNumber")

	err := h.api.UpdateOrder(r.Context(), id, handler.UpdateOrderRequest{
		TrackingCompany: &company,
		TrackingNumber:  &number,
	})
	h.afterAction(w, r, err, "Failed to update shipping info", slog.String("order_id", id))
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.api.DeleteOrder(r.Context(), id)
	h.afterAction(w, r, err, "Failed to delete order", slog.String("order_id", id))
}

// afterAction redirects back to the list or re-renders it with the failure shown.
func (h *Handler) afterAction(w http.ResponseWriter, r *http.Request, err error, message string, attrs ...any) {
	if err != nil {
		h.logger.ErrorContext(r.Context(), message, append(attrs, slog.Any("error", err))...)
		h.render(w, r, emptyForm(), userMessage(err, message), statusFor(err))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, form formView, actionErr string, status int) {
	data := pageData{
		Statuses: statusNames(),
		Form:     form,
		Error:    actionErr,
	}

	orders, err := h.api.ListOrders(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to fetch orders", slog.Any("error", err))
		data.ListError = userMessage(err, "Failed to fetch orders")
	} else {
		data.Orders = newOrderViews(orders)
	}

	templ.Handler(templ.FromGoHTML(page, data), templ.WithStatus(status)).ServeHTTP(w, r)
}

func userMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fallback + ": " + apiErr.Message
	}
	return fallback
}

func statusFor(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
