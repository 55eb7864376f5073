package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/microcart/internal/entities"
	"github.com/SergeyBogomolovv/microcart/internal/handler"
	mocks "github.com/SergeyBogomolovv/microcart/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "8d3b7d1e-6f0a-4b8e-9a51-3f1f4f2b9c10"

func validOrder() entities.Order {
	return entities.Order{
		ID:          orderID,
		UserID:      "user123",
		Status:      entities.StatusPending,
		TotalAmount: decimal.NewFromInt(20),
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Items: []entities.OrderItem{
			{ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(10)},
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

func setupRouter(t *testing.T, svc handler.OrderService) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything).Return([]entities.Order{validOrder()}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + orderID + `"`,
		},
		{
			name: "empty list is an array",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to fetch orders"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := doRequest(t, setupRouter(t, svc), http.MethodGet, "/orders", "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			id:   orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, orderID).Return(validOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"totalAmount":20`,
		},
		{
			name: "not found",
			id:   "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "not-exist").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Order not found"}`,
		},
		{
			name: "internal error",
			id:   orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, orderID).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to fetch order"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := doRequest(t, setupRouter(t, svc), http.MethodGet, "/orders/"+tc.id, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrderByID_Shape(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().GetOrderByID(mock.Anything, orderID).Return(validOrder(), nil).Once()

	status, body := doRequest(t, setupRouter(t, svc), http.MethodGet, "/orders/"+orderID, "")
	require.Equal(t, http.StatusOK, status)

	var resp handler.Order
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, orderID, resp.ID)
	assert.Equal(t, "user123", resp.UserID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 20.0, resp.TotalAmount)
	assert.Equal(t, []handler.OrderItem{{ProductID: "p1", Quantity: 2, Price: 10}}, resp.Items)
	assert.Equal(t, "62701", resp.ShippingInfo.ZipCode)
	assert.NotContains(t, body, "trackingCompany")
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	const validBody = `{
		"userId": "user123",
		"items": [{"productId": "p1", "quantity": 2, "price": 10}],
		"shippingInfo": {"address": "1 Main St", "city": "Springfield", "state": "IL", "zipCode": "62701", "country": "US"}
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(in entities.CreateOrder) bool {
						return in.UserID == "user123" &&
							len(in.Items) == 1 &&
							in.Items[0].Price.Equal(decimal.NewFromInt(10)) &&
							in.ShippingInfo != nil &&
							in.ShippingInfo.City == "Springfield"
					})).
					Return(validOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"totalAmount":20`,
		},
		{
			name:         "malformed json",
			body:         `{"userId":`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"Invalid request body"}`,
		},
		{
			name:         "missing user id",
			body:         `{"items":[{"productId":"p1","quantity":1,"price":1}],"shippingInfo":{"address":"a"}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"userId":"required"`,
		},
		{
			name:         "missing items",
			body:         `{"userId":"user123","shippingInfo":{"address":"a"}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"items":"required"`,
		},
		{
			name:         "empty items",
			body:         `{"userId":"user123","items":[],"shippingInfo":{"address":"a"}}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"items":"min"`,
		},
		{
			name:         "missing shipping info",
			body:         `{"userId":"user123","items":[{"productId":"p1","quantity":1,"price":1}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"shippingInfo":"required"`,
		},
		{
			name: "service rejects order",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrMissingItems).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `items are required`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to create order"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := doRequest(t, setupRouter(t, svc), http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateOrder(t *testing.T) {
	shipped := entities.StatusShipped

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "status only",
			body: `{"status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, orderID, entities.UpdateOrder{Status: &shipped}).
					Return(validOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + orderID + `"`,
		},
		{
			name: "tracking with both fields",
			body: `{"trackingCompany":"UPS","trackingNumber":"1Z999"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, orderID, entities.UpdateOrder{
						Tracking: &entities.Tracking{Company: "UPS", Number: "1Z999"},
					}).
					Return(validOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + orderID + `"`,
		},
		{
			name: "partial tracking is ignored",
			body: `{"trackingCompany":"UPS"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, orderID, entities.UpdateOrder{}).
					Return(validOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + orderID + `"`,
		},
		{
			name: "null tracking pair clears tracking",
			body: `{"trackingCompany":null,"trackingNumber":null}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, orderID, entities.UpdateOrder{Tracking: &entities.Tracking{}}).
					Return(validOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + orderID + `"`,
		},
		{
			name: "null status is rejected",
			body: `{"status":null}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				empty := entities.Status("")
				svc.EXPECT().
					UpdateOrder(mock.Anything, orderID, entities.UpdateOrder{Status: &empty}).
					Return(entities.Order{}, entities.ErrInvalidStatus).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `unknown status`,
		},
		{
			name:         "malformed json",
			body:         `not json`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"Invalid request body"}`,
		},
		{
			name: "invalid status",
			body: `{"status":"lost"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrder(mock.Anything, orderID, mock.Anything).Return(entities.Order{}, entities.ErrInvalidStatus).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `unknown status`,
		},
		{
			name: "not found",
			body: `{"status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrder(mock.Anything, orderID, mock.Anything).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Order not found"}`,
		},
		{
			name: "internal error",
			body: `{"status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrder(mock.Anything, orderID, mock.Anything).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to update order"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := doRequest(t, setupRouter(t, svc), http.MethodPut, "/orders/"+orderID, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, orderID).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Order deleted successfully"}`,
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, orderID).Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Order not found"}`,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, orderID).Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to delete order"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			status, body := doRequest(t, setupRouter(t, svc), http.MethodDelete, "/orders/"+orderID, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
