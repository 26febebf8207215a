package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sunnyday_shop/internal/logging"
	"github.com/Skotchmaster/sunnyday_shop/internal/mykafka"
	"github.com/Skotchmaster/sunnyday_shop/internal/service"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, items, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_order_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create order")
	}

	publish(c, h.Producer, mykafka.TopicOrderEvents, order.UserID, mykafka.Event("order_created", map[string]any{
		"order_id":     order.ID,
		"user_id":      order.UserID,
		"total_amount": order.TotalAmount,
		"status":       order.Status,
		"items":        items,
	}))

	l.Info("create_order_success", "order_id", order.ID, "items", len(items))
	return c.JSON(http.StatusCreated, transport.CreateOrderResponse{Message: "Order created", OrderID: order.ID})
}

func (h *OrderHTTP) GetUserOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_user_orders")

	userID := c.Param("external_id")

	orders, err := h.Svc.ListOrders(ctx, userID)
	if err != nil {
		l.Error("get_user_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list orders")
	}

	views := make([]transport.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, transport.OrderView{
			ID:              orders[i].ID,
			TotalAmount:     orders[i].TotalAmount,
			Status:          orders[i].Status,
			CreatedAt:       orders[i].CreatedAt.Format(time.RFC3339),
			ShippingAddress: orders[i].ShippingAddress,
		})
	}

	return c.JSON(http.StatusOK, transport.OrdersResponse{Orders: views})
}
