package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sunnyday_shop/internal/logging"
	"github.com/Skotchmaster/sunnyday_shop/internal/mykafka"
	"github.com/Skotchmaster/sunnyday_shop/internal/service"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *mykafka.Producer
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	userID := c.Param("external_id")

	items, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get cart")
	}

	return c.JSON(http.StatusOK, transport.CartResponse{Items: items})
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, created, err := h.Svc.AddToCart(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add to cart")
	}

	publish(c, h.Producer, mykafka.TopicCartEvents, item.UserID, mykafka.Event("cart_item_added", map[string]any{
		"user_id":    item.UserID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	}))

	if created {
		l.Info("add_to_cart_created", "item_id", item.ID)
		return c.JSON(http.StatusCreated, transport.MessageResponse{Message: "Item added to cart"})
	}

	l.Info("add_to_cart_incremented", "item_id", item.ID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Cart updated"})
}

func (h *CartHTTP) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_item")

	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil || id <= 0 {
		l.Warn("update_item_error", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.UpdateItem(ctx, uint(id), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_item_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_item_error", "status", 404, "item_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
		default:
			l.Error("update_item_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update cart item")
		}
	}

	publish(c, h.Producer, mykafka.TopicCartEvents, item.UserID, mykafka.Event("cart_item_updated", map[string]any{
		"user_id":  item.UserID,
		"item_id":  item.ID,
		"quantity": item.Quantity,
	}))

	l.Info("update_item_success", "item_id", item.ID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Cart item updated"})
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil || id <= 0 {
		l.Warn("remove_item_error", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	if err := h.Svc.RemoveItem(ctx, uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_item_error", "status", 404, "item_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		l.Error("remove_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot remove cart item")
	}

	publish(c, h.Producer, mykafka.TopicCartEvents, strconv.Itoa(id), mykafka.Event("cart_item_removed", map[string]any{
		"item_id": id,
	}))

	l.Info("remove_item_success", "item_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item removed from cart"})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear_cart")

	userID := c.Param("external_id")

	if err := h.Svc.ClearCart(ctx, userID); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot clear cart")
	}

	publish(c, h.Producer, mykafka.TopicCartEvents, userID, mykafka.Event("cart_cleared", map[string]any{
		"user_id": userID,
	}))

	l.Info("clear_cart_success", "user_id", userID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Cart cleared"})
}
