package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sunnyday_shop/internal/logging"
	"github.com/Skotchmaster/sunnyday_shop/internal/service"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

type AnalyticsHTTP struct {
	Svc *service.AnalyticsService
}

func (h *AnalyticsHTTP) TotalUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "analytics.total_users")

	total, err := h.Svc.TotalUsers(ctx)
	if err != nil {
		l.Error("total_users_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot count users")
	}

	return c.JSON(http.StatusOK, map[string]any{"total_users": total})
}

func (h *AnalyticsHTTP) TotalOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "analytics.total_orders")

	total, err := h.Svc.TotalOrders(ctx)
	if err != nil {
		l.Error("total_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot count orders")
	}

	return c.JSON(http.StatusOK, map[string]any{"total_orders": total})
}

func (h *AnalyticsHTTP) TotalRevenue(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "analytics.total_revenue")

	revenue, err := h.Svc.TotalRevenue(ctx)
	if err != nil {
		l.Error("total_revenue_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sum revenue")
	}

	return c.JSON(http.StatusOK, map[string]any{"total_revenue": revenue})
}

func (h *AnalyticsHTTP) PopularProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Popular products analytics not implemented yet"})
}
