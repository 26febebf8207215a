package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sunnyday_shop/internal/logging"
	"github.com/Skotchmaster/sunnyday_shop/internal/service"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

type AddressHTTP struct {
	Svc *service.AddressService
}

func (h *AddressHTTP) ListAddresses(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.list_addresses")

	userID := c.Param("external_id")

	addresses, err := h.Svc.ListAddresses(ctx, userID)
	if err != nil {
		l.Error("list_addresses_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list addresses")
	}

	return c.JSON(http.StatusOK, transport.AddressesResponse{Addresses: addresses})
}

func (h *AddressHTTP) CreateAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.create_address")

	var req transport.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_address_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	addr, err := h.Svc.CreateAddress(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_address_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_address_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create address")
	}

	l.Info("create_address_success", "address_id", addr.ID)
	return c.JSON(http.StatusCreated, addr)
}

func (h *AddressHTTP) DeleteAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.delete_address")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		l.Warn("delete_address_error", "status", 400, "reason", "invalid id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid address id")
	}

	if err := h.Svc.DeleteAddress(ctx, uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_address_error", "status", 404, "address_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "address not found")
		}
		l.Error("delete_address_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete address")
	}

	l.Info("delete_address_success", "address_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Address removed"})
}
