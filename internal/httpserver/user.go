package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sunnyday_shop/internal/logging"
	"github.com/Skotchmaster/sunnyday_shop/internal/mykafka"
	"github.com/Skotchmaster/sunnyday_shop/internal/service"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

type UserHTTP struct {
	Svc      *service.UserService
	Producer *mykafka.Producer
}

// SyncUser upserts the profile for a client-supplied external identity:
// 201 on first sync, 200 on every following one.
func (h *UserHTTP) SyncUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.sync_user")

	var req transport.SyncUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("sync_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, created, err := h.Svc.SyncUser(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("sync_user_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("sync_user_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sync user")
	}

	publish(c, h.Producer, mykafka.TopicUserEvents, user.ExternalID, mykafka.Event("user_synced", map[string]any{
		"user_id":     user.ID,
		"external_id": user.ExternalID,
		"created":     created,
	}))

	if created {
		l.Info("sync_user_created", "user_id", user.ID)
		return c.JSON(http.StatusCreated, transport.SyncUserResponse{Message: "User created", UserID: user.ID})
	}

	l.Info("sync_user_updated", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.SyncUserResponse{Message: "User updated", UserID: user.ID})
}
