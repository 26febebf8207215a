package httpserver

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sunnyday_shop/internal/mykafka"
)

// publish sends a domain event without failing the request. A nil
// producer means events are disabled.
func publish(c echo.Context, p *mykafka.Producer, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}
