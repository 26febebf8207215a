package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/sunnyday_shop/internal/es"
)

// newTestServer wires the full router so requests go through echo's
// routing and error handling, not straight into a handler.
func newTestServer(t *testing.T) (*echo.Echo, *testEnv) {
	env := newTestEnv(t)

	e := echo.New()
	e.HideBanner = true
	Register(e, &Deps{
		ProductHandler:   env.P,
		UserHandler:      env.U,
		CartHandler:      env.C,
		OrderHandler:     env.O,
		AddressHandler:   env.A,
		AnalyticsHandler: env.An,
		SearchHandler:    &SearchHTTP{Index: es.ProductIndex},
	})
	return e, env
}

func serve(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealth(t *testing.T) {
	e, _ := newTestServer(t)

	require.Equal(t, http.StatusOK, serve(t, e, http.MethodGet, "/health/live", nil).Code)
	require.Equal(t, http.StatusOK, serve(t, e, http.MethodGet, "/health/ready", nil).Code)
}

func TestRouterFullFlow(t *testing.T) {
	e, env := newTestServer(t)
	seedProducts(t, env)

	rec := serve(t, e, http.MethodPost, "/api/users", map[string]string{
		"external_id": "u1", "email": "u1@example.com", "name": "One",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, e, http.MethodPost, "/api/cart/add", addToCartLoad(2))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, e, http.MethodGet, "/api/cart/u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Sunny Day T-Shirt")

	rec = serve(t, e, http.MethodPost, "/api/orders", map[string]any{
		"user_id":          "u1",
		"total_amount":     51.98,
		"status":           "pending",
		"shipping_address": map[string]string{"street": "1 Beach Road"},
		"items": []map[string]any{
			{"product_id": 1, "product_name": "Sunny Day T-Shirt", "quantity": 2, "price": 25.99},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, e, http.MethodGet, "/api/users/u1/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "51.98")
}

func TestRouterProductNotFound(t *testing.T) {
	e, env := newTestServer(t)
	seedProducts(t, env)

	rec := serve(t, e, http.MethodGet, "/api/products/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterSearchUnavailableWithoutES(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(t, e, http.MethodGet, "/api/products/search?q=hat", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouterCategoryRouteBeatsIDRoute(t *testing.T) {
	e, env := newTestServer(t)
	seedProducts(t, env)

	rec := serve(t, e, http.MethodGet, "/api/products/category/clothing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Sunny Day T-Shirt")
}
