package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/sunnyday_shop/internal/database"
	"github.com/Skotchmaster/sunnyday_shop/internal/models"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

func seedProducts(t *testing.T, env *testEnv) {
	t.Helper()
	products := database.SampleProducts()
	require.NoError(t, env.DB.Create(&products).Error)
}

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)
	seedProducts(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 5)
	require.Equal(t, "Sunny Day T-Shirt", resp[0].Name)
}

func TestGetProductsByCategory(t *testing.T) {
	env := newTestEnv(t)
	seedProducts(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/products/category/accessories", nil)
	c.SetParamNames("category")
	c.SetParamValues("accessories")
	require.NoError(t, env.P.GetProductsByCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	for _, p := range resp {
		require.Equal(t, "accessories", p.Category)
	}
}

func TestGetProductsByUnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	seedProducts(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/products/category/nonexistent", nil)
	c.SetParamNames("category")
	c.SetParamValues("nonexistent")
	require.NoError(t, env.P.GetProductsByCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.JSONEq(t, "[]", rec.Body.String())
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)
	seedProducts(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/products/3", nil)
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, env.P.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, uint(3), resp.ID)
	require.Equal(t, "Sunglasses", resp.Name)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)
	seedProducts(t, env)

	_, c := env.doJSONRequest(http.MethodGet, "/api/products/99", nil)
	c.SetParamNames("id")
	c.SetParamValues("99")
	requireHTTPError(t, env.P.GetProduct(c), http.StatusNotFound)
}

func TestGetCategories(t *testing.T) {
	env := newTestEnv(t)
	seedProducts(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/categories", nil)
	require.NoError(t, env.P.GetCategories(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CategoriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []string{"accessories", "clothing", "footwear", "home"}, resp.Categories)
}
