package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ProductHandler   *ProductHTTP
	UserHandler      *UserHTTP
	CartHandler      *CartHTTP
	OrderHandler     *OrderHTTP
	AddressHandler   *AddressHTTP
	AnalyticsHandler *AnalyticsHTTP
	SearchHandler    *SearchHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.SearchHandler.Search)
	products.GET("/category/:category", d.ProductHandler.GetProductsByCategory)
	products.GET("/:id", d.ProductHandler.GetProduct)

	api.GET("/categories", d.ProductHandler.GetCategories)

	api.POST("/users", d.UserHandler.SyncUser)
	api.GET("/users/:external_id/orders", d.OrderHandler.GetUserOrders)
	api.GET("/users/:external_id/addresses", d.AddressHandler.ListAddresses)

	cart := api.Group("/cart")
	cart.GET("/:external_id", d.CartHandler.GetCart)
	cart.POST("/add", d.CartHandler.AddToCart)
	cart.PUT("/update/:item_id", d.CartHandler.UpdateItem)
	cart.DELETE("/remove/:item_id", d.CartHandler.RemoveItem)
	cart.DELETE("/clear/:external_id", d.CartHandler.ClearCart)

	api.POST("/orders", d.OrderHandler.CreateOrder)

	api.POST("/addresses", d.AddressHandler.CreateAddress)
	api.DELETE("/addresses/:id", d.AddressHandler.DeleteAddress)

	analytics := api.Group("/analytics")
	analytics.GET("/users", d.AnalyticsHandler.TotalUsers)
	analytics.GET("/orders", d.AnalyticsHandler.TotalOrders)
	analytics.GET("/revenue", d.AnalyticsHandler.TotalRevenue)
	analytics.GET("/popular-products", d.AnalyticsHandler.PopularProducts)
}
