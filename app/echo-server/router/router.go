package router

import (
	"github.com/CatcoinSupport/Game-Mart/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, adminOnly)
}

func SetupSectionRoutes(api *echo.Group, handler *rest.SectionHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	sections := api.Group("/sections")

	sections.GET("", handler.GetAllSections, authRequired)
	sections.POST("", handler.CreateSection, authRequired, adminOnly)
	sections.DELETE("/:id", handler.DeleteSection, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts, authRequired)
	products.GET("/featured", handler.GetFeaturedProducts, authRequired)
	products.GET("/:id", handler.GetProductByID, authRequired)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupCartRoutes(api *echo.Group, handler *rest.CartHandler, authRequired echo.MiddlewareFunc) {
	cart := api.Group("/cart", authRequired)

	cart.GET("", handler.GetCart)
	cart.POST("/items/:product_id", handler.AddItem)
	cart.DELETE("/items/:product_id", handler.RemoveItem)
}

func SetupOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.POST("/checkout", handler.Checkout, authRequired)

	orders := api.Group("/orders", authRequired)
	orders.GET("", handler.GetMyOrders)
	orders.GET("/:id", handler.GetOrderByID)

	admin := api.Group("/admin", authRequired, adminOnly)
	admin.GET("/dashboard", handler.Dashboard)
	admin.GET("/orders", handler.GetAllOrders)
	admin.PUT("/orders/:id/status/:status", handler.UpdateStatus)
}

func SetupPaymentMethodRoutes(api *echo.Group, handler *rest.PaymentMethodHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.GET("/payment-methods", handler.GetActiveMethods, authRequired)

	admin := api.Group("/admin/payment-methods", authRequired, adminOnly)
	admin.GET("", handler.GetAllMethods)
	admin.POST("", handler.CreateMethod)
	admin.DELETE("/:id", handler.DeleteMethod)
}

func SetupSettingsRoutes(api *echo.Group, handler *rest.SettingsHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.GET("/site-info", handler.GetSiteInfo)

	admin := api.Group("/admin/settings", authRequired, adminOnly)
	admin.GET("", handler.GetSettings)
	admin.PUT("", handler.UpdateSettings)
}

func SetupEmailsRoutes(api *echo.Group, handler *rest.EmailsHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.GET("/admin/emails", handler.GetEmails, authRequired, adminOnly)
}

// Upload serving lives at the root, mirroring the public file URLs.
func SetupUploadRoutes(e *echo.Echo, handler *rest.UploadsHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	e.GET("/uploads/products/:filename", handler.GetProductFile)
	e.GET("/uploads/payments/:filename", handler.GetPaymentFile, authRequired, adminOnly)
}
