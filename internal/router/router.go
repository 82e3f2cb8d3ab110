// File: internal/router/router.go
package router

import (
	"product-crud/internal/event"
	"product-crud/internal/handler"
	"product-crud/internal/handler/products"
	"product-crud/internal/handler/users"
	"product-crud/internal/store"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由，db 與 notifier 由呼叫端建立後注入
func Setup(e *echo.Echo, db *store.Database, n event.Notifier) {
	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler())

	apiProducts := e.Group("/products")
	apiProducts.GET("", products.ListProductsHandler(db.Products))
	apiProducts.POST("", products.CreateProductHandler(db.Products, n))
	apiProducts.GET("/:id", products.GetProductHandler(db.Products))
	apiProducts.PUT("/:id", products.UpdateProductHandler(db.Products, n))
	apiProducts.DELETE("/:id", products.DeleteProductHandler(db.Products, n))

	apiUsers := e.Group("/users")
	apiUsers.GET("", users.ListUsersHandler(db.Users))
	apiUsers.POST("", users.CreateUserHandler(db.Users, n))
	apiUsers.GET("/:id", users.GetUserHandler(db.Users))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db.Users, n))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db.Users, n))
}
