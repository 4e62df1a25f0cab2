package router

import (
	"personamart/internal/middleware"
	"personamart/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/logout", handler.Logout, authRequired)

	users.PUT("/:id", handler.UpdateUser, authRequired, middleware.SelfOrAdmin())
	users.GET("", handler.GetAllUsers, authRequired, adminOnly)
	users.GET("/:id", handler.GetUserByID, authRequired, middleware.SelfOrAdmin())
	users.DELETE("/:id", handler.DeleteUser, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupPurchaseRoutes(api *echo.Group, handler *rest.PurchaseHandler, authRequired echo.MiddlewareFunc) {
	purchases := api.Group("/purchases", authRequired)

	purchases.POST("", handler.CreatePurchase)
	purchases.GET("/user/:user_id", handler.GetUserPurchases)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")

	reco.GET("/new-user", handler.GetNewUserRecommendations)
	reco.GET("/:user_id", handler.GetRecommendations)
}

func SetupPersonaRoutes(api *echo.Group, handler *rest.SessionHandler) {
	persona := api.Group("/persona")

	persona.GET("/shopping-session/:user_id", handler.GenerateSession)
	persona.GET("/analyze/:user_id", handler.AnalyzePersona)
}

func SetupSeedRoutes(api *echo.Group, handler *rest.SeedHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	api.POST("/generate-data", handler.Seed, authRequired, adminOnly)
}
