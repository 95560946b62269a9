package handlers

import (
	"investment-tracker/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouter assembles the full HTTP surface.
func SetupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", Health)
	router.POST("/login", Login)

	router.GET("/users", GetUsers)
	router.POST("/users", CreateUser)
	router.GET("/users/user", GetUser)
	router.GET("/users/:user_id", GetUserByID)
	router.PUT("/users/:user_id", UpdateUser)
	router.DELETE("/users/:user_id", DeleteUser)

	router.GET("/instruments", GetInstruments)
	router.POST("/instruments", CreateInstrument)
	router.GET("/instruments/:id", GetInstrumentByID)
	router.PUT("/instruments/:id", UpdateInstrument)
	router.GET("/instruments/:id/price", GetInstrumentPrice)

	portfolio := router.Group("/users/:user_id/portfolio")
	{
		portfolio.GET("", GetPortfolio)
		portfolio.POST("", CreatePortfolio)
		portfolio.DELETE("", DeletePortfolio)

		portfolio.GET("/assets", GetAssets)
		portfolio.POST("/assets", CreateAsset)
		portfolio.DELETE("/assets", DeleteAssets)
		portfolio.GET("/assets/:asset_id", GetAssetByID)
		portfolio.PUT("/assets/:asset_id", UpdateAsset)

		portfolio.GET("/trades", GetTrades)
		portfolio.POST("/trades", CreateTrade)
	}

	orders := router.Group("/users/:user_id/orders")
	{
		orders.GET("", GetOrders)
		orders.POST("", CreateOrder)
		orders.DELETE("", DeleteOrders)
		orders.GET("/:order_id", GetOrderByID)
		orders.PUT("/:order_id", UpdateOrder)
	}

	summary := router.Group("/users/:user_id/summary")
	{
		summary.GET("", GetSummary)
		summary.POST("", CreateSummary)
		summary.PUT("", UpdateSummary)
	}

	return router
}
