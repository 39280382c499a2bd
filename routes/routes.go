package routes

import (
	"grillpos/configs"
	"grillpos/controllers"
	"grillpos/middlewares"
	"grillpos/repository"
	"grillpos/services"
	"grillpos/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, logger *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	txRepo := repository.NewTransactionRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	// Services
	txSvc := services.NewTransactionService(db, txRepo, menuRepo, invRepo, cfg.TaxRateBP, logger)
	invSvc := services.NewInventoryService(db, invRepo, logger)
	authSvc := services.NewAuthService(empRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Kitchen feed
	hub := ws.NewKitchenHub(txSvc)
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)
	txCtrl := controllers.NewTransactionController(txSvc, hub)
	invCtrl := controllers.NewInventoryController(invSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Menu (public: customer kiosks browse without a token)
	r.GET("/menuitems", menuCtrl.List)
	r.GET("/menuitems/:id/ingredients", menuCtrl.Ingredients)

	// Transactions (staff)
	t := r.Group("/transactions", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		t.POST("/new", txCtrl.Create)
		t.GET("/in-progress", txCtrl.ListInProgress)
		t.GET("/:id", txCtrl.Detail)
		t.PATCH("/:id/fulfill", txCtrl.Fulfill)
		t.PATCH("/:id", txCtrl.Reconcile)
	}

	// Inventory (managers)
	inv := r.Group("/inventory", middlewares.AuthMiddleware(cfg.JWTSecret, "manager"))
	{
		inv.GET("/restock", invCtrl.Restock)
		inv.GET("/:id/count", invCtrl.Count)
		inv.POST("/:id/receive", invCtrl.Receive)
	}

	// Kitchen display feed
	r.GET("/ws/kitchen", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
