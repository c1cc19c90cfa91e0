package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tixly/internal/admin"
	"tixly/internal/events"
	"tixly/internal/notifications"
	"tixly/internal/orders"
	"tixly/internal/payments"
	"tixly/internal/shared/auth"
	"tixly/internal/shared/config"
	"tixly/internal/shared/database"
	"tixly/internal/shared/middleware"
	"tixly/internal/tickets"
	"tixly/internal/users"
	"tixly/internal/vendors"
	"tixly/internal/withdrawals"
	"tixly/pkg/cache"
)

// Router wires repositories, services and controllers and mounts every
// route group under the versioned API prefix.
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer
}

func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pg := r.db.GetPostgres()
	authz := auth.NewAuthorizer()

	var cacheService cache.Service
	if rdb := r.db.GetRedis(); rdb != nil {
		cacheService = cache.NewService(rdb)
	}

	userService := users.NewService(users.NewRepository(pg))
	vendorService := vendors.NewService(vendors.NewRepository(pg), authz)
	eventService := events.NewService(events.NewRepository(pg), cacheService, authz)
	ticketService := tickets.NewService(tickets.NewRepository(pg), authz)
	orderService := orders.NewService(orders.NewRepository(pg), r.producer)
	paymentService := payments.NewService(payments.NewRepository(pg), authz)
	withdrawalService := withdrawals.NewService(withdrawals.NewRepository(pg), authz, r.producer)
	adminService := admin.NewService(admin.NewRepository(pg), userService, vendorService, eventService, paymentService, withdrawalService, cacheService)

	withdrawalController := withdrawals.NewController(withdrawalService)

	api := engine.Group(r.config.GetAPIBasePath(), middleware.Identify(r.config))
	{
		users.SetupUserRoutes(api, users.NewController(userService))
		vendors.SetupVendorRoutes(api, vendors.NewController(vendorService), authz)
		events.SetupEventRoutes(api, events.NewController(eventService), authz)
		tickets.SetupTicketRoutes(api, tickets.NewController(ticketService))
		orders.SetupOrderRoutes(api, orders.NewController(orderService))
		payments.SetupPaymentRoutes(api, payments.NewController(paymentService),
			withdrawalController.ListWithdrawals, withdrawalController.UpdateWithdrawalStatus)
		withdrawals.SetupWithdrawalRoutes(api, withdrawalController)
		admin.SetupAdminRoutes(api, admin.NewController(adminService), authz)
	}
}

// setupHealthRoutes sets up health check and system status routes.
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "tixly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "tixly-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}
