package router

import (
	"time"

	"partsdesk/internal/config"
	"partsdesk/internal/handler"
	"partsdesk/internal/middleware"
	"partsdesk/internal/repository"
	"partsdesk/internal/service"
	"partsdesk/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	partRepo := repository.NewSparePartRepository(db)
	billRepo := repository.NewBillRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	partSvc := service.NewPartService(partRepo, rdb, dispatcher)
	inventorySvc := service.NewInventoryService(partRepo)
	billSvc := service.NewBillService(billRepo)
	ledgerSvc := service.NewLedgerService(partRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	partsH := handler.NewPartsHandler(partSvc, inventorySvc)
	billsH := handler.NewBillsHandler(billSvc, billRepo)
	ledgerH := handler.NewLedgerHandler(ledgerSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Liveness probe — deployment platforms ping this
	r.GET("/", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		api.POST("/login", middleware.LoginRateLimiter(), authH.Login)

		parts := api.Group("/parts")
		{
			parts.GET("", partsH.List)
			parts.POST("", partsH.Create)
			parts.GET("/summary", partsH.Summary)
			parts.GET("/lookup/:gsm", partsH.Lookup)
			parts.GET("/:id", partsH.Get)
			parts.PUT("/:id", partsH.Update)
			parts.DELETE("/:id", partsH.Delete)
		}

		bills := api.Group("/bills")
		{
			bills.GET("", billsH.List)
			bills.POST("", billsH.Create)
			bills.GET("/:id", billsH.Get)
			bills.PUT("/:id", billsH.Update)
			bills.DELETE("/:id", billsH.Delete)
			bills.GET("/:id/pdf", billsH.PDF)
		}

		api.GET("/ledger", ledgerH.Ledger)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
