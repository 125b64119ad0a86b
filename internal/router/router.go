package router

import (
	"time"

	"github.com/Cdo9608/sistema-consumibles/internal/catalog"
	"github.com/Cdo9608/sistema-consumibles/internal/config"
	"github.com/Cdo9608/sistema-consumibles/internal/handler"
	"github.com/Cdo9608/sistema-consumibles/internal/middleware"
	"github.com/Cdo9608/sistema-consumibles/internal/persist"
	"github.com/Cdo9608/sistema-consumibles/internal/repository"
	"github.com/Cdo9608/sistema-consumibles/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB, with the catalog and
// the synchronizer injected where they are consumed.
func New(cfg *config.Config, db *gorm.DB, cat *catalog.Catalogo, sinc *persist.Sincronizador,
	entradaRepo repository.EntradaRepository, salidaRepo repository.SalidaRepository) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	stockSvc := service.NewStockService(cat, entradaRepo, salidaRepo)
	movSvc := service.NewMovimientoService(cat, entradaRepo, salidaRepo, sinc)
	dashSvc := service.NewDashboardService(stockSvc)
	importSvc := service.NewImportService(entradaRepo, salidaRepo, sinc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	entradasH := handler.NewEntradasHandler(movSvc)
	salidasH := handler.NewSalidasHandler(movSvc)
	stockH := handler.NewStockHandler(stockSvc)
	dashH := handler.NewDashboardHandler(dashSvc)
	catalogoH := handler.NewCatalogoHandler(cat)
	exportH := handler.NewExportHandler(sinc)
	importH := handler.NewImportHandler(importSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes — the single operator account
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/entradas", entradasH.Registrar)
		v1.GET("/entradas", entradasH.Listar)
		v1.DELETE("/entradas/:id", entradasH.Eliminar)

		v1.POST("/salidas", salidasH.Registrar)
		v1.GET("/salidas", salidasH.Listar)
		v1.DELETE("/salidas/:id", salidasH.Eliminar)

		v1.GET("/stock", stockH.Calcular)
		v1.GET("/stock/resumen", stockH.Resumen)

		dash := v1.Group("/dashboard")
		{
			dash.GET("/resumen", dashH.Resumen)
			dash.GET("/top-stock", dashH.TopStock)
			dash.GET("/top-salidas", dashH.TopSalidas)
			dash.GET("/top-rotacion", dashH.TopRotacion)
			dash.GET("/stock-critico", dashH.StockCritico)
			dash.GET("/por-sistema", dashH.PorSistema)
		}

		catalogo := v1.Group("/catalogo")
		{
			catalogo.GET("/productos", catalogoH.Productos)
			catalogo.GET("/productos/:codigo", catalogoH.Producto)
			catalogo.GET("/sitios", catalogoH.Sitios)
			catalogo.GET("/sitios/:codigo", catalogoH.Sitio)
		}

		v1.POST("/exportar", exportH.Generar)
		v1.POST("/importar", importH.Importar)
	}

	return r
}
