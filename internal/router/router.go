package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/config"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/handler"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/infra"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/middleware"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/service"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// The dispatcher is shared with the worker pool, so it is built in main
// and injected here.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher, mailCB *infra.CircuitBreaker) *gin.Engine {
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
	r.Use(middleware.Timeout(time.Duration(cfg.RepoTimeoutSeconds) * time.Second))

	// ── Repositories ─────────────────────────────────────────────────────────
	vehiculoRepo := repository.NewVehiculoRepository(db)
	conductorRepo := repository.NewConductorRepository(db)
	rutaRepo := repository.NewRutaRepository(db)
	polizaRepo := repository.NewPolizaRepository(db)
	multaRepo := repository.NewMultaRepository(db)
	mantenimientoRepo := repository.NewMantenimientoRepository(db)
	tallerRepo := repository.NewTallerRepository(db)
	impuestoRepo := repository.NewImpuestoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	vehiculoSvc := service.NewVehiculoService(vehiculoRepo)
	conductorSvc := service.NewConductorService(conductorRepo)
	rutaSvc := service.NewRutaService(rutaRepo, vehiculoRepo, conductorRepo, dispatcher)
	polizaSvc := service.NewPolizaService(polizaRepo, vehiculoRepo)
	multaSvc := service.NewMultaService(multaRepo, conductorRepo)
	mantenimientoSvc := service.NewMantenimientoService(mantenimientoRepo, vehiculoRepo, tallerRepo)
	tallerSvc := service.NewTallerService(tallerRepo)
	impuestoSvc := service.NewImpuestoService(impuestoRepo, vehiculoRepo)
	statsSvc := service.NewStatsService(vehiculoRepo, rutaRepo, polizaRepo, conductorRepo, multaRepo, mantenimientoRepo, impuestoRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	vehiculosH := handler.NewVehiculosHandler(vehiculoSvc)
	conductoresH := handler.NewConductoresHandler(conductorSvc)
	rutasH := handler.NewRutasHandler(rutaSvc)
	polizasH := handler.NewPolizasHandler(polizaSvc)
	multasH := handler.NewMultasHandler(multaSvc)
	mantenimientosH := handler.NewMantenimientosHandler(mantenimientoSvc)
	talleresH := handler.NewTalleresHandler(tallerSvc)
	impuestosH := handler.NewImpuestosHandler(impuestoSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	reportesH := handler.NewReportesHandler(cfg.ReportStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb, mailCB))

	v1 := r.Group("/v1")
	{
		vehiculos := v1.Group("/vehiculos")
		{
			vehiculos.POST("", vehiculosH.Crear)
			vehiculos.GET("", vehiculosH.Listar)
			vehiculos.GET("/:id", vehiculosH.ObtenerPorID)
			vehiculos.PUT("/:id", vehiculosH.Actualizar)
			vehiculos.DELETE("/:id", vehiculosH.DarDeBaja)
			vehiculos.PATCH("/:id/reactivar", vehiculosH.Reactivar)
		}

		conductores := v1.Group("/conductores")
		{
			conductores.POST("", conductoresH.Crear)
			conductores.GET("", conductoresH.Listar)
			conductores.GET("/:id", conductoresH.ObtenerPorID)
			conductores.PUT("/:id", conductoresH.Actualizar)
			conductores.DELETE("/:id", conductoresH.DarDeBaja)
			conductores.PATCH("/:id/reactivar", conductoresH.Reactivar)
		}

		rutas := v1.Group("/rutas")
		{
			rutas.POST("", rutasH.Crear)
			rutas.GET("", rutasH.Listar)
			rutas.POST("/reporte", rutasH.SolicitarReporte)
			rutas.GET("/reporte/:archivo", reportesH.Descargar)
			rutas.GET("/:id", rutasH.ObtenerPorID)
			rutas.PUT("/:id", rutasH.Actualizar)
			rutas.DELETE("/:id", rutasH.Eliminar)
		}

		polizas := v1.Group("/polizas")
		{
			polizas.POST("", polizasH.Crear)
			polizas.GET("", polizasH.Listar)
			polizas.GET("/:id", polizasH.ObtenerPorID)
			polizas.PUT("/:id", polizasH.Actualizar)
			polizas.PATCH("/:id/cancelar", polizasH.Cancelar)
			polizas.DELETE("/:id", polizasH.Eliminar)
		}

		multas := v1.Group("/multas")
		{
			multas.POST("", multasH.Crear)
			multas.GET("", multasH.Listar)
			multas.GET("/:id", multasH.ObtenerPorID)
			multas.PUT("/:id", multasH.Actualizar)
			multas.POST("/:id/pagos", multasH.RegistrarPago)
			multas.DELETE("/:id", multasH.Eliminar)
		}

		mantenimientos := v1.Group("/mantenimientos")
		{
			mantenimientos.POST("", mantenimientosH.Crear)
			mantenimientos.GET("", mantenimientosH.Listar)
			mantenimientos.GET("/:id", mantenimientosH.ObtenerPorID)
			mantenimientos.PUT("/:id", mantenimientosH.Actualizar)
			mantenimientos.PATCH("/:id/finalizar", mantenimientosH.Finalizar)
			mantenimientos.POST("/:id/pagos", mantenimientosH.RegistrarPago)
			mantenimientos.DELETE("/:id", mantenimientosH.Eliminar)
		}

		talleres := v1.Group("/talleres")
		{
			talleres.POST("", talleresH.Crear)
			talleres.GET("", talleresH.Listar)
			talleres.GET("/:id", talleresH.ObtenerPorID)
			talleres.PUT("/:id", talleresH.Actualizar)
			talleres.DELETE("/:id", talleresH.DarDeBaja)
		}

		impuestos := v1.Group("/impuestos")
		{
			impuestos.POST("", impuestosH.Crear)
			impuestos.GET("", impuestosH.Listar)
			impuestos.GET("/:id", impuestosH.ObtenerPorID)
			impuestos.PUT("/:id", impuestosH.Actualizar)
			impuestos.POST("/:id/pagos", impuestosH.RegistrarPago)
			impuestos.DELETE("/:id", impuestosH.Eliminar)
		}

		v1.GET("/stats", statsH.Obtener)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
