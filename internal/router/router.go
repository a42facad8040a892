package router

import (
	"time"

	"petmarket/internal/config"
	"petmarket/internal/carrito"
	"petmarket/internal/handler"
	"petmarket/internal/middleware"
	"petmarket/internal/repository"
	"petmarket/internal/service"
	"petmarket/internal/storage"
	"petmarket/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, almacen *storage.Spaces, dispatcher *worker.Dispatcher) *gin.Engine {
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
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	marcaRepo := repository.NewMarcaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	adminRepo := repository.NewUsuarioAdminRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	carritoStore := carrito.NewStore(rdb)

	catalogoSvc := service.NewCatalogoService(productoRepo, categoriaRepo, marcaRepo, almacen)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, productoRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, marcaRepo, almacen, dispatcher)
	marcaSvc := service.NewMarcaService(marcaRepo, productoRepo, almacen, dispatcher)
	carritoSvc := service.NewCarritoService(carritoStore, productoRepo, almacen, cfg)
	authSvc := service.NewAuthService(clienteRepo, adminRepo, dispatcher, cfg)
	dashboardSvc := service.NewDashboardService(productoRepo, categoriaRepo, marcaRepo, pedidoRepo, clienteRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	marcasH := handler.NewMarcasHandler(marcaSvc)
	authH := handler.NewAuthHandler(authSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Operational
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", middleware.MetricsHandler())

	// Storefront (public, anonymous session for the cart)
	publico := r.Group("/v1", middleware.CarritoSession())
	{
		publico.GET("/inicio", catalogoH.Inicio)
		publico.GET("/catalogo", catalogoH.Listar)
		publico.GET("/catalogo/:id", catalogoH.Detalle)
		publico.GET("/categorias", categoriasH.Listar)
		publico.GET("/marcas", marcasH.Listar)

		publico.GET("/carrito", carritoH.Ver)
		publico.POST("/carrito/agregar", carritoH.Agregar)
		publico.POST("/carrito/eliminar", carritoH.Eliminar)
		publico.POST("/carrito/actualizar", carritoH.Actualizar)
		publico.POST("/carrito/limpiar", carritoH.Limpiar)
	}

	// Auth (public, rate limited)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/registro", middleware.LoginRateLimiter(), authH.Registro)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/admin/login", middleware.LoginRateLimiter(), authH.LoginAdmin)
	}

	// Admin (JWT + rol)
	admin := r.Group("/v1/admin", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRol(service.RolAdmin))
	{
		admin.GET("/dashboard", dashboardH.Resumen)
		admin.GET("/catalogo/pdf", dashboardH.ExportarCatalogoPDF)

		admin.GET("/productos", productosH.Listar)
		admin.POST("/productos", productosH.Crear)
		admin.GET("/productos/:id", productosH.Obtener)
		admin.PUT("/productos/:id", productosH.Actualizar)
		admin.DELETE("/productos/:id", productosH.Eliminar)

		admin.POST("/categorias", categoriasH.Crear)
		admin.GET("/categorias/:id", categoriasH.Obtener)
		admin.PUT("/categorias/:id", categoriasH.Actualizar)
		admin.GET("/categorias/:id/eliminacion", categoriasH.PrevisualizarEliminacion)
		admin.DELETE("/categorias/:id", categoriasH.Eliminar)

		admin.POST("/marcas", marcasH.Crear)
		admin.GET("/marcas/:id", marcasH.Obtener)
		admin.PUT("/marcas/:id", marcasH.Actualizar)
		admin.DELETE("/marcas/:id", marcasH.Eliminar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
