package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/oxefood/delivery-api/docs"
	"github.com/oxefood/delivery-api/internal/api/handler"
	"github.com/oxefood/delivery-api/internal/api/middleware"
	"github.com/oxefood/delivery-api/internal/core/ports"
	"github.com/oxefood/delivery-api/internal/core/service"
	"github.com/oxefood/delivery-api/internal/infrastructure/config"
	mongorepo "github.com/oxefood/delivery-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/oxefood/delivery-api/internal/infrastructure/db/redis"
	"github.com/oxefood/delivery-api/internal/infrastructure/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("oxefood"))

	codec := token.NewJWTCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	e.Use(middleware.Identity(codec, audit, log))

	// Probes, metrics and docs sit outside the ported security table, so
	// their public rules are appended after it. First match still wins.
	rules := append(middleware.DefaultRules(),
		middleware.Rule{Method: "GET", Pattern: "/health", Require: middleware.Public()},
		middleware.Rule{Method: "GET", Pattern: "/health/ready", Require: middleware.Public()},
		middleware.Rule{Method: "GET", Pattern: "/metrics", Require: middleware.Public()},
	)
	e.Use(middleware.Authorize(rules, audit, log))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	customerRepo := mongorepo.NewCustomerRepository(db)
	employeeRepo := mongorepo.NewEmployeeRepository(db)
	courierRepo := mongorepo.NewCourierRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	categoryRepo := mongorepo.NewCategoryRepository(db)
	saleRepo := mongorepo.NewSaleRepository(db)

	// --- Services ---
	limiter := redisinfra.NewLoginLimiter(rdb, cfg.Auth.MaxLoginAttempts, cfg.Auth.LoginWindow)
	authService := service.NewAuthService(userRepo, codec, limiter, audit, log)
	customerService := service.NewCustomerService(customerRepo, userRepo)
	employeeService := service.NewEmployeeService(employeeRepo, userRepo)
	courierService := service.NewCourierService(courierRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	saleService := service.NewSaleService(saleRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	courierHandler := handler.NewCourierHandler(courierService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	saleHandler := handler.NewSaleHandler(saleService)

	// --- Auth ---
	e.POST("/api/auth", authHandler.Login)

	// --- Customers ---
	e.POST("/api/cliente", customerHandler.Save)
	e.GET("/api/cliente", customerHandler.ListAll)
	e.GET("/api/cliente/:id", customerHandler.GetByID)
	e.PUT("/api/cliente/:id", customerHandler.Update)
	e.DELETE("/api/cliente/:id", customerHandler.Delete)
	e.POST("/api/cliente/filtrar", customerHandler.Filter)
	e.POST("/api/cliente/endereco/:clienteId", customerHandler.AddAddress)
	e.GET("/api/cliente/endereco/:clienteId", customerHandler.ListAddresses)
	e.PUT("/api/cliente/endereco/:enderecoId", customerHandler.UpdateAddress)
	e.DELETE("/api/cliente/endereco/:enderecoId", customerHandler.RemoveAddress)

	// --- Employees ---
	e.POST("/api/funcionario", employeeHandler.Save)
	e.GET("/api/funcionario", employeeHandler.ListAll)
	e.GET("/api/funcionario/:id", employeeHandler.GetByID)
	e.PUT("/api/funcionario/:id", employeeHandler.Update)
	e.DELETE("/api/funcionario/:id", employeeHandler.Delete)

	// --- Couriers ---
	e.POST("/api/entregador", courierHandler.Save)
	e.GET("/api/entregador", courierHandler.ListAll)
	e.GET("/api/entregador/:id", courierHandler.GetByID)
	e.PUT("/api/entregador/:id", courierHandler.Update)
	e.DELETE("/api/entregador/:id", courierHandler.Delete)

	// --- Products ---
	e.POST("/api/produto", productHandler.Save)
	e.GET("/api/produto", productHandler.ListAll)
	e.GET("/api/produto/:id", productHandler.GetByID)
	e.PUT("/api/produto/:id", productHandler.Update)
	e.DELETE("/api/produto/:id", productHandler.Delete)
	e.POST("/api/produto/filtrar", productHandler.Filter)

	// --- Categories ---
	e.POST("/api/categoriaproduto", categoryHandler.Save)
	e.GET("/api/categoriaproduto", categoryHandler.ListAll)
	e.GET("/api/categoriaproduto/:id", categoryHandler.GetByID)
	e.PUT("/api/categoriaproduto/:id", categoryHandler.Update)
	e.DELETE("/api/categoriaproduto/:id", categoryHandler.Delete)

	// --- Sales ---
	e.POST("/api/venda", saleHandler.Save)
	e.GET("/api/venda", saleHandler.ListAll)
	e.GET("/api/venda/:id", saleHandler.GetByID)
	e.PUT("/api/venda/:id", saleHandler.Update)
	e.DELETE("/api/venda/:id", saleHandler.Delete)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger-ui/*", echoSwagger.WrapHandler)

	return e
}
