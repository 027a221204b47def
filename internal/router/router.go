package router

import (
	"github.com/guilhermemendeslima/clickcell-system/internal/config"
	"github.com/guilhermemendeslima/clickcell-system/internal/handler"
	"github.com/guilhermemendeslima/clickcell-system/internal/middleware"
	"github.com/guilhermemendeslima/clickcell-system/internal/repository"
	"github.com/guilhermemendeslima/clickcell-system/internal/service"
	"github.com/guilhermemendeslima/clickcell-system/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
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

	sessions := session.NewRegistry()

	// ── Repositories ─────────────────────────────────────────────────────────
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	orderRepo := repository.NewServiceOrderRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc, err := service.NewAuthService(employeeRepo, sessions, cfg)
	if err != nil {
		return nil, err
	}
	customerSvc := service.NewCustomerService(customerRepo)
	productSvc := service.NewProductService(productRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo, customerRepo)
	orderSvc := service.NewServiceOrderService(orderRepo, customerRepo, employeeRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo, authSvc)
	dashboardSvc := service.NewDashboardService(saleRepo, productRepo, orderRepo, customerRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	productsH := handler.NewProductsHandler(productSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	ordersH := handler.NewServiceOrdersHandler(orderSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))
	r.POST("/v1/auth/login", authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, sessions)
	v1 := r.Group("/v1", jwtMW)
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/logout", authH.Logout)
			auth.GET("/me", authH.Me)
		}

		customers := v1.Group("/customers")
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.GetByID)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/:id", productsH.GetByID)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		sales := v1.Group("/sales")
		{
			sales.POST("", salesH.Register)
			sales.GET("", salesH.List)
			sales.GET("/:id", salesH.GetByID)
			sales.PUT("/:id", salesH.Update)
			sales.DELETE("/:id", salesH.Delete)
		}

		orders := v1.Group("/service-orders")
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.GetByID)
			orders.PUT("/:id", ordersH.Update)
			orders.DELETE("/:id", ordersH.Delete)
		}

		// Employee management is restricted to administrators
		employees := v1.Group("/employees", middleware.RequireRole("admin"))
		{
			employees.POST("", employeesH.Create)
			employees.GET("", employeesH.List)
			employees.GET("/:id", employeesH.GetByID)
			employees.PUT("/:id", employeesH.Update)
			employees.DELETE("/:id", employeesH.Delete)
		}

		v1.GET("/dashboard", dashboardH.Summary)
	}

	return r, nil
}
