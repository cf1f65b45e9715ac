package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ligonine/hospital-system/docs"
	"github.com/ligonine/hospital-system/internal/api/handler"
	"github.com/ligonine/hospital-system/internal/api/middleware"
	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
)

// RouterDeps carries everything NewRouter wires into routes.
type RouterDeps struct {
	Auth         ports.AuthService
	Hospital     ports.HospitalService
	Health       map[string]handler.DependencyCheck
	Cookie       handler.CookieConfig
	AllowOrigins []string
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	if len(deps.AllowOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:     deps.AllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
			AllowCredentials: true,
		}))
	}

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Health)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness) // pings every store
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authn := middleware.Auth(deps.Auth)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	staff := middleware.RequireRoles(domain.RoleAdmin, domain.RoleDoctor)

	api := e.Group("/api")

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookie)
	api.POST("/accounts", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/accessToken", authHandler.Refresh)
	api.POST("/logout", authHandler.Logout)
	api.POST("/addDoctorRole", authHandler.AddDoctorRole, authn, adminOnly)

	// --- Departments ---
	departmentHandler := handler.NewDepartmentHandler(deps.Hospital)
	departments := api.Group("/departments")
	departments.GET("", departmentHandler.List)
	departments.GET("/:departmentId", departmentHandler.Get)
	departments.POST("", departmentHandler.Create, authn, adminOnly)
	departments.PUT("/:departmentId", departmentHandler.Update, authn, adminOnly)
	departments.DELETE("/:departmentId", departmentHandler.Delete, authn, adminOnly)

	// --- Doctors (ownership enforced by the service) ---
	doctorHandler := handler.NewDoctorHandler(deps.Hospital)
	doctors := departments.Group("/:departmentId/doctors")
	doctors.GET("", doctorHandler.List)
	doctors.GET("/:doctorId", doctorHandler.Get)
	doctors.POST("", doctorHandler.Create, authn, staff)
	doctors.PUT("/:doctorId", doctorHandler.Update, authn)
	doctors.DELETE("/:doctorId", doctorHandler.Delete, authn)

	// --- Operations ---
	operationHandler := handler.NewOperationHandler(deps.Hospital)
	operations := doctors.Group("/:doctorId/operations")
	operations.GET("", operationHandler.List)
	operations.GET("/:operationId", operationHandler.Get)
	operations.POST("", operationHandler.Create, authn, staff)
	operations.PUT("/:operationId", operationHandler.Update, authn)
	operations.DELETE("/:operationId", operationHandler.Delete, authn)

	return e
}
