package infra

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/umalmyha/churn/internal/config"
	"github.com/umalmyha/churn/internal/handlers"
	"github.com/umalmyha/churn/internal/middleware"
	"github.com/umalmyha/churn/internal/service"
	"github.com/umalmyha/churn/internal/validation"
)

// Services are the dependencies exposed over HTTP
type Services struct {
	Customer     service.CustomerService
	Prediction   service.PredictionService
	Dashboard    service.DashboardService
	Intervention service.InterventionService
}

func Router(cfg config.HTTPCfg, svc Services, logger logrus.FieldLogger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	v, err := validation.English()
	if err != nil {
		return nil, err
	}
	e.Validator = v
	e.HTTPErrorHandler = handlers.ErrorHandler(logger)

	// Middleware
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: []string{echo.HeaderContentType, "x-api-key"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.OPTIONS},
	}))

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(svc.Customer)
	predictionHandler := handlers.NewPredictionHTTPHandler(svc.Prediction)
	dashboardHandler := handlers.NewDashboardHTTPHandler(svc.Dashboard)
	interventionHandler := handlers.NewInterventionHTTPHandler(svc.Intervention)

	// API routes
	api := e.Group("/api")

	// customers
	customersAPI := api.Group("/customers")
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.PUT("/:id", customerHandler.Put)
	customersAPI.GET("/:id/interventions", customerHandler.Interventions)
	customersAPI.POST("/:id/prediction", predictionHandler.Rescore)

	// predictions
	api.POST("/predictions", predictionHandler.Predict)
	api.GET("/predictions", predictionHandler.Predict)

	// dashboard
	api.GET("/dashboard/summary", dashboardHandler.Summary)

	// interventions
	api.POST("/interventions", interventionHandler.Post)

	// docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
