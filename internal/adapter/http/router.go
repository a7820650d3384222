package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Routes groups the handlers and middleware the API is assembled from.
// Idempotency and Metrics are optional.
type Routes struct {
	Health       *Handler
	Accounts     *AccountHandler
	References   *ReferenceHandler
	Applications *ApplicationHandler
	Reviews      *ReviewHandler

	Auth        echo.MiddlewareFunc
	Idempotency echo.MiddlewareFunc
	Metrics     http.Handler
}

func (r Routes) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	e.GET("/ready", r.Health.Ready)
	if r.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.Metrics))
	}

	// public: account bootstrap and the cascading selector lookups
	e.POST("/auth/signup", r.Accounts.Signup)
	e.POST("/auth/login", r.Accounts.Login)
	e.GET("/counties", r.References.ListCounties)
	e.GET("/counties/:county_id/constituencies", r.References.ListConstituencies)
	e.GET("/constituencies", r.References.ListConstituencies)
	e.GET("/levels", r.References.ListLevels)
	e.GET("/fieldsets", r.Applications.Fieldset)

	mws := []echo.MiddlewareFunc{r.Auth}
	if r.Idempotency != nil {
		mws = append(mws, r.Idempotency)
	}
	g := e.Group("/applications", mws...)
	g.POST("", r.Applications.Submit)
	g.GET("", r.Applications.List)
	g.GET("/:application_id", r.Applications.Get)
	g.POST("/:application_id/approve", r.Reviews.Approve)
	g.POST("/:application_id/reject", r.Reviews.Reject)
}
