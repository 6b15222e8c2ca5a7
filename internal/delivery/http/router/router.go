// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/oliviahealth/Careplan/internal/delivery/http/middleware"
	"github.com/oliviahealth/Careplan/internal/delivery/http/router/handler"
	"github.com/oliviahealth/Careplan/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	RecordHandler  *handler.RecordHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	recordHandler  *handler.RecordHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		recordHandler:  params.RecordHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The route names follow the form-per-path convention the frontend expects:
// add_<kind>, get_<kind>, update_<kind>, delete_<kind>.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Session routes, no token required
	api.POST("/signup", r.accountHandler.SignUp)
	api.POST("/signin", r.accountHandler.SignIn)

	// Account routes behind authentication
	authed := api.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.POST("/signout", r.accountHandler.SignOut)
		authed.GET("/get_user", r.accountHandler.GetAccount)
		authed.PUT("/update_user", r.accountHandler.UpdateAccount)
		authed.DELETE("/delete_user", r.accountHandler.DeleteAccount)
	}

	// One CRUD surface per clinical form kind
	for _, kind := range entity.RecordKinds {
		name := kind.String()
		authed.POST("/add_"+name, r.recordHandler.Add(kind))
		authed.GET("/get_"+name, r.recordHandler.List(kind))
		authed.GET("/get_"+name+"/:id", r.recordHandler.Get(kind))
		authed.PUT("/update_"+name+"/:id", r.recordHandler.Update(kind))
		authed.DELETE("/delete_"+name+"/:id", r.recordHandler.Delete(kind))
	}
}
