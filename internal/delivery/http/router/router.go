// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"walletpass/config"
	"walletpass/internal/delivery/http/middleware"
	"walletpass/internal/delivery/http/router/handler"
	"walletpass/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config                 *config.Config
	RegistrationHandler    *handler.RegistrationHandler
	BundleHandler          *handler.BundleHandler
	PushHandler            *handler.PushHandler
	LogHandler             *handler.LogHandler
	PersonalizationHandler *handler.PersonalizationHandler
	AuthMiddleware         *middleware.AuthMiddleware
	LoggerMiddleware       *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                    *config.Config
	registrationHandler    *handler.RegistrationHandler
	bundleHandler          *handler.BundleHandler
	pushHandler            *handler.PushHandler
	logHandler             *handler.LogHandler
	personalizationHandler *handler.PersonalizationHandler
	authMiddleware         *middleware.AuthMiddleware
	loggerMiddleware       *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                    params.Config,
		registrationHandler:    params.RegistrationHandler,
		bundleHandler:          params.BundleHandler,
		pushHandler:            params.PushHandler,
		logHandler:             params.LogHandler,
		personalizationHandler: params.PersonalizationHandler,
		authMiddleware:         params.AuthMiddleware,
		loggerMiddleware:       params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up the fixed wallet web-service route surface. Only
// the prefix is deployment-configurable; the paths below are dictated by
// the protocol.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group(r.cfg.Wallet.RoutePrefix)
	v1.Use(r.loggerMiddleware.Handle)

	// Device registration routes. The authorization scheme selects pass
	// vs order semantics on the shared path shape.
	subjectAuth := r.authMiddleware.AuthenticateSubject()
	v1.POST("/devices/:deviceLibraryIdentifier/registrations/:typeIdentifier/:serialNumber",
		r.registrationHandler.Register, subjectAuth)
	v1.DELETE("/devices/:deviceLibraryIdentifier/registrations/:typeIdentifier/:serialNumber",
		r.registrationHandler.Unregister, subjectAuth)
	v1.GET("/devices/:deviceLibraryIdentifier/registrations/:typeIdentifier",
		r.registrationHandler.ListSerials)

	// Bundle download routes, one per subject kind.
	passAuth := r.authMiddleware.AuthenticateSubject(entity.KindPass)
	orderAuth := r.authMiddleware.AuthenticateSubject(entity.KindOrder)
	v1.GET("/passes/:typeIdentifier/:serialNumber", r.bundleHandler.Download, passAuth)
	v1.GET("/orders/:typeIdentifier/:serialNumber", r.bundleHandler.Download, orderAuth)

	// Pass personalization enrollment.
	v1.POST("/passes/:typeIdentifier/:serialNumber/personalize",
		r.personalizationHandler.Personalize, passAuth)

	// Device error log sink.
	v1.POST("/log", r.logHandler.Submit)

	// Operator push-trigger routes.
	pushGroup := v1.Group("/push")
	pushGroup.Use(r.authMiddleware.AuthenticateOperator)
	{
		pushGroup.POST("/:typeIdentifier/:serialNumber", r.pushHandler.Notify)
		pushGroup.GET("/:typeIdentifier/:serialNumber", r.pushHandler.Tokens)
	}
}
