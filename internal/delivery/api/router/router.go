// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"efood/config"
	"efood/internal/delivery/api/middleware"
	"efood/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	TrackingHandler   *handler.TrackingHandler
	DeviceHandler     *handler.DeviceHandler
	PushHandler       *handler.PushHandler
	TestHandler       *handler.TestHandler
	SessionMiddleware *middleware.SessionMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	trackingHandler   *handler.TrackingHandler
	deviceHandler     *handler.DeviceHandler
	pushHandler       *handler.PushHandler
	testHandler       *handler.TestHandler
	sessionMiddleware *middleware.SessionMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:       params.CartHandler,
		checkoutHandler:   params.CheckoutHandler,
		trackingHandler:   params.TrackingHandler,
		deviceHandler:     params.DeviceHandler,
		pushHandler:       params.PushHandler,
		testHandler:       params.TestHandler,
		sessionMiddleware: params.SessionMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Pub/Sub push endpoint
	e.POST("/push", r.pushHandler.HandlePush)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Handle)

	cartsGroup := apiV1.Group("/carts")
	{
		cartsGroup.GET("", r.cartHandler.GetCarts)
		cartsGroup.GET("/:storeId", r.cartHandler.GetStoreCart)
		cartsGroup.DELETE("/:storeId", r.cartHandler.ClearStore)

		cartsGroup.POST("/:storeId/items", r.cartHandler.AddItem)
		cartsGroup.PUT("/:storeId/items/:productId", r.cartHandler.SetQuantity)
		cartsGroup.DELETE("/:storeId/items/:productId", r.cartHandler.RemoveItem)

		cartsGroup.PUT("/:storeId/shipping-method", r.cartHandler.SetShippingMethod)
		cartsGroup.PUT("/:storeId/payment-method", r.cartHandler.SetPaymentMethod)
		cartsGroup.PUT("/:storeId/coupon", r.cartHandler.SetCoupon)

		cartsGroup.POST("/:storeId/checkout", r.checkoutHandler.Checkout)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.DELETE("", r.deviceHandler.ForgetDevice)
	}

	apiV1.GET("/orders/:id/tracking", r.trackingHandler.Stream)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.POST("/orders/:id/events", r.testHandler.PublishTrackingEvent)
	}
}
