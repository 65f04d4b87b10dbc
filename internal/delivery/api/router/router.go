// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lostfound/internal/delivery/api/middleware"
	"lostfound/internal/delivery/api/router/handler"
	"lostfound/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ItemHandler          *handler.ItemHandler
	UploadHandler        *handler.UploadHandler
	QRCodeHandler        *handler.QRCodeHandler
	CredentialMiddleware *middleware.CredentialMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	itemHandler          *handler.ItemHandler
	uploadHandler        *handler.UploadHandler
	qrcodeHandler        *handler.QRCodeHandler
	credentialMiddleware *middleware.CredentialMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		itemHandler:          params.ItemHandler,
		uploadHandler:        params.UploadHandler,
		qrcodeHandler:        params.QRCodeHandler,
		credentialMiddleware: params.CredentialMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Catalog
	e.GET("/categories", handler.ListCategories)
	e.GET("/buildings", handler.ListBuildings)

	items := e.Group("/items")
	{
		items.GET("/lost/all", r.itemHandler.ListAll(entity.ItemTypeLost))
		items.GET("/found/all", r.itemHandler.ListAll(entity.ItemTypeFound))
		items.GET("/lost/geojson", r.itemHandler.GeoJSON(entity.ItemTypeLost))
		items.GET("/found/geojson", r.itemHandler.GeoJSON(entity.ItemTypeFound))
		items.GET("/:id", r.itemHandler.GetItem)
		items.GET("/:id/matches", r.itemHandler.ItemMatches)
		items.GET("/:id/qr", r.qrcodeHandler.ClaimQR)
	}

	// Writes carry the caller's credential
	writes := items.Group("", r.credentialMiddleware.Authenticate)
	{
		writes.POST("/lost", r.itemHandler.SubmitLost)
		writes.POST("/found", r.itemHandler.SubmitFound)
		writes.POST("/:id/claim", r.itemHandler.ClaimItem)
		writes.POST("/:id/close", r.itemHandler.CloseItem)
	}

	// Photos written by the blob or S3 storage; imageStorage.publicBaseUrl points here
	e.GET("/static/*", r.uploadHandler.ServeImage)

	upload := e.Group("/upload", r.credentialMiddleware.Authenticate)
	{
		upload.POST("/image", r.uploadHandler.UploadImage)
	}
}
