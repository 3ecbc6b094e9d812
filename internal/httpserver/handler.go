package httpserver

import (
	alertHTTP "safespace-srv/internal/alert/delivery/http"
	alertUsecase "safespace-srv/internal/alert/usecase"
	"safespace-srv/internal/middleware"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "safespace-srv/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.logger, srv.discord, middleware.NewCORSConfig(srv.allowedOrigins))
	srv.gin.Use(mw.RequestLogger(), mw.Recovery(), mw.CORS())

	// Health check endpoints
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Alert routes live at the root
	alertUC := alertUsecase.New(srv.logger, srv.notifier, srv.discord, alertUsecase.Config{
		FromNumber: srv.fromNumber,
		Contacts:   srv.contacts,
	})
	alertHTTP.New(alertUC, srv.logger).RegisterRoutes(srv.gin)

	return nil
}
