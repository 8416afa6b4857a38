package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codigo-r/landing-backend/config"
	"github.com/codigo-r/landing-backend/db"
	"github.com/codigo-r/landing-backend/domain/analytics"
	"github.com/codigo-r/landing-backend/domain/auth"
	"github.com/codigo-r/landing-backend/domain/content"
	"github.com/codigo-r/landing-backend/domain/ebook"
	"github.com/codigo-r/landing-backend/domain/geo"
	"github.com/codigo-r/landing-backend/domain/health"
	"github.com/codigo-r/landing-backend/domain/product"
	"github.com/codigo-r/landing-backend/pkg/apperrors"
	"github.com/codigo-r/landing-backend/pkg/logger"
	"github.com/codigo-r/landing-backend/routes"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
)

func main() {
	config.InitConfig()

	logger.Init(logger.Config{
		Level:       logger.Level(viper.GetString("LOG_LEVEL")),
		Environment: viper.GetString("ENVIRONMENT"),
		ServiceName: "codigo-r-backend",
	})
	log := logger.Get()

	conn, err := config.NewDB()
	if err != nil {
		log.Fatal("Failed to connect to database", err)
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		log.Fatal("Failed to run migrations", err)
	}

	userStore := auth.NewStore(conn)
	contentStore := content.NewStore(conn)

	resolver := geo.NewResolver(
		viper.GetString("GEOIP_BASE_URL"),
		viper.GetString("FALLBACK_COUNTRY_CODE"),
		viper.GetString("FALLBACK_COUNTRY_NAME"),
	)

	handlers := routes.Handlers{
		Auth:      auth.NewHandler(userStore),
		Content:   content.NewHandler(contentStore),
		Geo:       geo.NewHandler(contentStore, resolver),
		Analytics: analytics.NewHandler(analytics.NewStore(conn)),
		Ebook:     ebook.NewHandler(ebook.NewStore(conn)),
		Product:   product.NewHandler(product.NewStore(conn)),
		Health:    health.NewHandler(conn),
		Users:     userStore,
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(log)

	e.Use(logger.RequestLoggerMiddleware(log))
	e.Use(logger.RecoveryMiddleware(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{viper.GetString("CORS_ORIGIN")},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders:    []string{echo.HeaderContentLength},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	routes.RegisterRoutes(e, handlers)

	go func() {
		addr := ":" + viper.GetString("PORT")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server stopped", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", err)
	}
}
