package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/bilegt6969/sainto-api/internal/api/handlers"
	apimiddleware "github.com/bilegt6969/sainto-api/internal/api/middleware"
	"github.com/bilegt6969/sainto-api/internal/cms"
	"github.com/bilegt6969/sainto-api/internal/config"
	"github.com/bilegt6969/sainto-api/internal/currency"
	"github.com/bilegt6969/sainto-api/internal/ebay"
	"github.com/bilegt6969/sainto-api/internal/marketplace"
	"github.com/bilegt6969/sainto-api/internal/notify"
	"github.com/bilegt6969/sainto-api/internal/order"
	"github.com/bilegt6969/sainto-api/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	lifecycle := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	slogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	// Upstream clients.
	search := marketplace.NewHTTPClient(
		cfg.Marketplace.SearchURL,
		cfg.Marketplace.BrowseURL,
		cfg.Marketplace.APIKey,
		marketplace.WithPageSize(cfg.Marketplace.PageSize),
	)

	tokens := ebay.NewOAuthTokenProvider(
		cfg.Ebay.AppID,
		cfg.Ebay.CertID,
		ebay.WithTokenURL(cfg.Ebay.TokenURL),
	)
	limiter := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)
	browse := ebay.NewBrowseClient(
		tokens,
		ebay.WithBrowseURL(cfg.Ebay.BrowseURL),
		ebay.WithMarketplace(cfg.Ebay.Marketplace),
		ebay.WithRateLimiter(limiter),
	)

	fx := currency.NewConverter(
		cfg.Currency.RateURL,
		cfg.Currency.Base,
		cfg.Currency.Display,
		cfg.Currency.FallbackRate,
		cfg.Currency.CacheTTL,
		slogger,
	)
	rates, err := currency.NewScheduler(fx, cfg.Currency.RefreshInterval, slogger)
	if err != nil {
		return fmt.Errorf("starting rate scheduler: %w", err)
	}
	rates.Start()

	sections := cms.NewHTTPClient(cfg.CMS.BaseURL, cfg.CMS.Token)
	trending := cms.NewTrendingResolver(sections, search, cfg.CMS.ProductsPerRow, slogger)

	var notifier notify.Notifier
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	} else {
		notifier = notify.NewNoOpNotifier(slogger)
	}
	orders := order.NewService(notifier, order.NewDiscountSet(cfg.Orders.DiscountCodes), slogger)

	// HTTP server.
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(apimiddleware.RequestLog(slogger))
	e.Use(apimiddleware.Recovery(slogger))
	e.Use(apimiddleware.Metrics())

	health := handlers.NewHealthHandler()
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	searchHandler := handlers.NewSearchHandler(search, fx, slogger)
	ebayHandler := handlers.NewEbaySearchHandler(browse, fx, cfg.Marketplace.PageSize, slogger)
	e.GET("/api/search", searchHandler.Search)
	e.GET("/api/search/ebay", ebayHandler.Search)

	api := humaecho.New(e, huma.DefaultConfig("Sainto Storefront API", Version))
	handlers.RegisterCategoryRoutes(api, handlers.NewCategoryHandler(search, fx, slogger))
	handlers.RegisterOrderRoutes(api, handlers.NewOrderHandler(orders, slogger))
	handlers.RegisterTrendingRoutes(api, handlers.NewTrendingHandler(trending, fx, cfg.CMS.SectionLimit, slogger))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	lifecycle.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lifecycle.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lifecycle.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	<-rates.Stop().Done()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	lifecycle.Info("server stopped")
	return nil
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
