package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/apiserver/handler"
	"github.com/estateops/estate-api/internal/apiserver/lifecycle"
	"github.com/estateops/estate-api/internal/apiserver/middleware"
	"github.com/estateops/estate-api/internal/apiserver/reporting"
	"github.com/estateops/estate-api/internal/auth/jwt"
	"github.com/estateops/estate-api/internal/auth/storage"
	"github.com/estateops/estate-api/internal/common/cnst"
	"github.com/estateops/estate-api/internal/common/config"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/estateops/estate-api/pkg/logger"
	"github.com/estateops/estate-api/pkg/metrics"
	"github.com/estateops/estate-api/pkg/trace"
	"github.com/estateops/estate-api/pkg/utils"
	"github.com/estateops/estate-api/pkg/version"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of " + cnst.CommandName,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", cnst.CommandName, version.Get())
		},
	}

	rootCmd = &cobra.Command{
		Use:   cnst.CommandName,
		Short: "Estate API Server",
		Long:  `Estate API Server manages rental and sale inventory, owners, tenants and contracts`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "conf", cnst.ApiServerYaml, "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func run() {
	// Load configuration
	cfg, cfgPath, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", cfgPath, err)
	}

	// Initialize logger
	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = lg.Sync()
	}()

	lg.Info("starting apiserver",
		zap.String("version", version.Get()),
		zap.String("config", cfgPath))

	// Initialize i18n translator
	if err := i18n.InitTranslator(cfg.I18n.Path); err != nil {
		lg.Warn("failed to initialize i18n translator, using message ids", zap.Error(err))
	}

	if cfg.PID != "" {
		pm := utils.NewPIDManagerFromConfig(cfg.PID)
		if err := pm.WritePID(); err != nil {
			lg.Fatal("failed to write PID file", zap.String("path", cfg.PID), zap.Error(err))
		}
		defer func() {
			_ = pm.RemovePID()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize OpenTelemetry tracing
	shutdownTracing, err := trace.InitTracing(ctx, &cfg.Tracing, lg)
	if err != nil {
		lg.Warn("failed to initialize tracing", zap.Error(err))
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(shutdownCtx); err != nil {
				lg.Warn("failed to shut down tracing", zap.Error(err))
			}
		}()
	}

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		lg.Fatal("failed to initialize database",
			zap.String("type", cfg.Database.Type),
			zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	// Seed the super admin account if configured
	if err := database.InitSuperAdmin(ctx, db, &cfg.SuperAdmin); err != nil {
		lg.Fatal("failed to seed super admin", zap.Error(err))
	}

	// Initialize refresh-token session store
	sessions, err := storage.NewStore(&cfg.Session)
	if err != nil {
		lg.Fatal("failed to initialize session store",
			zap.String("type", cfg.Session.Type),
			zap.Error(err))
	}
	defer func() {
		_ = sessions.Close()
	}()

	// Initialize JWT service
	jwtSvc, err := jwt.NewService(cfg.JWT)
	if err != nil {
		lg.Fatal("failed to initialize jwt service", zap.Error(err))
	}

	// Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics)
	}

	lc := lifecycle.NewEngine(db, lg)
	rp := reporting.NewEngine(db, lg)
	if m != nil {
		lc = lc.WithMetrics(m)
		rp = rp.WithMetrics(m)
	}

	h := handler.NewHandler(db, lc, rp, jwtSvc, sessions, lg)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cnst.AppName))
	if m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h.RegisterRoutes(router, middleware.JWTAuthMiddleware(jwtSvc))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		lg.Info("server listening", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("graceful shutdown failed", zap.Error(err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
