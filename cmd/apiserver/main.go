package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amoylab/phongtro/internal/apiserver/database"
	"github.com/amoylab/phongtro/internal/apiserver/handler"
	"github.com/amoylab/phongtro/internal/auth/jwt"
	"github.com/amoylab/phongtro/internal/billing"
	"github.com/amoylab/phongtro/internal/common/cnst"
	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/amoylab/phongtro/internal/i18n"
	"github.com/amoylab/phongtro/internal/lease"
	"github.com/amoylab/phongtro/internal/notifier"
	"github.com/amoylab/phongtro/pkg/logger"
	"github.com/amoylab/phongtro/pkg/metrics"
	"github.com/amoylab/phongtro/pkg/trace"
	"github.com/amoylab/phongtro/pkg/version"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String(cnst.CommandAPI))
		},
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate()
		},
	}

	rootCmd = &cobra.Command{
		Use:   cnst.CommandAPI,
		Short: "Room rental management API server",
		Long:  `Serves the REST API for units, tenants, contracts, invoices and maintenance requests`,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "conf", "c", "apiserver.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd, migrateCmd)
}

func loadConfig() (*config.APIServerConfig, string) {
	cfg, path, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config %s: %v\n", path, err)
		os.Exit(1)
	}
	return cfg, path
}

func initLogger(cfg *config.APIServerConfig) *zap.Logger {
	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return lg
}

func initI18n(cfg *config.I18nConfig) {
	i18n.SetDefaultLanguage(cfg.DefaultLanguage)
	if err := i18n.InitTranslator(cfg.Path); err != nil {
		// responses fall back to message ids
		zap.L().Warn("failed to load translations", zap.String("path", cfg.Path), zap.Error(err))
	}
}

func initDatabase(lg *zap.Logger, cfg *config.DatabaseConfig) *database.Store {
	db, err := database.NewDatabase(cfg)
	if err != nil {
		lg.Fatal("failed to initialize database", zap.String("type", cfg.Type), zap.Error(err))
	}
	lg.Info("database ready", db.LogFields()...)
	return db
}

func initNotifier(ctx context.Context, lg *zap.Logger, cfg *config.NotifierConfig) notifier.Notifier {
	n, err := notifier.NewNotifier(ctx, lg, cfg)
	if err != nil {
		lg.Fatal("failed to initialize notifier", zap.String("type", cfg.Type), zap.Error(err))
	}
	return n
}

func initRouter(db database.Database, n notifier.Notifier, cfg *config.APIServerConfig, lg *zap.Logger) *gin.Engine {
	jwtService, err := jwt.NewService(cfg.JWT)
	if err != nil {
		lg.Fatal("failed to initialize jwt service", zap.Error(err))
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics)
	}

	h := handler.NewHandler(db, jwtService,
		lease.NewService(db, m, lg),
		billing.NewService(db, cfg.Billing, m, lg),
		n, m, lg)
	return handler.NewRouter(h, cfg)
}

func migrate() error {
	cfg, _ := loadConfig()
	lg := initLogger(cfg)
	defer lg.Sync()

	// opening the store migrates the schema
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	created, err := database.InitSuperAdmin(context.Background(), db, &cfg.SuperAdmin)
	if err != nil {
		return err
	}
	lg.Info("database migrated", zap.String("type", cfg.Database.Type), zap.Bool("super_admin_created", created))
	return nil
}

func run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, cfgPath := loadConfig()
	lg := initLogger(cfg)
	defer lg.Sync()
	zap.ReplaceGlobals(lg)

	lg.Info("starting apiserver",
		zap.String("version", version.Get()),
		zap.String("config", cfgPath))

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	initI18n(&cfg.I18n)

	shutdownTracing, err := trace.InitTracing(ctx, &cfg.Tracing, lg)
	if err != nil {
		lg.Fatal("failed to initialize tracing", zap.Error(err))
	}

	db := initDatabase(lg, &cfg.Database)
	defer db.Close()

	if created, err := database.InitSuperAdmin(ctx, db, &cfg.SuperAdmin); err != nil {
		lg.Fatal("failed to seed super admin", zap.Error(err))
	} else if created {
		lg.Info("super admin created", zap.String("email", cfg.SuperAdmin.Email))
	}

	n := initNotifier(ctx, lg, &cfg.Notifier)
	defer n.Close()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: initRouter(db, n, cfg, lg),
	}

	go func() {
		lg.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	lg.Info("received signal, shutting down", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		lg.Warn("tracing shutdown failed", zap.Error(err))
	}
	lg.Info("server stopped")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
