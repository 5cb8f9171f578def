// main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ariebrainware/medi-help/ai"
	"github.com/ariebrainware/medi-help/config"
	"github.com/ariebrainware/medi-help/controller"
	"github.com/ariebrainware/medi-help/endpoint"
	"github.com/ariebrainware/medi-help/model"
	"github.com/ariebrainware/medi-help/repository"
	"github.com/ariebrainware/medi-help/store"
	"github.com/ariebrainware/medi-help/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medi-help",
		Short: "Medi Help patient and pharmacy service",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the SQL tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			util.SetupLogger(cfg.AppEnv)

			db, err := config.ConnectDatabase()
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			if err := db.AutoMigrate(model.PersistedModels...); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info().Int("tables", len(model.PersistedModels)).Msg("migration complete")
			return nil
		},
	}
}

func runServer(ctx context.Context) error {
	cfg := config.LoadConfig()
	util.SetupLogger(cfg.AppEnv)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	// Security events are only persisted when the sql store is in use.
	var db *gorm.DB
	if cfg.StoreDriver == config.StoreSQL || cfg.StoreDriver == "" {
		var err error
		db, err = config.ConnectDatabase()
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		if err := db.AutoMigrate(model.PersistedModels...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		util.SetSecurityLoggerDB(db)
	}

	if _, err := config.ConnectRedis(); err != nil {
		// Sessions and rate limits degrade to token-only checks without Redis.
		log.Warn().Err(err).Msg("redis unavailable")
	}

	st, err := store.Open(cfg, db)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	repo, err := repository.New(ctx, st)
	if err != nil {
		return fmt.Errorf("load repository: %w", err)
	}

	util.SetJWTSecret(cfg.JWTSecret)
	if err := util.InitGeoIP(cfg.GeoIPPath); err != nil {
		log.Warn().Err(err).Str("path", cfg.GeoIPPath).Msg("geoip disabled")
	}
	defer util.CloseGeoIP()

	if cfg.AIAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set, diagnosis requests will fail")
	}
	adapter := ai.NewAdapter(ai.NewGemini(cfg.AIAPIKey),
		ai.WithModel(cfg.AIModel),
		ai.WithTimeout(cfg.AITimeout),
	)
	ctrl := controller.New(repo, adapter)

	router := endpoint.SetupRouter(cfg, ctrl)

	address := fmt.Sprintf(":%d", cfg.AppPort)
	log.Info().Str("addr", address).Str("store", cfg.StoreDriver).Msgf("starting %s", cfg.AppName)
	if err := router.Run(address); err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}
	return nil
}
