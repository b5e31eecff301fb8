package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/config"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the directory the database lives in
	err = os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Catch up on months that passed while the process was not running
	result, err := ledger.SyncFunding(models.DB, time.Now())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	log.Info().
		Bool("first-run", result.FirstRun).
		Int("periods", result.Periods).
		Int("funded", result.Funded).
		Stringer("month", result.Month).
		Msg("Funding sync")

	// Re-check periodically so that a process running across a month
	// boundary funds the new month without a restart
	go func() {
		for range time.Tick(cfg.SyncInterval) {
			result, err := ledger.SyncFunding(models.DB, time.Now())
			if err != nil {
				log.Error().Err(err).Msg("Funding sync")
				continue
			}
			if result.Periods > 0 {
				log.Info().
					Int("periods", result.Periods).
					Int("funded", result.Funded).
					Stringer("month", result.Month).
					Msg("Funding sync")
			}
		}
	}()

	r, err := router.Config(&cfg.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"))

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
