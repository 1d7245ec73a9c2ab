// Command seeder loads domain listings and blog posts from a YAML seed file
// into the catalog. It is intended to be run offline, not as part of the
// main server.
//
// Flags:
//
//	--file           path to the YAML seed file (overrides SEEDER_FILE)
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        validate the seed file without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/domainmarket-backend/internal/adapter/cache"
	"github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres"
	"github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres/blogpost"
	"github.com/heartmarshall/domainmarket-backend/internal/adapter/postgres/listing"
	"github.com/heartmarshall/domainmarket-backend/internal/app"
	"github.com/heartmarshall/domainmarket-backend/internal/app/seeder"
	"github.com/heartmarshall/domainmarket-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the YAML seed file")
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "validate the seed file without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fileFlag != "" {
		seederCfg.File = *fileFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if seederCfg.File == "" {
		logger.Error("no seed file given, use --file or SEEDER_FILE")
		os.Exit(1)
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	file, err := seeder.LoadFile(seederCfg.File)
	if err != nil {
		logger.Error("load seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deps := seeder.Deps{
		Listings: listing.New(pool),
		Posts:    blogpost.New(pool),
		Tx:       postgres.NewTxManager(pool),
	}

	if appCfg.Cache.Enabled() {
		rdb, err := cache.NewClient(ctx, appCfg.Cache)
		if err != nil {
			logger.Warn("cache unavailable, skipping invalidation",
				slog.String("error", err.Error()))
		} else {
			defer rdb.Close()
			deps.Cache = cache.New(rdb, appCfg.Cache.Prefix, appCfg.Cache.TTL, logger)
		}
	}

	pipeline := seeder.NewPipeline(logger, deps, *seederCfg)
	if err := pipeline.Run(ctx, file, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for phase, r := range pipeline.Results() {
		logger.Info("phase summary",
			slog.String("phase", phase),
			slog.Int("upserted", r.Upserted),
			slog.Int("skipped", r.Skipped),
			slog.Duration("duration", r.Duration),
		)
	}

	logger.Info("pipeline completed successfully")
}
