// Command seeder loads topics and tips from a YAML content file through
// the content services. Topics and tips whose title already exists are
// skipped, so it can be rerun after editing the file.
//
// Flags:
//
//	--phase          comma-separated list of phases to run: topics, tips (default: all)
//	--dry-run        validate the content without writing
//	--content        path to the content YAML file (overrides seeder config)
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/grouponesailor/group6-tips-server/internal/adapter/redis/searchcache"
	"github.com/grouponesailor/group6-tips-server/internal/app"
	"github.com/grouponesailor/group6-tips-server/internal/app/seeder"
	"github.com/grouponesailor/group6-tips-server/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "validate content without writing")
	contentFlag := flag.String("content", "", "path to content YAML file")
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
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *contentFlag != "" {
		seederCfg.ContentPath = *contentFlag
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	content, err := seeder.LoadContent(seederCfg.ContentPath)
	if err != nil {
		logger.Error("load content", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := run(ctx, logger, appCfg, seederCfg, content, phases); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, appCfg *config.Config, seederCfg *seeder.Config, content *seeder.Content, phases []string) error {
	backend, err := app.OpenBackend(ctx, appCfg.Database, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	var cache app.SearchCache = searchcache.Nop{}
	if appCfg.Redis.Enabled() {
		rdb, err := searchcache.NewClient(ctx, appCfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close() //nolint:errcheck
		cache = searchcache.New(rdb, appCfg.Redis.CacheTTL)
	}

	svcs := app.NewServices(logger, appCfg, backend, cache)
	pipeline := seeder.NewPipeline(logger, svcs.Topics, svcs.Tips, *seederCfg)
	if err := pipeline.Run(ctx, content, phases); err != nil {
		return err
	}

	if pipeline.HasErrors() {
		return errors.New("pipeline completed with rejected entities")
	}
	logger.Info("pipeline completed successfully")
	return nil
}
