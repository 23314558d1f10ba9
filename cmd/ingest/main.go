// Command ingest is the Ball Knowledge offline data CLI: it builds and
// updates the career pools, exports static roster files, and publishes pools
// to Postgres.
//
// Usage:
//
//	ballknowledge-ingest careers build nba --resume
//	ballknowledge-ingest careers build nfl
//	ballknowledge-ingest careers lineup nfl
//	ballknowledge-ingest careers update nba --years 2025
//	ballknowledge-ingest rosters nfl --start-year 2010 --end-year 2024 --teams KC,BUF
//	ballknowledge-ingest publish nba
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/ballknowledge-data/internal/career"
	"github.com/albapepper/ballknowledge-data/internal/config"
	"github.com/albapepper/ballknowledge-data/internal/db"
	"github.com/albapepper/ballknowledge-data/internal/export"
	"github.com/albapepper/ballknowledge-data/internal/filecache"
	"github.com/albapepper/ballknowledge-data/internal/provider/nbastats"
	"github.com/albapepper/ballknowledge-data/internal/provider/nflverse"
	"github.com/albapepper/ballknowledge-data/internal/seed"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "ballknowledge-ingest",
		Short:         "Ball Knowledge offline data CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(careersCmd())
	root.AddCommand(rostersCmd())
	root.AddCommand(publishCmd())

	if err := root.Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// careers command
// --------------------------------------------------------------------------

func careersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "careers",
		Short: "Build and update career-mode pools",
	}

	build := &cobra.Command{Use: "build", Short: "Build a career pool from scratch"}
	build.AddCommand(buildNBACmd())
	build.AddCommand(buildNFLCmd())

	lineup := &cobra.Command{Use: "lineup", Short: "Build a lineup pool"}
	lineup.AddCommand(lineupNFLCmd())

	update := &cobra.Command{Use: "update", Short: "Append new seasons to a career pool"}
	update.AddCommand(updateNBACmd())

	cmd.AddCommand(build, lineup, update)
	return cmd
}

func buildNBACmd() *cobra.Command {
	var (
		resume bool
		out    string
	)
	cmd := &cobra.Command{
		Use:   "nba",
		Short: "Build the NBA career pool from stats.nba.com",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				path := orDefault(out, cfg.PoolPath(config.NBACareersFile))
				b := career.NewNBABuilder(nbaClient(cfg), path, config.SportRegistry[config.SportNBA].CurrentSeason, logger)

				start := time.Now()
				result, err := b.Build(ctx, resume)
				logResult("NBA career build", start, result.Summary(), result.Errors)
				if err != nil {
					return err
				}
				logger.Info("Pool written", "path", path, "bytes", career.FileSize(path))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&resume, "resume", false, "Resume from the checkpoint of an interrupted build")
	cmd.Flags().StringVar(&out, "out", "", "Output path (default $DATA_DIR/"+config.NBACareersFile+")")
	return cmd
}

func buildNFLCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "nfl",
		Short: "Build the NFL career pool from nflverse",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				path := orDefault(out, cfg.PoolPath(config.NFLCareersFile))
				b := career.NewNFLBuilder(nflClient(cfg), logger)

				start := time.Now()
				entries, result, err := b.Build(ctx)
				logResult("NFL career build", start, result.Summary(), result.Errors)
				if err != nil {
					return err
				}
				return savePool(path, entries)
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output path (default $DATA_DIR/"+config.NFLCareersFile+")")
	return cmd
}

func lineupNFLCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "nfl",
		Short: "Build the NFL lineup pool from nflverse",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				path := orDefault(out, cfg.PoolPath(config.NFLLineupPoolFile))
				b := career.NewNFLBuilder(nflClient(cfg), logger)

				start := time.Now()
				entries, result, err := b.BuildLineup(ctx)
				logResult("NFL lineup build", start, result.Summary(), result.Errors)
				if err != nil {
					return err
				}
				return savePool(path, entries)
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output path (default $DATA_DIR/"+config.NFLLineupPoolFile+")")
	return cmd
}

func updateNBACmd() *cobra.Command {
	var (
		years []int
		pool  string
	)
	cmd := &cobra.Command{
		Use:   "nba",
		Short: "Append completed seasons to the NBA career pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(years) == 0 {
				return fmt.Errorf("--years is required")
			}
			return run(func(ctx context.Context, cfg *config.Config) error {
				path := orDefault(pool, cfg.PoolPath(config.NBACareersFile))
				u := career.NewNBAUpdater(nbaClient(cfg), path, logger)

				start := time.Now()
				result, err := u.Update(ctx, years)
				logResult("NBA career update", start, result.Summary(), result.Errors)
				return err
			})
		},
	}
	cmd.Flags().IntSliceVar(&years, "years", nil, "Season start years to add (repeatable or comma-separated)")
	cmd.Flags().StringVar(&pool, "pool", "", "Pool path (default $DATA_DIR/"+config.NBACareersFile+")")
	return cmd
}

// --------------------------------------------------------------------------
// rosters command
// --------------------------------------------------------------------------

type rosterFlags struct {
	startYear int
	endYear   int
	teams     string
	force     bool
	out       string
}

func (f *rosterFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.startYear, "start-year", 2000, "First season start year")
	cmd.Flags().IntVar(&f.endYear, "end-year", 2024, "Last season start year")
	cmd.Flags().StringVar(&f.teams, "teams", "", "Comma-separated team abbreviations (default all)")
	cmd.Flags().BoolVar(&f.force, "force", false, "Overwrite existing files")
	cmd.Flags().StringVar(&f.out, "out", "", "Output directory (default $DATA_DIR/static/<sport>)")
}

func (f *rosterFlags) options() (export.Options, error) {
	if f.startYear > f.endYear {
		return export.Options{}, fmt.Errorf("--start-year %d is after --end-year %d", f.startYear, f.endYear)
	}
	opts := export.Options{StartYear: f.startYear, EndYear: f.endYear, Force: f.force}
	for _, t := range strings.Split(f.teams, ",") {
		if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
			opts.Teams = append(opts.Teams, t)
		}
	}
	return opts, nil
}

func rostersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rosters",
		Short: "Export static roster and player list files",
	}
	cmd.AddCommand(rostersNBACmd())
	cmd.AddCommand(rostersNFLCmd())
	return cmd
}

func rostersNBACmd() *cobra.Command {
	var flags rosterFlags
	cmd := &cobra.Command{
		Use:   "nba",
		Short: "Export NBA rosters",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			return run(func(ctx context.Context, cfg *config.Config) error {
				out := orDefault(flags.out, filepath.Join(cfg.DataDir, "static", "nba"))
				files := filecache.New(cfg.NBACachePath(), cfg.NBACacheExpiry, logger)
				e := export.NewNBAExporter(nbaClient(cfg), files, out, logger)

				start := time.Now()
				result, err := e.Run(ctx, opts)
				logResult("NBA roster export", start, result.Summary(), result.Errors)
				return err
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func rostersNFLCmd() *cobra.Command {
	var flags rosterFlags
	cmd := &cobra.Command{
		Use:   "nfl",
		Short: "Export NFL rosters",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			return run(func(ctx context.Context, cfg *config.Config) error {
				out := orDefault(flags.out, filepath.Join(cfg.DataDir, "static", "nfl"))
				files := filecache.New(cfg.NFLCachePath(), cfg.NFLCacheExpiry, logger)
				e := export.NewNFLExporter(nflClient(cfg), files, out, logger)

				start := time.Now()
				result, err := e.Run(ctx, opts)
				logResult("NFL roster export", start, result.Summary(), result.Errors)
				return err
			})
		},
	}
	flags.register(cmd)
	return cmd
}

// --------------------------------------------------------------------------
// publish command
// --------------------------------------------------------------------------

func publishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upsert a career pool into Postgres",
	}
	cmd.AddCommand(publishSportCmd(config.SportNBA, config.NBACareersFile, publishNBA))
	cmd.AddCommand(publishSportCmd(config.SportNFL, config.NFLCareersFile, publishNFL))
	return cmd
}

type publishFunc func(ctx context.Context, pool *db.Pool, path string) (seed.SeedResult, error)

func publishSportCmd(sport, file string, publish publishFunc) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   strings.ToLower(sport),
		Short: "Publish the " + sport + " career pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDB(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				if err := checkDatabase(ctx, pool); err != nil {
					return err
				}
				if err := db.EnsureSchema(ctx, pool.Pool); err != nil {
					return fmt.Errorf("ensure schema: %w", err)
				}

				start := time.Now()
				result, err := publish(ctx, pool, orDefault(path, cfg.PoolPath(file)))
				if err != nil {
					return err
				}
				logResult(sport+" publish", start, result.Summary(), result.Errors)

				n, err := pool.CountPlayers(ctx, sport)
				if err != nil {
					return err
				}
				logger.Info("Published players", "sport", sport, "total", n)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&path, "pool", "", "Pool path (default $DATA_DIR/"+file+")")
	return cmd
}

func publishNBA(ctx context.Context, pool *db.Pool, path string) (seed.SeedResult, error) {
	entries, err := career.LoadPool[career.NBABio](path)
	if err != nil {
		return seed.SeedResult{}, err
	}
	return seed.PublishPool(ctx, pool, config.SportNBA, entries, logger), nil
}

func publishNFL(ctx context.Context, pool *db.Pool, path string) (seed.SeedResult, error) {
	entries, err := career.LoadPool[career.NFLBio](path)
	if err != nil {
		return seed.SeedResult{}, err
	}
	return seed.PublishPool(ctx, pool, config.SportNFL, entries, logger), nil
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// run handles config loading and context cancellation.
func run(fn func(ctx context.Context, cfg *config.Config) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return fn(ctx, cfg)
}

// runDB is run plus a database connection.
type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

// checkDatabase fails fast when the database cannot answer a query, before
// any pool file is read.
func checkDatabase(ctx context.Context, target healthChecker) error {
	if err := target.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check: %w", err)
	}
	logger.Info("Database reachable")
	return nil
}

func runDB(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	return run(func(ctx context.Context, cfg *config.Config) error {
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		return fn(ctx, cfg, pool)
	})
}

func nbaClient(cfg *config.Config) *nbastats.Client {
	return nbastats.NewClient(cfg.NBAStatsBaseURL, cfg.NBARequestDelay, cfg.NBATimeout, logger)
}

func nflClient(cfg *config.Config) *nflverse.Client {
	return nflverse.NewClient(cfg.NFLVerseBaseURL, cfg.NFLVerseSchedulesURL, cfg.NFLTimeout, logger)
}

func savePool[B any](path string, entries []career.Entry[B]) error {
	if err := career.SavePool(path, entries); err != nil {
		return err
	}
	logger.Info("Pool written", "path", path, "players", len(entries), "bytes", career.FileSize(path))
	return nil
}

func logResult(job string, start time.Time, summary string, errs []string) {
	logger.Info(job+" finished", "duration", time.Since(start).Round(time.Second), "summary", summary)
	for _, e := range errs {
		logger.Error(job+" error", "error", e)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
