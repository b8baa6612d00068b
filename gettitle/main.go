package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/DeafMist/get-title/internal/config"
	"github.com/DeafMist/get-title/internal/fetch"
	"github.com/DeafMist/get-title/internal/logger"
	"github.com/DeafMist/get-title/internal/models"
	"github.com/DeafMist/get-title/internal/processing"
)

const (
	exitOK     = 0
	exitConfig = 1
	exitNoData = 2
)

type recordSource interface {
	Fetch(ctx context.Context, url string) []models.Record
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

func execute(args []string, console io.Writer) int {
	code := exitOK
	cmd := newRootCmd(console, &code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return exitConfig
	}
	return code
}

func newRootCmd(console io.Writer, code *int) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "get-title",
		Short:         "Fetch records and log the titles matching configured keywords",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, closer := logger.New(logger.Options{Console: console})
			defer closeLog(console, closer)
			log := base.With(slog.String("run_id", uuid.NewString()))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			*code = run(ctx, log, configPath, fetch.New(fetch.WithLogger(log)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the configuration file")
	return cmd
}

func closeLog(console io.Writer, closer io.Closer) {
	if err := closer.Close(); err != nil {
		fmt.Fprintf(console, "close log file: %v\n", err)
	}
}

func run(ctx context.Context, log *slog.Logger, configPath string, source recordSource) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("load config", slog.String("path", configPath), slog.Any("err", err))
		return exitConfig
	}

	log.Info("fetching data", slog.String("url", cfg.URL))
	records := source.Fetch(ctx, cfg.URL)
	if len(records) == 0 {
		log.Error("no data was retrieved, exiting")
		return exitNoData
	}

	if len(cfg.Keywords) == 0 {
		log.Info("no valid keywords found, selecting all titles")
	}

	titles, _ := processing.FilterTitles(log, records, cfg.Keywords)
	if len(titles) > 0 {
		log.Info("found filtered titles", slog.Int("count", len(titles)))
	} else {
		log.Info("no titles found")
	}
	return exitOK
}
