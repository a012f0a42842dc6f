package main

import (
	"os"
	"os/signal"
	"syscall"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/rendering"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor web server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// infra setup
	pool, err := infra.NewExportsPool(ctx, cfg.ExportsDatabaseURL)
	if err != nil {
		logger.Warn("exports DB not available, export log disabled", zap.Error(err))
		pool = nil
	}
	if pool != nil {
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool, logger); err != nil {
			return err
		}
	}

	pages, err := rendering.New()
	if err != nil {
		return err
	}
	sessions := repo.NewSessionStore(cfg.SessionTTL, logger)
	editor := usecase.NewEditor(
		sessions,
		infra.NewChromedpRenderer(cfg.ChromePath, cfg.ExportTimeout),
		pages,
		repo.NewExportsRepo(pool),
		cfg.SummarySoftLimit,
		logger,
	)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httpadapter.Register(app, httpadapter.NewHandler(editor, pages, logger), logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sessions.Run(gctx, cfg.SweepInterval)
		return nil
	})
	g.Go(func() error {
		logger.Info("listening", zap.String("port", cfg.Port))
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return app.Shutdown()
	})
	return g.Wait()
}
