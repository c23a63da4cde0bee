package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xqrs/smiles"
	"github.com/xqrs/smiles/internal/board"
	"github.com/xqrs/smiles/internal/campaign"
	"github.com/xqrs/smiles/internal/gallery"
	"github.com/xqrs/smiles/internal/i18n"
	"github.com/xqrs/smiles/internal/messages"
)

// boardOptions builds the board options shared by the board and the overlay.
func boardOptions(ctx context.Context, app *smiles.Application) board.Options {
	lang, _ := i18n.Parse(cfg.Language)
	return board.Options{
		Language:  lang,
		Milestone: cfg.Campaign.Milestone,
		Status:    cfg.Messages.Status,
		Limit:     cfg.Messages.Limit,
		Timings: smiles.CarouselTimings{
			Settle:         cfg.GetSettleDelay(),
			CenterWindow:   cfg.GetCenterWindow(),
			ScrollDebounce: cfg.GetScrollDebounce(),
		},
		Smooth:    cfg.Carousel.Smooth,
		Scheduler: app,
		// The watcher reads the file once before the loop runs, so updates
		// must not wait for the loop on the caller's goroutine.
		Queue:  orderedQueue(ctx, func(f func()) { app.QueueUpdateDraw(f) }),
		Logger: logger,
	}
}

// orderedQueue returns a queue function that hands updates to queue from a
// single goroutine, in the order they were queued. The goroutine exits when
// ctx is done; later updates are dropped.
func orderedQueue(ctx context.Context, queue func(f func())) func(f func()) {
	pending := make(chan func(), 16)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case f := <-pending:
				queue(f)
			}
		}
	}()
	return func(f func()) {
		select {
		case pending <- f:
		case <-ctx.Done():
		}
	}
}

// saveLanguage keeps the language chosen on the board for the next start.
func saveLanguage(lang i18n.Language) {
	cfg.Language = string(lang)
	if err := cfg.Save(configPath); err != nil {
		logger.Error("failed to save language", zap.String("path", configPath), zap.Error(err))
		return
	}
	logger.Debug("language saved", zap.String("language", cfg.Language))
}

// watchCampaign starts a watcher that feeds update. The returned function
// stops it.
func watchCampaign(ctx context.Context, update campaign.UpdateFunc) func() {
	watcher := campaign.NewWatcher(cfg.Campaign.File, cfg.GetPollInterval(), update, logger)
	watcher.Start(ctx)
	return watcher.Stop
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := messages.Open(cfg.Messages.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	photos, err := gallery.Load(ctx, gallery.Options{
		Dir:     cfg.Gallery.Dir,
		Files:   cfg.Gallery.Images,
		Workers: cfg.Gallery.Workers,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("failed to load pictures: %w", err)
	}
	logger.Info("pictures loaded", zap.Int("count", len(photos)))

	app := smiles.NewApplication().EnableMouse(true).EnablePaste(true)
	opts := boardOptions(ctx, app)
	opts.Store = store
	opts.LanguageChanged = saveLanguage
	opts.Items = gallery.Items(photos)
	b := board.New(opts)
	defer b.Close()

	if err := b.ReloadMessages(ctx); err != nil {
		logger.Warn("messages unavailable", zap.Error(err))
	}

	stop := watchCampaign(ctx, b.UpdateCampaign)
	defer stop()

	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	logger.Info("board started", zap.String("language", string(b.Language())))
	if err := app.SetRoot(b).Run(); err != nil {
		return fmt.Errorf("board stopped: %w", err)
	}
	logger.Info("board stopped")
	return nil
}

func runOverlay(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := smiles.NewApplication()
	o := board.NewOverlay(boardOptions(ctx, app))
	defer o.Close()

	stop := watchCampaign(ctx, o.UpdateCampaign)
	defer stop()

	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	if err := app.SetRoot(o).Run(); err != nil {
		return fmt.Errorf("overlay stopped: %w", err)
	}
	return nil
}
